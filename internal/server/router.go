package server

import (
	"net/http"

	"syncloud/internal/engine"
	"syncloud/internal/handlers"
	"syncloud/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(e *engine.Engine, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	h := handlers.NewSyncHandler(e)

	api := r.Group("/api/sync")
	api.POST("/push", h.Push)
	api.GET("/pull", h.Pull)
	api.POST("/toggle", h.ToggleSync)
	api.POST("/firms/delete", h.DeleteFirm)
	api.POST("/firms/share", h.ShareFirm)
	api.POST("/firms/revoke", h.RevokeShare)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
