package handlers

import (
	"errors"
	"net/http"

	"syncloud/internal/engine"

	"github.com/gin-gonic/gin"
)

// SyncHandler exposes the sync engine over HTTP.
type SyncHandler struct {
	engine *engine.Engine
}

func NewSyncHandler(e *engine.Engine) *SyncHandler {
	return &SyncHandler{engine: e}
}

// writeEngineError maps the engine's error taxonomy onto status codes.
func writeEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, engine.ErrInvalidRequest), errors.Is(err, engine.ErrUnknownTable):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, engine.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, engine.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

type pushRequest struct {
	Table   string           `json:"table"`
	Owner   string           `json:"owner"`
	Records []map[string]any `json:"records"`
}

// Push applies one table batch. Per-record failures come back inside a 200
// envelope with status "partial"; only structural problems get an error
// status.
func (h *SyncHandler) Push(c *gin.Context) {
	var req pushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.engine.Push(c.Request.Context(), engine.PushRequest{
		Table:   req.Table,
		Owner:   req.Owner,
		Records: req.Records,
	})
	if err != nil {
		writeEngineError(c, err)
		return
	}

	status := "success"
	if len(res.Errors) > 0 {
		status = "partial"
	}
	errs := res.Errors
	if errs == nil {
		errs = []engine.RecordError{}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  status,
		"table":   req.Table,
		"created": res.Created,
		"updated": res.Updated,
		"deleted": res.Deleted,
		"failed":  len(res.Errors),
		"errors":  errs,
	})
}

// Pull returns the scoped snapshot of one table.
func (h *SyncHandler) Pull(c *gin.Context) {
	res, err := h.engine.Pull(c.Request.Context(), engine.PullRequest{
		Table:        c.Query("table"),
		Owner:        c.Query("owner"),
		FirmID:       c.Query("firmId"),
		UpdatedAfter: c.Query("updatedAfter"),
	})
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"table":   res.Table,
		"count":   len(res.Records),
		"records": res.Records,
	})
}
