package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type firmRequest struct {
	FirmID string `json:"firmId"`
	Owner  string `json:"owner"`
}

// ToggleSync flips the firm's sync flag. Owner only.
func (h *SyncHandler) ToggleSync(c *gin.Context) {
	var req firmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	enabled, err := h.engine.ToggleSync(c.Request.Context(), req.FirmID, req.Owner)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"firmId":      req.FirmID,
		"syncEnabled": enabled,
	})
}

// DeleteFirm cascades: grants, every tenant-scoped table, then the firm.
func (h *SyncHandler) DeleteFirm(c *gin.Context) {
	var req firmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.engine.DeleteFirm(c.Request.Context(), req.FirmID, req.Owner); err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"firmId": req.FirmID,
	})
}

type shareRequest struct {
	FirmID     string `json:"firmId"`
	Owner      string `json:"owner"`
	SharedWith string `json:"sharedWith"`
	Role       string `json:"role"`
}

// ShareFirm grants another principal access to the firm's data.
func (h *SyncHandler) ShareFirm(c *gin.Context) {
	var req shareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.engine.ShareFirm(c.Request.Context(), req.FirmID, req.Owner, req.SharedWith, req.Role); err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// RevokeShare removes a grant.
func (h *SyncHandler) RevokeShare(c *gin.Context) {
	var req shareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.engine.RevokeShare(c.Request.Context(), req.FirmID, req.Owner, req.SharedWith); err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
