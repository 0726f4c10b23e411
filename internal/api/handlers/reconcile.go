package handlers

import (
	"net/http"

	"hackathon-dashboard-backend/internal/auth"
	apperrors "hackathon-dashboard-backend/internal/errors"
	"hackathon-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReconcileHandler drives attendance reconstruction from aggregate counts
type ReconcileHandler struct {
	reconcile *service.ReconciliationService
}

// NewReconcileHandler creates a new reconcile handler
func NewReconcileHandler(reconcile *service.ReconciliationService) *ReconcileHandler {
	return &ReconcileHandler{reconcile: reconcile}
}

// Reconcile handles POST /reconcile
func (h *ReconcileHandler) Reconcile(c *gin.Context) {
	var req service.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Actor = auth.Actor(c)

	result, err := h.reconcile.Reconcile(&req)
	if err != nil {
		respondReconcileError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ApplyOverride handles POST /overrides
func (h *ReconcileHandler) ApplyOverride(c *gin.Context) {
	var req service.OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Actor = auth.Actor(c)

	if err := h.reconcile.ApplyOverride(&req); err != nil {
		respondReconcileError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "override applied", "team_id": req.TeamID, "event_id": req.EventID})
}

// clearOverrideRequest is the body for DELETE /overrides
type clearOverrideRequest struct {
	TeamID  uuid.UUID `json:"team_id" binding:"required"`
	EventID uuid.UUID `json:"event_id" binding:"required"`
}

// ClearOverride handles DELETE /overrides
func (h *ReconcileHandler) ClearOverride(c *gin.Context) {
	var req clearOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.reconcile.ClearOverride(req.TeamID, req.EventID, auth.Actor(c)); err != nil {
		respondReconcileError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "override cleared", "team_id": req.TeamID, "event_id": req.EventID})
}

// respondReconcileError maps reconciliation errors onto HTTP status codes
func respondReconcileError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAmbiguousAttendance(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
