package handlers

import (
	"errors"
	"net/http"

	"hackathon-dashboard-backend/internal/auth"
	apperrors "hackathon-dashboard-backend/internal/errors"
	"hackathon-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BonusHandler handles bonus point awards and revocations
type BonusHandler struct {
	bonuses *service.BonusService
}

// NewBonusHandler creates a new bonus handler
func NewBonusHandler(bonuses *service.BonusService) *BonusHandler {
	return &BonusHandler{bonuses: bonuses}
}

// Award handles POST /bonuses
func (h *BonusHandler) Award(c *gin.Context) {
	var req service.AwardBonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Actor = auth.Actor(c)

	total, err := h.bonuses.Award(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidBonusTarget):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "bonus awarded", "new_total": total})
}

// Revoke handles DELETE /bonuses/:id
func (h *BonusHandler) Revoke(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bonus ID"})
		return
	}

	if err := h.bonuses.Revoke(id, auth.Actor(c)); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bonus revoked"})
}
