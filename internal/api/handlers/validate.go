package handlers

import (
	"net/http"

	"hackathon-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ValidateHandler runs the store integrity checks on demand
type ValidateHandler struct {
	validation *service.ValidationService
}

// NewValidateHandler creates a new validate handler
func NewValidateHandler(validation *service.ValidationService) *ValidateHandler {
	return &ValidateHandler{validation: validation}
}

// Validate handles GET /validate
func (h *ValidateHandler) Validate(c *gin.Context) {
	violations, err := h.validation.Validate()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"valid":      len(violations) == 0,
		"violations": violations,
		"count":      len(violations),
	})
}

// ValidateSnapshot handles POST /validate/snapshot
func (h *ValidateHandler) ValidateSnapshot(c *gin.Context) {
	var expected service.RowCounts
	if err := c.ShouldBindJSON(&expected); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	violations, err := h.validation.ValidateAgainstSnapshot(expected)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"valid":      len(violations) == 0,
		"violations": violations,
		"count":      len(violations),
	})
}
