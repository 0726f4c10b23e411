package handlers

import (
	"net/http"

	"hackathon-dashboard-backend/internal/auth"
	"hackathon-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ImportHandler accepts bulk row batches from the ingestion layer
type ImportHandler struct {
	importer *service.ImportService
}

// NewImportHandler creates a new import handler
func NewImportHandler(importer *service.ImportService) *ImportHandler {
	return &ImportHandler{importer: importer}
}

// ImportTeams handles POST /import/teams
func (h *ImportHandler) ImportTeams(c *gin.Context) {
	var rows []service.TeamRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.importer.ImportTeams(rows, auth.Actor(c)))
}

// ImportMembers handles POST /import/members
func (h *ImportHandler) ImportMembers(c *gin.Context) {
	var rows []service.MemberRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.importer.ImportMembers(rows, auth.Actor(c)))
}

// ImportEvents handles POST /import/events
func (h *ImportHandler) ImportEvents(c *gin.Context) {
	var rows []service.EventRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.importer.ImportEvents(rows, auth.Actor(c)))
}

// ImportAttendance handles POST /import/attendance
func (h *ImportHandler) ImportAttendance(c *gin.Context) {
	var rows []service.AggregateAttendanceRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.importer.ImportAggregateAttendance(rows, auth.Actor(c)))
}

// ImportOverrides handles POST /import/overrides
func (h *ImportHandler) ImportOverrides(c *gin.Context) {
	var rows []service.OverrideRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.importer.ImportOverrides(rows, auth.Actor(c)))
}
