package handlers

import (
	"net/http"

	"hackathon-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ScoresHandler serves the leaderboard views
type ScoresHandler struct {
	scoring *service.ScoringService
}

// NewScoresHandler creates a new scores handler
func NewScoresHandler(scoring *service.ScoringService) *ScoresHandler {
	return &ScoresHandler{scoring: scoring}
}

// TeamScores handles GET /scores/teams
func (h *ScoresHandler) TeamScores(c *gin.Context) {
	rows, err := h.scoring.TeamScores()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": rows, "count": len(rows)})
}

// MemberScores handles GET /scores/members
func (h *ScoresHandler) MemberScores(c *gin.Context) {
	rows, err := h.scoring.MemberScores()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": rows, "count": len(rows)})
}

// CoachScores handles GET /scores/coaches
func (h *ScoresHandler) CoachScores(c *gin.Context) {
	rows, err := h.scoring.CoachScores()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"coaches": rows, "count": len(rows)})
}
