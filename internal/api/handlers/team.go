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

// TeamHandler handles HTTP requests for roster operations
type TeamHandler struct {
	roster *service.RosterService
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(roster *service.RosterService) *TeamHandler {
	return &TeamHandler{roster: roster}
}

// CreateTeam handles POST /teams
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Actor = auth.Actor(c)

	team, err := h.roster.CreateTeam(&req)
	if err != nil {
		respondRosterError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:id
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	team, err := h.roster.GetTeam(id)
	if err != nil {
		respondRosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// ListTeams handles GET /teams
func (h *TeamHandler) ListTeams(c *gin.Context) {
	activeOnly := c.DefaultQuery("active_only", "true") == "true"

	teams, err := h.roster.ListTeams(activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": teams, "count": len(teams)})
}

// AddMember handles POST /teams/:id/members
func (h *TeamHandler) AddMember(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.TeamID = teamID
	req.Actor = auth.Actor(c)

	member, err := h.roster.AddMember(&req)
	if err != nil {
		respondRosterError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// renameRequest is the body for POST /teams/:id/rename
type renameRequest struct {
	NewName string `json:"new_name" binding:"required"`
}

// RenameTeam handles POST /teams/:id/rename
func (h *TeamHandler) RenameTeam(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	var req renameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.roster.RenameTeam(teamID, req.NewName, auth.Actor(c)); err != nil {
		respondRosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "team renamed", "team_id": teamID, "new_name": req.NewName})
}

// mergeRequest is the body for POST /teams/merge
type mergeRequest struct {
	DuplicateID uuid.UUID `json:"duplicate_id" binding:"required"`
	CanonicalID uuid.UUID `json:"canonical_id" binding:"required"`
}

// MergeTeams handles POST /teams/merge
func (h *TeamHandler) MergeTeams(c *gin.Context) {
	var req mergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.roster.MergeTeams(req.DuplicateID, req.CanonicalID, auth.Actor(c)); err != nil {
		respondRosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "teams merged", "canonical_id": req.CanonicalID})
}

// DeactivateTeam handles DELETE /teams/:id
func (h *TeamHandler) DeactivateTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	if err := h.roster.DeactivateTeam(id, auth.Actor(c)); err != nil {
		respondRosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "team deactivated"})
}

// DeactivateMember handles DELETE /members/:id
func (h *TeamHandler) DeactivateMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member ID"})
		return
	}

	if err := h.roster.DeactivateMember(id, auth.Actor(c)); err != nil {
		respondRosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "member deactivated"})
}

// respondRosterError maps service errors onto HTTP status codes
func respondRosterError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrTeamInactive),
		errors.Is(err, apperrors.ErrLeaderAlreadySet),
		errors.Is(err, apperrors.ErrSelfMerge):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrScoreDrift):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
