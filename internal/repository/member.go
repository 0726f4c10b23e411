package repository

import (
	"hackathon-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRepository handles database operations for members
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new member
func (r *MemberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a member by ID
func (r *MemberRepository) GetByID(id uuid.UUID) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByTeamID retrieves members of a team ordered by name
func (r *MemberRepository) GetByTeamID(teamID uuid.UUID, activeOnly bool) ([]models.Member, error) {
	var members []models.Member
	query := r.db.Where("team_id = ?", teamID).Order("name")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&members).Error
	return members, err
}

// GetAll retrieves all members, optionally only active ones
func (r *MemberRepository) GetAll(activeOnly bool) ([]models.Member, error) {
	var members []models.Member
	query := r.db.Order("name")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&members).Error
	return members, err
}

// Update updates a member
func (r *MemberRepository) Update(member *models.Member) error {
	return r.db.Save(member).Error
}

// SetActive flips the active flag (soft delete / restore)
func (r *MemberRepository) SetActive(id uuid.UUID, active bool) error {
	return r.db.Model(&models.Member{}).Where("id = ?", id).Update("is_active", active).Error
}

// ReassignTeam moves every member of one team to another. Used by merge.
func (r *MemberRepository) ReassignTeam(fromTeamID, toTeamID uuid.UUID) error {
	return r.db.Model(&models.Member{}).
		Where("team_id = ?", fromTeamID).
		Update("team_id", toTeamID).Error
}

// CountActiveLeaders returns the number of active leaders on a team
func (r *MemberRepository) CountActiveLeaders(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Member{}).
		Where("team_id = ? AND is_leader = ? AND is_active = ?", teamID, true, true).
		Count(&count).Error
	return count, err
}
