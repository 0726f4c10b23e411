package repository

import (
	"hackathon-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetActiveByName retrieves an active team by its display name
func (r *TeamRepository) GetActiveByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name = ? AND is_active = ?", name, true).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams, optionally only active ones
func (r *TeamRepository) GetAll(activeOnly bool) ([]models.Team, error) {
	var teams []models.Team
	query := r.db.Order("name")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&teams).Error
	return teams, err
}

// GetWithMembers retrieves a team with all its members
func (r *TeamRepository) GetWithMembers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members").Preload("Coach").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// UpdateFields updates selected columns only. Used by rename so unrelated
// fields are never rewritten.
func (r *TeamRepository) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Team{}).Where("id = ?", id).Updates(updates).Error
}

// SetActive flips the active flag (soft delete / restore)
func (r *TeamRepository) SetActive(id uuid.UUID, active bool) error {
	return r.db.Model(&models.Team{}).Where("id = ?", id).Update("is_active", active).Error
}

// CountActiveByCoach returns the number of active teams linked to a coach
func (r *TeamRepository) CountActiveByCoach(coachID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Team{}).
		Where("coach_id = ? AND is_active = ?", coachID, true).
		Count(&count).Error
	return count, err
}
