package repository

import (
	"hackathon-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CoachRepository handles database operations for coaches
type CoachRepository struct {
	db *gorm.DB
}

// NewCoachRepository creates a new coach repository
func NewCoachRepository(db *gorm.DB) *CoachRepository {
	return &CoachRepository{db: db}
}

// Create creates a new coach
func (r *CoachRepository) Create(coach *models.Coach) error {
	return r.db.Create(coach).Error
}

// GetByID retrieves a coach by ID
func (r *CoachRepository) GetByID(id uuid.UUID) (*models.Coach, error) {
	var coach models.Coach
	err := r.db.First(&coach, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

// GetActiveByName retrieves an active coach by name
func (r *CoachRepository) GetActiveByName(name string) (*models.Coach, error) {
	var coach models.Coach
	err := r.db.First(&coach, "name = ? AND is_active = ?", name, true).Error
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

// GetAll retrieves all coaches, optionally only active ones
func (r *CoachRepository) GetAll(activeOnly bool) ([]models.Coach, error) {
	var coaches []models.Coach
	query := r.db.Order("name")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&coaches).Error
	return coaches, err
}

// Update updates a coach
func (r *CoachRepository) Update(coach *models.Coach) error {
	return r.db.Save(coach).Error
}

// SetActive flips the active flag (soft delete / restore)
func (r *CoachRepository) SetActive(id uuid.UUID, active bool) error {
	return r.db.Model(&models.Coach{}).Where("id = ?", id).Update("is_active", active).Error
}
