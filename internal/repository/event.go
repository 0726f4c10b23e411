package repository

import (
	"hackathon-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventRepository handles database operations for events
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetActiveByName retrieves an active event by name
func (r *EventRepository) GetActiveByName(name string) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, "name = ? AND is_active = ?", name, true).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetAll retrieves all events ordered by date, optionally only active ones
func (r *EventRepository) GetAll(activeOnly bool) ([]models.Event, error) {
	var events []models.Event
	query := r.db.Order("event_date DESC, name")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&events).Error
	return events, err
}

// Update updates an event
func (r *EventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// SetActive flips the active flag (soft delete / restore)
func (r *EventRepository) SetActive(id uuid.UUID, active bool) error {
	return r.db.Model(&models.Event{}).Where("id = ?", id).Update("is_active", active).Error
}
