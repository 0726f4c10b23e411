package service

import (
	"errors"
	"fmt"
	"time"

	"hackathon-dashboard-backend/internal/database/models"
	apperrors "hackathon-dashboard-backend/internal/errors"
	"hackathon-dashboard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventService handles business logic for events
type EventService struct {
	db        *gorm.DB
	validator *validator.Validate
}

// NewEventService creates a new event service
func NewEventService(db *gorm.DB, validator *validator.Validate) *EventService {
	return &EventService{db: db, validator: validator}
}

// CreateEventRequest represents the request to create an event
type CreateEventRequest struct {
	Name         string           `json:"name" validate:"required,min=1,max=200"`
	Description  string           `json:"description" validate:"max=500"`
	EventType    models.EventType `json:"event_type"`
	EventDate    time.Time        `json:"event_date" validate:"required"`
	MemberPoints int              `json:"member_points_per_attendance" validate:"gte=0"`
	CoachPoints  int              `json:"coach_points_per_attendance" validate:"gte=0"`
	Actor        string           `json:"-"`
}

// Create creates a new event
func (s *EventService) Create(req *CreateEventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var event *models.Event
	err := s.db.Transaction(func(tx *gorm.DB) error {
		events := repository.NewEventRepository(tx)

		if existing, err := events.GetActiveByName(req.Name); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check existing event: %w", err)
		} else if existing != nil {
			return apperrors.ErrEventExists
		}

		eventType := req.EventType
		if eventType == "" {
			eventType = models.EventTypeTechSharing
		}

		event = &models.Event{
			Name:                      req.Name,
			Description:               req.Description,
			EventType:                 eventType,
			EventDate:                 req.EventDate,
			MemberPointsPerAttendance: req.MemberPoints,
			CoachPointsPerAttendance:  req.CoachPoints,
			IsActive:                  true,
		}
		event.CreatedBy = req.Actor
		return events.Create(event)
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// GetByID retrieves an event by ID
func (s *EventService) GetByID(id uuid.UUID) (*models.Event, error) {
	event, err := repository.NewEventRepository(s.db).GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// List retrieves all events
func (s *EventService) List(activeOnly bool) ([]models.Event, error) {
	return repository.NewEventRepository(s.db).GetAll(activeOnly)
}

// Deactivate soft-deletes an event
func (s *EventService) Deactivate(id uuid.UUID, actor string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return repository.NewEventRepository(tx).SetActive(id, false)
	})
}
