package repository

import (
	"hackathon-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetActiveByName(name string) (*models.Team, error)
	GetAll(activeOnly bool) ([]models.Team, error)
	Update(team *models.Team) error
	UpdateFields(id uuid.UUID, updates map[string]interface{}) error
	SetActive(id uuid.UUID, active bool) error
}

// MemberRepositoryInterface defines the interface for member repository operations
type MemberRepositoryInterface interface {
	Create(member *models.Member) error
	GetByID(id uuid.UUID) (*models.Member, error)
	GetByTeamID(teamID uuid.UUID, activeOnly bool) ([]models.Member, error)
	GetAll(activeOnly bool) ([]models.Member, error)
	Update(member *models.Member) error
	SetActive(id uuid.UUID, active bool) error
	ReassignTeam(fromTeamID, toTeamID uuid.UUID) error
	CountActiveLeaders(teamID uuid.UUID) (int64, error)
}

// CoachRepositoryInterface defines the interface for coach repository operations
type CoachRepositoryInterface interface {
	Create(coach *models.Coach) error
	GetByID(id uuid.UUID) (*models.Coach, error)
	GetActiveByName(name string) (*models.Coach, error)
	GetAll(activeOnly bool) ([]models.Coach, error)
	Update(coach *models.Coach) error
	SetActive(id uuid.UUID, active bool) error
}

// EventRepositoryInterface defines the interface for event repository operations
type EventRepositoryInterface interface {
	Create(event *models.Event) error
	GetByID(id uuid.UUID) (*models.Event, error)
	GetActiveByName(name string) (*models.Event, error)
	GetAll(activeOnly bool) ([]models.Event, error)
	Update(event *models.Event) error
	SetActive(id uuid.UUID, active bool) error
}

// AttendanceRepositoryInterface defines the interface for attendance repository operations
type AttendanceRepositoryInterface interface {
	Create(record *models.AttendanceRecord) error
	CreateBatch(records []*models.AttendanceRecord) error
	Update(record *models.AttendanceRecord) error
	GetByEventAndMember(eventID, memberID uuid.UUID) (*models.AttendanceRecord, error)
	GetByEventAndCoach(eventID, coachID uuid.UUID) (*models.AttendanceRecord, error)
	ListByMembers(memberIDs []uuid.UUID) ([]models.AttendanceRecord, error)
	ListByEventAndMembers(eventID uuid.UUID, memberIDs []uuid.UUID) ([]models.AttendanceRecord, error)
	ListMemberRecords() ([]models.AttendanceRecord, error)
	ListCoachRecords() ([]models.AttendanceRecord, error)
	DeleteForEventAndMembers(eventID uuid.UUID, memberIDs []uuid.UUID, sources []models.AttendanceSource) error
	RepointMembers(oldToNew map[uuid.UUID]uuid.UUID) error
}

// BonusRepositoryInterface defines the interface for bonus point repository operations
type BonusRepositoryInterface interface {
	Create(bonus *models.BonusPoint) error
	GetByID(id uuid.UUID) (*models.BonusPoint, error)
	ListActive() ([]models.BonusPoint, error)
	ListActiveForTarget(kind models.BonusTarget, targetID uuid.UUID) ([]models.BonusPoint, error)
	SumActiveForTarget(kind models.BonusTarget, targetID uuid.UUID) (int64, error)
	Revoke(id uuid.UUID, actor string) error
	RepointTeam(fromTeamID, toTeamID uuid.UUID) error
}

// AuditRepositoryInterface defines the interface for the append-only audit trail
type AuditRepositoryInterface interface {
	Append(entry *models.AuditLog) error
	ListForRecord(recordID uuid.UUID) ([]models.AuditLog, error)
}
