package testutils

import (
	"fmt"
	"time"

	"hackathon-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles every entity factory for one test suite
type FactorySet struct {
	Team       *TeamFactory
	Member     *MemberFactory
	Coach      *CoachFactory
	Event      *EventFactory
	Attendance *AttendanceFactory
	Bonus      *BonusFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:       NewTeamFactory(),
		Member:     NewMemberFactory(),
		Coach:      NewCoachFactory(),
		Event:      NewEventFactory(),
		Attendance: NewAttendanceFactory(),
		Bonus:      NewBonusFactory(),
	}
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       "Test Team " + id.String()[:6],
		Department: "Engineering",
		RosterSize: 5,
		IsActive:   true,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithCoach sets the coach ID for the team
func (f *TeamFactory) WithCoach(coachID uuid.UUID) *models.Team {
	team := f.Create()
	team.CoachID = &coachID
	return team
}

// WithRosterSize sets the expected roster size for the team
func (f *TeamFactory) WithRosterSize(size int) *models.Team {
	team := f.Create()
	team.RosterSize = size
	return team
}

// MemberFactory provides methods to create test Member data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test Member with default values
func (f *MemberFactory) Create() *models.Member {
	id := uuid.New()
	return &models.Member{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       "Member " + id.String()[:6],
		Department: "Engineering",
		TeamID:     uuid.New(),
		IsLeader:   false,
		IsActive:   true,
	}
}

// WithTeam sets the team ID for the member
func (f *MemberFactory) WithTeam(teamID uuid.UUID) *models.Member {
	member := f.Create()
	member.TeamID = teamID
	return member
}

// WithName sets a custom name for the member
func (f *MemberFactory) WithName(name string) *models.Member {
	member := f.Create()
	member.Name = name
	return member
}

// AsLeader marks the member as the team leader
func (f *MemberFactory) AsLeader() *models.Member {
	member := f.Create()
	member.IsLeader = true
	return member
}

// CreateRoster creates n members on one team, named in sort-stable order
func (f *MemberFactory) CreateRoster(teamID uuid.UUID, n int) []*models.Member {
	roster := make([]*models.Member, 0, n)
	for i := 0; i < n; i++ {
		m := f.WithTeam(teamID)
		m.Name = fmt.Sprintf("Member %02d", i)
		roster = append(roster, m)
	}
	return roster
}

// CoachFactory provides methods to create test Coach data
type CoachFactory struct{}

// NewCoachFactory creates a new CoachFactory
func NewCoachFactory() *CoachFactory {
	return &CoachFactory{}
}

// Create creates a test Coach with default values
func (f *CoachFactory) Create() *models.Coach {
	id := uuid.New()
	return &models.Coach{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       "Coach " + id.String()[:6],
		Department: "Engineering",
		IsActive:   true,
	}
}

// WithName sets a custom name for the coach
func (f *CoachFactory) WithName(name string) *models.Coach {
	coach := f.Create()
	coach.Name = name
	return coach
}

// EventFactory provides methods to create test Event data
type EventFactory struct{}

// NewEventFactory creates a new EventFactory
func NewEventFactory() *EventFactory {
	return &EventFactory{}
}

// Create creates a test Event with default values
func (f *EventFactory) Create() *models.Event {
	id := uuid.New()
	return &models.Event{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:                      "Test Event " + id.String()[:6],
		EventType:                 models.EventTypeTechSharing,
		EventDate:                 time.Now(),
		MemberPointsPerAttendance: 1,
		CoachPointsPerAttendance:  2,
		IsActive:                  true,
	}
}

// WithName sets a custom name for the event
func (f *EventFactory) WithName(name string) *models.Event {
	event := f.Create()
	event.Name = name
	return event
}

// WithPoints sets the per-attendance point values
func (f *EventFactory) WithPoints(memberPoints, coachPoints int) *models.Event {
	event := f.Create()
	event.MemberPointsPerAttendance = memberPoints
	event.CoachPointsPerAttendance = coachPoints
	return event
}

// AttendanceFactory provides methods to create test AttendanceRecord data
type AttendanceFactory struct{}

// NewAttendanceFactory creates a new AttendanceFactory
func NewAttendanceFactory() *AttendanceFactory {
	return &AttendanceFactory{}
}

// ForMember creates an attended member record
func (f *AttendanceFactory) ForMember(eventID, memberID uuid.UUID, points int) *models.AttendanceRecord {
	return &models.AttendanceRecord{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EventID:      eventID,
		MemberID:     &memberID,
		Attended:     true,
		PointsEarned: points,
		Source:       models.SourceManual,
		RecordedBy:   "factory",
		RecordedAt:   time.Now(),
	}
}

// ForCoach creates an attended coach record
func (f *AttendanceFactory) ForCoach(eventID, coachID uuid.UUID, points int) *models.AttendanceRecord {
	return &models.AttendanceRecord{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EventID:      eventID,
		CoachID:      &coachID,
		Attended:     true,
		PointsEarned: points,
		Source:       models.SourceManual,
		RecordedBy:   "factory",
		RecordedAt:   time.Now(),
	}
}

// BonusFactory provides methods to create test BonusPoint data
type BonusFactory struct{}

// NewBonusFactory creates a new BonusFactory
func NewBonusFactory() *BonusFactory {
	return &BonusFactory{}
}

// ForTarget creates an active bonus for the given target
func (f *BonusFactory) ForTarget(kind models.BonusTarget, targetID uuid.UUID, points int) *models.BonusPoint {
	return &models.BonusPoint{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TargetKind: kind,
		TargetID:   targetID,
		Points:     points,
		Reason:     "test bonus",
		AwardedBy:  "factory",
		AwardedAt:  time.Now(),
		IsActive:   true,
	}
}
