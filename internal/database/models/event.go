package models

import (
	"time"
)

// EventType classifies a session
type EventType string

const (
	EventTypeTechSharing EventType = "tech_sharing"
	EventTypeWorkshop    EventType = "workshop"
	EventTypeCheckpoint  EventType = "checkpoint"
)

// Event represents a scored session. Point values are fixed per event so a
// later rate change never rewrites history.
type Event struct {
	BaseModel
	Name                      string    `json:"name" gorm:"not null;size:200;uniqueIndex:idx_events_name_active,where:is_active" validate:"required,min=1,max=200"`
	Description               string    `json:"description" gorm:"size:500"`
	EventType                 EventType `json:"event_type" gorm:"type:varchar(50);not null;default:'tech_sharing'"`
	EventDate                 time.Time `json:"event_date" gorm:"type:date;not null;index" validate:"required"`
	MemberPointsPerAttendance int       `json:"member_points_per_attendance" gorm:"not null;default:1" validate:"gte=0"`
	CoachPointsPerAttendance  int       `json:"coach_points_per_attendance" gorm:"not null;default:2" validate:"gte=0"`
	IsActive                  bool      `json:"is_active" gorm:"not null;default:true;index"`

	// Relationships
	AttendanceRecords []AttendanceRecord `json:"attendance_records,omitempty" gorm:"foreignKey:EventID"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}
