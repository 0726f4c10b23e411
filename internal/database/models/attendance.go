package models

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceSource records how an attendance row came to exist. Rotation rows
// may be deleted and re-derived; override and manual rows never are.
type AttendanceSource string

const (
	SourceRotation AttendanceSource = "rotation"
	SourceOverride AttendanceSource = "override"
	SourceManual   AttendanceSource = "manual"
)

// SessionType distinguishes day/evening sessions of the same event
type SessionType string

const (
	SessionDay     SessionType = "day"
	SessionEvening SessionType = "evening"
)

// AttendanceRecord links an event to exactly one of a member or a coach.
// The check constraint mirrors the service-level guard so a bad row can never
// land even through a raw write.
type AttendanceRecord struct {
	BaseModel
	EventID      uuid.UUID        `json:"event_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_attendance_event_member,where:member_id IS NOT NULL;uniqueIndex:idx_attendance_event_coach,where:coach_id IS NOT NULL" validate:"required"`
	MemberID     *uuid.UUID       `json:"member_id,omitempty" gorm:"type:uuid;index;uniqueIndex:idx_attendance_event_member,where:member_id IS NOT NULL"`
	CoachID      *uuid.UUID       `json:"coach_id,omitempty" gorm:"type:uuid;index;uniqueIndex:idx_attendance_event_coach,where:coach_id IS NOT NULL"`
	Attended     bool             `json:"attended" gorm:"not null;default:true"`
	PointsEarned int              `json:"points_earned" gorm:"not null;default:0" validate:"gte=0"`
	SessionType  SessionType      `json:"session_type" gorm:"type:varchar(20);not null;default:'day'"`
	Source       AttendanceSource `json:"source" gorm:"type:varchar(20);not null;default:'manual';index"`
	Notes        string           `json:"notes" gorm:"size:500"`
	RecordedBy   string           `json:"recorded_by" gorm:"size:80"`
	RecordedAt   time.Time        `json:"recorded_at"`

	// Relationships
	Event  Event   `json:"event,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Member *Member `json:"member,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	Coach  *Coach  `json:"coach,omitempty" gorm:"foreignKey:CoachID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AttendanceRecord
func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// IsValid reports whether the record references exactly one of member/coach
func (a *AttendanceRecord) IsValid() bool {
	return (a.MemberID != nil) != (a.CoachID != nil)
}
