package models

import (
	"time"

	"github.com/google/uuid"
)

// BonusTarget is the grain a bonus is awarded at
type BonusTarget string

const (
	BonusTargetTeam   BonusTarget = "team"
	BonusTargetMember BonusTarget = "member"
	BonusTargetCoach  BonusTarget = "coach"
)

// BonusPoint is a manually awarded point delta. Revocation is soft so the
// audit trail keeps the original award.
type BonusPoint struct {
	BaseModel
	TargetKind BonusTarget `json:"target_kind" gorm:"type:varchar(20);not null;index" validate:"required,oneof=team member coach"`
	TargetID   uuid.UUID   `json:"target_id" gorm:"type:uuid;not null;index" validate:"required"`
	Points     int         `json:"points" gorm:"not null" validate:"required"`
	Reason     string      `json:"reason" gorm:"not null;size:500" validate:"required,max=500"`
	AwardedBy  string      `json:"awarded_by" gorm:"not null;size:80" validate:"required,max=80"`
	AwardedAt  time.Time   `json:"awarded_at"`
	IsActive   bool        `json:"is_active" gorm:"not null;default:true;index"`
}

// TableName returns the table name for BonusPoint
func (BonusPoint) TableName() string {
	return "bonus_points"
}
