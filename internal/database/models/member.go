package models

import (
	"github.com/google/uuid"
)

// Member represents one person on a team roster. A member may share a name
// with a coach; that is a dual role, not a duplicate.
type Member struct {
	BaseModel
	Name       string    `json:"name" gorm:"not null;size:200;uniqueIndex:idx_members_name_team_active,where:is_active" validate:"required,min=1,max=200"`
	Department string    `json:"department" gorm:"size:200"`
	TeamID     uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_members_name_team_active,where:is_active" validate:"required"`
	IsLeader   bool      `json:"is_leader" gorm:"not null;default:false"`
	IsActive   bool      `json:"is_active" gorm:"not null;default:true;index"`

	// Relationships
	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Member
func (Member) TableName() string {
	return "members"
}
