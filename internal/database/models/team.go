package models

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a hackathon team. Names are display values and may change
// through a rename; the UUID is the stable identity every child row hangs off.
type Team struct {
	BaseModel
	Name             string     `json:"name" gorm:"not null;size:200;uniqueIndex:idx_teams_name_active,where:is_active" validate:"required,min=1,max=200"`
	Department       string     `json:"department" gorm:"size:200"`
	RosterSize       int        `json:"roster_size" gorm:"not null;default:0" validate:"gte=0"` // expected member count from registration
	CoachID          *uuid.UUID `json:"coach_id,omitempty" gorm:"type:uuid;index"`
	RegistrationDate *time.Time `json:"registration_date,omitempty" gorm:"type:date"`
	IsActive         bool       `json:"is_active" gorm:"not null;default:true;index"`

	// Relationships
	Coach   *Coach   `json:"coach,omitempty" gorm:"foreignKey:CoachID"`
	Members []Member `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
