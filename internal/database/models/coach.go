package models

// Coach represents a coach or consultant. A single coach may be linked from
// several teams; attendance is always recorded against the coach, never the team.
type Coach struct {
	BaseModel
	Name       string `json:"name" gorm:"not null;size:200;uniqueIndex:idx_coaches_name_active,where:is_active" validate:"required,min=1,max=200"`
	Department string `json:"department" gorm:"size:200"`
	IsActive   bool   `json:"is_active" gorm:"not null;default:true;index"`

	// Relationships
	Teams []Team `json:"teams,omitempty" gorm:"foreignKey:CoachID"`
}

// TableName returns the table name for Coach
func (Coach) TableName() string {
	return "coaches"
}
