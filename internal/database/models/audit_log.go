package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditAction identifies the kind of change an audit entry records
type AuditAction string

const (
	AuditActionRename     AuditAction = "rename"
	AuditActionMerge      AuditAction = "merge"
	AuditActionBonus      AuditAction = "bonus"
	AuditActionReconcile  AuditAction = "reconcile"
	AuditActionOverride   AuditAction = "override"
	AuditActionImport     AuditAction = "import"
	AuditActionDeactivate AuditAction = "deactivate"
)

// AuditLog is an append-only trail of mutations. Rows are never updated or
// deleted; rollback tooling reads old_values.
type AuditLog struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EntityTable string          `json:"table_name" gorm:"column:table_name;not null;size:80;index"`
	RecordID    uuid.UUID       `json:"record_id" gorm:"type:uuid;not null;index"`
	Action      AuditAction     `json:"action" gorm:"type:varchar(30);not null"`
	OldValues   json.RawMessage `json:"old_values,omitempty" gorm:"type:jsonb"`
	NewValues   json.RawMessage `json:"new_values,omitempty" gorm:"type:jsonb"`
	ChangedBy   string          `json:"changed_by" gorm:"size:80"`
	ChangedAt   time.Time       `json:"changed_at"`
}

// TableName returns the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_log"
}
