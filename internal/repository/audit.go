package repository

import (
	"time"

	"hackathon-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditRepository handles the append-only audit trail
type AuditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Append writes one audit entry. Entries are never updated.
func (r *AuditRepository) Append(entry *models.AuditLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.ChangedAt.IsZero() {
		entry.ChangedAt = time.Now()
	}
	return r.db.Create(entry).Error
}

// ListForRecord retrieves the trail for one record, oldest first
func (r *AuditRepository) ListForRecord(recordID uuid.UUID) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := r.db.Where("record_id = ?", recordID).Order("changed_at").Find(&entries).Error
	return entries, err
}
