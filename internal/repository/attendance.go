package repository

import (
	"errors"

	"hackathon-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Create creates a single attendance record
func (r *AttendanceRepository) Create(record *models.AttendanceRecord) error {
	return r.db.Create(record).Error
}

// CreateBatch inserts attendance records in one statement
func (r *AttendanceRepository) CreateBatch(records []*models.AttendanceRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.Create(records).Error
}

// Update updates an attendance record
func (r *AttendanceRepository) Update(record *models.AttendanceRecord) error {
	return r.db.Save(record).Error
}

// GetByEventAndMember retrieves the record for one (event, member) pair, nil if absent
func (r *AttendanceRepository) GetByEventAndMember(eventID, memberID uuid.UUID) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	err := r.db.First(&record, "event_id = ? AND member_id = ?", eventID, memberID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByEventAndCoach retrieves the record for one (event, coach) pair, nil if absent
func (r *AttendanceRepository) GetByEventAndCoach(eventID, coachID uuid.UUID) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	err := r.db.First(&record, "event_id = ? AND coach_id = ?", eventID, coachID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByMembers retrieves all records for the given member IDs
func (r *AttendanceRepository) ListByMembers(memberIDs []uuid.UUID) ([]models.AttendanceRecord, error) {
	if len(memberIDs) == 0 {
		return nil, nil
	}
	var records []models.AttendanceRecord
	err := r.db.Where("member_id IN ?", memberIDs).Find(&records).Error
	return records, err
}

// ListByEventAndMembers retrieves records for one event restricted to the given members
func (r *AttendanceRepository) ListByEventAndMembers(eventID uuid.UUID, memberIDs []uuid.UUID) ([]models.AttendanceRecord, error) {
	if len(memberIDs) == 0 {
		return nil, nil
	}
	var records []models.AttendanceRecord
	err := r.db.Where("event_id = ? AND member_id IN ?", eventID, memberIDs).Find(&records).Error
	return records, err
}

// ListMemberRecords retrieves every member-grain attendance record
func (r *AttendanceRepository) ListMemberRecords() ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	err := r.db.Where("member_id IS NOT NULL").Find(&records).Error
	return records, err
}

// ListCoachRecords retrieves every coach-grain attendance record
func (r *AttendanceRepository) ListCoachRecords() ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	err := r.db.Where("coach_id IS NOT NULL").Find(&records).Error
	return records, err
}

// DeleteForEventAndMembers hard-deletes records for one (event, member set)
// restricted to the given sources. The reconciliation engine uses this to
// replace rotation rows while never touching override ones.
func (r *AttendanceRepository) DeleteForEventAndMembers(eventID uuid.UUID, memberIDs []uuid.UUID, sources []models.AttendanceSource) error {
	if len(memberIDs) == 0 {
		return nil
	}
	query := r.db.Where("event_id = ? AND member_id IN ?", eventID, memberIDs)
	if len(sources) > 0 {
		query = query.Where("source IN ?", sources)
	}
	return query.Delete(&models.AttendanceRecord{}).Error
}

// RepointMembers rewrites member references record by record. Used by team
// merge where each duplicate-roster member maps to its canonical twin. When
// the twin already holds a row for the same event the duplicate's points fold
// into it, keeping one row per (event, member) pair.
func (r *AttendanceRepository) RepointMembers(oldToNew map[uuid.UUID]uuid.UUID) error {
	for oldID, newID := range oldToNew {
		var records []models.AttendanceRecord
		if err := r.db.Where("member_id = ?", oldID).Find(&records).Error; err != nil {
			return err
		}
		for i := range records {
			rec := records[i]
			existing, err := r.GetByEventAndMember(rec.EventID, newID)
			if err != nil {
				return err
			}
			if existing == nil {
				if err := r.db.Model(&models.AttendanceRecord{}).
					Where("id = ?", rec.ID).
					Update("member_id", newID).Error; err != nil {
					return err
				}
				continue
			}
			existing.PointsEarned += rec.PointsEarned
			existing.Attended = existing.Attended || rec.Attended
			if err := r.db.Save(existing).Error; err != nil {
				return err
			}
			if err := r.db.Delete(&models.AttendanceRecord{}, "id = ?", rec.ID).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
