package repository

import (
	"hackathon-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BonusRepository handles database operations for bonus points
type BonusRepository struct {
	db *gorm.DB
}

// NewBonusRepository creates a new bonus point repository
func NewBonusRepository(db *gorm.DB) *BonusRepository {
	return &BonusRepository{db: db}
}

// Create creates a new bonus point award
func (r *BonusRepository) Create(bonus *models.BonusPoint) error {
	return r.db.Create(bonus).Error
}

// GetByID retrieves a bonus point award by ID
func (r *BonusRepository) GetByID(id uuid.UUID) (*models.BonusPoint, error) {
	var bonus models.BonusPoint
	err := r.db.First(&bonus, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &bonus, nil
}

// ListActive retrieves all active bonus awards
func (r *BonusRepository) ListActive() ([]models.BonusPoint, error) {
	var bonuses []models.BonusPoint
	err := r.db.Where("is_active = ?", true).Find(&bonuses).Error
	return bonuses, err
}

// ListActiveForTarget retrieves active awards for one target
func (r *BonusRepository) ListActiveForTarget(kind models.BonusTarget, targetID uuid.UUID) ([]models.BonusPoint, error) {
	var bonuses []models.BonusPoint
	err := r.db.Where("target_kind = ? AND target_id = ? AND is_active = ?", kind, targetID, true).
		Find(&bonuses).Error
	return bonuses, err
}

// SumActiveForTarget sums active award points for one target
func (r *BonusRepository) SumActiveForTarget(kind models.BonusTarget, targetID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.BonusPoint{}).
		Where("target_kind = ? AND target_id = ? AND is_active = ?", kind, targetID, true).
		Select("COALESCE(SUM(points), 0)").
		Scan(&total).Error
	return total, err
}

// Revoke soft-revokes an award, keeping the row for the audit trail
func (r *BonusRepository) Revoke(id uuid.UUID, actor string) error {
	return r.db.Model(&models.BonusPoint{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": false, "updated_by": actor}).Error
}

// RepointTeam moves team-grain awards between teams. Used by merge.
func (r *BonusRepository) RepointTeam(fromTeamID, toTeamID uuid.UUID) error {
	return r.db.Model(&models.BonusPoint{}).
		Where("target_kind = ? AND target_id = ?", models.BonusTargetTeam, fromTeamID).
		Update("target_id", toTeamID).Error
}
