package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hackathon-dashboard-backend/internal/database/models"
	apperrors "hackathon-dashboard-backend/internal/errors"
	"hackathon-dashboard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BonusService handles awarding and revoking bonus points
type BonusService struct {
	db        *gorm.DB
	validator *validator.Validate
}

// NewBonusService creates a new bonus service
func NewBonusService(db *gorm.DB, validator *validator.Validate) *BonusService {
	return &BonusService{db: db, validator: validator}
}

// AwardBonusRequest represents the request to award bonus points
type AwardBonusRequest struct {
	TargetKind models.BonusTarget `json:"target_kind" validate:"required,oneof=team member coach"`
	TargetID   uuid.UUID          `json:"target_id" validate:"required"`
	Points     int                `json:"points" validate:"required"`
	Reason     string             `json:"reason" validate:"required,max=500"`
	Actor      string             `json:"-"`
}

// Award creates a bonus award after verifying the target resolves to an
// active entity. Returns the target's new active bonus total.
func (s *BonusService) Award(req *AwardBonusRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, fmt.Errorf("validation failed: %w", err)
	}

	var total int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		bonuses := repository.NewBonusRepository(tx)
		audit := repository.NewAuditRepository(tx)

		if err := s.checkTarget(tx, req.TargetKind, req.TargetID); err != nil {
			return err
		}

		bonus := &models.BonusPoint{
			TargetKind: req.TargetKind,
			TargetID:   req.TargetID,
			Points:     req.Points,
			Reason:     req.Reason,
			AwardedBy:  req.Actor,
			AwardedAt:  time.Now(),
			IsActive:   true,
		}
		bonus.CreatedBy = req.Actor
		if err := bonuses.Create(bonus); err != nil {
			return fmt.Errorf("create bonus: %w", err)
		}

		var err error
		total, err = bonuses.SumActiveForTarget(req.TargetKind, req.TargetID)
		if err != nil {
			return fmt.Errorf("sum bonuses: %w", err)
		}

		newValues, _ := json.Marshal(bonus)
		return audit.Append(&models.AuditLog{
			EntityTable: "bonus_points",
			RecordID:    bonus.ID,
			Action:      models.AuditActionBonus,
			NewValues:   newValues,
			ChangedBy:   req.Actor,
		})
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Revoke soft-revokes an award; the row stays for the audit trail
func (s *BonusService) Revoke(id uuid.UUID, actor string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		bonuses := repository.NewBonusRepository(tx)
		audit := repository.NewAuditRepository(tx)

		bonus, err := bonuses.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrBonusNotFound
			}
			return err
		}
		if err := bonuses.Revoke(bonus.ID, actor); err != nil {
			return fmt.Errorf("revoke bonus: %w", err)
		}

		oldValues, _ := json.Marshal(map[string]bool{"is_active": true})
		newValues, _ := json.Marshal(map[string]bool{"is_active": false})
		return audit.Append(&models.AuditLog{
			EntityTable: "bonus_points",
			RecordID:    bonus.ID,
			Action:      models.AuditActionBonus,
			OldValues:   oldValues,
			NewValues:   newValues,
			ChangedBy:   actor,
		})
	})
}

// checkTarget verifies the bonus target resolves to an active entity
func (s *BonusService) checkTarget(tx *gorm.DB, kind models.BonusTarget, id uuid.UUID) error {
	switch kind {
	case models.BonusTargetTeam:
		team, err := repository.NewTeamRepository(tx).GetByID(id)
		if err != nil || !team.IsActive {
			return apperrors.ErrInvalidBonusTarget
		}
	case models.BonusTargetMember:
		member, err := repository.NewMemberRepository(tx).GetByID(id)
		if err != nil || !member.IsActive {
			return apperrors.ErrInvalidBonusTarget
		}
	case models.BonusTargetCoach:
		coach, err := repository.NewCoachRepository(tx).GetByID(id)
		if err != nil || !coach.IsActive {
			return apperrors.ErrInvalidBonusTarget
		}
	default:
		return apperrors.ErrInvalidBonusTarget
	}
	return nil
}
