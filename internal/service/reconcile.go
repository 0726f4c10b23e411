package service

import (
	"encoding/json"
	"fmt"
	"time"

	"hackathon-dashboard-backend/internal/database/models"
	apperrors "hackathon-dashboard-backend/internal/errors"
	"hackathon-dashboard-backend/internal/logger"
	"hackathon-dashboard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReconciliationService turns aggregate per-team attendance counts into
// per-person attendance rows. The general rotation policy replaces the pile
// of one-off per-team repair scripts this system used to accumulate; verified
// ground truth enters through overrides, which always win.
type ReconciliationService struct {
	db        *gorm.DB
	validator *validator.Validate
	log       *logger.Logger
}

// NewReconciliationService creates a new reconciliation service
func NewReconciliationService(db *gorm.DB, validator *validator.Validate) *ReconciliationService {
	return &ReconciliationService{db: db, validator: validator, log: logger.New()}
}

// ReconcileRequest carries one aggregate attendance signal
type ReconcileRequest struct {
	TeamID          uuid.UUID `json:"team_id" validate:"required"`
	EventID         uuid.UUID `json:"event_id" validate:"required"`
	MembersAttended int       `json:"members_attended" validate:"gte=0"`
	CoachesAttended int       `json:"coaches_attended" validate:"gte=0"`
	Actor           string    `json:"-"`
}

// ReconcileResult reports what one reconciliation run wrote
type ReconcileResult struct {
	TeamID          uuid.UUID   `json:"team_id"`
	EventID         uuid.UUID   `json:"event_id"`
	RosterSize      int         `json:"roster_size"`
	Offset          int         `json:"offset"`
	AttendeeIDs     []uuid.UUID `json:"attendee_ids"`
	RowsWritten     int         `json:"rows_written"`
	OverrideInPlace bool        `json:"override_in_place"`
	CoachRecorded   bool        `json:"coach_recorded"`
}

// Reconcile derives per-member attendance for one (team, event) pair from an
// aggregate count. The run is transactional and idempotent: it deletes only
// that pair's prior rotation-derived rows before re-inserting, so repeated
// runs converge. Override rows are never replaced.
func (s *ReconciliationService) Reconcile(req *ReconcileRequest) (*ReconcileResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("reconcile_request", err.Error())
	}

	var result *ReconcileResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		teams := repository.NewTeamRepository(tx)
		events := repository.NewEventRepository(tx)
		members := repository.NewMemberRepository(tx)
		attendance := repository.NewAttendanceRepository(tx)
		audit := repository.NewAuditRepository(tx)

		team, err := teams.GetByID(req.TeamID)
		if err != nil {
			return apperrors.ErrTeamNotFound
		}
		if !team.IsActive {
			return apperrors.ErrTeamInactive
		}
		event, err := events.GetByID(req.EventID)
		if err != nil {
			return apperrors.ErrEventNotFound
		}

		roster, err := members.GetByTeamID(team.ID, true)
		if err != nil {
			return fmt.Errorf("load roster: %w", err)
		}
		if len(roster) == 0 {
			return apperrors.ErrEmptyRoster
		}
		if req.MembersAttended > len(roster) {
			return apperrors.NewAmbiguousAttendanceError(team.ID, event.ID,
				fmt.Sprintf("aggregate count %d exceeds roster size %d", req.MembersAttended, len(roster)))
		}

		sorted := SortRoster(roster)
		rosterIDs := memberIDs(sorted)

		result = &ReconcileResult{
			TeamID:     team.ID,
			EventID:    event.ID,
			RosterSize: len(sorted),
		}

		// An override for this pair is verified ground truth; rotation must
		// not touch the member rows.
		hasOverride, err := s.pairHasSource(attendance, event.ID, rosterIDs, models.SourceOverride)
		if err != nil {
			return err
		}

		if hasOverride {
			result.OverrideInPlace = true
		} else {
			seed := RotationSeed(team.ID, event.ID)
			offset := RotationOffset(seed, len(sorted))
			selected := SelectAttendees(sorted, req.MembersAttended, offset)

			// Delete-then-reinsert, restricted to rotation rows for exactly
			// this pair. Unrelated pairs and override rows stay untouched.
			if err := attendance.DeleteForEventAndMembers(event.ID, rosterIDs,
				[]models.AttendanceSource{models.SourceRotation}); err != nil {
				return fmt.Errorf("delete prior rotation rows: %w", err)
			}

			rows := buildRotationRows(sorted, event, selected, req.Actor)
			if err := attendance.CreateBatch(rows); err != nil {
				return fmt.Errorf("insert rotation rows: %w", err)
			}

			result.Offset = offset
			result.RowsWritten = len(rows)
			for _, m := range sorted {
				if selected[m.ID] {
					result.AttendeeIDs = append(result.AttendeeIDs, m.ID)
				}
			}
		}

		// Coach attendance is recorded once per (event, coach) no matter how
		// many teams that coach manages; a second team's aggregate row must
		// not double-count the same person.
		if req.CoachesAttended > 0 && team.CoachID != nil {
			recorded, err := s.recordCoachAttendance(attendance, event, *team.CoachID, req.CoachesAttended, req.Actor)
			if err != nil {
				return err
			}
			result.CoachRecorded = recorded
		}

		newValues, _ := json.Marshal(result)
		return audit.Append(&models.AuditLog{
			EntityTable: "attendance_records",
			RecordID:    team.ID,
			Action:      models.AuditActionReconcile,
			NewValues:   newValues,
			ChangedBy:   req.Actor,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"team_id":  req.TeamID,
		"event_id": req.EventID,
		"attended": req.MembersAttended,
	}).Info("reconciliation run applied")

	return result, nil
}

// OverrideRequest carries a verified named attendee list for one pair
type OverrideRequest struct {
	TeamID        uuid.UUID `json:"team_id" validate:"required"`
	EventID       uuid.UUID `json:"event_id" validate:"required"`
	AttendeeNames []string  `json:"attendee_names"`
	Actor         string    `json:"-"`
}

// ApplyOverride replaces any derived assignment for one (team, event) pair
// with a verified named list. A name that does not resolve against the roster
// aborts the whole override; nothing is half-applied.
func (s *ReconciliationService) ApplyOverride(req *OverrideRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("override_request", err.Error())
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		teams := repository.NewTeamRepository(tx)
		events := repository.NewEventRepository(tx)
		members := repository.NewMemberRepository(tx)
		attendance := repository.NewAttendanceRepository(tx)
		audit := repository.NewAuditRepository(tx)

		team, err := teams.GetByID(req.TeamID)
		if err != nil {
			return apperrors.ErrTeamNotFound
		}
		if !team.IsActive {
			return apperrors.ErrTeamInactive
		}
		event, err := events.GetByID(req.EventID)
		if err != nil {
			return apperrors.ErrEventNotFound
		}
		roster, err := members.GetByTeamID(team.ID, true)
		if err != nil {
			return fmt.Errorf("load roster: %w", err)
		}

		attending := make(map[uuid.UUID]bool, len(req.AttendeeNames))
		for _, name := range req.AttendeeNames {
			res := ResolveName(name, roster, func(m models.Member) string { return m.Name })
			switch res.Status {
			case Resolved:
				attending[res.Match.ID] = true
			case Ambiguous:
				return apperrors.NewAmbiguousAttendanceError(team.ID, event.ID,
					fmt.Sprintf("attendee %q matches multiple roster members", name))
			default:
				return apperrors.NewAmbiguousAttendanceError(team.ID, event.ID,
					fmt.Sprintf("attendee %q is not on the roster", name))
			}
		}

		sorted := SortRoster(roster)
		rosterIDs := memberIDs(sorted)

		// Replace both rotation-derived rows and any earlier override for
		// exactly this pair.
		if err := attendance.DeleteForEventAndMembers(event.ID, rosterIDs,
			[]models.AttendanceSource{models.SourceRotation, models.SourceOverride}); err != nil {
			return fmt.Errorf("delete prior rows: %w", err)
		}

		now := time.Now()
		rows := make([]*models.AttendanceRecord, 0, len(sorted))
		for i := range sorted {
			m := sorted[i]
			attended := attending[m.ID]
			points := 0
			if attended {
				points = event.MemberPointsPerAttendance
			}
			rows = append(rows, &models.AttendanceRecord{
				EventID:      event.ID,
				MemberID:     &m.ID,
				Attended:     attended,
				PointsEarned: points,
				Source:       models.SourceOverride,
				RecordedBy:   req.Actor,
				RecordedAt:   now,
			})
		}
		if err := attendance.CreateBatch(rows); err != nil {
			return fmt.Errorf("insert override rows: %w", err)
		}

		newValues, _ := json.Marshal(map[string]interface{}{
			"event_id":  event.ID,
			"attendees": req.AttendeeNames,
		})
		return audit.Append(&models.AuditLog{
			EntityTable: "attendance_records",
			RecordID:    team.ID,
			Action:      models.AuditActionOverride,
			NewValues:   newValues,
			ChangedBy:   req.Actor,
		})
	})
}

// ClearOverride removes the override rows for one pair so the next
// reconciliation run re-derives rotation attendance.
func (s *ReconciliationService) ClearOverride(teamID, eventID uuid.UUID, actor string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		members := repository.NewMemberRepository(tx)
		attendance := repository.NewAttendanceRepository(tx)
		audit := repository.NewAuditRepository(tx)

		roster, err := members.GetByTeamID(teamID, true)
		if err != nil {
			return fmt.Errorf("load roster: %w", err)
		}
		if err := attendance.DeleteForEventAndMembers(eventID, memberIDs(roster),
			[]models.AttendanceSource{models.SourceOverride}); err != nil {
			return fmt.Errorf("delete override rows: %w", err)
		}

		oldValues, _ := json.Marshal(map[string]interface{}{"event_id": eventID})
		return audit.Append(&models.AuditLog{
			EntityTable: "attendance_records",
			RecordID:    teamID,
			Action:      models.AuditActionOverride,
			OldValues:   oldValues,
			ChangedBy:   actor,
		})
	})
}

// pairHasSource reports whether any row for the pair carries the given source
func (s *ReconciliationService) pairHasSource(attendance *repository.AttendanceRepository, eventID uuid.UUID, rosterIDs []uuid.UUID, source models.AttendanceSource) (bool, error) {
	records, err := attendance.ListByEventAndMembers(eventID, rosterIDs)
	if err != nil {
		return false, err
	}
	for i := range records {
		if records[i].Source == source {
			return true, nil
		}
	}
	return false, nil
}

// recordCoachAttendance upserts the single (event, coach) row. An existing
// manual or override row is authoritative and left alone; a rotation row is
// refreshed so corrected counts converge.
func (s *ReconciliationService) recordCoachAttendance(attendance *repository.AttendanceRepository, event *models.Event, coachID uuid.UUID, sessions int, actor string) (bool, error) {
	existing, err := attendance.GetByEventAndCoach(event.ID, coachID)
	if err != nil {
		return false, err
	}
	points := sessions * event.CoachPointsPerAttendance
	if existing != nil {
		if existing.Source != models.SourceRotation {
			return false, nil
		}
		existing.Attended = true
		existing.PointsEarned = points
		existing.RecordedBy = actor
		existing.RecordedAt = time.Now()
		return true, attendance.Update(existing)
	}
	return true, attendance.Create(&models.AttendanceRecord{
		EventID:      event.ID,
		CoachID:      &coachID,
		Attended:     true,
		PointsEarned: points,
		Source:       models.SourceRotation,
		RecordedBy:   actor,
		RecordedAt:   time.Now(),
	})
}

// buildRotationRows materializes one row per roster member: attendees carry
// the event's member rate, everyone else is present with zero points rather
// than absent from the table.
func buildRotationRows(sortedRoster []models.Member, event *models.Event, selected map[uuid.UUID]bool, actor string) []*models.AttendanceRecord {
	now := time.Now()
	rows := make([]*models.AttendanceRecord, 0, len(sortedRoster))
	for i := range sortedRoster {
		m := sortedRoster[i]
		attended := selected[m.ID]
		points := 0
		if attended {
			points = event.MemberPointsPerAttendance
		}
		rows = append(rows, &models.AttendanceRecord{
			EventID:      event.ID,
			MemberID:     &m.ID,
			Attended:     attended,
			PointsEarned: points,
			Source:       models.SourceRotation,
			RecordedBy:   actor,
			RecordedAt:   now,
		})
	}
	return rows
}

func memberIDs(roster []models.Member) []uuid.UUID {
	ids := make([]uuid.UUID, len(roster))
	for i := range roster {
		ids[i] = roster[i].ID
	}
	return ids
}
