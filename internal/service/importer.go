package service

import (
	"errors"
	"fmt"
	"time"

	"hackathon-dashboard-backend/internal/database/models"
	apperrors "hackathon-dashboard-backend/internal/errors"
	"hackathon-dashboard-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImportService loads bulk row data produced by an external ingestion layer.
// Each row runs through the regular service operations in its own transaction,
// so one bad row never poisons the batch; its error is collected instead.
type ImportService struct {
	db        *gorm.DB
	roster    *RosterService
	events    *EventService
	reconcile *ReconciliationService
	validator *validator.Validate
	log       *logger.Logger
}

// NewImportService creates a new import service
func NewImportService(db *gorm.DB, validate *validator.Validate) *ImportService {
	return &ImportService{
		db:        db,
		roster:    NewRosterService(db, validate),
		events:    NewEventService(db, validate),
		reconcile: NewReconciliationService(db, validate),
		validator: validate,
		log:       logger.New(),
	}
}

// TeamRow is one team line from the ingestion layer
type TeamRow struct {
	TeamName        string `json:"team_name" validate:"required"`
	Department      string `json:"department"`
	CoachName       string `json:"coach_name"`
	CoachDepartment string `json:"coach_department"`
	RosterSize      int    `json:"roster_size" validate:"gte=0"`
}

// MemberRow is one member line from the ingestion layer
type MemberRow struct {
	TeamName         string `json:"team_name" validate:"required"`
	MemberName       string `json:"member_name" validate:"required"`
	MemberDepartment string `json:"member_department"`
	IsLeader         bool   `json:"is_leader"`
}

// EventRow is one event line from the ingestion layer
type EventRow struct {
	EventName    string    `json:"event_name" validate:"required"`
	EventDate    time.Time `json:"event_date" validate:"required"`
	MemberPoints int       `json:"member_points_per_attendance" validate:"gte=0"`
	CoachPoints  int       `json:"coach_points_per_attendance" validate:"gte=0"`
}

// AggregateAttendanceRow is one aggregate count line from the ingestion layer
type AggregateAttendanceRow struct {
	TeamName        string `json:"team_name" validate:"required"`
	EventName       string `json:"event_name" validate:"required"`
	MembersAttended int    `json:"members_attended_count" validate:"gte=0"`
	CoachesAttended int    `json:"coaches_attended_count" validate:"gte=0"`
}

// OverrideRow names the verified attendees for one (team, event) pair
type OverrideRow struct {
	TeamName      string   `json:"team_name" validate:"required"`
	EventName     string   `json:"event_name" validate:"required"`
	AttendeeNames []string `json:"attendee_names" validate:"required,min=1"`
}

// RowError ties one failed row's position to what went wrong with it
type RowError struct {
	Row    int    `json:"row"`
	Detail string `json:"detail"`
}

// ImportReport summarizes one batch: applied count plus every collected
// per-row failure
type ImportReport struct {
	Total     int        `json:"total"`
	Applied   int        `json:"applied"`
	Skipped   int        `json:"skipped"`
	RowErrors []RowError `json:"row_errors,omitempty"`
}

func (r *ImportReport) fail(row int, err error) {
	r.Skipped++
	r.RowErrors = append(r.RowErrors, RowError{Row: row, Detail: err.Error()})
}

// ImportTeams loads team rows, creating each team and resolving or creating
// its coach by name
func (s *ImportService) ImportTeams(rows []TeamRow, actor string) *ImportReport {
	report := &ImportReport{Total: len(rows)}
	for i, row := range rows {
		if err := s.validator.Struct(&row); err != nil {
			report.fail(i, err)
			continue
		}
		_, err := s.roster.CreateTeam(&CreateTeamRequest{
			Name:            row.TeamName,
			Department:      row.Department,
			RosterSize:      row.RosterSize,
			CoachName:       row.CoachName,
			CoachDepartment: row.CoachDepartment,
			Actor:           actor,
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrTeamExists) {
				report.fail(i, fmt.Errorf("team %q already active", row.TeamName))
			} else {
				report.fail(i, err)
			}
			continue
		}
		report.Applied++
	}
	s.logBatch("teams", report)
	return report
}

// ImportMembers loads member rows. A row naming a team that does not resolve
// is collected as unresolved, not fatal to the batch.
func (s *ImportService) ImportMembers(rows []MemberRow, actor string) *ImportReport {
	report := &ImportReport{Total: len(rows)}
	for i, row := range rows {
		if err := s.validator.Struct(&row); err != nil {
			report.fail(i, err)
			continue
		}
		team, err := s.resolveTeam(row.TeamName, i)
		if err != nil {
			report.fail(i, err)
			continue
		}
		_, err = s.roster.AddMember(&AddMemberRequest{
			TeamID:     team,
			Name:       row.MemberName,
			Department: row.MemberDepartment,
			IsLeader:   row.IsLeader,
			Actor:      actor,
		})
		if err != nil {
			report.fail(i, err)
			continue
		}
		report.Applied++
	}
	s.logBatch("members", report)
	return report
}

// ImportEvents loads event rows
func (s *ImportService) ImportEvents(rows []EventRow, actor string) *ImportReport {
	report := &ImportReport{Total: len(rows)}
	for i, row := range rows {
		if err := s.validator.Struct(&row); err != nil {
			report.fail(i, err)
			continue
		}
		_, err := s.events.Create(&CreateEventRequest{
			Name:         row.EventName,
			EventDate:    row.EventDate,
			MemberPoints: row.MemberPoints,
			CoachPoints:  row.CoachPoints,
			Actor:        actor,
		})
		if err != nil {
			report.fail(i, err)
			continue
		}
		report.Applied++
	}
	s.logBatch("events", report)
	return report
}

// ImportAggregateAttendance feeds aggregate count rows through the
// reconciliation engine. An ambiguous pair (count exceeds roster) skips that
// row and is reported; the rest of the batch still runs.
func (s *ImportService) ImportAggregateAttendance(rows []AggregateAttendanceRow, actor string) *ImportReport {
	report := &ImportReport{Total: len(rows)}
	for i, row := range rows {
		if err := s.validator.Struct(&row); err != nil {
			report.fail(i, err)
			continue
		}
		teamID, err := s.resolveTeam(row.TeamName, i)
		if err != nil {
			report.fail(i, err)
			continue
		}
		eventID, err := s.resolveEvent(row.EventName, i)
		if err != nil {
			report.fail(i, err)
			continue
		}
		_, err = s.reconcile.Reconcile(&ReconcileRequest{
			TeamID:          teamID,
			EventID:         eventID,
			MembersAttended: row.MembersAttended,
			CoachesAttended: row.CoachesAttended,
			Actor:           actor,
		})
		if err != nil {
			report.fail(i, err)
			continue
		}
		report.Applied++
	}
	s.logBatch("aggregate_attendance", report)
	return report
}

// ImportOverrides applies verified named attendee lists
func (s *ImportService) ImportOverrides(rows []OverrideRow, actor string) *ImportReport {
	report := &ImportReport{Total: len(rows)}
	for i, row := range rows {
		if err := s.validator.Struct(&row); err != nil {
			report.fail(i, err)
			continue
		}
		teamID, err := s.resolveTeam(row.TeamName, i)
		if err != nil {
			report.fail(i, err)
			continue
		}
		eventID, err := s.resolveEvent(row.EventName, i)
		if err != nil {
			report.fail(i, err)
			continue
		}
		err = s.reconcile.ApplyOverride(&OverrideRequest{
			TeamID:        teamID,
			EventID:       eventID,
			AttendeeNames: row.AttendeeNames,
			Actor:         actor,
		})
		if err != nil {
			report.fail(i, err)
			continue
		}
		report.Applied++
	}
	s.logBatch("overrides", report)
	return report
}

func (s *ImportService) resolveTeam(name string, row int) (uuid.UUID, error) {
	teams, err := s.roster.ListTeams(true)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load teams: %w", err)
	}
	res := ResolveName(name, teams, func(t models.Team) string { return t.Name })
	switch res.Status {
	case Resolved:
		return res.Match.ID, nil
	case Ambiguous:
		return uuid.Nil, apperrors.NewValidationError("team_name",
			fmt.Sprintf("team name %q matches multiple active teams", name))
	default:
		return uuid.Nil, &apperrors.UnresolvedReferenceError{Entity: "team", Name: name, Row: row}
	}
}

func (s *ImportService) resolveEvent(name string, row int) (uuid.UUID, error) {
	events, err := s.events.List(true)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load events: %w", err)
	}
	res := ResolveName(name, events, func(e models.Event) string { return e.Name })
	switch res.Status {
	case Resolved:
		return res.Match.ID, nil
	case Ambiguous:
		return uuid.Nil, apperrors.NewValidationError("event_name",
			fmt.Sprintf("event name %q matches multiple active events", name))
	default:
		return uuid.Nil, &apperrors.UnresolvedReferenceError{Entity: "event", Name: name, Row: row}
	}
}

func (s *ImportService) logBatch(kind string, report *ImportReport) {
	s.log.WithFields(map[string]interface{}{
		"kind":    kind,
		"total":   report.Total,
		"applied": report.Applied,
		"skipped": report.Skipped,
	}).Info("Import batch processed")
}
