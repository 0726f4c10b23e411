package service

import (
	"encoding/json"
	"errors"
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

// RosterService handles business logic for teams, members and coaches.
// Deletes are soft everywhere so historical attendance rows stay resolvable.
type RosterService struct {
	db        *gorm.DB
	validator *validator.Validate
	log       *logger.Logger
}

// NewRosterService creates a new roster service
func NewRosterService(db *gorm.DB, validator *validator.Validate) *RosterService {
	return &RosterService{db: db, validator: validator, log: logger.New()}
}

// scoringOver builds a scoring view bound to the given transaction
func scoringOver(tx *gorm.DB) *ScoringService {
	return NewScoringService(
		repository.NewTeamRepository(tx),
		repository.NewMemberRepository(tx),
		repository.NewCoachRepository(tx),
		repository.NewEventRepository(tx),
		repository.NewAttendanceRepository(tx),
		repository.NewBonusRepository(tx),
	)
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=200"`
	Department      string `json:"department" validate:"max=200"`
	RosterSize      int    `json:"roster_size" validate:"gte=0"`
	CoachName       string `json:"coach_name" validate:"max=200"`
	CoachDepartment string `json:"coach_department" validate:"max=200"`
	Actor           string `json:"-"`
}

// Create creates a new team, resolving or creating its coach by name
func (s *RosterService) CreateTeam(req *CreateTeamRequest) (*models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var team *models.Team
	err := s.db.Transaction(func(tx *gorm.DB) error {
		teams := repository.NewTeamRepository(tx)
		coaches := repository.NewCoachRepository(tx)

		if existing, err := teams.GetActiveByName(req.Name); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check existing team: %w", err)
		} else if existing != nil {
			return apperrors.ErrTeamExists
		}

		team = &models.Team{
			Name:       req.Name,
			Department: req.Department,
			RosterSize: req.RosterSize,
			IsActive:   true,
		}
		team.CreatedBy = req.Actor

		if req.CoachName != "" {
			coach, err := s.resolveOrCreateCoach(coaches, req.CoachName, req.CoachDepartment, req.Actor)
			if err != nil {
				return err
			}
			team.CoachID = &coach.ID
		}

		return teams.Create(team)
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

// resolveOrCreateCoach finds an active coach by normalized name or creates one
func (s *RosterService) resolveOrCreateCoach(coaches *repository.CoachRepository, name, department, actor string) (*models.Coach, error) {
	all, err := coaches.GetAll(true)
	if err != nil {
		return nil, fmt.Errorf("load coaches: %w", err)
	}
	res := ResolveName(name, all, func(c models.Coach) string { return c.Name })
	switch res.Status {
	case Resolved:
		return &res.Match, nil
	case Ambiguous:
		return nil, apperrors.NewValidationError("coach_name",
			fmt.Sprintf("coach name %q matches multiple active coaches", name))
	}
	coach := &models.Coach{Name: name, Department: department, IsActive: true}
	coach.CreatedBy = actor
	if err := coaches.Create(coach); err != nil {
		return nil, fmt.Errorf("create coach: %w", err)
	}
	return coach, nil
}

// AddMemberRequest represents the request to add a member to a team
type AddMemberRequest struct {
	TeamID     uuid.UUID `json:"team_id" validate:"required"`
	Name       string    `json:"name" validate:"required,min=1,max=200"`
	Department string    `json:"department" validate:"max=200"`
	IsLeader   bool      `json:"is_leader"`
	Actor      string    `json:"-"`
}

// AddMember adds a member to a team's roster, enforcing the single-leader rule
func (s *RosterService) AddMember(req *AddMemberRequest) (*models.Member, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var member *models.Member
	err := s.db.Transaction(func(tx *gorm.DB) error {
		teams := repository.NewTeamRepository(tx)
		members := repository.NewMemberRepository(tx)

		team, err := teams.GetByID(req.TeamID)
		if err != nil {
			return apperrors.ErrTeamNotFound
		}
		if !team.IsActive {
			return apperrors.ErrTeamInactive
		}

		roster, err := members.GetByTeamID(team.ID, true)
		if err != nil {
			return fmt.Errorf("load roster: %w", err)
		}
		if res := ResolveName(req.Name, roster, func(m models.Member) string { return m.Name }); res.Status != Unresolved {
			return apperrors.ErrMemberExists
		}

		if req.IsLeader {
			leaders, err := members.CountActiveLeaders(team.ID)
			if err != nil {
				return fmt.Errorf("count leaders: %w", err)
			}
			if leaders > 0 {
				return apperrors.ErrLeaderAlreadySet
			}
		}

		member = &models.Member{
			Name:       req.Name,
			Department: req.Department,
			TeamID:     team.ID,
			IsLeader:   req.IsLeader,
			IsActive:   true,
		}
		member.CreatedBy = req.Actor
		return members.Create(member)
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// RenameTeam changes a team's display name only. The operation is atomic,
// audit-logged and verified: the team's score before and after must be
// identical or the transaction rolls back.
func (s *RosterService) RenameTeam(teamID uuid.UUID, newName, actor string) error {
	if newName == "" {
		return apperrors.NewValidationError("name", "new name must not be empty")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		teams := repository.NewTeamRepository(tx)
		audit := repository.NewAuditRepository(tx)

		team, err := teams.GetByID(teamID)
		if err != nil {
			return apperrors.ErrTeamNotFound
		}
		if !team.IsActive {
			return apperrors.ErrTeamInactive
		}
		if team.Name == newName {
			return nil
		}
		if existing, err := teams.GetActiveByName(newName); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check name: %w", err)
		} else if existing != nil && existing.ID != team.ID {
			return apperrors.ErrTeamExists
		}

		before, err := scoringOver(tx).TeamScoreSnapshot()
		if err != nil {
			return fmt.Errorf("score snapshot: %w", err)
		}

		oldName := team.Name
		if err := teams.UpdateFields(team.ID, map[string]interface{}{
			"name":       newName,
			"updated_by": actor,
		}); err != nil {
			return fmt.Errorf("rename: %w", err)
		}

		after, err := scoringOver(tx).TeamScoreSnapshot()
		if err != nil {
			return fmt.Errorf("score snapshot: %w", err)
		}
		if before[team.ID].FinalScore != after[team.ID].FinalScore {
			return apperrors.ErrScoreDrift
		}

		oldValues, _ := json.Marshal(map[string]string{"name": oldName})
		newValues, _ := json.Marshal(map[string]string{"name": newName})
		return audit.Append(&models.AuditLog{
			EntityTable: "teams",
			RecordID:    team.ID,
			Action:      models.AuditActionRename,
			OldValues:   oldValues,
			NewValues:   newValues,
			ChangedBy:   actor,
		})
	})
	if err != nil {
		return err
	}

	s.log.WithFields(map[string]interface{}{"team_id": teamID, "new_name": newName}).Info("team renamed")
	return nil
}

// MergeTeams folds a duplicate team into its canonical record. Members are
// matched by normalized name; a matched duplicate member's attendance is
// repointed to the canonical twin, an unmatched one moves over whole. Team
// bonuses follow. The duplicate team is deactivated, never deleted, and the
// canonical team's member and bonus points afterwards must equal the two
// teams' combined totals before.
func (s *RosterService) MergeTeams(duplicateID, canonicalID uuid.UUID, actor string) error {
	if duplicateID == canonicalID {
		return apperrors.ErrSelfMerge
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		teams := repository.NewTeamRepository(tx)
		members := repository.NewMemberRepository(tx)
		attendance := repository.NewAttendanceRepository(tx)
		bonuses := repository.NewBonusRepository(tx)
		audit := repository.NewAuditRepository(tx)

		dup, err := teams.GetByID(duplicateID)
		if err != nil {
			return apperrors.ErrTeamNotFound
		}
		canonical, err := teams.GetByID(canonicalID)
		if err != nil {
			return apperrors.ErrTeamNotFound
		}
		if !dup.IsActive || !canonical.IsActive {
			return apperrors.ErrTeamInactive
		}

		before, err := scoringOver(tx).TeamScoreSnapshot()
		if err != nil {
			return fmt.Errorf("score snapshot: %w", err)
		}
		// Coach points attribute in full per team, so a shared coach would be
		// counted twice in a naive before-sum; member points are the stable
		// merge invariant.
		wantMember := before[dup.ID].MemberPoints + before[canonical.ID].MemberPoints

		dupRoster, err := members.GetByTeamID(dup.ID, true)
		if err != nil {
			return fmt.Errorf("load duplicate roster: %w", err)
		}
		canonicalRoster, err := members.GetByTeamID(canonical.ID, true)
		if err != nil {
			return fmt.Errorf("load canonical roster: %w", err)
		}

		repoint := make(map[uuid.UUID]uuid.UUID)
		for i := range dupRoster {
			dm := dupRoster[i]
			res := ResolveName(dm.Name, canonicalRoster, func(m models.Member) string { return m.Name })
			switch res.Status {
			case Resolved:
				repoint[dm.ID] = res.Match.ID
				if err := members.SetActive(dm.ID, false); err != nil {
					return fmt.Errorf("deactivate duplicate member: %w", err)
				}
			case Ambiguous:
				return apperrors.NewValidationError("member",
					fmt.Sprintf("member %q matches multiple canonical members", dm.Name))
			default:
				dm.TeamID = canonical.ID
				dm.UpdatedBy = actor
				if err := members.Update(&dm); err != nil {
					return fmt.Errorf("move member: %w", err)
				}
			}
		}
		if err := attendance.RepointMembers(repoint); err != nil {
			return fmt.Errorf("repoint attendance: %w", err)
		}
		if err := bonuses.RepointTeam(dup.ID, canonical.ID); err != nil {
			return fmt.Errorf("repoint bonuses: %w", err)
		}
		if err := teams.SetActive(dup.ID, false); err != nil {
			return fmt.Errorf("deactivate duplicate team: %w", err)
		}

		after, err := scoringOver(tx).TeamScoreSnapshot()
		if err != nil {
			return fmt.Errorf("score snapshot: %w", err)
		}
		got := after[canonical.ID]
		if got.MemberPoints != wantMember {
			return fmt.Errorf("%w: member points %d != %d", apperrors.ErrScoreDrift, got.MemberPoints, wantMember)
		}

		oldValues, _ := json.Marshal(map[string]interface{}{"duplicate_team": dup.Name, "duplicate_id": dup.ID})
		newValues, _ := json.Marshal(map[string]interface{}{"canonical_team": canonical.Name, "canonical_id": canonical.ID})
		return audit.Append(&models.AuditLog{
			EntityTable: "teams",
			RecordID:    canonical.ID,
			Action:      models.AuditActionMerge,
			OldValues:   oldValues,
			NewValues:   newValues,
			ChangedBy:   actor,
		})
	})
}

// DeactivateTeam soft-deletes a team
func (s *RosterService) DeactivateTeam(id uuid.UUID, actor string) error {
	return s.deactivate(id, actor, "teams", func(tx *gorm.DB) error {
		return repository.NewTeamRepository(tx).SetActive(id, false)
	})
}

// DeactivateMember soft-deletes a member
func (s *RosterService) DeactivateMember(id uuid.UUID, actor string) error {
	return s.deactivate(id, actor, "members", func(tx *gorm.DB) error {
		return repository.NewMemberRepository(tx).SetActive(id, false)
	})
}

// DeactivateCoach soft-deletes a coach
func (s *RosterService) DeactivateCoach(id uuid.UUID, actor string) error {
	return s.deactivate(id, actor, "coaches", func(tx *gorm.DB) error {
		return repository.NewCoachRepository(tx).SetActive(id, false)
	})
}

func (s *RosterService) deactivate(id uuid.UUID, actor, table string, fn func(tx *gorm.DB) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := fn(tx); err != nil {
			return err
		}
		oldValues, _ := json.Marshal(map[string]bool{"is_active": true})
		newValues, _ := json.Marshal(map[string]bool{"is_active": false})
		return repository.NewAuditRepository(tx).Append(&models.AuditLog{
			EntityTable: table,
			RecordID:    id,
			Action:      models.AuditActionDeactivate,
			OldValues:   oldValues,
			NewValues:   newValues,
			ChangedBy:   actor,
			ChangedAt:   time.Now(),
		})
	})
}

// GetTeam retrieves a team with its roster and coach
func (s *RosterService) GetTeam(id uuid.UUID) (*models.Team, error) {
	team, err := repository.NewTeamRepository(s.db).GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

// ListTeams retrieves all teams
func (s *RosterService) ListTeams(activeOnly bool) ([]models.Team, error) {
	return repository.NewTeamRepository(s.db).GetAll(activeOnly)
}
