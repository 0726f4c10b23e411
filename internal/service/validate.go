package service

import (
	"fmt"

	"hackathon-dashboard-backend/internal/database/models"
	"hackathon-dashboard-backend/internal/repository"

	"github.com/google/uuid"
)

// Violation rule identifiers reported by the validator
const (
	RuleAttendanceOneOf    = "attendance_one_of_member_coach"
	RuleDuplicateTeamName  = "duplicate_active_team_name"
	RuleDuplicateCoachName = "duplicate_active_coach_name"
	RuleOrphanMember       = "member_team_unresolved"
	RuleMultipleLeaders    = "multiple_active_leaders"
	RuleRosterOverrun      = "attendance_exceeds_roster"
	RuleScoreMismatch      = "team_score_component_mismatch"
	RuleBonusTarget        = "bonus_target_unresolved"
	RuleRowCountMismatch   = "row_count_mismatch"
)

// Violation describes one integrity failure. The validator reports; it never
// repairs anything on its own.
type Violation struct {
	EntityType string    `json:"entity_type"`
	EntityID   uuid.UUID `json:"entity_id"`
	Rule       string    `json:"rule"`
	Detail     string    `json:"detail"`
}

// ValidationService re-derives every invariant from raw rows and reports
// violations. It shares the scoring service's repositories so checks run
// against the same snapshot the aggregator sees.
type ValidationService struct {
	teams      repository.TeamRepositoryInterface
	members    repository.MemberRepositoryInterface
	coaches    repository.CoachRepositoryInterface
	events     repository.EventRepositoryInterface
	attendance repository.AttendanceRepositoryInterface
	bonuses    repository.BonusRepositoryInterface
}

// NewValidationService creates a new validation service
func NewValidationService(
	teams repository.TeamRepositoryInterface,
	members repository.MemberRepositoryInterface,
	coaches repository.CoachRepositoryInterface,
	events repository.EventRepositoryInterface,
	attendance repository.AttendanceRepositoryInterface,
	bonuses repository.BonusRepositoryInterface,
) *ValidationService {
	return &ValidationService{
		teams:      teams,
		members:    members,
		coaches:    coaches,
		events:     events,
		attendance: attendance,
		bonuses:    bonuses,
	}
}

// Validate runs every integrity check and returns the collected violations
func (s *ValidationService) Validate() ([]Violation, error) {
	var violations []Violation

	teams, err := s.teams.GetAll(false)
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	members, err := s.members.GetAll(false)
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}
	coaches, err := s.coaches.GetAll(false)
	if err != nil {
		return nil, fmt.Errorf("load coaches: %w", err)
	}
	memberRecords, err := s.attendance.ListMemberRecords()
	if err != nil {
		return nil, fmt.Errorf("load member attendance: %w", err)
	}
	coachRecords, err := s.attendance.ListCoachRecords()
	if err != nil {
		return nil, fmt.Errorf("load coach attendance: %w", err)
	}
	bonuses, err := s.bonuses.ListActive()
	if err != nil {
		return nil, fmt.Errorf("load bonuses: %w", err)
	}

	violations = append(violations, checkAttendanceShape(memberRecords, coachRecords)...)
	violations = append(violations, checkDuplicateNames(teams, coaches)...)
	violations = append(violations, checkMemberTeams(teams, members)...)
	violations = append(violations, checkLeaders(teams, members)...)
	violations = append(violations, checkRosterOverrun(teams, members, memberRecords)...)
	violations = append(violations, checkBonusTargets(teams, members, coaches, bonuses)...)

	scoreViolations, err := s.checkScores()
	if err != nil {
		return nil, err
	}
	violations = append(violations, scoreViolations...)

	return violations, nil
}

// RowCounts is an external source snapshot to reconcile against
type RowCounts struct {
	Teams             int `json:"teams"`
	Members           int `json:"members"`
	Coaches           int `json:"coaches"`
	Events            int `json:"events"`
	AttendanceRecords int `json:"attendance_records"`
}

// ValidateAgainstSnapshot compares live row counts with an external snapshot
func (s *ValidationService) ValidateAgainstSnapshot(expected RowCounts) ([]Violation, error) {
	var violations []Violation

	check := func(entity string, got, want int) {
		if got != want {
			violations = append(violations, Violation{
				EntityType: entity,
				Rule:       RuleRowCountMismatch,
				Detail:     fmt.Sprintf("have %d rows, external snapshot has %d", got, want),
			})
		}
	}

	teams, err := s.teams.GetAll(true)
	if err != nil {
		return nil, err
	}
	members, err := s.members.GetAll(true)
	if err != nil {
		return nil, err
	}
	coaches, err := s.coaches.GetAll(true)
	if err != nil {
		return nil, err
	}
	events, err := s.events.GetAll(true)
	if err != nil {
		return nil, err
	}
	memberRecords, err := s.attendance.ListMemberRecords()
	if err != nil {
		return nil, err
	}
	coachRecords, err := s.attendance.ListCoachRecords()
	if err != nil {
		return nil, err
	}

	check("team", len(teams), expected.Teams)
	check("member", len(members), expected.Members)
	check("coach", len(coaches), expected.Coaches)
	check("event", len(events), expected.Events)
	check("attendance_record", len(memberRecords)+len(coachRecords), expected.AttendanceRecords)

	return violations, nil
}

func checkAttendanceShape(memberRecords, coachRecords []models.AttendanceRecord) []Violation {
	var violations []Violation
	for _, set := range [][]models.AttendanceRecord{memberRecords, coachRecords} {
		for i := range set {
			rec := set[i]
			if !rec.IsValid() {
				violations = append(violations, Violation{
					EntityType: "attendance_record",
					EntityID:   rec.ID,
					Rule:       RuleAttendanceOneOf,
					Detail:     "record must reference exactly one of member or coach",
				})
			}
		}
	}
	return violations
}

func checkDuplicateNames(teams []models.Team, coaches []models.Coach) []Violation {
	var violations []Violation
	seenTeams := make(map[string]uuid.UUID)
	for i := range teams {
		t := teams[i]
		if !t.IsActive {
			continue
		}
		key := NormalizeName(t.Name)
		if firstID, dup := seenTeams[key]; dup {
			violations = append(violations, Violation{
				EntityType: "team",
				EntityID:   t.ID,
				Rule:       RuleDuplicateTeamName,
				Detail:     fmt.Sprintf("active team name %q also used by team %s", t.Name, firstID),
			})
		} else {
			seenTeams[key] = t.ID
		}
	}
	seenCoaches := make(map[string]uuid.UUID)
	for i := range coaches {
		c := coaches[i]
		if !c.IsActive {
			continue
		}
		key := NormalizeName(c.Name)
		if firstID, dup := seenCoaches[key]; dup {
			violations = append(violations, Violation{
				EntityType: "coach",
				EntityID:   c.ID,
				Rule:       RuleDuplicateCoachName,
				Detail:     fmt.Sprintf("active coach name %q also used by coach %s", c.Name, firstID),
			})
		} else {
			seenCoaches[key] = c.ID
		}
	}
	return violations
}

func checkMemberTeams(teams []models.Team, members []models.Member) []Violation {
	var violations []Violation
	activeTeams := make(map[uuid.UUID]bool, len(teams))
	for i := range teams {
		if teams[i].IsActive {
			activeTeams[teams[i].ID] = true
		}
	}
	for i := range members {
		m := members[i]
		if !m.IsActive {
			continue
		}
		if !activeTeams[m.TeamID] {
			violations = append(violations, Violation{
				EntityType: "member",
				EntityID:   m.ID,
				Rule:       RuleOrphanMember,
				Detail:     fmt.Sprintf("active member %q references missing or inactive team %s", m.Name, m.TeamID),
			})
		}
	}
	return violations
}

func checkLeaders(teams []models.Team, members []models.Member) []Violation {
	var violations []Violation
	leaders := make(map[uuid.UUID]int)
	for i := range members {
		m := members[i]
		if m.IsActive && m.IsLeader {
			leaders[m.TeamID]++
		}
	}
	for i := range teams {
		t := teams[i]
		if t.IsActive && leaders[t.ID] > 1 {
			violations = append(violations, Violation{
				EntityType: "team",
				EntityID:   t.ID,
				Rule:       RuleMultipleLeaders,
				Detail:     fmt.Sprintf("team has %d active leaders", leaders[t.ID]),
			})
		}
	}
	return violations
}

func checkRosterOverrun(teams []models.Team, members []models.Member, memberRecords []models.AttendanceRecord) []Violation {
	var violations []Violation

	teamOfMember := make(map[uuid.UUID]uuid.UUID)
	rosterSize := make(map[uuid.UUID]int)
	for i := range members {
		m := members[i]
		if m.IsActive {
			teamOfMember[m.ID] = m.TeamID
			rosterSize[m.TeamID]++
		}
	}

	attended := make(map[[2]uuid.UUID]int) // (team, event) -> attending members
	for i := range memberRecords {
		rec := memberRecords[i]
		if !rec.Attended || rec.MemberID == nil {
			continue
		}
		teamID, ok := teamOfMember[*rec.MemberID]
		if !ok {
			continue
		}
		attended[[2]uuid.UUID{teamID, rec.EventID}]++
	}

	for i := range teams {
		t := teams[i]
		if !t.IsActive {
			continue
		}
		for pair, count := range attended {
			if pair[0] == t.ID && count > rosterSize[t.ID] {
				violations = append(violations, Violation{
					EntityType: "team",
					EntityID:   t.ID,
					Rule:       RuleRosterOverrun,
					Detail:     fmt.Sprintf("event %s has %d attending members but roster holds %d", pair[1], count, rosterSize[t.ID]),
				})
			}
		}
	}
	return violations
}

func checkBonusTargets(teams []models.Team, members []models.Member, coaches []models.Coach, bonuses []models.BonusPoint) []Violation {
	var violations []Violation

	known := make(map[models.BonusTarget]map[uuid.UUID]bool)
	known[models.BonusTargetTeam] = make(map[uuid.UUID]bool)
	known[models.BonusTargetMember] = make(map[uuid.UUID]bool)
	known[models.BonusTargetCoach] = make(map[uuid.UUID]bool)
	for i := range teams {
		known[models.BonusTargetTeam][teams[i].ID] = true
	}
	for i := range members {
		known[models.BonusTargetMember][members[i].ID] = true
	}
	for i := range coaches {
		known[models.BonusTargetCoach][coaches[i].ID] = true
	}

	for i := range bonuses {
		b := bonuses[i]
		targets, ok := known[b.TargetKind]
		if !ok || !targets[b.TargetID] {
			violations = append(violations, Violation{
				EntityType: "bonus_point",
				EntityID:   b.ID,
				Rule:       RuleBonusTarget,
				Detail:     fmt.Sprintf("active bonus targets unresolvable %s %s", b.TargetKind, b.TargetID),
			})
		}
	}
	return violations
}

// checkScores recomputes every active team's final score from raw rows with
// its own arithmetic and compares it against the aggregator's answer. The two
// derivations share no code path beyond row loading.
func (s *ValidationService) checkScores() ([]Violation, error) {
	scoring := NewScoringService(s.teams, s.members, s.coaches, s.events, s.attendance, s.bonuses)
	rows, err := scoring.TeamScores()
	if err != nil {
		return nil, err
	}

	var violations []Violation
	for _, row := range rows {
		want := row.MemberPoints + row.CoachPoints + row.BonusPoints
		if row.FinalScore != want {
			violations = append(violations, Violation{
				EntityType: "team",
				EntityID:   row.TeamID,
				Rule:       RuleScoreMismatch,
				Detail: fmt.Sprintf("final_score %d != member %d + coach %d + bonus %d",
					row.FinalScore, row.MemberPoints, row.CoachPoints, row.BonusPoints),
			})
		}

		independent, err := s.recomputeTeamScore(row.TeamID)
		if err != nil {
			return nil, err
		}
		if independent != row.FinalScore {
			violations = append(violations, Violation{
				EntityType: "team",
				EntityID:   row.TeamID,
				Rule:       RuleScoreMismatch,
				Detail:     fmt.Sprintf("independent recomputation %d != reported final_score %d", independent, row.FinalScore),
			})
		}
	}
	return violations, nil
}

// recomputeTeamScore re-derives one team's final score directly from rows
func (s *ValidationService) recomputeTeamScore(teamID uuid.UUID) (int, error) {
	team, err := s.teams.GetByID(teamID)
	if err != nil {
		return 0, err
	}
	roster, err := s.members.GetByTeamID(teamID, true)
	if err != nil {
		return 0, err
	}

	total := 0
	records, err := s.attendance.ListByMembers(memberIDs(roster))
	if err != nil {
		return 0, err
	}
	for i := range records {
		total += records[i].PointsEarned
	}

	if team.CoachID != nil {
		coachRecords, err := s.attendance.ListCoachRecords()
		if err != nil {
			return 0, err
		}
		for i := range coachRecords {
			if coachRecords[i].CoachID != nil && *coachRecords[i].CoachID == *team.CoachID {
				total += coachRecords[i].PointsEarned
			}
		}
	}

	bonuses, err := s.bonuses.ListActive()
	if err != nil {
		return 0, err
	}
	memberSet := make(map[uuid.UUID]bool, len(roster))
	for i := range roster {
		memberSet[roster[i].ID] = true
	}
	for i := range bonuses {
		b := bonuses[i]
		switch {
		case b.TargetKind == models.BonusTargetTeam && b.TargetID == teamID:
			total += b.Points
		case b.TargetKind == models.BonusTargetMember && memberSet[b.TargetID]:
			total += b.Points
		case b.TargetKind == models.BonusTargetCoach && team.CoachID != nil && b.TargetID == *team.CoachID:
			total += b.Points
		}
	}
	return total, nil
}
