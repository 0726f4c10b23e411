package service

import (
	"fmt"
	"sort"

	"hackathon-dashboard-backend/internal/database/models"
	"hackathon-dashboard-backend/internal/repository"

	"github.com/google/uuid"
)

// ScoringService computes team, member and coach scores from the store's
// current rows. It keeps no accumulators of its own: every query re-derives
// from raw attendance and bonus rows, so any mutation is reflected on the
// next call.
type ScoringService struct {
	teams      repository.TeamRepositoryInterface
	members    repository.MemberRepositoryInterface
	coaches    repository.CoachRepositoryInterface
	events     repository.EventRepositoryInterface
	attendance repository.AttendanceRepositoryInterface
	bonuses    repository.BonusRepositoryInterface
}

// NewScoringService creates a new scoring service
func NewScoringService(
	teams repository.TeamRepositoryInterface,
	members repository.MemberRepositoryInterface,
	coaches repository.CoachRepositoryInterface,
	events repository.EventRepositoryInterface,
	attendance repository.AttendanceRepositoryInterface,
	bonuses repository.BonusRepositoryInterface,
) *ScoringService {
	return &ScoringService{
		teams:      teams,
		members:    members,
		coaches:    coaches,
		events:     events,
		attendance: attendance,
		bonuses:    bonuses,
	}
}

// TeamScoreRow is one leaderboard entry
type TeamScoreRow struct {
	TeamID                uuid.UUID `json:"team_id"`
	TeamName              string    `json:"team_name"`
	Department            string    `json:"department"`
	RosterSize            int       `json:"roster_size"`
	MemberPoints          int       `json:"member_points"`
	MembersAttended       int       `json:"members_attended"`
	AttendanceRate        float64   `json:"attendance_rate"`
	CoachName             string    `json:"coach_name,omitempty"`
	CoachPoints           int       `json:"coach_points"`
	CoachSessionsAttended int       `json:"coach_sessions_attended"`
	BonusPoints           int       `json:"bonus_points"`
	BaseScore             int       `json:"base_score"`
	FinalScore            int       `json:"final_score"`
}

// MemberScoreRow is one member's score line
type MemberScoreRow struct {
	MemberID       uuid.UUID `json:"member_id"`
	MemberName     string    `json:"member_name"`
	Department     string    `json:"department"`
	TeamID         uuid.UUID `json:"team_id"`
	TeamName       string    `json:"team_name"`
	IsLeader       bool      `json:"is_leader"`
	TotalPoints    int       `json:"total_points"`
	EventsAttended int       `json:"events_attended"`
	EventsList     []string  `json:"events_list,omitempty"`
	DualRole       bool      `json:"dual_role"`
}

// CoachScoreRow is one coach's score line
type CoachScoreRow struct {
	CoachID          uuid.UUID `json:"coach_id"`
	CoachName        string    `json:"coach_name"`
	Department       string    `json:"department"`
	TotalPoints      int       `json:"total_points"`
	SessionsAttended int       `json:"sessions_attended"`
	EventsAttended   int       `json:"events_attended"`
	TeamsCoached     int       `json:"teams_coached"`
}

// TeamScores computes the leaderboard for every active team.
//
// coach_points is the coach's own total across all events, attributed in full
// to every team that coach manages; it is never divided between them. Bonus
// points attributed to a team are its direct team-grain awards, plus its
// active members' member-grain awards, plus its coach's coach-grain awards in
// full.
func (s *ScoringService) TeamScores() ([]TeamScoreRow, error) {
	teams, err := s.teams.GetAll(true)
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	activeMembers, err := s.members.GetAll(true)
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
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
	coaches, err := s.coaches.GetAll(false)
	if err != nil {
		return nil, fmt.Errorf("load coaches: %w", err)
	}

	memberPoints := make(map[uuid.UUID]int)
	memberAttendedAny := make(map[uuid.UUID]bool)
	for i := range memberRecords {
		rec := memberRecords[i]
		memberPoints[*rec.MemberID] += rec.PointsEarned
		if rec.Attended {
			memberAttendedAny[*rec.MemberID] = true
		}
	}

	coachTotals := make(map[uuid.UUID]int)
	coachSessions := make(map[uuid.UUID]map[uuid.UUID]bool)
	for i := range coachRecords {
		rec := coachRecords[i]
		coachTotals[*rec.CoachID] += rec.PointsEarned
		if rec.Attended {
			if coachSessions[*rec.CoachID] == nil {
				coachSessions[*rec.CoachID] = make(map[uuid.UUID]bool)
			}
			coachSessions[*rec.CoachID][rec.EventID] = true
		}
	}

	bonusByTarget := make(map[models.BonusTarget]map[uuid.UUID]int)
	for _, kind := range []models.BonusTarget{models.BonusTargetTeam, models.BonusTargetMember, models.BonusTargetCoach} {
		bonusByTarget[kind] = make(map[uuid.UUID]int)
	}
	for i := range bonuses {
		b := bonuses[i]
		bonusByTarget[b.TargetKind][b.TargetID] += b.Points
	}

	coachNames := make(map[uuid.UUID]string, len(coaches))
	for i := range coaches {
		coachNames[coaches[i].ID] = coaches[i].Name
	}

	membersByTeam := make(map[uuid.UUID][]models.Member)
	for i := range activeMembers {
		membersByTeam[activeMembers[i].TeamID] = append(membersByTeam[activeMembers[i].TeamID], activeMembers[i])
	}

	rows := make([]TeamScoreRow, 0, len(teams))
	for i := range teams {
		team := teams[i]
		row := TeamScoreRow{
			TeamID:     team.ID,
			TeamName:   team.Name,
			Department: team.Department,
			RosterSize: team.RosterSize,
		}

		for _, m := range membersByTeam[team.ID] {
			row.MemberPoints += memberPoints[m.ID]
			row.BonusPoints += bonusByTarget[models.BonusTargetMember][m.ID]
			if memberAttendedAny[m.ID] {
				row.MembersAttended++
			}
		}
		if team.RosterSize > 0 {
			row.AttendanceRate = float64(row.MembersAttended) / float64(team.RosterSize)
		}

		if team.CoachID != nil {
			row.CoachName = coachNames[*team.CoachID]
			row.CoachPoints = coachTotals[*team.CoachID]
			row.CoachSessionsAttended = len(coachSessions[*team.CoachID])
			row.BonusPoints += bonusByTarget[models.BonusTargetCoach][*team.CoachID]
		}

		row.BonusPoints += bonusByTarget[models.BonusTargetTeam][team.ID]
		row.BaseScore = row.MemberPoints + row.CoachPoints
		row.FinalScore = row.BaseScore + row.BonusPoints
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].FinalScore != rows[j].FinalScore {
			return rows[i].FinalScore > rows[j].FinalScore
		}
		return rows[i].TeamName < rows[j].TeamName
	})
	return rows, nil
}

// MemberScores computes per-member totals for active members of active teams.
// A dual-role member (also an active coach by normalized name) reports
// member-grain points only; the coach side lives on the coach's own row.
func (s *ScoringService) MemberScores() ([]MemberScoreRow, error) {
	teams, err := s.teams.GetAll(true)
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	activeMembers, err := s.members.GetAll(true)
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}
	memberRecords, err := s.attendance.ListMemberRecords()
	if err != nil {
		return nil, fmt.Errorf("load member attendance: %w", err)
	}
	events, err := s.events.GetAll(false)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	coaches, err := s.coaches.GetAll(true)
	if err != nil {
		return nil, fmt.Errorf("load coaches: %w", err)
	}

	teamNames := make(map[uuid.UUID]string, len(teams))
	for i := range teams {
		teamNames[teams[i].ID] = teams[i].Name
	}
	eventNames := make(map[uuid.UUID]string, len(events))
	for i := range events {
		eventNames[events[i].ID] = events[i].Name
	}
	coachNameSet := make(map[string]bool, len(coaches))
	for i := range coaches {
		coachNameSet[NormalizeName(coaches[i].Name)] = true
	}

	type memberAgg struct {
		points int
		events []string
	}
	agg := make(map[uuid.UUID]*memberAgg)
	for i := range memberRecords {
		rec := memberRecords[i]
		a := agg[*rec.MemberID]
		if a == nil {
			a = &memberAgg{}
			agg[*rec.MemberID] = a
		}
		a.points += rec.PointsEarned
		if rec.Attended {
			a.events = append(a.events, eventNames[rec.EventID])
		}
	}

	rows := make([]MemberScoreRow, 0, len(activeMembers))
	for i := range activeMembers {
		m := activeMembers[i]
		teamName, onActiveTeam := teamNames[m.TeamID]
		if !onActiveTeam {
			continue
		}
		row := MemberScoreRow{
			MemberID:   m.ID,
			MemberName: m.Name,
			Department: m.Department,
			TeamID:     m.TeamID,
			TeamName:   teamName,
			IsLeader:   m.IsLeader,
			DualRole:   coachNameSet[NormalizeName(m.Name)],
		}
		if a := agg[m.ID]; a != nil {
			row.TotalPoints = a.points
			row.EventsAttended = len(a.events)
			sort.Strings(a.events)
			row.EventsList = a.events
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TeamName != rows[j].TeamName {
			return rows[i].TeamName < rows[j].TeamName
		}
		if rows[i].TotalPoints != rows[j].TotalPoints {
			return rows[i].TotalPoints > rows[j].TotalPoints
		}
		return rows[i].MemberName < rows[j].MemberName
	})
	return rows, nil
}

// CoachScores computes per-coach totals. teams_coached counts live Team to
// Coach links of active teams, never a stored snapshot, so renames and merges
// are reflected immediately.
func (s *ScoringService) CoachScores() ([]CoachScoreRow, error) {
	coaches, err := s.coaches.GetAll(true)
	if err != nil {
		return nil, fmt.Errorf("load coaches: %w", err)
	}
	teams, err := s.teams.GetAll(true)
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	coachRecords, err := s.attendance.ListCoachRecords()
	if err != nil {
		return nil, fmt.Errorf("load coach attendance: %w", err)
	}

	teamsCoached := make(map[uuid.UUID]int)
	for i := range teams {
		if teams[i].CoachID != nil {
			teamsCoached[*teams[i].CoachID]++
		}
	}

	totals := make(map[uuid.UUID]int)
	sessions := make(map[uuid.UUID]int)
	eventsAttended := make(map[uuid.UUID]map[uuid.UUID]bool)
	for i := range coachRecords {
		rec := coachRecords[i]
		totals[*rec.CoachID] += rec.PointsEarned
		if rec.Attended {
			sessions[*rec.CoachID]++
			if eventsAttended[*rec.CoachID] == nil {
				eventsAttended[*rec.CoachID] = make(map[uuid.UUID]bool)
			}
			eventsAttended[*rec.CoachID][rec.EventID] = true
		}
	}

	rows := make([]CoachScoreRow, 0, len(coaches))
	for i := range coaches {
		c := coaches[i]
		rows = append(rows, CoachScoreRow{
			CoachID:          c.ID,
			CoachName:        c.Name,
			Department:       c.Department,
			TotalPoints:      totals[c.ID],
			SessionsAttended: sessions[c.ID],
			EventsAttended:   len(eventsAttended[c.ID]),
			TeamsCoached:     teamsCoached[c.ID],
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalPoints != rows[j].TotalPoints {
			return rows[i].TotalPoints > rows[j].TotalPoints
		}
		return rows[i].CoachName < rows[j].CoachName
	})
	return rows, nil
}

// TeamScoreSnapshot maps team ID to final score. Rename and merge take one
// before and one after to prove the mutation changed no numbers.
func (s *ScoringService) TeamScoreSnapshot() (map[uuid.UUID]TeamScoreRow, error) {
	rows, err := s.TeamScores()
	if err != nil {
		return nil, err
	}
	snapshot := make(map[uuid.UUID]TeamScoreRow, len(rows))
	for _, row := range rows {
		snapshot[row.TeamID] = row
	}
	return snapshot, nil
}
