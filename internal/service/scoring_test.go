package service

import (
	"testing"
	"time"

	"hackathon-dashboard-backend/internal/database/models"
	"hackathon-dashboard-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ScoringServiceTestSuite tests the aggregator over mocked repositories
type ScoringServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	teamRepo       *mocks.MockTeamRepositoryInterface
	memberRepo     *mocks.MockMemberRepositoryInterface
	coachRepo      *mocks.MockCoachRepositoryInterface
	eventRepo      *mocks.MockEventRepositoryInterface
	attendanceRepo *mocks.MockAttendanceRepositoryInterface
	bonusRepo      *mocks.MockBonusRepositoryInterface
	service        *ScoringService
}

func (suite *ScoringServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.teamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.memberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.coachRepo = mocks.NewMockCoachRepositoryInterface(suite.ctrl)
	suite.eventRepo = mocks.NewMockEventRepositoryInterface(suite.ctrl)
	suite.attendanceRepo = mocks.NewMockAttendanceRepositoryInterface(suite.ctrl)
	suite.bonusRepo = mocks.NewMockBonusRepositoryInterface(suite.ctrl)
	suite.service = NewScoringService(
		suite.teamRepo, suite.memberRepo, suite.coachRepo,
		suite.eventRepo, suite.attendanceRepo, suite.bonusRepo,
	)
}

func (suite *ScoringServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func newTeam(name string, coachID *uuid.UUID, rosterSize int) models.Team {
	t := models.Team{Name: name, RosterSize: rosterSize, CoachID: coachID, IsActive: true}
	t.ID = uuid.New()
	return t
}

func newMember(name string, teamID uuid.UUID) models.Member {
	m := models.Member{Name: name, TeamID: teamID, IsActive: true}
	m.ID = uuid.New()
	return m
}

func newCoach(name string) models.Coach {
	c := models.Coach{Name: name, IsActive: true}
	c.ID = uuid.New()
	return c
}

func memberRecord(eventID, memberID uuid.UUID, attended bool, points int) models.AttendanceRecord {
	rec := models.AttendanceRecord{
		EventID:      eventID,
		MemberID:     &memberID,
		Attended:     attended,
		PointsEarned: points,
		Source:       models.SourceRotation,
		RecordedAt:   time.Now(),
	}
	rec.ID = uuid.New()
	return rec
}

func coachRecord(eventID, coachID uuid.UUID, points int) models.AttendanceRecord {
	rec := models.AttendanceRecord{
		EventID:      eventID,
		CoachID:      &coachID,
		Attended:     true,
		PointsEarned: points,
		Source:       models.SourceManual,
		RecordedAt:   time.Now(),
	}
	rec.ID = uuid.New()
	return rec
}

func (suite *ScoringServiceTestSuite) expectTeamScoreLoads(
	teams []models.Team, members []models.Member, coaches []models.Coach,
	memberRecords, coachRecords []models.AttendanceRecord, bonuses []models.BonusPoint,
) {
	suite.teamRepo.EXPECT().GetAll(true).Return(teams, nil)
	suite.memberRepo.EXPECT().GetAll(true).Return(members, nil)
	suite.attendanceRepo.EXPECT().ListMemberRecords().Return(memberRecords, nil)
	suite.attendanceRepo.EXPECT().ListCoachRecords().Return(coachRecords, nil)
	suite.bonusRepo.EXPECT().ListActive().Return(bonuses, nil)
	suite.coachRepo.EXPECT().GetAll(false).Return(coaches, nil)
}

// A coach of three teams who attends two sessions at 2 points each must show
// a personal total of 4, and every coached team reads coach_points=4. Never
// 4/3, never 12.
func (suite *ScoringServiceTestSuite) TestTeamScores_CoachAttributedInFull() {
	coach := newCoach("Dana")
	teams := []models.Team{
		newTeam("Alpha", &coach.ID, 5),
		newTeam("Beta", &coach.ID, 5),
		newTeam("Gamma", &coach.ID, 5),
	}
	eventA, eventB := uuid.New(), uuid.New()
	coachRecords := []models.AttendanceRecord{
		coachRecord(eventA, coach.ID, 2),
		coachRecord(eventB, coach.ID, 2),
	}

	suite.expectTeamScoreLoads(teams, nil, []models.Coach{coach}, nil, coachRecords, nil)

	rows, err := suite.service.TeamScores()
	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)
	for _, row := range rows {
		suite.Equal(4, row.CoachPoints)
		suite.Equal(2, row.CoachSessionsAttended)
		suite.Equal(4, row.FinalScore)
		suite.Equal("Dana", row.CoachName)
	}
}

// A person who is both a member of team X and its coach contributes both the
// member-rate and coach-rate points to X's final score, each exactly once.
func (suite *ScoringServiceTestSuite) TestTeamScores_DualRoleAdditivity() {
	coach := newCoach("Sam Lee")
	team := newTeam("X", &coach.ID, 3)
	member := newMember("Sam Lee", team.ID)
	event := uuid.New()

	memberRecords := []models.AttendanceRecord{memberRecord(event, member.ID, true, 1)}
	coachRecords := []models.AttendanceRecord{coachRecord(event, coach.ID, 2)}

	suite.expectTeamScoreLoads(
		[]models.Team{team}, []models.Member{member}, []models.Coach{coach},
		memberRecords, coachRecords, nil,
	)

	rows, err := suite.service.TeamScores()
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal(1, rows[0].MemberPoints)
	suite.Equal(2, rows[0].CoachPoints)
	suite.Equal(3, rows[0].FinalScore)
}

func (suite *ScoringServiceTestSuite) TestTeamScores_AttendanceRate() {
	team := newTeam("Alpha", nil, 4)
	m1 := newMember("A", team.ID)
	m2 := newMember("B", team.ID)
	m3 := newMember("C", team.ID)
	event := uuid.New()

	// one attending record, one zero-point presence row, one absent member
	memberRecords := []models.AttendanceRecord{
		memberRecord(event, m1.ID, true, 1),
		memberRecord(event, m2.ID, true, 1),
		memberRecord(event, m3.ID, false, 0),
	}

	suite.expectTeamScoreLoads(
		[]models.Team{team}, []models.Member{m1, m2, m3}, nil,
		memberRecords, nil, nil,
	)

	rows, err := suite.service.TeamScores()
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal(2, rows[0].MembersAttended)
	suite.InDelta(0.5, rows[0].AttendanceRate, 1e-9)
}

// Bonus grains: team-grain lands on the team, member-grain on the holding
// team, coach-grain in full on every coached team.
func (suite *ScoringServiceTestSuite) TestTeamScores_BonusGrains() {
	coach := newCoach("Dana")
	teamA := newTeam("Alpha", &coach.ID, 5)
	teamB := newTeam("Beta", &coach.ID, 5)
	member := newMember("M", teamA.ID)

	bonuses := []models.BonusPoint{
		{TargetKind: models.BonusTargetTeam, TargetID: teamA.ID, Points: 10, IsActive: true},
		{TargetKind: models.BonusTargetMember, TargetID: member.ID, Points: 5, IsActive: true},
		{TargetKind: models.BonusTargetCoach, TargetID: coach.ID, Points: 3, IsActive: true},
	}

	suite.expectTeamScoreLoads(
		[]models.Team{teamA, teamB}, []models.Member{member}, []models.Coach{coach},
		nil, nil, bonuses,
	)

	rows, err := suite.service.TeamScores()
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	byName := map[string]TeamScoreRow{}
	for _, row := range rows {
		byName[row.TeamName] = row
	}
	suite.Equal(18, byName["Alpha"].BonusPoints) // 10 team + 5 member + 3 coach
	suite.Equal(3, byName["Beta"].BonusPoints)   // coach grain only, in full
}

func (suite *ScoringServiceTestSuite) TestTeamScores_SortedByFinalScoreDesc() {
	teamLow := newTeam("Zeta", nil, 2)
	teamHigh := newTeam("Alpha", nil, 2)
	m1 := newMember("A", teamHigh.ID)
	m2 := newMember("B", teamLow.ID)
	event := uuid.New()

	memberRecords := []models.AttendanceRecord{
		memberRecord(event, m1.ID, true, 5),
		memberRecord(event, m2.ID, true, 1),
	}

	suite.expectTeamScoreLoads(
		[]models.Team{teamLow, teamHigh}, []models.Member{m1, m2}, nil,
		memberRecords, nil, nil,
	)

	rows, err := suite.service.TeamScores()
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("Alpha", rows[0].TeamName)
	suite.Equal("Zeta", rows[1].TeamName)
}

func (suite *ScoringServiceTestSuite) TestMemberScores_DualRoleDetection() {
	team := newTeam("Alpha", nil, 2)
	dual := newMember("Sam  LEE", team.ID)
	plain := newMember("Pat Kim", team.ID)
	coach := newCoach("Sam Lee")
	event := models.Event{Name: "Session 1", IsActive: true}
	event.ID = uuid.New()

	memberRecords := []models.AttendanceRecord{
		memberRecord(event.ID, dual.ID, true, 1),
	}

	suite.teamRepo.EXPECT().GetAll(true).Return([]models.Team{team}, nil)
	suite.memberRepo.EXPECT().GetAll(true).Return([]models.Member{dual, plain}, nil)
	suite.attendanceRepo.EXPECT().ListMemberRecords().Return(memberRecords, nil)
	suite.eventRepo.EXPECT().GetAll(false).Return([]models.Event{event}, nil)
	suite.coachRepo.EXPECT().GetAll(true).Return([]models.Coach{coach}, nil)

	rows, err := suite.service.MemberScores()
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	byName := map[string]MemberScoreRow{}
	for _, row := range rows {
		byName[row.MemberName] = row
	}
	suite.True(byName["Sam  LEE"].DualRole, "normalized name should match the coach")
	suite.False(byName["Pat Kim"].DualRole)
	// member row reports member-grain points only
	suite.Equal(1, byName["Sam  LEE"].TotalPoints)
	suite.Equal([]string{"Session 1"}, byName["Sam  LEE"].EventsList)
}

func (suite *ScoringServiceTestSuite) TestMemberScores_SkipsMembersOfInactiveTeams() {
	team := newTeam("Alpha", nil, 1)
	onTeam := newMember("A", team.ID)
	orphan := newMember("B", uuid.New())

	suite.teamRepo.EXPECT().GetAll(true).Return([]models.Team{team}, nil)
	suite.memberRepo.EXPECT().GetAll(true).Return([]models.Member{onTeam, orphan}, nil)
	suite.attendanceRepo.EXPECT().ListMemberRecords().Return(nil, nil)
	suite.eventRepo.EXPECT().GetAll(false).Return(nil, nil)
	suite.coachRepo.EXPECT().GetAll(true).Return(nil, nil)

	rows, err := suite.service.MemberScores()
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("A", rows[0].MemberName)
}

func (suite *ScoringServiceTestSuite) TestCoachScores_TeamsCoachedFromLiveLinks() {
	coach := newCoach("Dana")
	other := newCoach("Erik")
	teams := []models.Team{
		newTeam("Alpha", &coach.ID, 5),
		newTeam("Beta", &coach.ID, 5),
		newTeam("Gamma", &coach.ID, 5),
	}
	eventA, eventB := uuid.New(), uuid.New()
	coachRecords := []models.AttendanceRecord{
		coachRecord(eventA, coach.ID, 2),
		coachRecord(eventB, coach.ID, 2),
	}

	suite.coachRepo.EXPECT().GetAll(true).Return([]models.Coach{coach, other}, nil)
	suite.teamRepo.EXPECT().GetAll(true).Return(teams, nil)
	suite.attendanceRepo.EXPECT().ListCoachRecords().Return(coachRecords, nil)

	rows, err := suite.service.CoachScores()
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	suite.Equal("Dana", rows[0].CoachName)
	suite.Equal(4, rows[0].TotalPoints)
	suite.Equal(2, rows[0].SessionsAttended)
	suite.Equal(3, rows[0].TeamsCoached)

	suite.Equal("Erik", rows[1].CoachName)
	suite.Equal(0, rows[1].TotalPoints)
	suite.Equal(0, rows[1].TeamsCoached)
}

func TestScoringServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScoringServiceTestSuite))
}
