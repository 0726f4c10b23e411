package service

import (
	"testing"

	"hackathon-dashboard-backend/internal/database/models"
	"hackathon-dashboard-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// validatorFixture is the full row set one Validate run reads
type validatorFixture struct {
	teams         []models.Team
	members       []models.Member
	coaches       []models.Coach
	events        []models.Event
	memberRecords []models.AttendanceRecord
	coachRecords  []models.AttendanceRecord
	bonuses       []models.BonusPoint
}

// ValidationServiceTestSuite tests the integrity checks over mocked repositories
type ValidationServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	teamRepo       *mocks.MockTeamRepositoryInterface
	memberRepo     *mocks.MockMemberRepositoryInterface
	coachRepo      *mocks.MockCoachRepositoryInterface
	eventRepo      *mocks.MockEventRepositoryInterface
	attendanceRepo *mocks.MockAttendanceRepositoryInterface
	bonusRepo      *mocks.MockBonusRepositoryInterface
	service        *ValidationService
}

func (suite *ValidationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.teamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.memberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.coachRepo = mocks.NewMockCoachRepositoryInterface(suite.ctrl)
	suite.eventRepo = mocks.NewMockEventRepositoryInterface(suite.ctrl)
	suite.attendanceRepo = mocks.NewMockAttendanceRepositoryInterface(suite.ctrl)
	suite.bonusRepo = mocks.NewMockBonusRepositoryInterface(suite.ctrl)
	suite.service = NewValidationService(
		suite.teamRepo, suite.memberRepo, suite.coachRepo,
		suite.eventRepo, suite.attendanceRepo, suite.bonusRepo,
	)
}

func (suite *ValidationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// stubFixture wires every read the validator and its independent recomputation
// perform. Validation fans out over the same repositories repeatedly, so all
// stubs allow any call count.
func (suite *ValidationServiceTestSuite) stubFixture(f validatorFixture) {
	activeTeams := filterTeams(f.teams)
	activeMembers := filterMembers(f.members)
	activeCoaches := filterCoaches(f.coaches)

	suite.teamRepo.EXPECT().GetAll(false).Return(f.teams, nil).AnyTimes()
	suite.teamRepo.EXPECT().GetAll(true).Return(activeTeams, nil).AnyTimes()
	suite.memberRepo.EXPECT().GetAll(false).Return(f.members, nil).AnyTimes()
	suite.memberRepo.EXPECT().GetAll(true).Return(activeMembers, nil).AnyTimes()
	suite.coachRepo.EXPECT().GetAll(false).Return(f.coaches, nil).AnyTimes()
	suite.coachRepo.EXPECT().GetAll(true).Return(activeCoaches, nil).AnyTimes()
	suite.eventRepo.EXPECT().GetAll(gomock.Any()).Return(f.events, nil).AnyTimes()
	suite.attendanceRepo.EXPECT().ListMemberRecords().Return(f.memberRecords, nil).AnyTimes()
	suite.attendanceRepo.EXPECT().ListCoachRecords().Return(f.coachRecords, nil).AnyTimes()
	suite.bonusRepo.EXPECT().ListActive().Return(f.bonuses, nil).AnyTimes()

	for i := range f.teams {
		team := f.teams[i]
		suite.teamRepo.EXPECT().GetByID(team.ID).Return(&team, nil).AnyTimes()

		var roster []models.Member
		for _, m := range activeMembers {
			if m.TeamID == team.ID {
				roster = append(roster, m)
			}
		}
		suite.memberRepo.EXPECT().GetByTeamID(team.ID, true).Return(roster, nil).AnyTimes()

		rosterIDs := make(map[uuid.UUID]bool, len(roster))
		for _, m := range roster {
			rosterIDs[m.ID] = true
		}
		var rosterRecords []models.AttendanceRecord
		for _, rec := range f.memberRecords {
			if rec.MemberID != nil && rosterIDs[*rec.MemberID] {
				rosterRecords = append(rosterRecords, rec)
			}
		}
		suite.attendanceRepo.EXPECT().ListByMembers(gomock.Any()).Return(rosterRecords, nil).AnyTimes()
	}
}

func filterTeams(teams []models.Team) []models.Team {
	var out []models.Team
	for _, t := range teams {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out
}

func filterMembers(members []models.Member) []models.Member {
	var out []models.Member
	for _, m := range members {
		if m.IsActive {
			out = append(out, m)
		}
	}
	return out
}

func filterCoaches(coaches []models.Coach) []models.Coach {
	var out []models.Coach
	for _, c := range coaches {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out
}

func rulesOf(violations []Violation) map[string]int {
	rules := make(map[string]int)
	for _, v := range violations {
		rules[v.Rule]++
	}
	return rules
}

func (suite *ValidationServiceTestSuite) TestValidate_CleanStore() {
	coach := newCoach("Dana")
	team := newTeam("Alpha", &coach.ID, 2)
	m1 := newMember("A", team.ID)
	m2 := newMember("B", team.ID)
	event := uuid.New()

	suite.stubFixture(validatorFixture{
		teams:   []models.Team{team},
		members: []models.Member{m1, m2},
		coaches: []models.Coach{coach},
		memberRecords: []models.AttendanceRecord{
			memberRecord(event, m1.ID, true, 1),
			memberRecord(event, m2.ID, false, 0),
		},
		coachRecords: []models.AttendanceRecord{coachRecord(event, coach.ID, 2)},
	})

	violations, err := suite.service.Validate()
	suite.Require().NoError(err)
	suite.Empty(violations)
}

func (suite *ValidationServiceTestSuite) TestValidate_DuplicateActiveTeamNames() {
	t1 := newTeam("The  Sharks", nil, 1)
	t2 := newTeam("the sharks", nil, 1)

	suite.stubFixture(validatorFixture{teams: []models.Team{t1, t2}})

	violations, err := suite.service.Validate()
	suite.Require().NoError(err)
	suite.Equal(1, rulesOf(violations)[RuleDuplicateTeamName])
}

func (suite *ValidationServiceTestSuite) TestValidate_MalformedAttendanceRecord() {
	team := newTeam("Alpha", nil, 1)
	m := newMember("A", team.ID)
	coach := newCoach("Dana")
	event := uuid.New()

	// record referencing both a member and a coach
	bad := memberRecord(event, m.ID, true, 1)
	bad.CoachID = &coach.ID

	suite.stubFixture(validatorFixture{
		teams:         []models.Team{team},
		members:       []models.Member{m},
		coaches:       []models.Coach{coach},
		memberRecords: []models.AttendanceRecord{bad},
	})

	violations, err := suite.service.Validate()
	suite.Require().NoError(err)
	suite.GreaterOrEqual(rulesOf(violations)[RuleAttendanceOneOf], 1)
}

func (suite *ValidationServiceTestSuite) TestValidate_OrphanMember() {
	team := newTeam("Alpha", nil, 1)
	team.IsActive = false
	m := newMember("A", team.ID)

	suite.stubFixture(validatorFixture{
		teams:   []models.Team{team},
		members: []models.Member{m},
	})

	violations, err := suite.service.Validate()
	suite.Require().NoError(err)
	suite.Equal(1, rulesOf(violations)[RuleOrphanMember])
}

func (suite *ValidationServiceTestSuite) TestValidate_MultipleLeaders() {
	team := newTeam("Alpha", nil, 2)
	m1 := newMember("A", team.ID)
	m1.IsLeader = true
	m2 := newMember("B", team.ID)
	m2.IsLeader = true

	suite.stubFixture(validatorFixture{
		teams:   []models.Team{team},
		members: []models.Member{m1, m2},
	})

	violations, err := suite.service.Validate()
	suite.Require().NoError(err)
	suite.Equal(1, rulesOf(violations)[RuleMultipleLeaders])
}

func (suite *ValidationServiceTestSuite) TestValidate_UnresolvableBonusTarget() {
	team := newTeam("Alpha", nil, 1)
	bonus := models.BonusPoint{
		TargetKind: models.BonusTargetMember,
		TargetID:   uuid.New(), // no such member
		Points:     5,
		IsActive:   true,
	}
	bonus.ID = uuid.New()

	suite.stubFixture(validatorFixture{
		teams:   []models.Team{team},
		bonuses: []models.BonusPoint{bonus},
	})

	violations, err := suite.service.Validate()
	suite.Require().NoError(err)
	suite.Equal(1, rulesOf(violations)[RuleBonusTarget])
}

func (suite *ValidationServiceTestSuite) TestValidateAgainstSnapshot() {
	team := newTeam("Alpha", nil, 1)
	m := newMember("A", team.ID)

	suite.stubFixture(validatorFixture{
		teams:   []models.Team{team},
		members: []models.Member{m},
	})

	suite.Run("matching counts", func() {
		violations, err := suite.service.ValidateAgainstSnapshot(RowCounts{Teams: 1, Members: 1})
		suite.Require().NoError(err)
		suite.Empty(violations)
	})

	suite.Run("mismatched counts", func() {
		violations, err := suite.service.ValidateAgainstSnapshot(RowCounts{Teams: 2, Members: 1, Events: 3})
		suite.Require().NoError(err)
		rules := rulesOf(violations)
		suite.Equal(2, rules[RuleRowCountMismatch])
	})
}

func TestValidationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ValidationServiceTestSuite))
}
