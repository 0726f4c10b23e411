//go:build integration
// +build integration

package service

import (
	"testing"

	"hackathon-dashboard-backend/internal/database/models"
	apperrors "hackathon-dashboard-backend/internal/errors"
	"hackathon-dashboard-backend/internal/repository"
	"hackathon-dashboard-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// RosterServiceTestSuite covers the roster operations that depend on real
// database semantics: partial unique indexes, merge repointing and the score
// preservation checks.
type RosterServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	service       *RosterService
	factories     *testutils.FactorySet
}

func (suite *RosterServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.service = NewRosterService(suite.baseTestSuite.DB, validator.New())
	suite.factories = testutils.NewFactorySet()
}

func (suite *RosterServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *RosterServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *RosterServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *RosterServiceTestSuite) TestCreateTeamWithNewCoach() {
	team, err := suite.service.CreateTeam(&CreateTeamRequest{
		Name:       "The Sharks",
		Department: "Platform",
		RosterSize: 5,
		CoachName:  "Dana Priest",
		Actor:      "tester",
	})
	suite.Require().NoError(err)
	suite.Require().NotNil(team.CoachID)

	coach, err := repository.NewCoachRepository(suite.baseTestSuite.DB).GetByID(*team.CoachID)
	suite.Require().NoError(err)
	suite.Equal("Dana Priest", coach.Name)
}

func (suite *RosterServiceTestSuite) TestCreateTeamResolvesExistingCoach() {
	coach := suite.factories.Coach.WithName("Dana Priest")
	suite.Require().NoError(repository.NewCoachRepository(suite.baseTestSuite.DB).Create(coach))

	// normalized matching tolerates case and spacing differences
	team, err := suite.service.CreateTeam(&CreateTeamRequest{
		Name:      "The Otters",
		CoachName: "  dana  PRIEST ",
		Actor:     "tester",
	})
	suite.Require().NoError(err)
	suite.Require().NotNil(team.CoachID)
	suite.Equal(coach.ID, *team.CoachID)
}

func (suite *RosterServiceTestSuite) TestCreateTeamDuplicateName() {
	_, err := suite.service.CreateTeam(&CreateTeamRequest{Name: "The Sharks", Actor: "tester"})
	suite.Require().NoError(err)

	_, err = suite.service.CreateTeam(&CreateTeamRequest{Name: "The Sharks", Actor: "tester"})
	suite.ErrorIs(err, apperrors.ErrTeamExists)
}

func (suite *RosterServiceTestSuite) TestAddMemberSingleLeader() {
	team, err := suite.service.CreateTeam(&CreateTeamRequest{Name: "The Sharks", Actor: "tester"})
	suite.Require().NoError(err)

	_, err = suite.service.AddMember(&AddMemberRequest{
		TeamID: team.ID, Name: "Alice Ray", IsLeader: true, Actor: "tester",
	})
	suite.Require().NoError(err)

	_, err = suite.service.AddMember(&AddMemberRequest{
		TeamID: team.ID, Name: "Bob Chen", IsLeader: true, Actor: "tester",
	})
	suite.ErrorIs(err, apperrors.ErrLeaderAlreadySet)
}

func (suite *RosterServiceTestSuite) TestAddMemberNormalizedDuplicate() {
	team, err := suite.service.CreateTeam(&CreateTeamRequest{Name: "The Sharks", Actor: "tester"})
	suite.Require().NoError(err)

	_, err = suite.service.AddMember(&AddMemberRequest{TeamID: team.ID, Name: "Alice Ray", Actor: "tester"})
	suite.Require().NoError(err)

	_, err = suite.service.AddMember(&AddMemberRequest{TeamID: team.ID, Name: "ALICE  RAY", Actor: "tester"})
	suite.ErrorIs(err, apperrors.ErrMemberExists)
}

func (suite *RosterServiceTestSuite) TestRenameKeepsIdentityAndScore() {
	team, roster, event := suite.seedScoredTeam("Old Name", 3, 2)

	suite.Require().NoError(suite.service.RenameTeam(team.ID, "New Name", "tester"))

	reloaded, err := suite.service.GetTeam(team.ID)
	suite.Require().NoError(err)
	suite.Equal("New Name", reloaded.Name)
	suite.Equal(team.ID, reloaded.ID)

	// attendance still points at the same members, so points are unchanged
	records, err := repository.NewAttendanceRepository(suite.baseTestSuite.DB).
		ListByEventAndMembers(event.ID, []uuid.UUID{roster[0].ID, roster[1].ID, roster[2].ID})
	suite.Require().NoError(err)
	total := 0
	for _, r := range records {
		total += r.PointsEarned
	}
	suite.Equal(4, total)
}

func (suite *RosterServiceTestSuite) TestRenameToTakenName() {
	_, err := suite.service.CreateTeam(&CreateTeamRequest{Name: "Taken", Actor: "tester"})
	suite.Require().NoError(err)
	team, err := suite.service.CreateTeam(&CreateTeamRequest{Name: "Old", Actor: "tester"})
	suite.Require().NoError(err)

	suite.ErrorIs(suite.service.RenameTeam(team.ID, "Taken", "tester"), apperrors.ErrTeamExists)
}

func (suite *RosterServiceTestSuite) TestMergeRepointsAndPreservesMemberPoints() {
	canonical, canonicalRoster, event := suite.seedScoredTeam("Sharks", 3, 2)
	dup, dupRoster, _ := suite.seedScoredTeamForEvent("The  SHARKS", 3, 2, event)

	// one duplicate member is the same person under different spelling
	memberRepo := repository.NewMemberRepository(suite.baseTestSuite.DB)
	twin := dupRoster[0]
	twin.Name = "  " + canonicalRoster[0].Name + "  "
	suite.Require().NoError(memberRepo.Update(twin))

	suite.Require().NoError(suite.service.MergeTeams(dup.ID, canonical.ID, "tester"))

	dupReloaded, err := repository.NewTeamRepository(suite.baseTestSuite.DB).GetByID(dup.ID)
	suite.Require().NoError(err)
	suite.False(dupReloaded.IsActive, "duplicate is deactivated, not deleted")

	survivors, err := memberRepo.GetByTeamID(canonical.ID, true)
	suite.Require().NoError(err)
	suite.Len(survivors, 5, "3 canonical + 2 moved, the twin folded in")

	// the twin's attendance moved to the canonical member
	twinReloaded, err := memberRepo.GetByID(twin.ID)
	suite.Require().NoError(err)
	suite.False(twinReloaded.IsActive)

	records, err := repository.NewAttendanceRepository(suite.baseTestSuite.DB).
		ListByMembers([]uuid.UUID{twin.ID})
	suite.Require().NoError(err)
	suite.Empty(records, "no rows may keep pointing at the folded member")
}

func (suite *RosterServiceTestSuite) TestMergeSelfRejected() {
	team, err := suite.service.CreateTeam(&CreateTeamRequest{Name: "Solo", Actor: "tester"})
	suite.Require().NoError(err)

	suite.ErrorIs(suite.service.MergeTeams(team.ID, team.ID, "tester"), apperrors.ErrSelfMerge)
}

func (suite *RosterServiceTestSuite) TestMergeInactiveRejected() {
	a, err := suite.service.CreateTeam(&CreateTeamRequest{Name: "A", Actor: "tester"})
	suite.Require().NoError(err)
	b, err := suite.service.CreateTeam(&CreateTeamRequest{Name: "B", Actor: "tester"})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.service.DeactivateTeam(b.ID, "tester"))

	suite.ErrorIs(suite.service.MergeTeams(b.ID, a.ID, "tester"), apperrors.ErrTeamInactive)
}

// seedScoredTeam creates a team with a roster, one event and rotation rows
// giving the first two roster members the event's member rate each.
func (suite *RosterServiceTestSuite) seedScoredTeam(name string, rosterSize, memberPoints int) (*models.Team, []*models.Member, *models.Event) {
	event := suite.factories.Event.WithPoints(memberPoints, 0)
	suite.Require().NoError(repository.NewEventRepository(suite.baseTestSuite.DB).Create(event))
	team, roster, _ := suite.seedScoredTeamForEvent(name, rosterSize, memberPoints, event)
	return team, roster, event
}

func (suite *RosterServiceTestSuite) seedScoredTeamForEvent(name string, rosterSize, memberPoints int, event *models.Event) (*models.Team, []*models.Member, *models.Event) {
	team := suite.factories.Team.WithName(name)
	team.RosterSize = rosterSize
	suite.Require().NoError(repository.NewTeamRepository(suite.baseTestSuite.DB).Create(team))

	memberRepo := repository.NewMemberRepository(suite.baseTestSuite.DB)
	roster := make([]*models.Member, 0, rosterSize)
	for i := 0; i < rosterSize; i++ {
		m := suite.factories.Member.WithTeam(team.ID)
		suite.Require().NoError(memberRepo.Create(m))
		roster = append(roster, m)
	}

	attendance := repository.NewAttendanceRepository(suite.baseTestSuite.DB)
	for i, m := range roster {
		points := 0
		if i < 2 {
			points = memberPoints
		}
		rec := suite.factories.Attendance.ForMember(event.ID, m.ID, points)
		rec.Attended = points > 0
		rec.Source = models.SourceRotation
		suite.Require().NoError(attendance.Create(rec))
	}
	return team, roster, event
}

func TestRosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}
