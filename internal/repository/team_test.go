//go:build integration
// +build integration

package repository

import (
	"testing"

	"hackathon-dashboard-backend/internal/database/models"
	"hackathon-dashboard-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamRepositoryTestSuite) TestCreate() {
	team := suite.factories.Team.Create()

	err := suite.repo.Create(team)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
	suite.NotZero(team.CreatedAt)
}

func (suite *TeamRepositoryTestSuite) TestCreateDuplicateActiveName() {
	team1 := suite.factories.Team.WithName("The Sharks")
	suite.NoError(suite.repo.Create(team1))

	team2 := suite.factories.Team.WithName("The Sharks")
	err := suite.repo.Create(team2)
	suite.Error(err, "partial unique index should reject a second active team with the same name")
}

func (suite *TeamRepositoryTestSuite) TestInactiveNameCanBeReused() {
	team1 := suite.factories.Team.WithName("Reborn")
	suite.NoError(suite.repo.Create(team1))
	suite.NoError(suite.repo.SetActive(team1.ID, false))

	team2 := suite.factories.Team.WithName("Reborn")
	suite.NoError(suite.repo.Create(team2), "deactivated team should free its name")
}

func (suite *TeamRepositoryTestSuite) TestGetActiveByName() {
	team := suite.factories.Team.WithName("Lookup Target")
	suite.NoError(suite.repo.Create(team))

	found, err := suite.repo.GetActiveByName("Lookup Target")
	suite.NoError(err)
	suite.Equal(team.ID, found.ID)

	_, err = suite.repo.GetActiveByName("No Such Team")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TeamRepositoryTestSuite) TestGetAllActiveOnly() {
	active := suite.factories.Team.WithName("Active")
	inactive := suite.factories.Team.WithName("Inactive")
	inactive.IsActive = false
	suite.NoError(suite.repo.Create(active))
	suite.NoError(suite.repo.Create(inactive))

	all, err := suite.repo.GetAll(false)
	suite.NoError(err)
	suite.Len(all, 2)

	activeOnly, err := suite.repo.GetAll(true)
	suite.NoError(err)
	suite.Len(activeOnly, 1)
	suite.Equal("Active", activeOnly[0].Name)
}

func (suite *TeamRepositoryTestSuite) TestUpdateFields() {
	team := suite.factories.Team.WithName("Before")
	suite.NoError(suite.repo.Create(team))

	err := suite.repo.UpdateFields(team.ID, map[string]interface{}{"name": "After"})
	suite.NoError(err)

	found, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Equal("After", found.Name)
}

func (suite *TeamRepositoryTestSuite) TestGetWithMembers() {
	team := suite.factories.Team.Create()
	suite.NoError(suite.repo.Create(team))

	memberRepo := NewMemberRepository(suite.baseTestSuite.DB)
	for _, m := range suite.factories.Member.CreateRoster(team.ID, 3) {
		suite.NoError(memberRepo.Create(m))
	}

	found, err := suite.repo.GetWithMembers(team.ID)
	suite.NoError(err)
	suite.Len(found.Members, 3)
}

func (suite *TeamRepositoryTestSuite) TestCountActiveByCoach() {
	coachRepo := NewCoachRepository(suite.baseTestSuite.DB)
	coach := suite.factories.Coach.Create()
	suite.NoError(coachRepo.Create(coach))

	for i := 0; i < 2; i++ {
		team := suite.factories.Team.WithCoach(coach.ID)
		suite.NoError(suite.repo.Create(team))
	}
	retired := suite.factories.Team.WithCoach(coach.ID)
	suite.NoError(suite.repo.Create(retired))
	suite.NoError(suite.repo.SetActive(retired.ID, false))

	count, err := suite.repo.CountActiveByCoach(coach.ID)
	suite.NoError(err)
	suite.Equal(int64(2), count)
}

func (suite *TeamRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}

// MemberRepositoryTestSuite tests the MemberRepository
type MemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MemberRepository
	teams         *TeamRepository
	factories     *testutils.FactorySet
}

func (suite *MemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMemberRepository(suite.baseTestSuite.DB)
	suite.teams = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *MemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *MemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *MemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *MemberRepositoryTestSuite) createTeam() *models.Team {
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.teams.Create(team))
	return team
}

func (suite *MemberRepositoryTestSuite) TestCreateAndGetByTeam() {
	team := suite.createTeam()
	for _, m := range suite.factories.Member.CreateRoster(team.ID, 4) {
		suite.NoError(suite.repo.Create(m))
	}

	roster, err := suite.repo.GetByTeamID(team.ID, true)
	suite.NoError(err)
	suite.Len(roster, 4)
}

func (suite *MemberRepositoryTestSuite) TestDuplicateNameOnSameTeam() {
	team := suite.createTeam()

	m1 := suite.factories.Member.WithTeam(team.ID)
	m1.Name = "Twin"
	suite.NoError(suite.repo.Create(m1))

	m2 := suite.factories.Member.WithTeam(team.ID)
	m2.Name = "Twin"
	suite.Error(suite.repo.Create(m2))
}

func (suite *MemberRepositoryTestSuite) TestSameNameOnDifferentTeams() {
	teamA := suite.createTeam()
	teamB := suite.createTeam()

	m1 := suite.factories.Member.WithTeam(teamA.ID)
	m1.Name = "Common Name"
	suite.NoError(suite.repo.Create(m1))

	m2 := suite.factories.Member.WithTeam(teamB.ID)
	m2.Name = "Common Name"
	suite.NoError(suite.repo.Create(m2))
}

func (suite *MemberRepositoryTestSuite) TestCountActiveLeaders() {
	team := suite.createTeam()

	leader := suite.factories.Member.WithTeam(team.ID)
	leader.IsLeader = true
	suite.NoError(suite.repo.Create(leader))

	plain := suite.factories.Member.WithTeam(team.ID)
	suite.NoError(suite.repo.Create(plain))

	count, err := suite.repo.CountActiveLeaders(team.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)

	suite.NoError(suite.repo.SetActive(leader.ID, false))
	count, err = suite.repo.CountActiveLeaders(team.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)
}

func (suite *MemberRepositoryTestSuite) TestReassignTeam() {
	from := suite.createTeam()
	to := suite.createTeam()
	for _, m := range suite.factories.Member.CreateRoster(from.ID, 2) {
		suite.NoError(suite.repo.Create(m))
	}

	suite.NoError(suite.repo.ReassignTeam(from.ID, to.ID))

	moved, err := suite.repo.GetByTeamID(to.ID, true)
	suite.NoError(err)
	suite.Len(moved, 2)

	remaining, err := suite.repo.GetByTeamID(from.ID, true)
	suite.NoError(err)
	suite.Len(remaining, 0)
}

func TestMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemberRepositoryTestSuite))
}
