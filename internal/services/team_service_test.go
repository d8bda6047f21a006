package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
)

type TeamServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *TeamService

	org     *models.Organization
	lead    *models.User
	manager *models.User
	member  *models.User
	team    *models.Team
}

func (suite *TeamServiceTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())
	suite.service = NewTeamService(suite.db)

	suite.org = createTestOrganization(suite.db, "Acme")
	suite.lead = createTestUser(suite.db, suite.org.ID, "lead")
	suite.manager = createTestUser(suite.db, suite.org.ID, "manager")
	suite.member = createTestUser(suite.db, suite.org.ID, "member")
	suite.team = createTestTeam(suite.db, suite.org.ID, suite.lead.ID, suite.manager.ID, "Core")
}

func (suite *TeamServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TeamServiceTestSuite) addMemberAsManager(userID uint64) error {
	return suite.service.AddMember(suite.team.ID, userID, suite.org.ID, suite.manager.ID, false)
}

func (suite *TeamServiceTestSuite) TestCreateTeamSameLeadAndManager() {
	team, err := suite.service.CreateTeam(CreateTeamInput{
		OrganizationID: suite.org.ID,
		Name:           "Solo",
		LeadID:         suite.lead.ID,
		ManagerID:      suite.lead.ID,
	})
	suite.Require().NoError(err)
	suite.Equal(team.LeadID, team.ManagerID)
}

func (suite *TeamServiceTestSuite) TestCreateTeamDuplicateName() {
	_, err := suite.service.CreateTeam(CreateTeamInput{
		OrganizationID: suite.org.ID,
		Name:           "Core",
		LeadID:         suite.lead.ID,
		ManagerID:      suite.manager.ID,
	})
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindConflict))
}

func (suite *TeamServiceTestSuite) TestCreateTeamLeadOutsideOrganization() {
	other := createTestOrganization(suite.db, "Globex")
	outsider := createTestUser(suite.db, other.ID, "outsider")

	_, err := suite.service.CreateTeam(CreateTeamInput{
		OrganizationID: suite.org.ID,
		Name:           "Remote",
		LeadID:         outsider.ID,
		ManagerID:      suite.manager.ID,
	})
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindNotFound))
}

func (suite *TeamServiceTestSuite) TestAddMember() {
	suite.NoError(suite.addMemberAsManager(suite.member.ID))

	_, members, err := suite.service.GetTeam(suite.team.ID, suite.org.ID)
	suite.Require().NoError(err)
	suite.Len(members, 1)
	suite.Equal(suite.member.ID, members[0].UserID)
}

func (suite *TeamServiceTestSuite) TestAddMemberRejectsLead() {
	err := suite.addMemberAsManager(suite.lead.ID)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindConflict))
}

func (suite *TeamServiceTestSuite) TestAddMemberRejectsManager() {
	err := suite.addMemberAsManager(suite.manager.ID)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindConflict))
}

func (suite *TeamServiceTestSuite) TestAddMemberDuplicate() {
	suite.Require().NoError(suite.addMemberAsManager(suite.member.ID))

	err := suite.addMemberAsManager(suite.member.ID)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindConflict))
}

func (suite *TeamServiceTestSuite) TestAddMemberRequiresManagerOrAdmin() {
	err := suite.service.AddMember(suite.team.ID, suite.member.ID, suite.org.ID, suite.member.ID, false)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindUnauthorized))

	// An admin who is not the manager may add members.
	admin := createTestUser(suite.db, suite.org.ID, "admin")
	suite.NoError(suite.service.AddMember(suite.team.ID, suite.member.ID, suite.org.ID, admin.ID, true))
}

func (suite *TeamServiceTestSuite) TestAddMemberOutsideOrganization() {
	other := createTestOrganization(suite.db, "Globex")
	outsider := createTestUser(suite.db, other.ID, "outsider")

	err := suite.addMemberAsManager(outsider.ID)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindNotFound))
}

func (suite *TeamServiceTestSuite) TestRemoveMember() {
	suite.Require().NoError(suite.addMemberAsManager(suite.member.ID))

	err := suite.service.RemoveMember(suite.team.ID, suite.member.ID, suite.org.ID, suite.manager.ID, false)
	suite.NoError(err)

	_, members, err := suite.service.GetTeam(suite.team.ID, suite.org.ID)
	suite.Require().NoError(err)
	suite.Empty(members)
}

func (suite *TeamServiceTestSuite) TestRemoveMemberNeverRemovesLeadOrManager() {
	err := suite.service.RemoveMember(suite.team.ID, suite.lead.ID, suite.org.ID, suite.manager.ID, false)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindConflict))

	err = suite.service.RemoveMember(suite.team.ID, suite.manager.ID, suite.org.ID, suite.manager.ID, false)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindConflict))
}

func (suite *TeamServiceTestSuite) TestRemoveMemberNotAMember() {
	err := suite.service.RemoveMember(suite.team.ID, suite.member.ID, suite.org.ID, suite.manager.ID, false)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindNotFound))
}

func (suite *TeamServiceTestSuite) TestUpdateTeamManagerOnly() {
	name := "Renamed"
	_, err := suite.service.UpdateTeam(suite.team.ID, suite.org.ID, suite.member.ID, UpdateTeamInput{Name: &name})
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindUnauthorized))

	team, err := suite.service.UpdateTeam(suite.team.ID, suite.org.ID, suite.manager.ID, UpdateTeamInput{Name: &name})
	suite.Require().NoError(err)
	suite.Equal("Renamed", team.Name)
}

func (suite *TeamServiceTestSuite) TestDeleteTeamWithMembersRequiresCascade() {
	suite.Require().NoError(suite.addMemberAsManager(suite.member.ID))

	err := suite.service.DeleteTeam(suite.team.ID, suite.org.ID, suite.manager.ID, false)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindConflict))

	suite.NoError(suite.service.DeleteTeam(suite.team.ID, suite.org.ID, suite.manager.ID, true))

	var memberCount int64
	suite.db.Model(&models.TeamMember{}).Where("team_id = ?", suite.team.ID).Count(&memberCount)
	suite.Equal(int64(0), memberCount)
}

func (suite *TeamServiceTestSuite) TestDeleteTeamManagerOnly() {
	err := suite.service.DeleteTeam(suite.team.ID, suite.org.ID, suite.lead.ID, false)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindUnauthorized))
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
