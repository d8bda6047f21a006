package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
)

type ProjectServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *ProjectService

	org *models.Organization
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())
	suite.service = NewProjectService(suite.db)
	suite.org = createTestOrganization(suite.db, "Acme")
}

func (suite *ProjectServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ProjectServiceTestSuite) TestCreateProjectDuplicateNameInOrganization() {
	_, err := suite.service.CreateProject(CreateProjectInput{OrganizationID: suite.org.ID, Name: "Alpha"})
	suite.Require().NoError(err)

	_, err = suite.service.CreateProject(CreateProjectInput{OrganizationID: suite.org.ID, Name: "Alpha"})
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindConflict))
}

func (suite *ProjectServiceTestSuite) TestCreateProjectSameNameAcrossOrganizations() {
	other := createTestOrganization(suite.db, "Globex")

	_, err := suite.service.CreateProject(CreateProjectInput{OrganizationID: suite.org.ID, Name: "Alpha"})
	suite.Require().NoError(err)

	_, err = suite.service.CreateProject(CreateProjectInput{OrganizationID: other.ID, Name: "Alpha"})
	suite.NoError(err)
}

func (suite *ProjectServiceTestSuite) TestCreateProjectNameReusableAfterDelete() {
	project, err := suite.service.CreateProject(CreateProjectInput{OrganizationID: suite.org.ID, Name: "Alpha"})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.DeleteProject(project.ID, suite.org.ID))

	_, err = suite.service.CreateProject(CreateProjectInput{OrganizationID: suite.org.ID, Name: "Alpha"})
	suite.NoError(err)
}

func (suite *ProjectServiceTestSuite) TestUpdateProjectRenameConflict() {
	_, err := suite.service.CreateProject(CreateProjectInput{OrganizationID: suite.org.ID, Name: "Alpha"})
	suite.Require().NoError(err)
	beta, err := suite.service.CreateProject(CreateProjectInput{OrganizationID: suite.org.ID, Name: "Beta"})
	suite.Require().NoError(err)

	name := "Alpha"
	_, err = suite.service.UpdateProject(beta.ID, suite.org.ID, UpdateProjectInput{Name: &name})
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindConflict))
}

func (suite *ProjectServiceTestSuite) TestGetProjectOutsideOrganization() {
	project, err := suite.service.CreateProject(CreateProjectInput{OrganizationID: suite.org.ID, Name: "Alpha"})
	suite.Require().NoError(err)

	other := createTestOrganization(suite.db, "Globex")
	_, err = suite.service.GetProject(project.ID, other.ID)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
