package services

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
	"github.com/arnavsharma2711/pianifica-sub000/internal/repository"
)

type TagServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *TagService

	org  *models.Organization
	user *models.User
	task *models.Task
}

func (suite *TagServiceTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())
	suite.service = NewTagService(suite.db)

	suite.org = createTestOrganization(suite.db, "Acme")
	suite.user = createTestUser(suite.db, suite.org.ID, "alice")
	project := createTestProject(suite.db, suite.org.ID, "Platform")
	suite.task = createTestTask(suite.db, project.ID, suite.user.ID, "Ship it")
}

func (suite *TagServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TagServiceTestSuite) taskTagNames() []string {
	tags, err := repository.NewTagRepository(suite.db).ListTagsByTask(suite.task.ID)
	suite.Require().NoError(err)

	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.Name
	}
	sort.Strings(names)
	return names
}

func (suite *TagServiceTestSuite) TestCreateTag() {
	tag, err := suite.service.CreateTag("backend")
	suite.NoError(err)
	suite.NotZero(tag.ID)
}

func (suite *TagServiceTestSuite) TestCreateTagDuplicateName() {
	_, err := suite.service.CreateTag("backend")
	suite.Require().NoError(err)

	_, err = suite.service.CreateTag("backend")
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindConflict))
}

func (suite *TagServiceTestSuite) TestCreateTagEmptyName() {
	_, err := suite.service.CreateTag("   ")
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindValidation))
}

func (suite *TagServiceTestSuite) TestDeleteTagStillAssigned() {
	tag := createTestTag(suite.db, "backend")
	err := suite.service.ReconcileTaskTags(suite.task.ID, suite.org.ID, []string{"backend"})
	suite.Require().NoError(err)

	err = suite.service.DeleteTag(tag.ID)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindConflict))

	// Unassigning frees the tag for deletion.
	err = suite.service.ReconcileTaskTags(suite.task.ID, suite.org.ID, nil)
	suite.Require().NoError(err)
	suite.NoError(suite.service.DeleteTag(tag.ID))
}

func (suite *TagServiceTestSuite) TestDeleteTagNotFound() {
	err := suite.service.DeleteTag(9999)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindNotFound))
}

func (suite *TagServiceTestSuite) TestReconcileAddsAndSkipsUnknownNames() {
	createTestTag(suite.db, "backend")
	createTestTag(suite.db, "frontend")

	err := suite.service.ReconcileTaskTags(suite.task.ID, suite.org.ID, []string{"backend", "frontend", "ghost"})
	suite.Require().NoError(err)

	// "ghost" does not exist in the catalog and is silently skipped.
	suite.Equal([]string{"backend", "frontend"}, suite.taskTagNames())
}

func (suite *TagServiceTestSuite) TestReconcileIsIdempotent() {
	createTestTag(suite.db, "backend")
	createTestTag(suite.db, "frontend")

	desired := []string{"backend", "frontend"}
	suite.Require().NoError(suite.service.ReconcileTaskTags(suite.task.ID, suite.org.ID, desired))
	suite.Require().NoError(suite.service.ReconcileTaskTags(suite.task.ID, suite.org.ID, desired))

	suite.Equal([]string{"backend", "frontend"}, suite.taskTagNames())

	var mappings int64
	suite.db.Model(&models.TagMapping{}).Where("task_id = ?", suite.task.ID).Count(&mappings)
	suite.Equal(int64(2), mappings)
}

func (suite *TagServiceTestSuite) TestReconcileAppliesMinimalDelta() {
	createTestTag(suite.db, "backend")
	createTestTag(suite.db, "frontend")
	createTestTag(suite.db, "infra")

	suite.Require().NoError(suite.service.ReconcileTaskTags(suite.task.ID, suite.org.ID, []string{"backend", "frontend"}))
	suite.Require().NoError(suite.service.ReconcileTaskTags(suite.task.ID, suite.org.ID, []string{"frontend", "infra"}))

	suite.Equal([]string{"frontend", "infra"}, suite.taskTagNames())
}

func (suite *TagServiceTestSuite) TestReconcileEmptyDesiredClearsTags() {
	createTestTag(suite.db, "backend")
	suite.Require().NoError(suite.service.ReconcileTaskTags(suite.task.ID, suite.org.ID, []string{"backend"}))

	suite.Require().NoError(suite.service.ReconcileTaskTags(suite.task.ID, suite.org.ID, nil))
	suite.Empty(suite.taskTagNames())
}

func (suite *TagServiceTestSuite) TestReconcileUnknownTask() {
	err := suite.service.ReconcileTaskTags(9999, suite.org.ID, []string{"backend"})
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindNotFound))
}

func (suite *TagServiceTestSuite) TestReconcileTaskOutsideOrganization() {
	other := createTestOrganization(suite.db, "Globex")
	err := suite.service.ReconcileTaskTags(suite.task.ID, other.ID, []string{"backend"})
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestTagServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TagServiceTestSuite))
}
