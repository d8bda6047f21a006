package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
)

type BookmarkServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *BookmarkService

	org     *models.Organization
	user    *models.User
	project *models.Project
	task    *models.Task
}

func (suite *BookmarkServiceTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())
	suite.service = NewBookmarkService(suite.db)

	suite.org = createTestOrganization(suite.db, "Acme")
	suite.user = createTestUser(suite.db, suite.org.ID, "alice")
	suite.project = createTestProject(suite.db, suite.org.ID, "Platform")
	suite.task = createTestTask(suite.db, suite.project.ID, suite.user.ID, "Ship it")
}

func (suite *BookmarkServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *BookmarkServiceTestSuite) TestCreateBookmark() {
	bookmark, err := suite.service.CreateBookmark(suite.user.ID, suite.org.ID, models.BookmarkEntityTask, suite.task.ID)
	suite.Require().NoError(err)
	suite.NotZero(bookmark.ID)
}

func (suite *BookmarkServiceTestSuite) TestCreateBookmarkDuplicate() {
	_, err := suite.service.CreateBookmark(suite.user.ID, suite.org.ID, models.BookmarkEntityTask, suite.task.ID)
	suite.Require().NoError(err)

	_, err = suite.service.CreateBookmark(suite.user.ID, suite.org.ID, models.BookmarkEntityTask, suite.task.ID)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindConflict))
}

func (suite *BookmarkServiceTestSuite) TestCreateBookmarkSameIDDifferentType() {
	// The same numeric id may be bookmarked once per entity type.
	project := createTestProject(suite.db, suite.org.ID, "Mobile")
	task := createTestTask(suite.db, project.ID, suite.user.ID, "Other")

	_, err := suite.service.CreateBookmark(suite.user.ID, suite.org.ID, models.BookmarkEntityTask, task.ID)
	suite.Require().NoError(err)
	_, err = suite.service.CreateBookmark(suite.user.ID, suite.org.ID, models.BookmarkEntityProject, project.ID)
	suite.NoError(err)
}

func (suite *BookmarkServiceTestSuite) TestCreateBookmarkUnknownEntityType() {
	_, err := suite.service.CreateBookmark(suite.user.ID, suite.org.ID, models.BookmarkEntityType("User"), suite.user.ID)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindValidation))
}

func (suite *BookmarkServiceTestSuite) TestCreateBookmarkMissingTarget() {
	_, err := suite.service.CreateBookmark(suite.user.ID, suite.org.ID, models.BookmarkEntityTask, 9999)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindNotFound))
}

func (suite *BookmarkServiceTestSuite) TestCreateBookmarkTargetOutsideOrganization() {
	other := createTestOrganization(suite.db, "Globex")
	otherProject := createTestProject(suite.db, other.ID, "Secret")

	_, err := suite.service.CreateBookmark(suite.user.ID, suite.org.ID, models.BookmarkEntityProject, otherProject.ID)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindNotFound))
}

func (suite *BookmarkServiceTestSuite) TestListBookmarksJoinsTargetName() {
	_, err := suite.service.CreateBookmark(suite.user.ID, suite.org.ID, models.BookmarkEntityTask, suite.task.ID)
	suite.Require().NoError(err)
	_, err = suite.service.CreateBookmark(suite.user.ID, suite.org.ID, models.BookmarkEntityProject, suite.project.ID)
	suite.Require().NoError(err)

	rows, total, err := suite.service.ListBookmarks(suite.user.ID, models.BookmarkEntityTask, 10, 1)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(rows, 1)
	suite.Equal("Ship it", rows[0].EntityName)
	suite.Equal(suite.task.ID, rows[0].EntityID)
}

func (suite *BookmarkServiceTestSuite) TestListBookmarksHidesSoftDeletedTargets() {
	_, err := suite.service.CreateBookmark(suite.user.ID, suite.org.ID, models.BookmarkEntityTask, suite.task.ID)
	suite.Require().NoError(err)

	suite.db.Delete(&models.Task{}, suite.task.ID)

	rows, total, err := suite.service.ListBookmarks(suite.user.ID, models.BookmarkEntityTask, 10, 1)
	suite.Require().NoError(err)
	suite.Equal(int64(0), total)
	suite.Empty(rows)
}

func (suite *BookmarkServiceTestSuite) TestListBookmarksInvalidType() {
	_, _, err := suite.service.ListBookmarks(suite.user.ID, models.BookmarkEntityType("User"), 10, 1)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindValidation))
}

func (suite *BookmarkServiceTestSuite) TestDeleteBookmark() {
	_, err := suite.service.CreateBookmark(suite.user.ID, suite.org.ID, models.BookmarkEntityTask, suite.task.ID)
	suite.Require().NoError(err)

	suite.NoError(suite.service.DeleteBookmark(suite.user.ID, models.BookmarkEntityTask, suite.task.ID))

	err = suite.service.DeleteBookmark(suite.user.ID, models.BookmarkEntityTask, suite.task.ID)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestBookmarkServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BookmarkServiceTestSuite))
}
