package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
)

type TaskServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *TaskService

	org      *models.Organization
	project  *models.Project
	author   *models.User
	assignee *models.User
}

func (suite *TaskServiceTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())
	suite.service = NewTaskService(suite.db)

	suite.org = createTestOrganization(suite.db, "Acme")
	suite.project = createTestProject(suite.db, suite.org.ID, "Platform")
	suite.author = createTestUser(suite.db, suite.org.ID, "alice")
	suite.assignee = createTestUser(suite.db, suite.org.ID, "bob")
}

func (suite *TaskServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskServiceTestSuite) countNotifications(userID uint64) int64 {
	var count int64
	suite.db.Model(&models.Notification{}).Where("user_id = ?", userID).Count(&count)
	return count
}

func (suite *TaskServiceTestSuite) TestCreateTaskDefaults() {
	task, err := suite.service.CreateTask(CreateTaskInput{
		ProjectID:      suite.project.ID,
		OrganizationID: suite.org.ID,
		Title:          "Ship it",
		AuthorID:       suite.author.ID,
	})
	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusTodo, task.Status)
	suite.Equal(models.TaskPriorityBacklog, task.Priority)
}

func (suite *TaskServiceTestSuite) TestCreateTaskDuplicateTitleInOrganization() {
	other := createTestProject(suite.db, suite.org.ID, "Mobile")

	_, err := suite.service.CreateTask(CreateTaskInput{
		ProjectID:      suite.project.ID,
		OrganizationID: suite.org.ID,
		Title:          "Ship it",
		AuthorID:       suite.author.ID,
	})
	suite.Require().NoError(err)

	// Same title under a different project of the same organization still
	// collides.
	_, err = suite.service.CreateTask(CreateTaskInput{
		ProjectID:      other.ID,
		OrganizationID: suite.org.ID,
		Title:          "Ship it",
		AuthorID:       suite.author.ID,
	})
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindConflict))
}

func (suite *TaskServiceTestSuite) TestCreateTaskSameTitleAcrossOrganizations() {
	otherOrg := createTestOrganization(suite.db, "Globex")
	otherProject := createTestProject(suite.db, otherOrg.ID, "Platform")
	otherUser := createTestUser(suite.db, otherOrg.ID, "carol")

	_, err := suite.service.CreateTask(CreateTaskInput{
		ProjectID:      suite.project.ID,
		OrganizationID: suite.org.ID,
		Title:          "Ship it",
		AuthorID:       suite.author.ID,
	})
	suite.Require().NoError(err)

	_, err = suite.service.CreateTask(CreateTaskInput{
		ProjectID:      otherProject.ID,
		OrganizationID: otherOrg.ID,
		Title:          "Ship it",
		AuthorID:       otherUser.ID,
	})
	suite.NoError(err)
}

func (suite *TaskServiceTestSuite) TestCreateTaskUnknownProject() {
	_, err := suite.service.CreateTask(CreateTaskInput{
		ProjectID:      9999,
		OrganizationID: suite.org.ID,
		Title:          "Ship it",
		AuthorID:       suite.author.ID,
	})
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindNotFound))
}

func (suite *TaskServiceTestSuite) TestUpdateStatus() {
	task := createTestTask(suite.db, suite.project.ID, suite.author.ID, "Ship it")

	updated, err := suite.service.UpdateStatus(task.ID, models.TaskStatusInProgress, suite.org.ID)
	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusInProgress, updated.Status)
}

func (suite *TaskServiceTestSuite) TestUpdateStatusSelfTransition() {
	task := createTestTask(suite.db, suite.project.ID, suite.author.ID, "Ship it")

	_, err := suite.service.UpdateStatus(task.ID, models.TaskStatusTodo, suite.org.ID)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindConflict))

	// The stored status is untouched.
	var stored models.Task
	suite.db.First(&stored, task.ID)
	suite.Equal(models.TaskStatusTodo, stored.Status)
}

func (suite *TaskServiceTestSuite) TestUpdateStatusUnknownValue() {
	task := createTestTask(suite.db, suite.project.ID, suite.author.ID, "Ship it")

	_, err := suite.service.UpdateStatus(task.ID, models.TaskStatus("DONE"), suite.org.ID)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindValidation))
}

func (suite *TaskServiceTestSuite) TestUpdatePrioritySelfTransition() {
	task := createTestTask(suite.db, suite.project.ID, suite.author.ID, "Ship it")

	_, err := suite.service.UpdatePriority(task.ID, models.TaskPriorityBacklog, suite.org.ID)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindConflict))
}

func (suite *TaskServiceTestSuite) TestUpdateAssignee() {
	task := createTestTask(suite.db, suite.project.ID, suite.author.ID, "Ship it")

	updated, err := suite.service.UpdateAssignee(task.ID, suite.assignee.ID, suite.org.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(updated.AssigneeID)
	suite.Equal(suite.assignee.ID, *updated.AssigneeID)

	// Reassigning to the current assignee is rejected.
	_, err = suite.service.UpdateAssignee(task.ID, suite.assignee.ID, suite.org.ID)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindConflict))
}

func (suite *TaskServiceTestSuite) TestUpdateAssigneeOutsideOrganization() {
	task := createTestTask(suite.db, suite.project.ID, suite.author.ID, "Ship it")
	otherOrg := createTestOrganization(suite.db, "Globex")
	outsider := createTestUser(suite.db, otherOrg.ID, "carol")

	_, err := suite.service.UpdateAssignee(task.ID, outsider.ID, suite.org.ID)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindNotFound))
}

func (suite *TaskServiceTestSuite) TestAddCommentNotifiesAuthorAndAssignee() {
	task := createTestTask(suite.db, suite.project.ID, suite.author.ID, "Ship it")
	task.AssigneeID = &suite.assignee.ID
	suite.db.Save(task)

	commenter := createTestUser(suite.db, suite.org.ID, "carol")

	comment, err := suite.service.AddComment(task.ID, "Looks good", commenter.ID, suite.org.ID)
	suite.Require().NoError(err)
	suite.NotZero(comment.ID)

	suite.Equal(int64(1), suite.countNotifications(suite.author.ID))
	suite.Equal(int64(1), suite.countNotifications(suite.assignee.ID))

	var notification models.Notification
	suite.db.Where("user_id = ?", suite.author.ID).First(&notification)
	content, err := notification.GetContent()
	suite.Require().NoError(err)
	suite.Equal(task.ID, content.EntityID)
	suite.Contains(content.Message, "Test carol")
}

func (suite *TaskServiceTestSuite) TestAddCommentSingleNotificationWhenAuthorIsAssignee() {
	task := createTestTask(suite.db, suite.project.ID, suite.author.ID, "Ship it")
	task.AssigneeID = &suite.author.ID
	suite.db.Save(task)

	_, err := suite.service.AddComment(task.ID, "Looks good", suite.assignee.ID, suite.org.ID)
	suite.Require().NoError(err)

	suite.Equal(int64(1), suite.countNotifications(suite.author.ID))
}

func (suite *TaskServiceTestSuite) TestAddCommentUnknownTask() {
	_, err := suite.service.AddComment(9999, "Looks good", suite.author.ID, suite.org.ID)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindNotFound))
}

func (suite *TaskServiceTestSuite) TestUpdateCommentOwnerOnly() {
	task := createTestTask(suite.db, suite.project.ID, suite.author.ID, "Ship it")
	comment, err := suite.service.AddComment(task.ID, "Draft", suite.author.ID, suite.org.ID)
	suite.Require().NoError(err)

	_, err = suite.service.UpdateComment(comment.ID, "Edited", suite.assignee.ID)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindUnauthorized))

	updated, err := suite.service.UpdateComment(comment.ID, "Edited", suite.author.ID)
	suite.Require().NoError(err)
	suite.Equal("Edited", updated.Text)
}

func (suite *TaskServiceTestSuite) TestDeleteCommentOwnerOnly() {
	task := createTestTask(suite.db, suite.project.ID, suite.author.ID, "Ship it")
	comment, err := suite.service.AddComment(task.ID, "Draft", suite.author.ID, suite.org.ID)
	suite.Require().NoError(err)

	err = suite.service.DeleteComment(comment.ID, suite.assignee.ID)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindUnauthorized))

	suite.NoError(suite.service.DeleteComment(comment.ID, suite.author.ID))
}

func (suite *TaskServiceTestSuite) TestGetTaskOutsideOrganization() {
	task := createTestTask(suite.db, suite.project.ID, suite.author.ID, "Ship it")
	otherOrg := createTestOrganization(suite.db, "Globex")

	_, err := suite.service.GetTask(task.ID, otherOrg.ID)
	suite.Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
