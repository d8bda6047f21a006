package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
)

// openTestDB creates an in-memory SQLite database with the full schema.
// TranslateError is on so unique violations surface as ErrDuplicatedKey,
// matching the production drivers.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Organization{},
		&models.Role{},
		&models.User{},
		&models.UserRole{},
		&models.Team{},
		&models.TeamMember{},
		&models.Project{},
		&models.Task{},
		&models.Comment{},
		&models.Tag{},
		&models.TagMapping{},
		&models.Bookmark{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestOrganization(db *gorm.DB, name string) *models.Organization {
	org := &models.Organization{Name: name}
	db.Create(org)
	return org
}

func createTestUser(db *gorm.DB, orgID uint64, username string) *models.User {
	user := &models.User{
		OrganizationID: orgID,
		FirstName:      "Test",
		LastName:       username,
		Email:          username + "@example.com",
		Username:       username,
		PasswordHash:   "hashedpassword",
	}
	db.Create(user)
	return user
}

func createTestProject(db *gorm.DB, orgID uint64, name string) *models.Project {
	project := &models.Project{
		OrganizationID: orgID,
		Name:           name,
	}
	db.Create(project)
	return project
}

func createTestTask(db *gorm.DB, projectID, authorID uint64, title string) *models.Task {
	task := &models.Task{
		ProjectID: projectID,
		Title:     title,
		Status:    models.TaskStatusTodo,
		Priority:  models.TaskPriorityBacklog,
		AuthorID:  authorID,
	}
	db.Create(task)
	return task
}

func createTestTag(db *gorm.DB, name string) *models.Tag {
	tag := &models.Tag{Name: name}
	db.Create(tag)
	return tag
}

func createTestTeam(db *gorm.DB, orgID, leadID, managerID uint64, name string) *models.Team {
	team := &models.Team{
		OrganizationID: orgID,
		Name:           name,
		LeadID:         leadID,
		ManagerID:      managerID,
	}
	db.Create(team)
	return team
}
