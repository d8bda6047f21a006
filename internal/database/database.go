package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/arnavsharma2711/pianifica-sub000/internal/config"
	"github.com/arnavsharma2711/pianifica-sub000/internal/logging"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
)

var DB *gorm.DB

// Connect opens the configured database. TranslateError is enabled so
// unique-constraint violations surface as gorm.ErrDuplicatedKey, which the
// services treat as the authoritative Conflict signal.
func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.Name,
		)
		dialector = mysql.Open(dsn)
	default:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
		)
		dialector = postgres.Open(dsn)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	logging.Logger.WithField("driver", cfg.Database.Driver).Info("database connection established")
	return nil
}

// Migrate runs the schema migrations for all models.
func Migrate() error {
	logging.Logger.Info("running database migrations")
	err := DB.AutoMigrate(
		&models.Organization{},
		&models.User{},
		&models.Role{},
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
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logging.Logger.Info("database migrations completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
