package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/arnavsharma2711/pianifica-sub000/internal/constants"
	"github.com/arnavsharma2711/pianifica-sub000/internal/database"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
)

// envelope mirrors the response body shape for assertions.
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
	TotalCount *int64          `json:"total_count"`
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

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
	require.NoError(t, err)

	database.SetDB(db)
	gin.SetMode(gin.TestMode)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

// withIdentity injects the caller identity the auth middleware would have
// resolved from the session.
func withIdentity(userID, orgID uint64, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyOrganizationID, orgID)
		c.Set(constants.ContextKeyUserRole, role)
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, url string, payload any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}
