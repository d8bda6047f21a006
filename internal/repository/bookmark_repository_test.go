package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
)

// openMockDB wires GORM's postgres dialector over a sqlmock connection so
// the generated SQL can be asserted verbatim.
func openMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() { conn.Close() })
	return db, mock
}

func bookmarkColumns() []string {
	return []string{"id", "user_id", "entity_type", "entity_id", "created_at", "entity_name"}
}

func TestBookmarkListJoinsTasksTable(t *testing.T) {
	db, mock := openMockDB(t)
	repo := NewBookmarkRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookmarks" JOIN tasks ON tasks\.id = bookmarks\.entity_id AND tasks\.deleted_at IS NULL`).
		WithArgs(uint64(7), "Task").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT bookmarks\.id, .* tasks\.title AS entity_name FROM "bookmarks" JOIN tasks ON tasks\.id = bookmarks\.entity_id AND tasks\.deleted_at IS NULL .* ORDER BY bookmarks\.created_at DESC`).
		WithArgs(uint64(7), "Task", 10).
		WillReturnRows(sqlmock.NewRows(bookmarkColumns()).
			AddRow(uint64(1), uint64(7), "Task", uint64(42), time.Now(), "Ship it"))

	rows, total, err := repo.List(7, models.BookmarkEntityTask, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ship it", rows[0].EntityName)
	assert.Equal(t, uint64(42), rows[0].EntityID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookmarkListJoinsProjectsTable(t *testing.T) {
	db, mock := openMockDB(t)
	repo := NewBookmarkRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookmarks" JOIN projects ON projects\.id = bookmarks\.entity_id AND projects\.deleted_at IS NULL`).
		WithArgs(uint64(7), "Project").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`SELECT bookmarks\.id, .* projects\.name AS entity_name FROM "bookmarks" JOIN projects`).
		WithArgs(uint64(7), "Project", 10).
		WillReturnRows(sqlmock.NewRows(bookmarkColumns()))

	rows, total, err := repo.List(7, models.BookmarkEntityProject, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, rows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookmarkListRejectsUnknownEntityType(t *testing.T) {
	db, mock := openMockDB(t)
	repo := NewBookmarkRepository(db)

	// No query may reach the database for an unvalidated entity type.
	_, _, err := repo.List(7, models.BookmarkEntityType("User"), 10, 1)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
