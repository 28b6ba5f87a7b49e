package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/saransh1220/animal-drop/internal/modules/upload/domain"
	"github.com/saransh1220/animal-drop/internal/modules/upload/infrastructure/persistence/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(sqlDB, "sqlmock"), mock, func() { _ = sqlDB.Close() }
}

var uploadColumns = []string{"id", "filename", "storage_key", "url", "size_bytes", "content_type", "created_at"}

func TestPgUploadRepository_Create(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewUploadRepository(db)

	u := &domain.Upload{Filename: "cat.png", StorageKey: "uploads/a.png", URL: "/static/uploads/uploads/a.png", Size: 10, ContentType: "image/png"}

	mock.ExpectExec("INSERT INTO uploads").WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.Create(context.Background(), u))
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	mock.ExpectExec("INSERT INTO uploads").WillReturnError(sql.ErrConnDone)
	assert.Error(t, repo.Create(context.Background(), &domain.Upload{Filename: "dog.png"}))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgUploadRepository_GetByID(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewUploadRepository(db)
	id := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(uploadColumns).AddRow(id, "cat.png", "uploads/a.png", "/u/a.png", int64(10), "image/png", now)
	mock.ExpectQuery(`SELECT id, filename, storage_key, url, size_bytes, content_type, created_at FROM uploads WHERE id = \$1`).WithArgs(id).WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "cat.png", got.Filename)
	assert.Equal(t, int64(10), got.Size)

	mock.ExpectQuery(`FROM uploads WHERE id = \$1`).WithArgs(id).WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrUploadNotFound)

	mock.ExpectQuery(`FROM uploads WHERE id = \$1`).WithArgs(id).WillReturnError(sql.ErrConnDone)
	_, err = repo.GetByID(context.Background(), id)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUploadNotFound)
}

func TestPgUploadRepository_ListRecent(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewUploadRepository(db)

	rows := sqlmock.NewRows(uploadColumns).
		AddRow(uuid.New(), "b.png", "k2", "u2", int64(2), "image/png", time.Now()).
		AddRow(uuid.New(), "a.png", "k1", "u1", int64(1), "", time.Now().Add(-time.Hour))
	mock.ExpectQuery(`ORDER BY created_at DESC LIMIT \$1`).WithArgs(10).WillReturnRows(rows)

	list, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b.png", list[0].Filename)

	mock.ExpectQuery(`ORDER BY created_at DESC LIMIT \$1`).WithArgs(5).WillReturnError(sql.ErrConnDone)
	_, err = repo.ListRecent(context.Background(), 5)
	assert.Error(t, err)
}
