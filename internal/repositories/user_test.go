package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

var userColumns = []string{"user_id", "full_name", "email", "password_hash", "created_at"}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
		WithArgs("john@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(userID.String(), "John Doe", "john@example.com", "hash", now))

	user, err := repo.GetByEmail(context.Background(), "john@example.com")
	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, userID, user.UserID)
	assert.Equal(t, "John Doe", user.FullName)
	assert.Equal(t, "john@example.com", user.Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
		WithArgs("missing@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.GetByEmail(context.Background(), "missing@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	userID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(userID.String(), "Jane Doe", "jane@example.com", "hash", time.Now()))

	user, err := repo.GetByID(context.Background(), userID)
	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Jane Doe", user.FullName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	userID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.GetByID(context.Background(), userID)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserReadRepository_GetByEmail_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WithArgs("john@example.com").
		WillReturnError(errors.New("connection refused"))

	user, err := repo.GetByEmail(context.Background(), "john@example.com")
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users (.+) RETURNING (.+)`).
		WithArgs("John Doe", "john@example.com", "hash").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(userID.String(), "John Doe", "john@example.com", "hash", now))

	user, err := repo.Save(context.Background(), "John Doe", "john@example.com", "hash")
	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, userID, user.UserID)
	assert.Equal(t, "john@example.com", user.Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("John Doe", "john@example.com", "hash").
		WillReturnError(errors.New("duplicate key value violates unique constraint"))

	user, err := repo.Save(context.Background(), "John Doe", "john@example.com", "hash")
	assert.Error(t, err)
	assert.Nil(t, user)
}
