package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"umbrella-share-backend/internal/domain"
	"umbrella-share-backend/internal/repository"
	"umbrella-share-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var userColumns = []string{"id", "name", "email", "student_id", "password_hash", "role", "is_active", "created_on", "updated_on"}

func userRow(id, email, studentID string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userColumns).
		AddRow(id, "Alice", email, studentID, "$2a$10$hash", "user", true, now, now)
}

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		user := &domain.User{
			Name:         "Alice",
			Email:        "alice@example.edu",
			StudentID:    "S12345",
			PasswordHash: "$2a$10$hash",
			Role:         domain.UserRoleUser,
			IsActive:     true,
		}

		mock.ExpectExec("INSERT INTO users").
			WithArgs(sqlmock.AnyArg(), user.Name, user.Email, user.StudentID, user.PasswordHash, user.Role, user.IsActive, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, user)
		assert.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetByLogin(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("ByEmail", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE").
			WithArgs("alice@example.edu").
			WillReturnRows(userRow("user-1", "alice@example.edu", "S12345"))

		user, err := repo.GetByLogin(ctx, "alice@example.edu")
		assert.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ByStudentID", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE").
			WithArgs("S12345").
			WillReturnRows(userRow("user-1", "alice@example.edu", "S12345"))

		user, err := repo.GetByLogin(ctx, "S12345")
		assert.NoError(t, err)
		assert.Equal(t, "S12345", user.StudentID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByLogin(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
