package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/planloop/planloop/internal/db"
	"github.com/planloop/planloop/internal/model"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// newTestDB returns a migrated in-memory database. A single connection is
// required: every pooled connection to :memory: is a separate database.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Open("sqlite", ":memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	database.SetMaxOpenConns(1)

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	t.Cleanup(func() { _ = database.Close() })
	return database
}

func seedUser(t *testing.T, database *sqlx.DB, email string) *model.User {
	t.Helper()

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: "hashed",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, NewUserRepository(database).Create(user))
	return user
}
