package repository

import (
	"testing"

	"github.com/planloop/planloop/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndLookup(t *testing.T) {
	database := newTestDB(t)
	repo := NewUserRepository(database)

	user := seedUser(t, database, "dana@example.com")

	byID, err := repo.ByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	byEmail, err := repo.ByEmail("dana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserDuplicateEmail(t *testing.T) {
	database := newTestDB(t)
	repo := NewUserRepository(database)

	seedUser(t, database, "taken@example.com")

	err := repo.Create(&model.User{ID: "another-id", Email: "taken@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserNotFound(t *testing.T) {
	database := newTestDB(t)
	repo := NewUserRepository(database)

	_, err := repo.ByID("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.ByEmail("missing@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestProfileUpsert(t *testing.T) {
	database := newTestDB(t)
	user := seedUser(t, database, "profile@example.com")
	repo := NewProfileRepository(database)

	_, err := repo.ByUserID(user.ID)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	require.NoError(t, repo.Upsert(&model.Profile{
		UserID: user.ID,
		WhoIAm: "An engineer",
	}))

	profile, err := repo.ByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "An engineer", profile.WhoIAm)

	// Second save updates in place
	require.NoError(t, repo.Upsert(&model.Profile{
		UserID:             user.ID,
		WhoIAm:             "A founder",
		WhatIWantToAchieve: "Launch in Q4",
	}))

	updated, err := repo.ByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, updated.ID)
	assert.Equal(t, "A founder", updated.WhoIAm)
	assert.Equal(t, "Launch in Q4", updated.WhatIWantToAchieve)
}
