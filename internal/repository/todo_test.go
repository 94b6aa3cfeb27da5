package repository

import (
	"testing"
	"time"

	"github.com/planloop/planloop/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoCreateAndListNewestFirst(t *testing.T) {
	database := newTestDB(t)
	user := seedUser(t, database, "todos@example.com")
	repo := NewTodoRepository(database)

	base := time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(&model.Todo{UserID: user.ID, Text: "older", CreatedAt: base}))
	require.NoError(t, repo.Create(&model.Todo{UserID: user.ID, Text: "newer", CreatedAt: base.Add(time.Minute)}))

	todos, err := repo.Todos(user.ID)
	require.NoError(t, err)
	require.Len(t, todos, 2)

	assert.Equal(t, "newer", todos[0].Text)
	assert.Equal(t, "older", todos[1].Text)
	assert.False(t, todos[0].Completed)
	assert.NotNil(t, todos[0].Files)
	assert.Empty(t, todos[0].Files)
}

func TestTodoSetCompleted(t *testing.T) {
	database := newTestDB(t)
	user := seedUser(t, database, "complete@example.com")
	repo := NewTodoRepository(database)

	todo := &model.Todo{UserID: user.ID, Text: "Ship the report"}
	require.NoError(t, repo.Create(todo))

	require.NoError(t, repo.SetCompleted(user.ID, todo.ID, true))

	got, err := repo.ByID(user.ID, todo.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	require.NoError(t, repo.SetCompleted(user.ID, todo.ID, false))

	got, err = repo.ByID(user.ID, todo.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

func TestTodoOwnershipEnforced(t *testing.T) {
	database := newTestDB(t)
	owner := seedUser(t, database, "owner@example.com")
	other := seedUser(t, database, "other@example.com")
	repo := NewTodoRepository(database)

	todo := &model.Todo{UserID: owner.ID, Text: "private"}
	require.NoError(t, repo.Create(todo))

	_, err := repo.ByID(other.ID, todo.ID)
	assert.ErrorIs(t, err, ErrTodoNotFound)

	assert.ErrorIs(t, repo.SetCompleted(other.ID, todo.ID, true), ErrTodoNotFound)
	assert.ErrorIs(t, repo.Delete(other.ID, todo.ID), ErrTodoNotFound)

	// Still visible to the owner, still incomplete
	got, err := repo.ByID(owner.ID, todo.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

func TestTodoDelete(t *testing.T) {
	database := newTestDB(t)
	user := seedUser(t, database, "delete@example.com")
	repo := NewTodoRepository(database)

	todo := &model.Todo{UserID: user.ID, Text: "remove me"}
	require.NoError(t, repo.Create(todo))

	require.NoError(t, repo.Delete(user.ID, todo.ID))

	_, err := repo.ByID(user.ID, todo.ID)
	assert.ErrorIs(t, err, ErrTodoNotFound)

	assert.ErrorIs(t, repo.Delete(user.ID, todo.ID), ErrTodoNotFound)
}

func TestTodoCreateMany(t *testing.T) {
	database := newTestDB(t)
	user := seedUser(t, database, "bulk@example.com")
	repo := NewTodoRepository(database)

	count, err := repo.CreateMany(user.ID, []string{"one", "two", "three"})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	todos, err := repo.Todos(user.ID)
	require.NoError(t, err)
	assert.Len(t, todos, 3)
}

func TestTodoCreateManyEmpty(t *testing.T) {
	database := newTestDB(t)
	repo := NewTodoRepository(database)

	count, err := repo.CreateMany("nobody", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
