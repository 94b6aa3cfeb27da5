package repository

import (
	"testing"
	"time"

	"github.com/planloop/planloop/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextFileCreateAndList(t *testing.T) {
	database := newTestDB(t)
	user := seedUser(t, database, "files@example.com")
	repo := NewContextFileRepository(database)

	base := time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(&model.ContextFile{
		UserID:        user.ID,
		Name:          "first.pdf",
		Type:          "application/pdf",
		Size:          1024,
		ExtractedText: "hello world",
		WordCount:     2,
		CreatedAt:     base,
	}))
	require.NoError(t, repo.Create(&model.ContextFile{
		UserID:    user.ID,
		Name:      "second.png",
		Type:      "image/png",
		Size:      2048,
		CreatedAt: base.Add(time.Minute),
	}))

	files, err := repo.ContextFiles(user.ID)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "second.png", files[0].Name)
	assert.Equal(t, "first.pdf", files[1].Name)
	assert.Equal(t, "hello world", files[1].ExtractedText)
	assert.Equal(t, 2, files[1].WordCount)
}

func TestContextFilesScopedToUser(t *testing.T) {
	database := newTestDB(t)
	owner := seedUser(t, database, "a@example.com")
	other := seedUser(t, database, "b@example.com")
	repo := NewContextFileRepository(database)

	require.NoError(t, repo.Create(&model.ContextFile{UserID: owner.ID, Name: "mine.pdf", Type: "application/pdf"}))

	files, err := repo.ContextFiles(other.ID)
	require.NoError(t, err)
	assert.Empty(t, files)
}
