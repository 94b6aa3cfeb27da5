package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/planloop/planloop/internal/model"
)

type ContextFileRepository interface {
	Create(file *model.ContextFile) error
	ContextFiles(userID string) ([]*model.ContextFile, error)
}

type contextFileRepository struct {
	db *sqlx.DB
}

func NewContextFileRepository(db *sqlx.DB) ContextFileRepository {
	return &contextFileRepository{db: db}
}

func (r *contextFileRepository) Create(file *model.ContextFile) error {
	if file.ID == "" {
		file.ID = uuid.New().String()
	}
	if file.CreatedAt.IsZero() {
		file.CreatedAt = time.Now()
	}

	query := `INSERT INTO context_files (id, user_id, name, type, size, storage_url, extracted_text,
	          word_count, character_count, has_numbers, has_emails, has_urls, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.Exec(query,
		file.ID,
		file.UserID,
		file.Name,
		file.Type,
		file.Size,
		file.StorageURL,
		file.ExtractedText,
		file.WordCount,
		file.CharacterCount,
		file.HasNumbers,
		file.HasEmails,
		file.HasURLs,
		file.CreatedAt,
	)

	return err
}

func (r *contextFileRepository) ContextFiles(userID string) ([]*model.ContextFile, error) {
	var files []*model.ContextFile
	query := `SELECT * FROM context_files WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&files, query, userID)
	if err != nil {
		return nil, err
	}

	return files, nil
}
