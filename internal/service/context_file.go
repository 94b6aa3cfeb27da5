package service

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/planloop/planloop/internal/extract"
	"github.com/planloop/planloop/internal/model"
	"github.com/planloop/planloop/internal/repository"
	"github.com/planloop/planloop/internal/storage"
)

type ContextFileService struct {
	contextFileRepo repository.ContextFileRepository
	storage         storage.Storage
	extractor       *extract.Extractor
}

func NewContextFileService(contextFileRepo repository.ContextFileRepository, storage storage.Storage, extractor *extract.Extractor) *ContextFileService {
	return &ContextFileService{
		contextFileRepo: contextFileRepo,
		storage:         storage,
		extractor:       extractor,
	}
}

// Upload stores the file bytes, extracts text synchronously, computes
// metadata and creates the context-file record. Extraction failures
// produce empty text, never an error.
func (s *ContextFileService) Upload(userID string, file multipart.File, header *multipart.FileHeader) (*model.ContextFile, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	// Random suffix keeps uploads with the same name from colliding
	ext := filepath.Ext(header.Filename)
	storagePath := filepath.Join("private", "context-files", uuid.New().String()+ext)

	err = s.storage.Save(storagePath, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	mimeType := header.Header.Get("Content-Type")
	extractedText := s.extractor.Extract(data, mimeType)
	metadata := extract.ComputeMetadata(extractedText)

	contextFile := &model.ContextFile{
		ID:             uuid.New().String(),
		UserID:         userID,
		Name:           header.Filename,
		Type:           mimeType,
		Size:           header.Size,
		StorageURL:     s.storage.URL(storagePath),
		ExtractedText:  extractedText,
		WordCount:      metadata.WordCount,
		CharacterCount: metadata.CharacterCount,
		HasNumbers:     metadata.HasNumbers,
		HasEmails:      metadata.HasEmails,
		HasURLs:        metadata.HasURLs,
		CreatedAt:      time.Now(),
	}

	err = s.contextFileRepo.Create(contextFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create context file record: %w", err)
	}

	return contextFile, nil
}

func (s *ContextFileService) ContextFiles(userID string) ([]*model.ContextFile, error) {
	return s.contextFileRepo.ContextFiles(userID)
}
