package model

import (
	"encoding/json"
	"time"
)

// ContextFile is a user-uploaded document whose text has been extracted
// for use as AI input. Records are immutable after upload.
type ContextFile struct {
	ID             string    `db:"id"`
	UserID         string    `db:"user_id"`
	Name           string    `db:"name"`
	Type           string    `db:"type"`
	Size           int64     `db:"size"`
	StorageURL     string    `db:"storage_url"`
	ExtractedText  string    `db:"extracted_text"`
	WordCount      int       `db:"word_count"`
	CharacterCount int       `db:"character_count"`
	HasNumbers     bool      `db:"has_numbers"`
	HasEmails      bool      `db:"has_emails"`
	HasURLs        bool      `db:"has_urls"`
	CreatedAt      time.Time `db:"created_at"`
}

// MarshalJSON renders the flat metadata columns as a nested object,
// matching the wire shape clients expect.
func (f *ContextFile) MarshalJSON() ([]byte, error) {
	type metadata struct {
		WordCount      int  `json:"wordCount"`
		CharacterCount int  `json:"characterCount"`
		HasNumbers     bool `json:"hasNumbers"`
		HasEmails      bool `json:"hasEmails"`
		HasURLs        bool `json:"hasUrls"`
	}
	return json.Marshal(struct {
		ID            string    `json:"id"`
		UserID        string    `json:"userId"`
		Name          string    `json:"name"`
		Type          string    `json:"type"`
		Size          int64     `json:"size"`
		StorageURL    string    `json:"storageUrl"`
		ExtractedText string    `json:"extractedText"`
		Metadata      metadata  `json:"metadata"`
		CreatedAt     time.Time `json:"createdAt"`
	}{
		ID:            f.ID,
		UserID:        f.UserID,
		Name:          f.Name,
		Type:          f.Type,
		Size:          f.Size,
		StorageURL:    f.StorageURL,
		ExtractedText: f.ExtractedText,
		Metadata: metadata{
			WordCount:      f.WordCount,
			CharacterCount: f.CharacterCount,
			HasNumbers:     f.HasNumbers,
			HasEmails:      f.HasEmails,
			HasURLs:        f.HasURLs,
		},
		CreatedAt: f.CreatedAt,
	})
}
