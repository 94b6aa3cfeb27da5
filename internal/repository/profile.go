package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/planloop/planloop/internal/model"
)

type ProfileRepository interface {
	ByUserID(userID string) (*model.Profile, error)
	Upsert(profile *model.Profile) error
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) ByUserID(userID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.Get(&profile, `SELECT * FROM profiles WHERE user_id = $1`, userID)

	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// Upsert creates the profile on first save and updates it afterwards,
// keyed by user_id. Profiles are never deleted by this system.
func (r *profileRepository) Upsert(profile *model.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO profiles (id, user_id, who_i_am, what_i_want_to_achieve, what_i_want_in_life, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			who_i_am = EXCLUDED.who_i_am,
			what_i_want_to_achieve = EXCLUDED.what_i_want_to_achieve,
			what_i_want_in_life = EXCLUDED.what_i_want_in_life,
			updated_at = EXCLUDED.updated_at
	`, profile.ID, profile.UserID, profile.WhoIAm, profile.WhatIWantToAchieve, profile.WhatIWantInLife, profile.CreatedAt, profile.UpdatedAt)

	return err
}
