package model

import "time"

// Profile holds the free-text self description used to build AI context.
// All three fields are optional; empty values render as "Not specified".
type Profile struct {
	ID                 string    `db:"id" json:"id"`
	UserID             string    `db:"user_id" json:"userId"`
	WhoIAm             string    `db:"who_i_am" json:"whoIAm"`
	WhatIWantToAchieve string    `db:"what_i_want_to_achieve" json:"whatIWantToAchieve"`
	WhatIWantInLife    string    `db:"what_i_want_in_life" json:"whatIWantInLife"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `db:"updated_at" json:"updatedAt"`
}
