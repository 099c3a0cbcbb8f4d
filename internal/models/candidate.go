package models

import (
	"time"

	"github.com/google/uuid"
)

// Candidate represents an electoral candidacy record created by a user
type Candidate struct {
	ID        uuid.UUID `json:"id" db:"id"`
	FullName  string    `json:"full_name" db:"full_name"`
	Phone     string    `json:"phone" db:"phone"`
	Specialty string    `json:"specialty" db:"specialty"`
	Faculty   string    `json:"faculty" db:"faculty"`
	Address   string    `json:"address" db:"address"`
	ImageURL  *string   `json:"image_url,omitempty" db:"image_url"`
	CreatorID uuid.UUID `json:"creator_id" db:"creator_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CandidateUpdate holds the fields a creator may change on their candidate.
// Nil pointers leave the current value untouched.
type CandidateUpdate struct {
	FullName  *string
	Phone     *string
	Specialty *string
	Faculty   *string
	Address   *string
	ImageURL  *string
}
