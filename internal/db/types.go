package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-intake/internal/types"
)

// User represents a user profile
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Resume represents a stored resume with its parsed record
type Resume struct {
	ID        uuid.UUID           `json:"id"`
	UserID    uuid.UUID           `json:"user_id"`
	Filename  string              `json:"filename"`
	FileSize  int64               `json:"file_size"`
	Record    *types.ResumeRecord `json:"record"`
	CreatedAt time.Time           `json:"created_at"`
}

// ResumeSummary is a lightweight view of a resume for listing
type ResumeSummary struct {
	ID        uuid.UUID `json:"id"`
	Filename  string    `json:"filename"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
