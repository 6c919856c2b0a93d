package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
// PasswordHash is never serialized to clients.
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`             // Primary key
	FullName     string    `json:"fullName" db:"full_name"`     // Display name
	Email        string    `json:"email" db:"email"`            // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`        // Hashed password
	CreatedAt    time.Time `json:"created_at" db:"created_at"`  // Creation timestamp
}
