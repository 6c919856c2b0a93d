package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Locations is an ordered list of visited location names,
// stored as a JSONB array.
type Locations []string

// Value implements driver.Valuer for JSONB storage.
func (l Locations) Value() (driver.Value, error) {
	if l == nil {
		l = Locations{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (l *Locations) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = Locations{}
		return nil
	default:
		return errors.New("unsupported type for Locations")
	}
}

// TravelPostDB represents a travel post record in the database.
type TravelPostDB struct {
	PostID          uuid.UUID `json:"id" db:"post_id"`                      // Primary key
	UserID          uuid.UUID `json:"userId" db:"user_id"`                  // Owning user
	Title           string    `json:"title" db:"title"`                     // Post title
	Story           string    `json:"story" db:"story"`                     // Story body
	VisitedLocation Locations `json:"visitedLocation" db:"visited_location"` // Visited locations
	ImageURL        string    `json:"imageUrl" db:"image_url"`              // Attached image URL
	VisitedDate     time.Time `json:"visitedDate" db:"visited_date"`        // Date of the visit
	IsFavourite     bool      `json:"isFavourite" db:"is_favourite"`        // Favourite flag
	CreatedAt       time.Time `json:"createdOn" db:"created_at"`            // Creation timestamp
}
