// Package favorites keeps user-saved snapshots of catalog items. A
// favorite copies the item's display fields at creation time, so later
// catalog edits never change what the user saved.
package favorites

import (
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("favorite not found")
	ErrDuplicate = errors.New("item already favorited")
)

// ListLimit caps the favorites listing.
const ListLimit = 100

type Favorite struct {
	ID          string    `json:"id"`
	ItemID      string    `json:"item_id"`
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	NameAr      string    `json:"name_ar"`
	Year        *int      `json:"year"`
	Genre       *string   `json:"genre"`
	ExternalURL string    `json:"external_url"`
	CreatedAt   time.Time `json:"created_at"`
}
