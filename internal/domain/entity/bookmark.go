package entity

import (
	"time"
)

type Bookmark struct {
	ID         string   `json:"id" firestore:"id"`
	UserID     string   `json:"user_id" firestore:"userId"`
	PropertyID string   `json:"property_id" firestore:"propertyId"`
	Notes      string   `json:"notes,omitempty" firestore:"notes,omitempty"`
	Tags       []string `json:"tags,omitempty" firestore:"tags,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

type BookmarkWithProperty struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	PropertyID string    `json:"property_id"`
	Notes      string    `json:"notes,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	Property   *Property `json:"property"`
	CreatedAt  time.Time `json:"created_at"`
}
