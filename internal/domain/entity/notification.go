package entity

import (
	"time"
)

type Notification struct {
	ID      string `json:"id" firestore:"id"`
	UserID  string `json:"user_id" firestore:"userId"`
	Type    string `json:"type" firestore:"type"` // price_change, new_review, alert_match, system
	Title   string `json:"title" firestore:"title"`
	Message string `json:"message" firestore:"message"`
	Read    bool   `json:"read" firestore:"read"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

type AlertCriteria struct {
	City         string  `json:"city,omitempty" firestore:"city,omitempty"`
	State        string  `json:"state,omitempty" firestore:"state,omitempty"`
	PropertyType string  `json:"property_type,omitempty" firestore:"propertyType,omitempty"`
	MinPrice     float64 `json:"min_price,omitempty" firestore:"minPrice,omitempty"`
	MaxPrice     float64 `json:"max_price,omitempty" firestore:"maxPrice,omitempty"`
}

type PropertyAlert struct {
	ID       string        `json:"id" firestore:"id"`
	UserID   string        `json:"user_id" firestore:"userId"`
	Name     string        `json:"name" firestore:"name"`
	Criteria AlertCriteria `json:"criteria" firestore:"criteria"`
	Active   bool          `json:"active" firestore:"active"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// SavedView is a named dashboard/map filter set.
type SavedView struct {
	ID      string            `json:"id" firestore:"id"`
	UserID  string            `json:"user_id" firestore:"userId"`
	Name    string            `json:"name" firestore:"name"`
	Filters map[string]string `json:"filters" firestore:"filters"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
