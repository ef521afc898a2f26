package entity

import (
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleOwner  = "owner"
	RoleAgent  = "agent"
	RoleRenter = "renter"
)

type User struct {
	ID           string `json:"id" firestore:"id"`
	Email        string `json:"email" firestore:"email"`
	PasswordHash string `json:"-" firestore:"passwordHash"`
	Name         string `json:"name" firestore:"name"`
	Role         string `json:"role" firestore:"role"`
	Verified     bool   `json:"verified" firestore:"verified"`

	SubscriptionTier string   `json:"subscription_tier,omitempty" firestore:"subscriptionTier,omitempty"`
	SavedProperties  []string `json:"saved_properties,omitempty" firestore:"savedProperties,omitempty"`
	SearchHistory    []string `json:"search_history,omitempty" firestore:"searchHistory,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
