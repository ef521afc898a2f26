package entity

import (
	"time"
)

type PropertyReview struct {
	ID         string `json:"id" firestore:"id"`
	PropertyID string `json:"property_id" firestore:"propertyId"`
	OwnerID    string `json:"owner_id" firestore:"ownerId"`
	UserID     string `json:"user_id" firestore:"userId"`

	Rating        int     `json:"rating" firestore:"rating"`
	Accuracy      float64 `json:"accuracy,omitempty" firestore:"accuracy,omitempty"`
	Communication float64 `json:"communication,omitempty" firestore:"communication,omitempty"`
	Condition     float64 `json:"condition,omitempty" firestore:"condition,omitempty"`
	Value         float64 `json:"value,omitempty" firestore:"value,omitempty"`

	Content string `json:"content" firestore:"content"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type PropertyComment struct {
	ID         string `json:"id" firestore:"id"`
	PropertyID string `json:"property_id" firestore:"propertyId"`
	UserID     string `json:"user_id" firestore:"userId"`
	UserName   string `json:"user_name,omitempty" firestore:"userName,omitempty"`
	Content    string `json:"content" firestore:"content"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
