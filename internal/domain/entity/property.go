package entity

import (
	"time"
)

type Coordinates struct {
	Lat float64 `json:"lat" firestore:"lat"`
	Lng float64 `json:"lng" firestore:"lng"`
}

type VerificationData struct {
	OwnerVerified     bool       `json:"owner_verified" firestore:"ownerVerified"`
	DocumentsVerified bool       `json:"documents_verified" firestore:"documentsVerified"`
	AddressVerified   bool       `json:"address_verified" firestore:"addressVerified"`
	PriceVerified     bool       `json:"price_verified" firestore:"priceVerified"`
	LastVerified      *time.Time `json:"last_verified,omitempty" firestore:"lastVerified,omitempty"`
}

// RatingBreakdown holds the four review axes averaged across all reviews.
type RatingBreakdown struct {
	Accuracy      float64 `json:"accuracy" firestore:"accuracy"`
	Communication float64 `json:"communication" firestore:"communication"`
	Condition     float64 `json:"condition" firestore:"condition"`
	Value         float64 `json:"value" firestore:"value"`
}

type Ratings struct {
	AverageRating float64         `json:"average_rating" firestore:"averageRating"`
	TotalReviews  int             `json:"total_reviews" firestore:"totalReviews"`
	Breakdown     RatingBreakdown `json:"breakdown" firestore:"breakdown"`
}

type TransactionRecord struct {
	Date  time.Time `json:"date" firestore:"date"`
	Price float64   `json:"price" firestore:"price"`
	Type  string    `json:"type" firestore:"type"` // sale, rental
}

type PropertyImage struct {
	URL          string `json:"url" firestore:"url"`
	DisplayOrder int    `json:"display_order" firestore:"displayOrder"`
}

type Property struct {
	ID      string `json:"id" firestore:"id"`
	OwnerID string `json:"owner_id" firestore:"ownerId"`

	Title        string      `json:"title" firestore:"title"`
	Address      string      `json:"address" firestore:"address"`
	City         string      `json:"city" firestore:"city"`
	State        string      `json:"state" firestore:"state"`
	ZipCode      string      `json:"zip_code,omitempty" firestore:"zipCode,omitempty"`
	Coordinates  Coordinates `json:"coordinates" firestore:"coordinates"`
	PropertyType string      `json:"property_type" firestore:"propertyType"`

	Price     float64 `json:"price" firestore:"price"`
	Bedrooms  int     `json:"bedrooms" firestore:"bedrooms"`
	Bathrooms int     `json:"bathrooms" firestore:"bathrooms"`
	SquareFt  int     `json:"square_ft,omitempty" firestore:"squareFt,omitempty"`
	YearBuilt int     `json:"year_built,omitempty" firestore:"yearBuilt,omitempty"`

	Images       []PropertyImage     `json:"images,omitempty" firestore:"images,omitempty"`
	Transactions []TransactionRecord `json:"transactions,omitempty" firestore:"transactions,omitempty"`

	TransparencyScore int              `json:"transparency_score" firestore:"transparencyScore"`
	Verification      VerificationData `json:"verification_data" firestore:"verificationData"`
	Ratings           Ratings          `json:"ratings" firestore:"ratings"`

	Views     int `json:"views" firestore:"views"`
	Bookmarks int `json:"bookmarks" firestore:"bookmarks"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
