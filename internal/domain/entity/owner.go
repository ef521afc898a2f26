package entity

import (
	"time"
)

// Portfolio is a denormalized summary recomputed from the property
// collection whenever the owner's properties change.
type Portfolio struct {
	TotalProperties int      `json:"total_properties" firestore:"totalProperties"`
	TotalValue      float64  `json:"total_value" firestore:"totalValue"`
	Locations       []string `json:"locations,omitempty" firestore:"locations,omitempty"`
	PropertyTypes   []string `json:"property_types,omitempty" firestore:"propertyTypes,omitempty"`
}

type TrustMetrics struct {
	TrustScore    int     `json:"trust_score" firestore:"trustScore"`
	ResponseRate  float64 `json:"response_rate" firestore:"responseRate"`
	ResponseTime  float64 `json:"response_time" firestore:"responseTime"` // hours
	AverageRating float64 `json:"average_rating" firestore:"averageRating"`
	TotalReviews  int     `json:"total_reviews" firestore:"totalReviews"`
}

type Owner struct {
	ID          string `json:"id" firestore:"id"`
	UserID      string `json:"user_id" firestore:"userId"`
	Name        string `json:"name" firestore:"name"`
	Email       string `json:"email,omitempty" firestore:"email,omitempty"`
	Phone       string `json:"phone,omitempty" firestore:"phone,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty" firestore:"linkedInURL,omitempty"`
	Company     string `json:"company,omitempty" firestore:"company,omitempty"`
	Location    string `json:"location,omitempty" firestore:"location,omitempty"`
	Bio         string `json:"bio,omitempty" firestore:"bio,omitempty"`

	Portfolio Portfolio    `json:"portfolio" firestore:"portfolio"`
	Trust     TrustMetrics `json:"trust" firestore:"trust"`

	IdentityVerified bool       `json:"identity_verified" firestore:"identityVerified"`
	VerifiedAt       *time.Time `json:"verified_at,omitempty" firestore:"verifiedAt,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
