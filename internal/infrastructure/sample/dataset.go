package sample

import (
	"time"

	"trueestate/internal/domain/entity"
)

// Bundled dataset served when Firestore is unreachable so the UI always has
// something to render. Not a correctness mechanism.

func Properties() []*entity.Property {
	created := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	return []*entity.Property{
		{
			ID:           "sample-prop-1",
			OwnerID:      "sample-owner-1",
			Title:        "Sunny 2BR Apartment",
			Address:      "120 Market St",
			City:         "San Francisco",
			State:        "CA",
			ZipCode:      "94105",
			Coordinates:  entity.Coordinates{Lat: 37.7936, Lng: -122.3965},
			PropertyType: "apartment",
			Price:        1200000,
			Bedrooms:     2,
			Bathrooms:    2,
			SquareFt:     1100,
			YearBuilt:    2008,
			TransparencyScore: 75,
			Verification: entity.VerificationData{
				OwnerVerified:     true,
				DocumentsVerified: true,
				AddressVerified:   true,
			},
			CreatedAt: created,
			UpdatedAt: created,
		},
		{
			ID:           "sample-prop-2",
			OwnerID:      "sample-owner-2",
			Title:        "Brooklyn Brownstone",
			Address:      "48 Berkeley Pl",
			City:         "Brooklyn",
			State:        "NY",
			ZipCode:      "11217",
			Coordinates:  entity.Coordinates{Lat: 40.6745, Lng: -73.9776},
			PropertyType: "townhouse",
			Price:        2850000,
			Bedrooms:     4,
			Bathrooms:    3,
			SquareFt:     3200,
			YearBuilt:    1901,
			TransparencyScore: 97,
			Verification: entity.VerificationData{
				OwnerVerified:     true,
				DocumentsVerified: true,
				AddressVerified:   true,
				PriceVerified:     true,
			},
			Ratings: entity.Ratings{
				AverageRating: 4.0,
				TotalReviews:  12,
			},
			Views:     412,
			Bookmarks: 37,
			CreatedAt: created,
			UpdatedAt: created,
		},
		{
			ID:           "sample-prop-3",
			OwnerID:      "sample-owner-1",
			Title:        "Austin Family Home",
			Address:      "2204 Alta Vista Ave",
			City:         "Austin",
			State:        "TX",
			ZipCode:      "78704",
			Coordinates:  entity.Coordinates{Lat: 30.2459, Lng: -97.7688},
			PropertyType: "house",
			Price:        685000,
			Bedrooms:     3,
			Bathrooms:    2,
			SquareFt:     1850,
			YearBuilt:    1996,
			TransparencyScore: 40,
			Verification: entity.VerificationData{
				OwnerVerified: true,
			},
			CreatedAt: created,
			UpdatedAt: created,
		},
	}
}

func Owners() []*entity.Owner {
	created := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	return []*entity.Owner{
		{
			ID:       "sample-owner-1",
			UserID:   "sample-user-1",
			Name:     "Meridian Holdings LLC",
			Company:  "Meridian Holdings",
			Location: "San Francisco, CA",
			Portfolio: entity.Portfolio{
				TotalProperties: 2,
				TotalValue:      1885000,
				Locations:       []string{"San Francisco, CA", "Austin, TX"},
				PropertyTypes:   []string{"apartment", "house"},
			},
			Trust: entity.TrustMetrics{
				TrustScore:   90,
				ResponseRate: 0.94,
				ResponseTime: 4.5,
			},
			IdentityVerified: true,
			CreatedAt:        created,
			UpdatedAt:        created,
		},
		{
			ID:       "sample-owner-2",
			UserID:   "sample-user-2",
			Name:     "Dana Whitfield",
			Location: "Brooklyn, NY",
			Portfolio: entity.Portfolio{
				TotalProperties: 1,
				TotalValue:      2850000,
				Locations:       []string{"Brooklyn, NY"},
				PropertyTypes:   []string{"townhouse"},
			},
			Trust: entity.TrustMetrics{
				TrustScore:    70,
				ResponseRate:  0.81,
				ResponseTime:  11,
				AverageRating: 4.0,
				TotalReviews:  12,
			},
			CreatedAt: created,
			UpdatedAt: created,
		},
	}
}
