package service

import (
	"math"

	"trueestate/internal/domain/entity"
)

// Scoring policies convert verification signals into bounded integer scores.
// Weights live here as versioned data, not as literals scattered through the
// handlers. The property transparency scheme and the owner identity scheme
// are deliberately separate tables and must stay that way.

// TransparencyWeights is the weight table for property transparency scoring.
type TransparencyWeights struct {
	Version           string
	OwnerVerified     int
	DocumentsVerified int
	AddressVerified   int
	PriceVerified     int
	Reviews           int
	MaxRating         float64
}

// IdentityWeights is the weight table for owner identity trust scoring.
type IdentityWeights struct {
	Version           string
	Base              int
	IdentityMatch     int
	EmailPresent      int
	PhonePresent      int
	LinkedInPresent   int
	CompanyMatch      int
	VerifiedThreshold int
}

var transparencyV1 = TransparencyWeights{
	Version:           "v1",
	OwnerVerified:     40,
	DocumentsVerified: 20,
	AddressVerified:   15,
	PriceVerified:     10,
	Reviews:           15,
	MaxRating:         5,
}

var identityV1 = IdentityWeights{
	Version:           "v1",
	Base:              50,
	IdentityMatch:     20,
	EmailPresent:      10,
	PhonePresent:      10,
	LinkedInPresent:   10,
	CompanyMatch:      15,
	VerifiedThreshold: 80,
}

type TransparencyPolicy struct {
	weights TransparencyWeights
}

func NewTransparencyPolicy() *TransparencyPolicy {
	return &TransparencyPolicy{weights: transparencyV1}
}

func (p *TransparencyPolicy) Weights() TransparencyWeights {
	return p.weights
}

// Score maps verification flags and the review aggregate to [0,100]. Absent
// inputs count as zero; there are no error conditions.
func (p *TransparencyPolicy) Score(v entity.VerificationData, r entity.Ratings) int {
	score := 0.0
	if v.OwnerVerified {
		score += float64(p.weights.OwnerVerified)
	}
	if v.DocumentsVerified {
		score += float64(p.weights.DocumentsVerified)
	}
	if v.AddressVerified {
		score += float64(p.weights.AddressVerified)
	}
	if v.PriceVerified {
		score += float64(p.weights.PriceVerified)
	}
	if r.TotalReviews > 0 {
		score += float64(p.weights.Reviews) * (r.AverageRating / p.weights.MaxRating)
	}

	return clamp(int(math.Round(score)), 0, 100)
}

// IdentitySignals are the inputs to owner identity scoring, produced from the
// third-party verification lookups and the owner profile.
type IdentitySignals struct {
	IdentityMatched bool
	EmailPresent    bool
	PhonePresent    bool
	LinkedInPresent bool
	CompanyMatched  bool
}

type IdentityPolicy struct {
	weights IdentityWeights
}

func NewIdentityPolicy() *IdentityPolicy {
	return &IdentityPolicy{weights: identityV1}
}

func (p *IdentityPolicy) Weights() IdentityWeights {
	return p.weights
}

func (p *IdentityPolicy) Score(s IdentitySignals) int {
	score := p.weights.Base
	if s.IdentityMatched {
		score += p.weights.IdentityMatch
	}
	if s.EmailPresent {
		score += p.weights.EmailPresent
	}
	if s.PhonePresent {
		score += p.weights.PhonePresent
	}
	if s.LinkedInPresent {
		score += p.weights.LinkedInPresent
	}
	if s.CompanyMatched {
		score += p.weights.CompanyMatch
	}

	return clamp(score, 0, 100)
}

// Verified reports whether a score clears the fixed verification threshold.
func (p *IdentityPolicy) Verified(score int) bool {
	return score >= p.weights.VerifiedThreshold
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
