package usecase

import (
	"context"
	"time"

	"trueestate/internal/domain/entity"
	"trueestate/internal/domain/repository"
	"trueestate/internal/domain/service"
	"trueestate/internal/infrastructure/sample"
	"trueestate/pkg/errors"
	"trueestate/pkg/logger"
)

type OwnerUseCase struct {
	ownerRepo repository.OwnerRepository
	verifier  service.IdentityVerifier
	identity  *service.IdentityPolicy
}

func NewOwnerUseCase(
	ownerRepo repository.OwnerRepository,
	verifier service.IdentityVerifier,
	identity *service.IdentityPolicy,
) *OwnerUseCase {
	return &OwnerUseCase{
		ownerRepo: ownerRepo,
		verifier:  verifier,
		identity:  identity,
	}
}

type CreateOwnerInput struct {
	Name        string
	Email       string
	Phone       string
	LinkedInURL string
	Company     string
	Location    string
	Bio         string
}

func (uc *OwnerUseCase) CreateOwner(ctx context.Context, userID string, input CreateOwnerInput) (*entity.Owner, error) {
	existing, err := uc.ownerRepo.GetByUserID(ctx, userID)
	if err == nil && existing != nil {
		return nil, errors.BadRequest("Owner profile already exists for this account", nil)
	}

	owner := &entity.Owner{
		UserID:      userID,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		LinkedInURL: input.LinkedInURL,
		Company:     input.Company,
		Location:    input.Location,
		Bio:         input.Bio,
	}

	if err := uc.ownerRepo.Create(ctx, owner); err != nil {
		return nil, err
	}

	return owner, nil
}

func (uc *OwnerUseCase) GetOwner(ctx context.Context, id string) (*entity.Owner, error) {
	return uc.ownerRepo.GetByID(ctx, id)
}

func (uc *OwnerUseCase) GetOwnerByUser(ctx context.Context, userID string) (*entity.Owner, error) {
	return uc.ownerRepo.GetByUserID(ctx, userID)
}

// ListOwners degrades to sample data when the store is unreachable; the
// second-to-last return value reports the degraded path.
func (uc *OwnerUseCase) ListOwners(ctx context.Context, query string, page, pageSize int) ([]*entity.Owner, int64, bool, error) {
	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}

	owners, total, err := uc.ownerRepo.List(ctx, query, pageSize, offset)
	if err != nil {
		logger.Error("Owner listing unavailable, serving sample data: %v", err)
		fallback := sample.Owners()
		return fallback, int64(len(fallback)), true, nil
	}

	return owners, total, false, nil
}

type VerifyOwnerResult struct {
	Owner      *entity.Owner                 `json:"owner"`
	TrustScore int                           `json:"trust_score"`
	Verified   bool                          `json:"verified"`
	Lookup     *service.IdentityLookupResult `json:"lookup"`
}

// VerifyOwner runs the third-party identity and company lookups for the
// caller's owner profile and persists the resulting trust score.
func (uc *OwnerUseCase) VerifyOwner(ctx context.Context, userID string) (*VerifyOwnerResult, error) {
	owner, err := uc.ownerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	lookup, err := uc.verifier.VerifyIdentity(ctx, service.IdentityLookupRequest{
		Name:    owner.Name,
		Email:   owner.Email,
		Phone:   owner.Phone,
		Company: owner.Company,
	})
	if err != nil {
		return nil, errors.Internal("Identity verification provider unavailable", err)
	}

	score := uc.identity.Score(service.IdentitySignals{
		IdentityMatched: lookup.IdentityMatched,
		EmailPresent:    owner.Email != "",
		PhonePresent:    owner.Phone != "",
		LinkedInPresent: owner.LinkedInURL != "",
		CompanyMatched:  lookup.CompanyMatched,
	})

	owner.Trust.TrustScore = score
	owner.IdentityVerified = uc.identity.Verified(score)
	if owner.IdentityVerified {
		now := time.Now()
		owner.VerifiedAt = &now
	}

	if err := uc.ownerRepo.Update(ctx, owner); err != nil {
		return nil, err
	}

	return &VerifyOwnerResult{
		Owner:      owner,
		TrustScore: score,
		Verified:   owner.IdentityVerified,
		Lookup:     lookup,
	}, nil
}
