package usecase

import (
	"context"
	"io"
	"time"

	"trueestate/internal/domain/entity"
	"trueestate/internal/domain/repository"
	"trueestate/internal/domain/service"
	"trueestate/internal/infrastructure/sample"
	"trueestate/pkg/errors"
	"trueestate/pkg/logger"
)

type PropertyUseCase struct {
	propertyRepo repository.PropertyRepository
	ownerRepo    repository.OwnerRepository
	transparency *service.TransparencyPolicy
	images       ImageStore
}

func NewPropertyUseCase(
	propertyRepo repository.PropertyRepository,
	ownerRepo repository.OwnerRepository,
	transparency *service.TransparencyPolicy,
	images ImageStore,
) *PropertyUseCase {
	return &PropertyUseCase{
		propertyRepo: propertyRepo,
		ownerRepo:    ownerRepo,
		transparency: transparency,
		images:       images,
	}
}

type CreatePropertyInput struct {
	Title        string
	Address      string
	City         string
	State        string
	ZipCode      string
	Lat          float64
	Lng          float64
	PropertyType string
	Price        float64
	Bedrooms     int
	Bathrooms    int
	SquareFt     int
	YearBuilt    int
	Images       []entity.PropertyImage
	Verification entity.VerificationData
}

// OwnerSummary is the joined owner view attached to property responses.
type OwnerSummary struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	TrustScore       int    `json:"trust_score"`
	IdentityVerified bool   `json:"identity_verified"`
}

type PropertyWithOwner struct {
	*entity.Property
	Owner *OwnerSummary `json:"owner,omitempty"`
}

// CreateProperty lists a new property under the caller's owner profile. A
// caller without one cannot list.
func (uc *PropertyUseCase) CreateProperty(ctx context.Context, userID string, input CreatePropertyInput) (*entity.Property, error) {
	owner, err := uc.ownerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.BadRequest("An owner profile is required to list properties", err)
	}

	verification := input.Verification
	if verification.OwnerVerified || verification.DocumentsVerified ||
		verification.AddressVerified || verification.PriceVerified {
		now := time.Now()
		verification.LastVerified = &now
	}

	property := &entity.Property{
		OwnerID:      owner.ID,
		Title:        input.Title,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		ZipCode:      input.ZipCode,
		Coordinates:  entity.Coordinates{Lat: input.Lat, Lng: input.Lng},
		PropertyType: input.PropertyType,
		Price:        input.Price,
		Bedrooms:     input.Bedrooms,
		Bathrooms:    input.Bathrooms,
		SquareFt:     input.SquareFt,
		YearBuilt:    input.YearBuilt,
		Images:       input.Images,
		Verification: verification,
	}

	// Score is computed fresh on create; there are no reviews yet.
	property.TransparencyScore = uc.transparency.Score(property.Verification, property.Ratings)

	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	if err := uc.refreshPortfolio(ctx, owner); err != nil {
		// Portfolio is a denormalized summary; a failed refresh is logged
		// and repaired on the next property mutation.
		logger.Warn("Portfolio refresh failed for owner %s: %v", owner.ID, err)
	}

	return property, nil
}

func (uc *PropertyUseCase) GetProperty(ctx context.Context, id string) (*PropertyWithOwner, error) {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.propertyRepo.IncrementViews(ctx, id); err != nil {
		logger.Warn("View counter update failed for property %s: %v", id, err)
	} else {
		property.Views++
	}

	return uc.attachOwner(ctx, property), nil
}

// ListProperties returns the filtered page, degrading to the bundled sample
// dataset when the store is unreachable. The third return value reports the
// degraded path.
func (uc *PropertyUseCase) ListProperties(ctx context.Context, filter repository.PropertyFilter, page, pageSize int) ([]*PropertyWithOwner, int64, bool, error) {
	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}

	properties, total, err := uc.propertyRepo.List(ctx, filter, pageSize, offset)
	if err != nil {
		logger.Error("Property listing unavailable, serving sample data: %v", err)
		fallback := sample.Properties()
		out := make([]*PropertyWithOwner, len(fallback))
		for i, p := range fallback {
			out[i] = &PropertyWithOwner{Property: p}
		}
		return out, int64(len(fallback)), true, nil
	}

	out := make([]*PropertyWithOwner, len(properties))
	for i, p := range properties {
		out[i] = uc.attachOwner(ctx, p)
	}

	return out, total, false, nil
}

type UpdatePropertyInput struct {
	Title        *string
	Price        *float64
	Bedrooms     *int
	Bathrooms    *int
	Images       []entity.PropertyImage
	Verification *entity.VerificationData
}

// UpdateProperty applies field edits. The transparency score is recomputed
// only when the verification data changes.
func (uc *PropertyUseCase) UpdateProperty(ctx context.Context, id, userID, role string, input UpdatePropertyInput) (*entity.Property, error) {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if role != entity.RoleAdmin {
		owner, err := uc.ownerRepo.GetByUserID(ctx, userID)
		if err != nil || owner.ID != property.OwnerID {
			return nil, errors.Forbidden("Only the property owner can edit this listing", nil)
		}
	}

	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Price != nil {
		property.Price = *input.Price
	}
	if input.Bedrooms != nil {
		property.Bedrooms = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		property.Bathrooms = *input.Bathrooms
	}
	if input.Images != nil {
		property.Images = input.Images
	}

	if input.Verification != nil {
		now := time.Now()
		verification := *input.Verification
		verification.LastVerified = &now
		property.Verification = verification
		property.TransparencyScore = uc.transparency.Score(property.Verification, property.Ratings)
	}

	if err := uc.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	if owner, err := uc.ownerRepo.GetByID(ctx, property.OwnerID); err == nil {
		if err := uc.refreshPortfolio(ctx, owner); err != nil {
			logger.Warn("Portfolio refresh failed for owner %s: %v", owner.ID, err)
		}
	}

	return property, nil
}

// AddImage uploads a listing photo and appends it to the property's image
// list. Same ownership rule as UpdateProperty.
func (uc *PropertyUseCase) AddImage(ctx context.Context, id, userID, role string, body io.Reader, contentType string) (*entity.Property, error) {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if role != entity.RoleAdmin {
		owner, err := uc.ownerRepo.GetByUserID(ctx, userID)
		if err != nil || owner.ID != property.OwnerID {
			return nil, errors.Forbidden("Only the property owner can edit this listing", nil)
		}
	}

	if uc.images == nil {
		return nil, errors.Internal("Image storage is not configured", nil)
	}

	url, err := uc.images.UploadImage(ctx, body, contentType)
	if err != nil {
		return nil, errors.Internal("Failed to store image", err)
	}

	property.Images = append(property.Images, entity.PropertyImage{
		URL:          url,
		DisplayOrder: len(property.Images),
	})

	if err := uc.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

// refreshPortfolio recomputes the owner's denormalized portfolio summary
// from the property collection.
func (uc *PropertyUseCase) refreshPortfolio(ctx context.Context, owner *entity.Owner) error {
	properties, err := uc.propertyRepo.ListByOwnerID(ctx, owner.ID)
	if err != nil {
		return err
	}

	portfolio := entity.Portfolio{TotalProperties: len(properties)}
	locations := make(map[string]bool)
	types := make(map[string]bool)

	for _, p := range properties {
		portfolio.TotalValue += p.Price
		loc := p.City + ", " + p.State
		if !locations[loc] {
			locations[loc] = true
			portfolio.Locations = append(portfolio.Locations, loc)
		}
		if !types[p.PropertyType] {
			types[p.PropertyType] = true
			portfolio.PropertyTypes = append(portfolio.PropertyTypes, p.PropertyType)
		}
	}

	owner.Portfolio = portfolio
	return uc.ownerRepo.Update(ctx, owner)
}

func (uc *PropertyUseCase) attachOwner(ctx context.Context, property *entity.Property) *PropertyWithOwner {
	result := &PropertyWithOwner{Property: property}

	owner, err := uc.ownerRepo.GetByID(ctx, property.OwnerID)
	if err != nil {
		logger.Debug("Owner lookup failed for property %s: %v", property.ID, err)
		return result
	}

	result.Owner = &OwnerSummary{
		ID:               owner.ID,
		Name:             owner.Name,
		TrustScore:       owner.Trust.TrustScore,
		IdentityVerified: owner.IdentityVerified,
	}
	return result
}
