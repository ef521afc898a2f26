package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trueestate/internal/domain/entity"
	"trueestate/internal/domain/repository"
	"trueestate/internal/domain/service"
	"trueestate/pkg/errors"
)

type propertyFixture struct {
	uc           *PropertyUseCase
	propertyRepo *fakePropertyRepository
	ownerRepo    *fakeOwnerRepository
	images       *fakeImageStore
}

func newPropertyFixture(t *testing.T) *propertyFixture {
	t.Helper()

	propertyRepo := newFakePropertyRepository()
	ownerRepo := newFakeOwnerRepository()
	images := newFakeImageStore()

	require.NoError(t, ownerRepo.Create(context.Background(), &entity.Owner{
		ID:     "owner-1",
		UserID: "owner-user-1",
		Name:   "Alice Landlord",
	}))

	return &propertyFixture{
		uc:           NewPropertyUseCase(propertyRepo, ownerRepo, service.NewTransparencyPolicy(), images),
		propertyRepo: propertyRepo,
		ownerRepo:    ownerRepo,
		images:       images,
	}
}

func (f *propertyFixture) createListing(t *testing.T, input CreatePropertyInput) *entity.Property {
	t.Helper()
	property, err := f.uc.CreateProperty(context.Background(), "owner-user-1", input)
	require.NoError(t, err)
	return property
}

func TestCreatePropertyComputesScore(t *testing.T) {
	f := newPropertyFixture(t)

	property := f.createListing(t, CreatePropertyInput{
		Title:        "Downtown Loft",
		Address:      "1 Main St",
		City:         "San Francisco",
		State:        "CA",
		PropertyType: "apartment",
		Price:        2500,
		Verification: entity.VerificationData{
			OwnerVerified:     true,
			DocumentsVerified: true,
			AddressVerified:   true,
		},
	})

	assert.Equal(t, 75, property.TransparencyScore)
	assert.NotNil(t, property.Verification.LastVerified)
}

func TestCreatePropertyWithoutOwnerProfile(t *testing.T) {
	f := newPropertyFixture(t)

	_, err := f.uc.CreateProperty(context.Background(), "stranger", CreatePropertyInput{
		Title: "Orphan Listing",
	})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreatePropertyRefreshesPortfolio(t *testing.T) {
	f := newPropertyFixture(t)

	f.createListing(t, CreatePropertyInput{
		Title: "Loft", City: "San Francisco", State: "CA",
		PropertyType: "apartment", Price: 2500,
	})
	f.createListing(t, CreatePropertyInput{
		Title: "House", City: "Oakland", State: "CA",
		PropertyType: "house", Price: 4000,
	})

	owner, err := f.ownerRepo.GetByID(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 2, owner.Portfolio.TotalProperties)
	assert.InDelta(t, 6500.0, owner.Portfolio.TotalValue, 0.001)
	assert.ElementsMatch(t, []string{"San Francisco, CA", "Oakland, CA"}, owner.Portfolio.Locations)
	assert.ElementsMatch(t, []string{"apartment", "house"}, owner.Portfolio.PropertyTypes)
}

func TestGetPropertyIncrementsViews(t *testing.T) {
	f := newPropertyFixture(t)
	created := f.createListing(t, CreatePropertyInput{Title: "Loft"})

	first, err := f.uc.GetProperty(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Views)

	second, err := f.uc.GetProperty(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Views)
}

func TestGetPropertyAttachesOwnerSummary(t *testing.T) {
	f := newPropertyFixture(t)
	created := f.createListing(t, CreatePropertyInput{Title: "Loft"})

	result, err := f.uc.GetProperty(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, result.Owner)
	assert.Equal(t, "owner-1", result.Owner.ID)
	assert.Equal(t, "Alice Landlord", result.Owner.Name)
}

func TestListPropertiesFallsBackToSampleData(t *testing.T) {
	f := newPropertyFixture(t)
	f.propertyRepo.listErr = errors.Internal("store unavailable", nil)

	properties, total, fallback, err := f.uc.ListProperties(context.Background(), repository.PropertyFilter{}, 1, 20)

	require.NoError(t, err)
	assert.True(t, fallback)
	assert.NotEmpty(t, properties)
	assert.Equal(t, int64(len(properties)), total)
}

func TestUpdatePropertyByOwner(t *testing.T) {
	f := newPropertyFixture(t)
	created := f.createListing(t, CreatePropertyInput{Title: "Loft", Price: 2500})

	newTitle := "Renovated Loft"
	newPrice := 2800.0
	updated, err := f.uc.UpdateProperty(context.Background(), created.ID, "owner-user-1", entity.RoleOwner, UpdatePropertyInput{
		Title: &newTitle,
		Price: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, "Renovated Loft", updated.Title)
	assert.InDelta(t, 2800.0, updated.Price, 0.001)
}

func TestUpdatePropertyForbiddenForStranger(t *testing.T) {
	f := newPropertyFixture(t)
	created := f.createListing(t, CreatePropertyInput{Title: "Loft"})

	require.NoError(t, f.ownerRepo.Create(context.Background(), &entity.Owner{
		ID:     "owner-2",
		UserID: "other-user",
		Name:   "Bob",
	}))

	newTitle := "Hijacked"
	_, err := f.uc.UpdateProperty(context.Background(), created.ID, "other-user", entity.RoleOwner, UpdatePropertyInput{
		Title: &newTitle,
	})

	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestUpdatePropertyAdminBypassesOwnership(t *testing.T) {
	f := newPropertyFixture(t)
	created := f.createListing(t, CreatePropertyInput{Title: "Loft"})

	newTitle := "Moderated Title"
	updated, err := f.uc.UpdateProperty(context.Background(), created.ID, "admin-user", entity.RoleAdmin, UpdatePropertyInput{
		Title: &newTitle,
	})

	require.NoError(t, err)
	assert.Equal(t, "Moderated Title", updated.Title)
}

func TestUpdateVerificationRecomputesScore(t *testing.T) {
	f := newPropertyFixture(t)
	created := f.createListing(t, CreatePropertyInput{Title: "Loft"})
	assert.Equal(t, 0, created.TransparencyScore)

	updated, err := f.uc.UpdateProperty(context.Background(), created.ID, "owner-user-1", entity.RoleOwner, UpdatePropertyInput{
		Verification: &entity.VerificationData{
			OwnerVerified: true,
			PriceVerified: true,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 50, updated.TransparencyScore)
	assert.NotNil(t, updated.Verification.LastVerified)
}

func TestAddImageAppendsToListing(t *testing.T) {
	f := newPropertyFixture(t)
	created := f.createListing(t, CreatePropertyInput{Title: "Loft"})

	updated, err := f.uc.AddImage(context.Background(), created.ID, "owner-user-1", entity.RoleOwner,
		strings.NewReader("jpeg bytes"), "image/jpeg")

	require.NoError(t, err)
	require.Len(t, updated.Images, 1)
	assert.Equal(t, f.images.urls[0], updated.Images[0].URL)
	assert.Equal(t, 0, updated.Images[0].DisplayOrder)

	again, err := f.uc.AddImage(context.Background(), created.ID, "owner-user-1", entity.RoleOwner,
		strings.NewReader("png bytes"), "image/png")
	require.NoError(t, err)
	require.Len(t, again.Images, 2)
	assert.Equal(t, 1, again.Images[1].DisplayOrder)

	stored, err := f.propertyRepo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Images, 2)
}

func TestAddImageForbiddenForStranger(t *testing.T) {
	f := newPropertyFixture(t)
	created := f.createListing(t, CreatePropertyInput{Title: "Loft"})

	require.NoError(t, f.ownerRepo.Create(context.Background(), &entity.Owner{
		ID:     "owner-2",
		UserID: "other-user",
		Name:   "Bob",
	}))

	_, err := f.uc.AddImage(context.Background(), created.ID, "other-user", entity.RoleOwner,
		strings.NewReader("jpeg bytes"), "image/jpeg")

	assert.True(t, errors.Is(err, "FORBIDDEN"))
	assert.Empty(t, f.images.urls)
}

func TestUpdateWithoutVerificationKeepsScore(t *testing.T) {
	f := newPropertyFixture(t)
	created := f.createListing(t, CreatePropertyInput{
		Title:        "Loft",
		Verification: entity.VerificationData{OwnerVerified: true},
	})
	assert.Equal(t, 40, created.TransparencyScore)

	newPrice := 3000.0
	updated, err := f.uc.UpdateProperty(context.Background(), created.ID, "owner-user-1", entity.RoleOwner, UpdatePropertyInput{
		Price: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, 40, updated.TransparencyScore)
}
