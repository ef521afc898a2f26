package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"trueestate/internal/domain/entity"
	"trueestate/internal/domain/repository"
	"trueestate/pkg/errors"
)

type firestorePropertyRepository struct {
	client *firestore.Client
}

func NewFirestorePropertyRepository(client *firestore.Client) repository.PropertyRepository {
	return &firestorePropertyRepository{
		client: client,
	}
}

func (r *firestorePropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	if property.ID == "" {
		doc := r.client.Collection("properties").NewDoc()
		property.ID = doc.ID
	}

	now := time.Now()
	if property.CreatedAt.IsZero() {
		property.CreatedAt = now
	}
	property.UpdatedAt = now

	_, err := r.client.Collection("properties").Doc(property.ID).Set(ctx, property)
	if err != nil {
		return errors.Internal("Failed to create property", err)
	}

	return nil
}

func (r *firestorePropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	doc, err := r.client.Collection("properties").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Property", err)
		}
		return nil, errors.Internal("Failed to get property", err)
	}

	var property entity.Property
	if err := doc.DataTo(&property); err != nil {
		return nil, errors.Internal("Failed to parse property data", err)
	}

	return &property, nil
}

func (r *firestorePropertyRepository) Update(ctx context.Context, property *entity.Property) error {
	property.UpdatedAt = time.Now()

	_, err := r.client.Collection("properties").Doc(property.ID).Set(ctx, property)
	if err != nil {
		return errors.Internal("Failed to update property", err)
	}

	return nil
}

// List fetches candidates from Firestore and applies the substring and range
// filters in memory. Firestore has no case-insensitive or substring
// operators, so equality filters go to the query and the rest runs here.
func (r *firestorePropertyRepository) List(ctx context.Context, filter repository.PropertyFilter, limit, offset int) ([]*entity.Property, int64, error) {
	query := r.client.Collection("properties").Query
	if filter.OwnerID != "" {
		query = query.Where("ownerId", "==", filter.OwnerID)
	}

	iter := query.Documents(ctx)
	var matched []*entity.Property

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate properties", err)
		}

		var property entity.Property
		if err := doc.DataTo(&property); err != nil {
			return nil, 0, errors.Internal("Failed to parse property data", err)
		}

		if matchesFilter(&property, filter) {
			matched = append(matched, &property)
		}
	}

	sortProperties(matched, filter.Sort)

	total := int64(len(matched))

	start := offset
	if start > len(matched) {
		start = len(matched)
	}
	end := len(matched)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	return matched[start:end], total, nil
}

func (r *firestorePropertyRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*entity.Property, error) {
	iter := r.client.Collection("properties").Where("ownerId", "==", ownerID).Documents(ctx)

	var properties []*entity.Property
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate owner properties", err)
		}

		var property entity.Property
		if err := doc.DataTo(&property); err != nil {
			return nil, errors.Internal("Failed to parse property data", err)
		}
		properties = append(properties, &property)
	}

	return properties, nil
}

func (r *firestorePropertyRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.client.Collection("properties").Doc(id).Update(ctx, []firestore.Update{
		{Path: "views", Value: firestore.Increment(1)},
	})
	if err != nil {
		return errors.Internal("Failed to increment property views", err)
	}

	return nil
}

func (r *firestorePropertyRepository) IncrementBookmarks(ctx context.Context, id string, delta int) error {
	_, err := r.client.Collection("properties").Doc(id).Update(ctx, []firestore.Update{
		{Path: "bookmarks", Value: firestore.Increment(delta)},
	})
	if err != nil {
		return errors.Internal("Failed to update property bookmark count", err)
	}

	return nil
}

func matchesFilter(p *entity.Property, f repository.PropertyFilter) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Address), q) &&
			!strings.Contains(strings.ToLower(p.City), q) {
			return false
		}
	}
	if !containsFold(p.City, f.City) {
		return false
	}
	if !containsFold(p.State, f.State) {
		return false
	}
	if !containsFold(p.PropertyType, f.PropertyType) {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.MinBedrooms > 0 && p.Bedrooms < f.MinBedrooms {
		return false
	}
	if f.MaxBedrooms > 0 && p.Bedrooms > f.MaxBedrooms {
		return false
	}
	if f.MinBathrooms > 0 && p.Bathrooms < f.MinBathrooms {
		return false
	}
	if f.MaxBathrooms > 0 && p.Bathrooms > f.MaxBathrooms {
		return false
	}
	return true
}

func containsFold(value, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(needle))
}

func sortProperties(properties []*entity.Property, sortKey string) {
	switch sortKey {
	case "price_asc":
		sort.SliceStable(properties, func(i, j int) bool { return properties[i].Price < properties[j].Price })
	case "price_desc":
		sort.SliceStable(properties, func(i, j int) bool { return properties[i].Price > properties[j].Price })
	case "score_desc":
		sort.SliceStable(properties, func(i, j int) bool {
			return properties[i].TransparencyScore > properties[j].TransparencyScore
		})
	default:
		sort.SliceStable(properties, func(i, j int) bool { return properties[i].CreatedAt.After(properties[j].CreatedAt) })
	}
}
