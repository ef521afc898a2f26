package repository

import (
	"context"

	"trueestate/internal/domain/entity"
)

// PropertyFilter describes the list/search criteria. String fields match as
// case-insensitive substrings; numeric fields are range bounds (zero means
// unset).
type PropertyFilter struct {
	Query        string
	City         string
	State        string
	PropertyType string
	OwnerID      string
	MinPrice     float64
	MaxPrice     float64
	MinBedrooms  int
	MaxBedrooms  int
	MinBathrooms int
	MaxBathrooms int
	Sort         string
}

type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	Update(ctx context.Context, property *entity.Property) error
	List(ctx context.Context, filter PropertyFilter, limit, offset int) ([]*entity.Property, int64, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]*entity.Property, error)
	IncrementViews(ctx context.Context, id string) error
	IncrementBookmarks(ctx context.Context, id string, delta int) error
}
