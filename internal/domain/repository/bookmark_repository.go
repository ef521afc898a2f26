package repository

import (
	"context"

	"trueestate/internal/domain/entity"
)

type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *entity.Bookmark) error
	Get(ctx context.Context, userID, propertyID string) (*entity.Bookmark, error)
	Delete(ctx context.Context, userID, propertyID string) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Bookmark, int64, error)
	Exists(ctx context.Context, userID, propertyID string) (bool, error)
}
