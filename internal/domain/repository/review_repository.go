package repository

import (
	"context"

	"trueestate/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.PropertyReview) error
	GetByUserAndProperty(ctx context.Context, userID, propertyID string) (*entity.PropertyReview, error)
	ListByProperty(ctx context.Context, propertyID string, limit, offset int) ([]*entity.PropertyReview, int64, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.PropertyReview, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.PropertyComment) error
	ListByProperty(ctx context.Context, propertyID string, limit, offset int) ([]*entity.PropertyComment, int64, error)
}
