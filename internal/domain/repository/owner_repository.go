package repository

import (
	"context"

	"trueestate/internal/domain/entity"
)

type OwnerRepository interface {
	Create(ctx context.Context, owner *entity.Owner) error
	GetByID(ctx context.Context, id string) (*entity.Owner, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Owner, error)
	Update(ctx context.Context, owner *entity.Owner) error
	List(ctx context.Context, query string, limit, offset int) ([]*entity.Owner, int64, error)
}
