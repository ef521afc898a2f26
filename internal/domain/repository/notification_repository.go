package repository

import (
	"context"

	"trueestate/internal/domain/entity"
)

// These stores are behind interfaces so the dev wiring can use the in-memory
// adapters while production swaps in Firestore without touching the usecases.

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type AlertRepository interface {
	Create(ctx context.Context, alert *entity.PropertyAlert) error
	ListByUser(ctx context.Context, userID string) ([]*entity.PropertyAlert, error)
	Delete(ctx context.Context, userID, id string) error
}

type SavedViewRepository interface {
	Create(ctx context.Context, view *entity.SavedView) error
	ListByUser(ctx context.Context, userID string) ([]*entity.SavedView, error)
}
