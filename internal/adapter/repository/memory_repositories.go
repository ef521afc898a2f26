package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"trueestate/internal/domain/entity"
	"trueestate/internal/domain/repository"
	"trueestate/pkg/errors"
)

// In-memory adapters for per-process stores that need no durability.
// They are mutex-guarded and injected like any other repository, so the
// dev/test wiring is concurrency-safe and isolated per instance.

type memoryNotificationRepository struct {
	mu    sync.RWMutex
	items map[string][]*entity.Notification // keyed by userID
}

func NewMemoryNotificationRepository() repository.NotificationRepository {
	return &memoryNotificationRepository{
		items: make(map[string][]*entity.Notification),
	}
}

func (r *memoryNotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	copied := *n
	r.items[n.UserID] = append(r.items[n.UserID], &copied)
	return nil
}

func (r *memoryNotificationRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.items[userID]
	out := make([]*entity.Notification, len(stored))
	for i, n := range stored {
		copied := *n
		out[i] = &copied
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryNotificationRepository) MarkRead(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.items[userID] {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return errors.NotFound("Notification", nil)
}

func (r *memoryNotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.items[userID] {
		n.Read = true
	}
	return nil
}

type memoryAlertRepository struct {
	mu    sync.RWMutex
	items map[string][]*entity.PropertyAlert
}

func NewMemoryAlertRepository() repository.AlertRepository {
	return &memoryAlertRepository{
		items: make(map[string][]*entity.PropertyAlert),
	}
}

func (r *memoryAlertRepository) Create(ctx context.Context, alert *entity.PropertyAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}
	copied := *alert
	r.items[alert.UserID] = append(r.items[alert.UserID], &copied)
	return nil
}

func (r *memoryAlertRepository) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.items[userID]
	for i, a := range stored {
		if a.ID == id {
			r.items[userID] = append(stored[:i], stored[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Alert", nil)
}

func (r *memoryAlertRepository) ListByUser(ctx context.Context, userID string) ([]*entity.PropertyAlert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.items[userID]
	out := make([]*entity.PropertyAlert, len(stored))
	for i, a := range stored {
		copied := *a
		out[i] = &copied
	}
	return out, nil
}

type memorySavedViewRepository struct {
	mu    sync.RWMutex
	items map[string][]*entity.SavedView
}

func NewMemorySavedViewRepository() repository.SavedViewRepository {
	return &memorySavedViewRepository{
		items: make(map[string][]*entity.SavedView),
	}
}

func (r *memorySavedViewRepository) Create(ctx context.Context, view *entity.SavedView) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if view.ID == "" {
		view.ID = uuid.New().String()
	}
	if view.CreatedAt.IsZero() {
		view.CreatedAt = time.Now()
	}
	copied := *view
	r.items[view.UserID] = append(r.items[view.UserID], &copied)
	return nil
}

func (r *memorySavedViewRepository) ListByUser(ctx context.Context, userID string) ([]*entity.SavedView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.items[userID]
	out := make([]*entity.SavedView, len(stored))
	for i, v := range stored {
		copied := *v
		out[i] = &copied
	}
	return out, nil
}
