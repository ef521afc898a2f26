package usecase

import (
	"context"

	"trueestate/internal/domain/entity"
	"trueestate/internal/domain/repository"
	"trueestate/pkg/logger"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	alertRepo        repository.AlertRepository
	savedViewRepo    repository.SavedViewRepository
	pusher           NotificationPusher
}

func NewNotificationUseCase(
	notificationRepo repository.NotificationRepository,
	alertRepo repository.AlertRepository,
	savedViewRepo repository.SavedViewRepository,
	pusher NotificationPusher,
) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		alertRepo:        alertRepo,
		savedViewRepo:    savedViewRepo,
		pusher:           pusher,
	}
}

// Notify stores a notification for the user and pushes it over the stream
// hub when the user has a live connection.
func (uc *NotificationUseCase) Notify(ctx context.Context, userID, notifType, title, message string) *entity.Notification {
	notification := &entity.Notification{
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
	}

	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		logger.Warn("Failed to store notification for user %s: %v", userID, err)
		return nil
	}

	if uc.pusher != nil {
		uc.pusher.SendToUser(userID, notification)
	}

	return notification
}

func (uc *NotificationUseCase) List(ctx context.Context, userID string) ([]*entity.Notification, error) {
	return uc.notificationRepo.ListByUser(ctx, userID)
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, userID, id string) error {
	return uc.notificationRepo.MarkRead(ctx, userID, id)
}

func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) error {
	return uc.notificationRepo.MarkAllRead(ctx, userID)
}

type CreateAlertInput struct {
	Name     string
	Criteria entity.AlertCriteria
}

func (uc *NotificationUseCase) CreateAlert(ctx context.Context, userID string, input CreateAlertInput) (*entity.PropertyAlert, error) {
	alert := &entity.PropertyAlert{
		UserID:   userID,
		Name:     input.Name,
		Criteria: input.Criteria,
		Active:   true,
	}
	if err := uc.alertRepo.Create(ctx, alert); err != nil {
		return nil, err
	}
	return alert, nil
}

func (uc *NotificationUseCase) ListAlerts(ctx context.Context, userID string) ([]*entity.PropertyAlert, error) {
	return uc.alertRepo.ListByUser(ctx, userID)
}

func (uc *NotificationUseCase) DeleteAlert(ctx context.Context, userID, id string) error {
	return uc.alertRepo.Delete(ctx, userID, id)
}

type CreateSavedViewInput struct {
	Name    string
	Filters map[string]string
}

func (uc *NotificationUseCase) CreateSavedView(ctx context.Context, userID string, input CreateSavedViewInput) (*entity.SavedView, error) {
	view := &entity.SavedView{
		UserID:  userID,
		Name:    input.Name,
		Filters: input.Filters,
	}
	if err := uc.savedViewRepo.Create(ctx, view); err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *NotificationUseCase) ListSavedViews(ctx context.Context, userID string) ([]*entity.SavedView, error) {
	return uc.savedViewRepo.ListByUser(ctx, userID)
}
