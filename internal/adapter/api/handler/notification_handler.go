package handler

import (
	"trueestate/internal/domain/entity"
	"trueestate/internal/usecase"
	"trueestate/pkg/errors"
	"trueestate/pkg/response"

	"github.com/labstack/echo/v4"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

type createAlertRequest struct {
	Name         string  `json:"name" validate:"required"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	PropertyType string  `json:"property_type"`
	MinPrice     float64 `json:"min_price" validate:"omitempty,gte=0"`
	MaxPrice     float64 `json:"max_price" validate:"omitempty,gte=0"`
}

type createSavedViewRequest struct {
	Name    string            `json:"name" validate:"required"`
	Filters map[string]string `json:"filters"`
}

type createNotificationRequest struct {
	Type    string `json:"type" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Message string `json:"message"`
}

// CreateNotification stores a notification for the current user. Used by the
// client to persist reminders; system notifications go through the usecases.
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var req createNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	notification := h.notificationUseCase.Notify(c.Request().Context(), userID, req.Type, req.Title, req.Message)
	if notification == nil {
		return response.Error(c, errors.Internal("Failed to store notification", nil))
	}

	return response.Created(c, notification)
}

func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID := c.Get("uid").(string)

	notifications, err := h.notificationUseCase.List(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, notifications)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID := c.Get("uid").(string)
	id := c.Param("id")

	if err := h.notificationUseCase.MarkRead(c.Request().Context(), userID, id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Notification marked as read",
	})
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID := c.Get("uid").(string)

	if err := h.notificationUseCase.MarkAllRead(c.Request().Context(), userID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "All notifications marked as read",
	})
}

func (h *NotificationHandler) CreateAlert(c echo.Context) error {
	var req createAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	alert, err := h.notificationUseCase.CreateAlert(c.Request().Context(), userID, usecase.CreateAlertInput{
		Name: req.Name,
		Criteria: entity.AlertCriteria{
			City:         req.City,
			State:        req.State,
			PropertyType: req.PropertyType,
			MinPrice:     req.MinPrice,
			MaxPrice:     req.MaxPrice,
		},
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, alert)
}

func (h *NotificationHandler) DeleteAlert(c echo.Context) error {
	userID := c.Get("uid").(string)
	id := c.Param("id")

	if err := h.notificationUseCase.DeleteAlert(c.Request().Context(), userID, id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Alert deleted",
	})
}

func (h *NotificationHandler) ListAlerts(c echo.Context) error {
	userID := c.Get("uid").(string)

	alerts, err := h.notificationUseCase.ListAlerts(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, alerts)
}

func (h *NotificationHandler) CreateSavedView(c echo.Context) error {
	var req createSavedViewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	view, err := h.notificationUseCase.CreateSavedView(c.Request().Context(), userID, usecase.CreateSavedViewInput{
		Name:    req.Name,
		Filters: req.Filters,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, view)
}

func (h *NotificationHandler) ListSavedViews(c echo.Context) error {
	userID := c.Get("uid").(string)

	views, err := h.notificationUseCase.ListSavedViews(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, views)
}
