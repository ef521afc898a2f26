package handler

import (
	"trueestate/internal/domain/service"
	"trueestate/internal/usecase"
	"trueestate/pkg/response"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateProfileRequest struct {
	Name             string `json:"name"`
	SubscriptionTier string `json:"subscription_tier" validate:"omitempty,oneof=free pro enterprise"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"user":         user,
		"capabilities": service.CapabilitiesForRole(user.Role),
	})
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		Name:             req.Name,
		SubscriptionTier: req.SubscriptionTier,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
