package handler

import (
	"trueestate/internal/usecase"
	"trueestate/pkg/response"
	"trueestate/pkg/utils"

	"github.com/labstack/echo/v4"
)

type OwnerHandler struct {
	ownerUseCase *usecase.OwnerUseCase
}

func NewOwnerHandler(ownerUseCase *usecase.OwnerUseCase) *OwnerHandler {
	return &OwnerHandler{
		ownerUseCase: ownerUseCase,
	}
}

type createOwnerRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	LinkedInURL string `json:"linkedin_url" validate:"omitempty,url"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Bio         string `json:"bio"`
}

func (h *OwnerHandler) CreateOwner(c echo.Context) error {
	var req createOwnerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	owner, err := h.ownerUseCase.CreateOwner(c.Request().Context(), userID, usecase.CreateOwnerInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		LinkedInURL: req.LinkedInURL,
		Company:     req.Company,
		Location:    req.Location,
		Bio:         req.Bio,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, owner)
}

func (h *OwnerHandler) GetOwner(c echo.Context) error {
	id := c.Param("id")

	owner, err := h.ownerUseCase.GetOwner(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, owner)
}

func (h *OwnerHandler) GetMyOwnerProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	owner, err := h.ownerUseCase.GetOwnerByUser(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, owner)
}

func (h *OwnerHandler) ListOwners(c echo.Context) error {
	query := c.QueryParam("q")
	pagination := utils.GetPaginationParams(c)

	owners, total, fallback, err := h.ownerUseCase.ListOwners(
		c.Request().Context(),
		query,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	if fallback {
		totalPages := int(total) / pagination.PageSize
		if int(total)%pagination.PageSize > 0 {
			totalPages++
		}
		return response.Fallback(c, response.PaginatedResponse{
			Items:      owners,
			Total:      total,
			Page:       pagination.Page,
			PageSize:   pagination.PageSize,
			TotalPages: totalPages,
		})
	}

	return response.Paginated(c, owners, total, pagination.Page, pagination.PageSize)
}

func (h *OwnerHandler) VerifyIdentity(c echo.Context) error {
	userID := c.Get("uid").(string)

	result, err := h.ownerUseCase.VerifyOwner(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
