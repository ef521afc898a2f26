package handler

import (
	"trueestate/internal/usecase"
	"trueestate/pkg/response"
	"trueestate/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	Rating        int     `json:"rating" validate:"required,min=1,max=5"`
	Accuracy      float64 `json:"accuracy" validate:"omitempty,min=0,max=5"`
	Communication float64 `json:"communication" validate:"omitempty,min=0,max=5"`
	Condition     float64 `json:"condition" validate:"omitempty,min=0,max=5"`
	Value         float64 `json:"value" validate:"omitempty,min=0,max=5"`
	Content       string  `json:"content" validate:"required"`
}

type createCommentRequest struct {
	Content  string `json:"content" validate:"required"`
	UserName string `json:"user_name"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	propertyID := c.Param("id")

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), userID, propertyID, usecase.CreateReviewInput{
		Rating:        req.Rating,
		Accuracy:      req.Accuracy,
		Communication: req.Communication,
		Condition:     req.Condition,
		Value:         req.Value,
		Content:       req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	propertyID := c.Param("id")
	pagination := utils.GetPaginationParams(c)

	reviews, total, err := h.reviewUseCase.ListReviews(
		c.Request().Context(),
		propertyID,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reviews, total, pagination.Page, pagination.PageSize)
}

func (h *ReviewHandler) CreateComment(c echo.Context) error {
	propertyID := c.Param("id")

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	comment, err := h.reviewUseCase.CreateComment(c.Request().Context(), userID, propertyID, usecase.CreateCommentInput{
		Content:  req.Content,
		UserName: req.UserName,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, comment)
}

func (h *ReviewHandler) ListComments(c echo.Context) error {
	propertyID := c.Param("id")
	pagination := utils.GetPaginationParams(c)

	comments, total, err := h.reviewUseCase.ListComments(
		c.Request().Context(),
		propertyID,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, comments, total, pagination.Page, pagination.PageSize)
}
