package handler

import (
	"trueestate/internal/usecase"
	"trueestate/pkg/errors"
	"trueestate/pkg/response"
	"trueestate/pkg/utils"

	"github.com/labstack/echo/v4"
)

type BookmarkHandler struct {
	bookmarkUseCase *usecase.BookmarkUseCase
}

func NewBookmarkHandler(bookmarkUseCase *usecase.BookmarkUseCase) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkUseCase: bookmarkUseCase,
	}
}

type addBookmarkRequest struct {
	PropertyID string   `json:"property_id" validate:"required"`
	Notes      string   `json:"notes"`
	Tags       []string `json:"tags"`
}

func (h *BookmarkHandler) AddBookmark(c echo.Context) error {
	var req addBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	bookmark, err := h.bookmarkUseCase.Add(c.Request().Context(), userID, usecase.AddBookmarkInput{
		PropertyID: req.PropertyID,
		Notes:      req.Notes,
		Tags:       req.Tags,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, bookmark)
}

func (h *BookmarkHandler) RemoveBookmark(c echo.Context) error {
	userID := c.Get("uid").(string)
	propertyID := c.Param("propertyId")

	if propertyID == "" {
		return response.Error(c, errors.BadRequest("Property ID is required", nil))
	}

	if err := h.bookmarkUseCase.Remove(c.Request().Context(), userID, propertyID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Bookmark removed successfully",
	})
}

func (h *BookmarkHandler) ListBookmarks(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	bookmarks, total, err := h.bookmarkUseCase.List(
		c.Request().Context(),
		userID,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, bookmarks, total, pagination.Page, pagination.PageSize)
}

func (h *BookmarkHandler) CheckBookmark(c echo.Context) error {
	userID := c.Get("uid").(string)
	propertyID := c.Param("propertyId")

	if propertyID == "" {
		return response.Error(c, errors.BadRequest("Property ID is required", nil))
	}

	bookmarked, err := h.bookmarkUseCase.IsBookmarked(c.Request().Context(), userID, propertyID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"property_id":   propertyID,
		"is_bookmarked": bookmarked,
	})
}
