package usecase

import (
	"context"

	"trueestate/internal/domain/entity"
	"trueestate/internal/domain/repository"
	"trueestate/pkg/logger"
)

type BookmarkUseCase struct {
	bookmarkRepo repository.BookmarkRepository
	propertyRepo repository.PropertyRepository
}

func NewBookmarkUseCase(bookmarkRepo repository.BookmarkRepository, propertyRepo repository.PropertyRepository) *BookmarkUseCase {
	return &BookmarkUseCase{
		bookmarkRepo: bookmarkRepo,
		propertyRepo: propertyRepo,
	}
}

type AddBookmarkInput struct {
	PropertyID string
	Notes      string
	Tags       []string
}

func (uc *BookmarkUseCase) Add(ctx context.Context, userID string, input AddBookmarkInput) (*entity.Bookmark, error) {
	if _, err := uc.propertyRepo.GetByID(ctx, input.PropertyID); err != nil {
		return nil, err
	}

	bookmark := &entity.Bookmark{
		UserID:     userID,
		PropertyID: input.PropertyID,
		Notes:      input.Notes,
		Tags:       input.Tags,
	}

	if err := uc.bookmarkRepo.Create(ctx, bookmark); err != nil {
		return nil, err
	}

	if err := uc.propertyRepo.IncrementBookmarks(ctx, input.PropertyID, 1); err != nil {
		logger.Warn("Failed to increment bookmark count for property %s: %v", input.PropertyID, err)
	}

	return bookmark, nil
}

func (uc *BookmarkUseCase) Remove(ctx context.Context, userID, propertyID string) error {
	if err := uc.bookmarkRepo.Delete(ctx, userID, propertyID); err != nil {
		return err
	}

	if err := uc.propertyRepo.IncrementBookmarks(ctx, propertyID, -1); err != nil {
		logger.Warn("Failed to decrement bookmark count for property %s: %v", propertyID, err)
	}

	return nil
}

func (uc *BookmarkUseCase) List(ctx context.Context, userID string, page, limit int) ([]*entity.BookmarkWithProperty, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	bookmarks, total, err := uc.bookmarkRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*entity.BookmarkWithProperty, 0, len(bookmarks))
	for _, b := range bookmarks {
		item := &entity.BookmarkWithProperty{
			ID:         b.ID,
			UserID:     b.UserID,
			PropertyID: b.PropertyID,
			Notes:      b.Notes,
			Tags:       b.Tags,
			CreatedAt:  b.CreatedAt,
		}
		if property, err := uc.propertyRepo.GetByID(ctx, b.PropertyID); err == nil {
			item.Property = property
		}
		result = append(result, item)
	}

	return result, total, nil
}

func (uc *BookmarkUseCase) IsBookmarked(ctx context.Context, userID, propertyID string) (bool, error) {
	return uc.bookmarkRepo.Exists(ctx, userID, propertyID)
}
