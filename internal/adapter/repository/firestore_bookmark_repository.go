package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"trueestate/internal/domain/entity"
	"trueestate/internal/domain/repository"
	"trueestate/pkg/errors"
)

type firestoreBookmarkRepository struct {
	client *firestore.Client
}

func NewFirestoreBookmarkRepository(client *firestore.Client) repository.BookmarkRepository {
	return &firestoreBookmarkRepository{client: client}
}

// bookmarkID is deterministic per (user, property) so the uniqueness
// invariant falls out of the document ID.
func bookmarkID(userID, propertyID string) string {
	return fmt.Sprintf("%s_%s", userID, propertyID)
}

func (r *firestoreBookmarkRepository) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	exists, err := r.Exists(ctx, bookmark.UserID, bookmark.PropertyID)
	if err != nil {
		return err
	}
	if exists {
		return errors.Conflict("Property already bookmarked")
	}

	bookmark.ID = bookmarkID(bookmark.UserID, bookmark.PropertyID)
	if bookmark.CreatedAt.IsZero() {
		bookmark.CreatedAt = time.Now()
	}

	_, err = r.client.Collection("bookmarks").Doc(bookmark.ID).Set(ctx, bookmark)
	if err != nil {
		return errors.Internal("Failed to create bookmark", err)
	}

	return nil
}

func (r *firestoreBookmarkRepository) Get(ctx context.Context, userID, propertyID string) (*entity.Bookmark, error) {
	doc, err := r.client.Collection("bookmarks").Doc(bookmarkID(userID, propertyID)).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Bookmark", nil)
		}
		return nil, errors.Internal("Failed to get bookmark", err)
	}

	var bookmark entity.Bookmark
	if err := doc.DataTo(&bookmark); err != nil {
		return nil, errors.Internal("Failed to parse bookmark data", err)
	}

	return &bookmark, nil
}

func (r *firestoreBookmarkRepository) Delete(ctx context.Context, userID, propertyID string) error {
	exists, err := r.Exists(ctx, userID, propertyID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound("Bookmark", nil)
	}

	_, err = r.client.Collection("bookmarks").Doc(bookmarkID(userID, propertyID)).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete bookmark", err)
	}

	return nil
}

func (r *firestoreBookmarkRepository) Exists(ctx context.Context, userID, propertyID string) (bool, error) {
	doc, err := r.client.Collection("bookmarks").Doc(bookmarkID(userID, propertyID)).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, errors.Internal("Failed to check bookmark", err)
	}

	return doc.Exists(), nil
}

func (r *firestoreBookmarkRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Bookmark, int64, error) {
	query := r.client.Collection("bookmarks").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to get bookmarks", err)
	}
	total := int64(len(allDocs))

	start := offset
	if start > len(allDocs) {
		start = len(allDocs)
	}
	end := len(allDocs)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	var bookmarks []*entity.Bookmark
	for _, doc := range allDocs[start:end] {
		var bookmark entity.Bookmark
		if err := doc.DataTo(&bookmark); err != nil {
			continue
		}
		bookmarks = append(bookmarks, &bookmark)
	}

	return bookmarks, total, nil
}
