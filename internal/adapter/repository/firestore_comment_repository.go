package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"trueestate/internal/domain/entity"
	"trueestate/internal/domain/repository"
	"trueestate/pkg/errors"
)

type firestoreCommentRepository struct {
	client *firestore.Client
}

func NewFirestoreCommentRepository(client *firestore.Client) repository.CommentRepository {
	return &firestoreCommentRepository{
		client: client,
	}
}

func (r *firestoreCommentRepository) Create(ctx context.Context, comment *entity.PropertyComment) error {
	if comment.ID == "" {
		doc := r.client.Collection("comments").NewDoc()
		comment.ID = doc.ID
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("comments").Doc(comment.ID).Set(ctx, comment)
	if err != nil {
		return errors.Internal("Failed to create comment", err)
	}

	return nil
}

func (r *firestoreCommentRepository) ListByProperty(ctx context.Context, propertyID string, limit, offset int) ([]*entity.PropertyComment, int64, error) {
	query := r.client.Collection("comments").
		Where("propertyId", "==", propertyID).
		OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count comments", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var comments []*entity.PropertyComment

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate comments", err)
		}

		var comment entity.PropertyComment
		if err := doc.DataTo(&comment); err != nil {
			return nil, 0, errors.Internal("Failed to parse comment data", err)
		}
		comments = append(comments, &comment)
	}

	return comments, total, nil
}
