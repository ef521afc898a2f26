package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"trueestate/internal/domain/entity"
	"trueestate/internal/domain/repository"
	"trueestate/pkg/errors"
)

type firestoreOwnerRepository struct {
	client *firestore.Client
}

func NewFirestoreOwnerRepository(client *firestore.Client) repository.OwnerRepository {
	return &firestoreOwnerRepository{
		client: client,
	}
}

func (r *firestoreOwnerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	if owner.ID == "" {
		doc := r.client.Collection("owners").NewDoc()
		owner.ID = doc.ID
	}

	now := time.Now()
	if owner.CreatedAt.IsZero() {
		owner.CreatedAt = now
	}
	owner.UpdatedAt = now

	_, err := r.client.Collection("owners").Doc(owner.ID).Set(ctx, owner)
	if err != nil {
		return errors.Internal("Failed to create owner", err)
	}

	return nil
}

func (r *firestoreOwnerRepository) GetByID(ctx context.Context, id string) (*entity.Owner, error) {
	doc, err := r.client.Collection("owners").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Owner", err)
		}
		return nil, errors.Internal("Failed to get owner", err)
	}

	var owner entity.Owner
	if err := doc.DataTo(&owner); err != nil {
		return nil, errors.Internal("Failed to parse owner data", err)
	}

	return &owner, nil
}

func (r *firestoreOwnerRepository) GetByUserID(ctx context.Context, userID string) (*entity.Owner, error) {
	iter := r.client.Collection("owners").Where("userId", "==", userID).Limit(1).Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Owner", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to look up owner by user", err)
	}

	var owner entity.Owner
	if err := doc.DataTo(&owner); err != nil {
		return nil, errors.Internal("Failed to parse owner data", err)
	}

	return &owner, nil
}

func (r *firestoreOwnerRepository) Update(ctx context.Context, owner *entity.Owner) error {
	owner.UpdatedAt = time.Now()

	_, err := r.client.Collection("owners").Doc(owner.ID).Set(ctx, owner)
	if err != nil {
		return errors.Internal("Failed to update owner", err)
	}

	return nil
}

// List supports an optional case-insensitive substring query over name and
// location, applied in memory after the fetch.
func (r *firestoreOwnerRepository) List(ctx context.Context, query string, limit, offset int) ([]*entity.Owner, int64, error) {
	iter := r.client.Collection("owners").Documents(ctx)

	q := strings.ToLower(query)
	var matched []*entity.Owner

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate owners", err)
		}

		var owner entity.Owner
		if err := doc.DataTo(&owner); err != nil {
			return nil, 0, errors.Internal("Failed to parse owner data", err)
		}

		if q == "" ||
			strings.Contains(strings.ToLower(owner.Name), q) ||
			strings.Contains(strings.ToLower(owner.Location), q) ||
			strings.Contains(strings.ToLower(owner.Company), q) {
			matched = append(matched, &owner)
		}
	}

	total := int64(len(matched))

	start := offset
	if start > len(matched) {
		start = len(matched)
	}
	end := len(matched)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	return matched[start:end], total, nil
}
