package usecase

import (
	"context"
	"fmt"

	"trueestate/internal/domain/entity"
	"trueestate/internal/domain/repository"
	"trueestate/internal/domain/service"
	"trueestate/pkg/errors"
	"trueestate/pkg/logger"
)

type ReviewUseCase struct {
	reviewRepo    repository.ReviewRepository
	commentRepo   repository.CommentRepository
	propertyRepo  repository.PropertyRepository
	ownerRepo     repository.OwnerRepository
	notifications *NotificationUseCase
	transparency  *service.TransparencyPolicy
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	commentRepo repository.CommentRepository,
	propertyRepo repository.PropertyRepository,
	ownerRepo repository.OwnerRepository,
	notifications *NotificationUseCase,
	transparency *service.TransparencyPolicy,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:    reviewRepo,
		commentRepo:   commentRepo,
		propertyRepo:  propertyRepo,
		ownerRepo:     ownerRepo,
		notifications: notifications,
		transparency:  transparency,
	}
}

type CreateReviewInput struct {
	Rating        int
	Accuracy      float64
	Communication float64
	Condition     float64
	Value         float64
	Content       string
}

func (uc *ReviewUseCase) CreateReview(ctx context.Context, userID, propertyID string, input CreateReviewInput) (*entity.PropertyReview, error) {
	property, err := uc.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.reviewRepo.GetByUserAndProperty(ctx, userID, propertyID)
	if err == nil && existing != nil {
		return nil, errors.Conflict("You have already reviewed this property")
	}

	review := &entity.PropertyReview{
		PropertyID:    propertyID,
		OwnerID:       property.OwnerID,
		UserID:        userID,
		Rating:        input.Rating,
		Accuracy:      input.Accuracy,
		Communication: input.Communication,
		Condition:     input.Condition,
		Value:         input.Value,
		Content:       input.Content,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := uc.recomputePropertyRatings(ctx, property); err != nil {
		logger.Warn("Rating aggregate refresh failed for property %s: %v", propertyID, err)
	}

	if err := uc.refreshOwnerTrust(ctx, property.OwnerID); err != nil {
		logger.Warn("Owner trust refresh failed for owner %s: %v", property.OwnerID, err)
	}

	if owner, err := uc.ownerRepo.GetByID(ctx, property.OwnerID); err == nil {
		uc.notifications.Notify(ctx, owner.UserID, "new_review",
			"New property review",
			fmt.Sprintf("%s received a %d-star review", property.Title, review.Rating))
	}

	return review, nil
}

func (uc *ReviewUseCase) ListReviews(ctx context.Context, propertyID string, page, limit int) ([]*entity.PropertyReview, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	return uc.reviewRepo.ListByProperty(ctx, propertyID, limit, offset)
}

type CreateCommentInput struct {
	Content  string
	UserName string
}

func (uc *ReviewUseCase) CreateComment(ctx context.Context, userID, propertyID string, input CreateCommentInput) (*entity.PropertyComment, error) {
	if _, err := uc.propertyRepo.GetByID(ctx, propertyID); err != nil {
		return nil, err
	}

	comment := &entity.PropertyComment{
		PropertyID: propertyID,
		UserID:     userID,
		UserName:   input.UserName,
		Content:    input.Content,
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (uc *ReviewUseCase) ListComments(ctx context.Context, propertyID string, page, limit int) ([]*entity.PropertyComment, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	return uc.commentRepo.ListByProperty(ctx, propertyID, limit, offset)
}

// recomputePropertyRatings rebuilds the rating aggregate from all reviews
// and re-runs the transparency score, which depends on it.
func (uc *ReviewUseCase) recomputePropertyRatings(ctx context.Context, property *entity.Property) error {
	reviews, _, err := uc.reviewRepo.ListByProperty(ctx, property.ID, 0, 0)
	if err != nil {
		return err
	}

	ratings := entity.Ratings{TotalReviews: len(reviews)}
	if len(reviews) > 0 {
		var sum, accuracy, communication, condition, value float64
		for _, r := range reviews {
			sum += float64(r.Rating)
			accuracy += r.Accuracy
			communication += r.Communication
			condition += r.Condition
			value += r.Value
		}
		n := float64(len(reviews))
		ratings.AverageRating = sum / n
		ratings.Breakdown = entity.RatingBreakdown{
			Accuracy:      accuracy / n,
			Communication: communication / n,
			Condition:     condition / n,
			Value:         value / n,
		}
	}

	property.Ratings = ratings
	property.TransparencyScore = uc.transparency.Score(property.Verification, property.Ratings)

	return uc.propertyRepo.Update(ctx, property)
}

func (uc *ReviewUseCase) refreshOwnerTrust(ctx context.Context, ownerID string) error {
	owner, err := uc.ownerRepo.GetByID(ctx, ownerID)
	if err != nil {
		return err
	}

	reviews, err := uc.reviewRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return err
	}

	owner.Trust.TotalReviews = len(reviews)
	if len(reviews) > 0 {
		var sum float64
		for _, r := range reviews {
			sum += float64(r.Rating)
		}
		owner.Trust.AverageRating = sum / float64(len(reviews))
	} else {
		owner.Trust.AverageRating = 0
	}

	return uc.ownerRepo.Update(ctx, owner)
}
