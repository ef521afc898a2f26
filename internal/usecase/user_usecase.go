package usecase

import (
	"context"

	"trueestate/internal/domain/entity"
	"trueestate/internal/domain/repository"
	"trueestate/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type UpdateProfileInput struct {
	Name             string
	SubscriptionTier string
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	if user := demoUserByID(userID); user != nil {
		return user, nil
	}
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	if demoUserByID(userID) != nil {
		return nil, errors.BadRequest("Demo accounts cannot be edited", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.SubscriptionTier != "" {
		user.SubscriptionTier = input.SubscriptionTier
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// RecordSearch appends a query to the user's search history, keeping the
// most recent fifty entries.
func (uc *UserUseCase) RecordSearch(ctx context.Context, userID, query string) error {
	if query == "" || demoUserByID(userID) != nil {
		return nil
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.SearchHistory = append(user.SearchHistory, query)
	if len(user.SearchHistory) > 50 {
		user.SearchHistory = user.SearchHistory[len(user.SearchHistory)-50:]
	}

	return uc.userRepo.Update(ctx, user)
}
