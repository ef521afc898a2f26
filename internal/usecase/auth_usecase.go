package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"trueestate/internal/domain/entity"
	"trueestate/internal/domain/repository"
	"trueestate/pkg/errors"
	"trueestate/pkg/logger"
)

// demoAccount is a fixed credential for the walkthrough environment. The
// demo table is checked before the persistence lookup; demo passwords are
// compared verbatim, everything else goes through bcrypt.
type demoAccount struct {
	ID       string
	Password string
	Name     string
	Role     string
}

var demoAccounts = map[string]demoAccount{
	"admin@trueestate.com":  {ID: "demo-admin", Password: "demo", Name: "Demo Admin", Role: entity.RoleAdmin},
	"owner@trueestate.com":  {ID: "demo-owner", Password: "demo123", Name: "Demo Owner", Role: entity.RoleOwner},
	"agent@trueestate.com":  {ID: "demo-agent", Password: "demo123", Name: "Demo Agent", Role: entity.RoleAgent},
	"renter@trueestate.com": {ID: "demo-renter", Password: "demo123", Name: "Demo Renter", Role: entity.RoleRenter},
}

type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   TokenManager
}

func NewAuthUseCase(userRepo repository.UserRepository, tokens TokenManager) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, isDemo := demoAccounts[email]; isDemo {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	role := input.Role
	if role == "" {
		role = entity.RoleRenter
	}
	if role != entity.RoleOwner && role != entity.RoleAgent && role != entity.RoleRenter {
		return nil, errors.BadRequest("Invalid role", nil)
	}

	now := time.Now()
	user := &entity.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         input.Name,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Generate(user.ID, user.Role, user.Verified)
	if err != nil {
		return nil, errors.Internal("Failed to issue session token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if demo, ok := demoAccounts[email]; ok {
		if password != demo.Password {
			return nil, errors.Unauthorized("Invalid credentials", nil)
		}

		user := &entity.User{
			ID:       demo.ID,
			Email:    email,
			Name:     demo.Name,
			Role:     demo.Role,
			Verified: true,
		}

		token, err := uc.tokens.Generate(user.ID, user.Role, user.Verified)
		if err != nil {
			return nil, errors.Internal("Failed to issue session token", err)
		}

		return &AuthResult{User: user, Token: token}, nil
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.Debug("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.Unauthorized("Invalid credentials", nil)
	}

	token, err := uc.tokens.Generate(user.ID, user.Role, user.Verified)
	if err != nil {
		return nil, errors.Internal("Failed to issue session token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	if user := demoUserByID(id); user != nil {
		return user, nil
	}

	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

func demoUserByID(id string) *entity.User {
	for email, demo := range demoAccounts {
		if demo.ID == id {
			return &entity.User{
				ID:       demo.ID,
				Email:    email,
				Name:     demo.Name,
				Role:     demo.Role,
				Verified: true,
			}
		}
	}
	return nil
}
