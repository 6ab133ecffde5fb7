package service

import (
	"context"
	"fmt"
	"strings"

	"permitpro-backend/internal/database/models"
	apperrors "permitpro-backend/internal/errors"
	"permitpro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// TokenIssuer signs login tokens
type TokenIssuer interface {
	GenerateJWT(user *models.User) (string, error)
}

// UserService handles login. Any password is accepted; the user is created on first login.
type UserService struct {
	repo      repository.UserRepositoryInterface
	tokens    TokenIssuer
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, tokens TokenIssuer, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		tokens:    tokens,
		validator: validator,
	}
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255" example:"admin@permitpro.com"`
	Password string `json:"password" example:"password"`
	Name     string `json:"name,omitempty" validate:"max=200"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// Login finds or creates the user for the email and issues a token
func (s *UserService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	user, err := s.findOrCreate(ctx, req)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
		Token: token,
	}, nil
}

func (s *UserService) findOrCreate(ctx context.Context, req *LoginRequest) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err == nil {
		return user, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = DefaultUploaderName
	}
	user = &models.User{
		Email: req.Email,
		Name:  name,
		Role:  models.UserRoleAdministrator,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if !apperrors.IsConflict(err) {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		// Concurrent first login with the same email
		user, err = s.repo.GetByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to get user after conflict: %w", err)
		}
	}
	return user, nil
}
