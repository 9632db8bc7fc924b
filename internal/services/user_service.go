package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/netra/gallery/internal/metrics"
	"github.com/netra/gallery/internal/models"
	"github.com/netra/gallery/internal/observability"
	"github.com/netra/gallery/internal/repository"
)

// UserService manages club accounts. Passwords are bcrypt-hashed before
// they reach the store.
type UserService struct {
	repo      repository.UserRepo
	validator *validator.Validate
}

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepo) *UserService {
	return &UserService{
		repo:      repo,
		validator: newValidator(),
	}
}

// Register validates the request, rejects a taken username and stores the
// user with a hashed password
func (s *UserService) Register(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	ctx, span := observability.StartServiceSpan(ctx, "UserService", "Register")
	defer span.End()

	req.Username = strings.TrimSpace(req.Username)
	if err := validateStruct(s.validator, req); err != nil {
		metrics.ValidationFailures.WithLabelValues(models.KindUser).Inc()
		observability.RecordError(span, err)
		return nil, err
	}

	existing, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		observability.RecordError(span, err)
		return nil, fmt.Errorf("lookup user %q: %w", req.Username, err)
	}
	if existing != nil {
		observability.RecordError(span, models.ErrUsernameTaken)
		return nil, models.ErrUsernameTaken
	}

	hash, err := models.HashPassword(req.Password)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}
	req.Password = hash

	user, err := s.repo.Add(ctx, req)
	if err != nil {
		observability.RecordError(span, err)
		return nil, fmt.Errorf("add user: %w", err)
	}

	metrics.EntitiesCreated.WithLabelValues(models.KindUser).Inc()
	observability.SetSuccess(span)
	return user, nil
}

// GetUserByUsername returns the first user whose username matches exactly, or nil
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}
	return user, nil
}

// Authenticate returns the user when username and password match, or nil
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.GetUserByUsername(ctx, username)
	if err != nil || user == nil {
		return nil, err
	}
	if !user.VerifyPassword(password) {
		return nil, nil
	}
	return user, nil
}

// BootstrapAdmin creates the configured admin account on first start.
// It does nothing when no username is configured. An existing account is
// kept as stored; a configured password that no longer matches it is logged.
func (s *UserService) BootstrapAdmin(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, nil
	}

	existing, err := s.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if password != "" {
			if match, err := s.Authenticate(ctx, username, password); err == nil && match == nil {
				observability.WithField("username", username).
					Warn("ADMIN_PASSWORD does not match the stored admin account; keeping the stored password")
			}
		}
		return existing, nil
	}

	user, err := s.Register(ctx, models.CreateUserRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("bootstrap admin: %w", err)
	}

	observability.WithField("username", user.Username).Info("Admin account created")
	return user, nil
}
