package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-platform/internal/crypto"
	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/store"
	"github.com/MKhiriev/go-blog-platform/models"
)

// userService implements UserService on top of the same repository and
// credential helpers as authService.
type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	generator      crypto.ConfirmationGenerator
	ids            idGenerator
	now            func() time.Time
	logger         *logger.Logger
}

// NewUserService constructs a UserService.
func NewUserService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	generator crypto.ConfirmationGenerator,
	ids idGenerator,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		generator:      generator,
		ids:            ids,
		now:            time.Now,
		logger:         logger,
	}
}

// CreateConfirmedUser implements UserService. The same uniqueness gate as
// registration applies.
func (s *userService) CreateConfirmedUser(ctx context.Context, login, password, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" || email == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	if err := checkUniqueness(ctx, s.userRepository, login, email); err != nil {
		return models.User{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateConfirmedUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           s.ids.Generate(),
		Login:        login,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
		Confirmation: s.generator.Generate().Confirm(),
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateConfirmedUser").Str("login", login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*userService.CreateConfirmedUser").Str("user_id", created.ID).Msg("confirmed user created by admin")
	return created, nil
}

// DeleteUser implements UserService. Returns ErrUserNotFound when nothing
// was deleted.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	deleted, err := s.userRepository.DeleteUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*userService.DeleteUser").Str("user_id", userID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}
	if !deleted {
		return ErrUserNotFound
	}

	return nil
}

// ResetAll implements UserService.
func (s *userService) ResetAll(ctx context.Context) error {
	if err := s.userRepository.DeleteAllUsers(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ResetAll").Msg("reset failed")
		return fmt.Errorf("reset failed: %w", err)
	}

	return nil
}

// LatestConfirmationCode implements UserService. Returns ErrUserNotFound
// when there are no accounts.
func (s *userService) LatestConfirmationCode(ctx context.Context) (string, error) {
	user, err := s.userRepository.FindLatestUser(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return "", ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*userService.LatestConfirmationCode").Msg("latest user lookup failed")
		return "", fmt.Errorf("latest user lookup failed: %w", err)
	}

	return user.Confirmation.Code, nil
}
