package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-platform/internal/crypto"
	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/notifier"
	"github.com/MKhiriev/go-blog-platform/internal/store"
	"github.com/MKhiriev/go-blog-platform/models"
)

// idGenerator produces identifiers for new accounts.
type idGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
// It owns the account state machine Unconfirmed → Confirmed (with Expired
// as the derived state of a stale code) and delegates persistence, hashing,
// code generation, delivery and token issuance to its collaborators.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	hasher    crypto.PasswordHasher
	generator crypto.ConfirmationGenerator
	notifier  notifier.Notifier
	tokens    TokenService
	ids       idGenerator

	// now is the clock used for expiry checks and creation timestamps.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService from its collaborators.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	generator crypto.ConfirmationGenerator,
	notifier notifier.Notifier,
	tokens TokenService,
	ids idGenerator,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		generator:      generator,
		notifier:       notifier,
		tokens:         tokens,
		ids:            ids,
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates a new unconfirmed account.
//
// The uniqueness gate runs first and reports the login conflict before the
// email one. The password is hashed, a fresh confirmation code is attached,
// and the user is persisted. The notifier is invoked last; its failure is
// logged and the created user is still returned, since a resend recovers.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if any field is empty.
//   - store.ErrLoginAlreadyExists / store.ErrEmailAlreadyExists on conflict,
//     whether detected by the gate or by the database constraint.
//   - A wrapped storage or hashing error otherwise.
func (a *authService) Register(ctx context.Context, login, password, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.buildNewUser(ctx, login, password, email)
	if err != nil {
		return models.User{}, err
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("login", login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if err = a.notifier.SendConfirmation(ctx, registeredUser.Email, registeredUser.Confirmation.Code); err != nil {
		log.Warn().Err(err).
			Str("func", "*authService.Register").
			Str("user_id", registeredUser.ID).
			Msg("confirmation email was not delivered; user can request a resend")
	}

	log.Info().Str("func", "*authService.Register").Str("user_id", registeredUser.ID).Msg("user registered")
	return registeredUser, nil
}

// ConfirmRegistration redeems code.
//
// Returns nil on success or:
//   - ErrConfirmationCodeNotFound if no account holds code.
//   - ErrAlreadyConfirmed if the account is confirmed, including when a
//     concurrent confirmation won the guarded update.
//   - ErrConfirmationExpired if now is after the code's expiry.
func (a *authService) ConfirmRegistration(ctx context.Context, code string) error {
	log := logger.FromContext(ctx)

	if code == "" {
		return ErrConfirmationCodeNotFound
	}

	user, err := a.userRepository.FindUserByConfirmationCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrConfirmationCodeNotFound
		}
		log.Err(err).Str("func", "*authService.ConfirmRegistration").Msg("user search by confirmation code failed")
		return fmt.Errorf("user search by confirmation code failed: %w", err)
	}

	switch user.Confirmation.Status(a.now()) {
	case models.StatusConfirmed:
		return ErrAlreadyConfirmed
	case models.StatusExpired:
		return ErrConfirmationExpired
	}

	updated, err := a.userRepository.UpdateConfirmation(ctx, user.ID, code, user.Confirmation.Confirm())
	if err != nil {
		log.Err(err).Str("func", "*authService.ConfirmRegistration").Str("user_id", user.ID).Msg("confirmation update failed")
		return fmt.Errorf("confirmation update failed: %w", err)
	}
	if !updated {
		log.Debug().Str("func", "*authService.ConfirmRegistration").Str("user_id", user.ID).Msg("confirmation lost a concurrent update")
		return ErrAlreadyConfirmed
	}

	log.Info().Str("func", "*authService.ConfirmRegistration").Str("user_id", user.ID).Msg("email confirmed")
	return nil
}

// ResendConfirmation replaces the pending confirmation code of the account
// registered with email and delivers the new one.
//
// The new state is persisted before delivery, so after ErrDeliveryFailed
// the previous code is already invalid and a further resend recovers.
//
// Returns the new code or:
//   - ErrUserNotFound if no account has this email.
//   - ErrAlreadyConfirmed if the account is confirmed.
//   - ErrConfirmationStateChanged if a concurrent resend replaced the code.
//   - ErrDeliveryFailed (wrapping the notifier error) if delivery fails.
func (a *authService) ResendConfirmation(ctx context.Context, email string) (string, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return "", ErrUserNotFound
		}
		log.Err(err).Str("func", "*authService.ResendConfirmation").Msg("user search by email failed")
		return "", fmt.Errorf("user search by email failed: %w", err)
	}

	if user.Confirmation.IsConfirmed {
		return "", ErrAlreadyConfirmed
	}

	state := a.generator.Generate()
	updated, err := a.userRepository.UpdateConfirmation(ctx, user.ID, user.Confirmation.Code, state)
	if err != nil {
		log.Err(err).Str("func", "*authService.ResendConfirmation").Str("user_id", user.ID).Msg("confirmation update failed")
		return "", fmt.Errorf("confirmation update failed: %w", err)
	}
	if !updated {
		return "", a.lostResendRace(ctx, email)
	}

	if err = a.notifier.SendConfirmation(ctx, user.Email, state.Code); err != nil {
		log.Err(err).Str("func", "*authService.ResendConfirmation").Str("user_id", user.ID).Msg("confirmation email was not delivered")
		return "", fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	return state.Code, nil
}

// lostResendRace tells a concurrent confirmation apart from a concurrent
// resend after the guarded update matched no row.
func (a *authService) lostResendRace(ctx context.Context, email string) error {
	current, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("user search by email failed: %w", err)
	}
	if current.Confirmation.IsConfirmed {
		return ErrAlreadyConfirmed
	}

	return ErrConfirmationStateChanged
}

// Login authenticates an account by login or email.
//
// Unknown accounts and wrong passwords both yield ErrWrongCredentials. The
// confirmation check runs after the password check, so only the owner of the
// password learns that the account is unconfirmed.
func (a *authService) Login(ctx context.Context, loginOrEmail, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if loginOrEmail == "" || password == "" {
		return models.Token{}, ErrWrongCredentials
	}

	foundUser, err := a.userRepository.FindUserByLoginOrEmail(ctx, loginOrEmail)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Token{}, ErrWrongCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by login or email failed")
		return models.Token{}, fmt.Errorf("user search by login or email failed: %w", err)
	}

	if !a.hasher.Verify(password, foundUser.PasswordHash) {
		log.Debug().Str("func", "*authService.Login").Str("user_id", foundUser.ID).Msg("wrong password")
		return models.Token{}, ErrWrongCredentials
	}

	if !foundUser.Confirmation.IsConfirmed {
		return models.Token{}, ErrUserNotConfirmed
	}

	return a.tokens.Issue(ctx, foundUser.Identity())
}

// ParseToken implements AuthService.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Identity, error) {
	return a.tokens.Verify(ctx, tokenString)
}

// buildNewUser runs the uniqueness gate and assembles an unconfirmed user
// with a hashed password and a fresh confirmation code.
func (a *authService) buildNewUser(ctx context.Context, login, password, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" || email == "" {
		log.Error().Str("func", "*authService.buildNewUser").Str("login", login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if err := checkUniqueness(ctx, a.userRepository, login, email); err != nil {
		return models.User{}, err
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Str("func", "*authService.buildNewUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	return models.User{
		ID:           a.ids.Generate(),
		Login:        login,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    a.now().UTC(),
		Confirmation: a.generator.Generate(),
	}, nil
}

// checkUniqueness reports a conflict when login or email is already taken.
// A login match wins over an email match.
func checkUniqueness(ctx context.Context, repo store.UserRepository, login, email string) error {
	existing, err := repo.FindUserByLoginOrEmailPair(ctx, login, email)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return nil
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "checkUniqueness").Msg("uniqueness check failed")
		return fmt.Errorf("uniqueness check failed: %w", err)
	case existing.Login == login:
		return store.ErrLoginAlreadyExists
	default:
		return store.ErrEmailAlreadyExists
	}
}
