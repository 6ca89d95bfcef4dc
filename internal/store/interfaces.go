package store

import (
	"context"

	"github.com/MKhiriev/go-blog-platform/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts together with their confirmation
// state. Lookups that match nothing return [ErrNoUserWasFound].
type UserRepository interface {
	// CreateUser inserts user as-is. A UNIQUE violation on login or email is
	// reported as [ErrLoginAlreadyExists] or [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByLoginOrEmail matches value against login first, then email.
	FindUserByLoginOrEmail(ctx context.Context, value string) (models.User, error)

	// FindUserByLoginOrEmailPair returns a user whose login equals login or
	// whose email equals email, preferring the login match.
	FindUserByLoginOrEmailPair(ctx context.Context, login, email string) (models.User, error)

	FindUserByConfirmationCode(ctx context.Context, code string) (models.User, error)

	// UpdateConfirmation replaces the confirmation state of an unconfirmed
	// user only if its stored code still equals expectedCode. It reports
	// whether a row was changed.
	UpdateConfirmation(ctx context.Context, userID, expectedCode string, state models.ConfirmationState) (bool, error)

	// DeleteUser removes the user and reports whether it existed.
	DeleteUser(ctx context.Context, userID string) (bool, error)

	DeleteAllUsers(ctx context.Context) error

	// FindLatestUser returns the most recently created user.
	FindLatestUser(ctx context.Context) (models.User, error)
}

// ErrorClassificator interprets driver-specific errors.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification

	// UniqueViolation returns the column whose UNIQUE constraint err
	// violated, or false when err is not a unique violation.
	UniqueViolation(err error) (string, bool)
}
