package service

import (
	"context"

	"github.com/MKhiriev/go-blog-platform/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService drives the registration, email-confirmation and login flow.
type AuthService interface {
	// Register creates an unconfirmed account and sends its confirmation
	// code. A failed delivery is logged and does not fail registration.
	Register(ctx context.Context, login, password, email string) (models.User, error)

	// ConfirmRegistration redeems a confirmation code exactly once.
	ConfirmRegistration(ctx context.Context, code string) error

	// ResendConfirmation replaces the pending code of an unconfirmed account,
	// sends it, and returns it.
	ResendConfirmation(ctx context.Context, email string) (string, error)

	// Login checks credentials of a confirmed account and issues a token.
	Login(ctx context.Context, loginOrEmail, password string) (models.Token, error)

	// ParseToken returns the identity carried by a valid access token.
	ParseToken(ctx context.Context, tokenString string) (models.Identity, error)
}

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	Issue(ctx context.Context, identity models.Identity) (models.Token, error)
	Verify(ctx context.Context, tokenString string) (models.Identity, error)
}

// UserService holds the administrative and test-support operations on
// accounts.
type UserService interface {
	// CreateConfirmedUser creates an already confirmed account without
	// sending any email.
	CreateConfirmedUser(ctx context.Context, login, password, email string) (models.User, error)

	DeleteUser(ctx context.Context, userID string) error

	// ResetAll removes every account.
	ResetAll(ctx context.Context) error

	// LatestConfirmationCode returns the confirmation code of the most
	// recently created account.
	LatestConfirmationCode(ctx context.Context) (string, error)
}

// AppInfoService reports build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
