// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the blog platform REST API.
//
// The primary abstraction is [BlogAPI], implemented over HTTP by
// [NewHTTPBlogAdapter]. Error values defined in errors.go are mapped from HTTP
// status codes by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling. A 400 response is returned as a
// [*ValidationError] carrying the field errors reported by the server.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog-platform/models"
)

// BlogAPI defines communication with the blog platform server.
type BlogAPI interface {
	// SetToken stores the bearer token attached to authenticated requests.
	// Login calls it on success.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an unconfirmed account. The server sends the
	// confirmation code to the given email.
	Register(ctx context.Context, req models.RegistrationRequest) error

	// ConfirmRegistration redeems a confirmation code.
	ConfirmRegistration(ctx context.Context, code string) error

	// ResendConfirmation asks the server to issue and send a new code.
	ResendConfirmation(ctx context.Context, email string) error

	// Login authenticates by login or email and stores the returned token.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// Me returns the identity behind the stored token.
	Me(ctx context.Context) (models.Identity, error)

	// Version returns the server build information.
	Version(ctx context.Context) (models.VersionResponse, error)

	// CreateUser creates a confirmed account with admin credentials.
	CreateUser(ctx context.Context, admin Credentials, req models.RegistrationRequest) (models.UserView, error)

	// DeleteUser removes an account with admin credentials.
	DeleteUser(ctx context.Context, admin Credentials, userID string) error

	// ResetAll wipes every account. Requires the server's testing routes.
	ResetAll(ctx context.Context) error

	// LastConfirmationCode returns the code of the most recently created
	// account. Requires the server's testing routes.
	LastConfirmationCode(ctx context.Context) (string, error)
}

// Credentials are the Basic-auth credentials of the administrator.
type Credentials struct {
	Login    string
	Password string
}
