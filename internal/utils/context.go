// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP request
// decoding and response writing, HTTP client initialization, JWT token
// generation and validation, and ID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-blog-platform/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key used to store the authenticated principal in the
// context. Used together with GetIdentityFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.IdentityCtxKey, token.Identity)
var IdentityCtxKey = contextKey("identity")

// GetIdentityFromContext retrieves the authenticated principal from the context.
//
// Returns the identity and an ok flag:
//   - ok == true:  value is found and has the models.Identity type
//   - ok == false: value is missing or has an unexpected type
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}
