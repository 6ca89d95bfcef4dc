package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated principal carried inside a session token.
type Identity struct {
	UserID string `json:"userId"`
	Login  string `json:"login"`
	Email  string `json:"email"`
}

// TokenClaims is the JWT claim set of a session token: the registered claims
// (iss, iat, exp) plus the identity of the user.
type TokenClaims struct {
	jwt.RegisteredClaims

	UserID string `json:"userId"`
	Login  string `json:"login"`
	Email  string `json:"email"`
}

// Identity extracts the user identity from the claim set.
func (c *TokenClaims) Identity() Identity {
	return Identity{
		UserID: c.UserID,
		Login:  c.Login,
		Email:  c.Email,
	}
}

// Token wraps a signed session token.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be returned to the client.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"accessToken"`

	// ExpiresAt is the instant after which the token is rejected.
	ExpiresAt time.Time `json:"-"`

	// Identity is the principal the token was issued for or parsed from.
	Identity Identity `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
