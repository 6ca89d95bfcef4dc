package crypto

import "github.com/MKhiriev/go-blog-platform/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plaintext passwords into adaptive, salted hashes and
// checks candidates against them. The plaintext never leaves this boundary.
type PasswordHasher interface {
	// Hash returns a salted hash of password. Two calls with the same input
	// produce different outputs.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. It returns false for a
	// mismatch and for any malformed hash; it never panics.
	Verify(password, hash string) bool
}

// ConfirmationGenerator issues fresh email-confirmation state.
type ConfirmationGenerator interface {
	// Generate returns an unconfirmed state with a new unguessable code and
	// an expiry of now plus the configured window.
	Generate() models.ConfirmationState
}
