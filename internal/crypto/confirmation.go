package crypto

import (
	"time"

	"github.com/MKhiriev/go-blog-platform/models"
	"github.com/google/uuid"
)

// uuidConfirmationGenerator issues random UUIDv4 codes (122 random bits).
type uuidConfirmationGenerator struct {
	ttl time.Duration
	now func() time.Time
}

// NewConfirmationGenerator constructs a [ConfirmationGenerator] whose codes
// stay valid for ttl. now is the clock; nil means time.Now.
func NewConfirmationGenerator(ttl time.Duration, now func() time.Time) ConfirmationGenerator {
	if now == nil {
		now = time.Now
	}

	return &uuidConfirmationGenerator{
		ttl: ttl,
		now: now,
	}
}

// Generate implements [ConfirmationGenerator].
func (g *uuidConfirmationGenerator) Generate() models.ConfirmationState {
	return models.ConfirmationState{
		Code:        uuid.NewString(),
		ExpiresAt:   g.now().Add(g.ttl),
		IsConfirmed: false,
	}
}
