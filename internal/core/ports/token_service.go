package ports

import (
	"time"

	"github.com/amaris/catalog-api/internal/core/domain"
)

// TokenService mints and verifies bearer tokens. Both operations are pure
// computation against a shared signing secret; neither touches the store.
type TokenService interface {
	// Issue signs a token whose payload snapshots the user's claims at now,
	// expiring after the configured TTL.
	Issue(user *domain.User, now time.Time) (string, error)
	// Validate checks signature, structure, issuer, audience and expiry
	// against now, and returns the embedded claims exactly as issued.
	Validate(token string, now time.Time) (*domain.Claims, error)
}
