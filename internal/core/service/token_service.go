package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/amaris/catalog-api/internal/core/domain"
)

const (
	tokenIssuer   = "amaris_heavy_machinery"
	tokenAudience = "amaris_users"

	// DefaultTokenTTL bounds every issued token. There is no server-side
	// session table, so expiry is the only revocation mechanism.
	DefaultTokenTTL = 24 * time.Hour
)

// tokenClaims is the wire payload: registered claims plus the identity
// snapshot nested under "data".
type tokenClaims struct {
	Data domain.Claims `json:"data"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256 bearer tokens signed with a single
// process-wide secret.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the user's claims as they are at now.
// Nothing is persisted; the token is self-contained.
func (s *TokenService) Issue(user *domain.User, now time.Time) (string, error) {
	claims := tokenClaims{
		Data: domain.Claims{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Role:      user.Role,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate verifies signature, structure, issuer, audience and expiry
// against now, and returns the claims exactly as they were issued. No store
// lookup happens here: a stale role in the snapshot is accepted by design.
func (s *TokenService) Validate(token string, now time.Time) (*domain.Claims, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return &claims.Data, nil
}
