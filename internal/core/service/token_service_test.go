package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/amaris/catalog-api/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:        "user-1",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
		Role:      domain.RoleSales,
	}
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService("secret", 24*time.Hour)
	now := time.Now().UTC()

	token, err := svc.Issue(testUser(), now)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty string")
	}

	claims, err := svc.Validate(token, now)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.ID != "user-1" {
		t.Errorf("unexpected id: %s", claims.ID)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("unexpected email: %s", claims.Email)
	}
	if claims.FirstName != "Alice" || claims.LastName != "Smith" {
		t.Errorf("unexpected name: %s %s", claims.FirstName, claims.LastName)
	}
	if claims.Role != domain.RoleSales {
		t.Errorf("unexpected role: %s", claims.Role)
	}
}

func TestTokenService_ExpiryBoundary(t *testing.T) {
	svc := NewTokenService("secret", 24*time.Hour)
	issued := time.Now().UTC()

	token, err := svc.Issue(testUser(), issued)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Validate(token, issued.Add(24*time.Hour-time.Minute)); err != nil {
		t.Fatalf("token should still be valid just before expiry: %v", err)
	}
	if _, err := svc.Validate(token, issued.Add(24*time.Hour+time.Second)); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	now := time.Now().UTC()

	token, err := svc.Issue(testUser(), now)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	if _, err := svc.Validate(tampered, now); err == nil {
		t.Fatalf("expected tampered token to be rejected")
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)
	now := time.Now().UTC()

	token, err := issuer.Issue(testUser(), now)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := verifier.Validate(token, now); err == nil {
		t.Fatalf("expected token signed with another secret to be rejected")
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	now := time.Now().UTC()

	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d", strings.Repeat("x", 100)} {
		if _, err := svc.Validate(token, now); err == nil {
			t.Errorf("expected malformed token %q to be rejected", token)
		}
	}
}

func TestTokenService_MissingExpiryRejected(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	now := time.Now().UTC()

	// Hand-crafted token with correct issuer and audience but no exp claim.
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "amaris_heavy_machinery",
		"aud": "amaris_users",
		"iat": now.Unix(),
		"data": map[string]any{
			"id":   "user-1",
			"role": "sales",
		},
	})
	token, err := raw.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(token, now); err == nil {
		t.Fatalf("expected token without expiry to be rejected")
	}
}

func TestTokenService_WrongIssuerOrAudience(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	now := time.Now().UTC()

	sign := func(iss, aud string) string {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"iss": iss,
			"aud": aud,
			"iat": now.Unix(),
			"exp": now.Add(time.Hour).Unix(),
		})
		token, err := raw.SignedString([]byte("secret"))
		if err != nil {
			t.Fatalf("sign token: %v", err)
		}
		return token
	}

	if _, err := svc.Validate(sign("another_issuer", "amaris_users"), now); err == nil {
		t.Fatalf("expected wrong issuer to be rejected")
	}
	if _, err := svc.Validate(sign("amaris_heavy_machinery", "another_audience"), now); err == nil {
		t.Fatalf("expected wrong audience to be rejected")
	}
}

func TestTokenService_ClaimsAreSnapshot(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	now := time.Now().UTC()

	user := testUser()
	token, err := svc.Issue(user, now)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Mutating the user after issuance must not change what the token says.
	user.Role = domain.RoleAdmin
	user.Email = "changed@example.com"

	claims, err := svc.Validate(token, now)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.Role != domain.RoleSales {
		t.Errorf("expected snapshot role sales, got %s", claims.Role)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("expected snapshot email, got %s", claims.Email)
	}
}
