package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/amaris/catalog-api/internal/core/domain"
	"github.com/amaris/catalog-api/internal/core/ports"
)

// stubUserRepo is an in-memory ports.UserRepository shared across the
// service tests in this package.
type stubUserRepo struct {
	users            map[string]*domain.User
	bootstrapClaimed bool
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) ListByRoles(_ context.Context, roles ...domain.Role) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		for _, role := range roles {
			if u.Role == role {
				out = append(out, *u)
				break
			}
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) ClaimAdminBootstrap(_ context.Context) (bool, error) {
	if r.bootstrapClaimed {
		return false, nil
	}
	r.bootstrapClaimed = true
	return true, nil
}

func newTestAuthService(repo ports.UserRepository) *AuthService {
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(repo, tokens, zerolog.Nop())
}

func registerInput(email string) ports.RegisterInput {
	return ports.RegisterInput{
		Email:     email,
		Password:  "pass123",
		FirstName: "Alice",
		LastName:  "Smith",
	}
}

func TestAuthService_Register_FirstUserBecomesAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	token, user, err := svc.Register(context.Background(), registerInput("alice@example.com"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty string")
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected first user to be admin, got %s", user.Role)
	}

	stored, err := repo.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("stored user not found: %v", err)
	}
	if stored.Role != domain.RoleAdmin {
		t.Fatalf("expected stored role admin, got %s", stored.Role)
	}
}

func TestAuthService_Register_LaterUsersGetDefaultRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Register(context.Background(), registerInput("first@example.com")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, second, err := svc.Register(context.Background(), registerInput("second@example.com"))
	if err != nil {
		t.Fatalf("second register failed: %v", err)
	}
	if second.Role != domain.RoleSales {
		t.Fatalf("expected default role sales, got %s", second.Role)
	}

	_, third, err := svc.Register(context.Background(), registerInput("third@example.com"))
	if err != nil {
		t.Fatalf("third register failed: %v", err)
	}
	if third.Role != domain.RoleSales {
		t.Fatalf("expected default role sales, got %s", third.Role)
	}
}

func TestAuthService_Register_PasswordIsHashed(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, user, err := svc.Register(context.Background(), registerInput("alice@example.com"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	inputs := []ports.RegisterInput{
		{},
		{Email: "a@example.com", Password: "p", FirstName: "A"},
		{Email: "a@example.com", Password: "p", LastName: "B"},
		{Email: "a@example.com", FirstName: "A", LastName: "B"},
		{Password: "p", FirstName: "A", LastName: "B"},
	}
	for _, input := range inputs {
		if _, _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials for %+v, got %v", input, err)
		}
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Register(context.Background(), registerInput("alice@example.com")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), registerInput("alice@example.com")); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	tokens := NewTokenService("secret", time.Hour)
	svc := NewAuthService(repo, tokens, zerolog.Nop())

	if _, _, err := svc.Register(context.Background(), registerInput("carol@example.com")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "pass123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := tokens.Validate(token, time.Now().UTC())
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected bootstrap admin claims, got role %s", claims.Role)
	}
	if claims.ID != user.ID {
		t.Fatalf("claims id %s does not match user id %s", claims.ID, user.ID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, _, _ = svc.Register(context.Background(), registerInput("dave@example.com"))
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	// An unknown email must be indistinguishable from a wrong password.
	_, _, err := svc.Login(context.Background(), "ghost@example.com", "pass")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("login must not leak whether the account exists")
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials for empty email, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@example.com", ""); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials for empty password, got %v", err)
	}
}
