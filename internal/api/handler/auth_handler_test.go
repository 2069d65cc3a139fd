package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/amaris/catalog-api/internal/core/domain"
	"github.com/amaris/catalog-api/internal/core/ports"
)

type stubAuthService struct {
	registerToken string
	registerUser  *domain.User
	registerErr   error
	loginToken    string
	loginUser     *domain.User
	loginErr      error
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return "", nil, domain.ErrMissingCredentials
	}
	return s.registerToken, s.registerUser, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingCredentials
	}
	return s.loginToken, s.loginUser, s.loginErr
}

func newAuthContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{
		registerToken: "signed-token",
		registerUser:  &domain.User{ID: "user-1", Email: "alice@example.com", Role: domain.RoleAdmin},
	})

	c, rec := newAuthContext(e, `{"email":"alice@example.com","password":"pass123","first_name":"Alice","last_name":"Smith"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["token"] != "signed-token" {
		t.Errorf("unexpected token: %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user object, got %v", resp["user"])
	}
	if user["role"] != "admin" {
		t.Errorf("unexpected role: %v", user["role"])
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Errorf("password hash must never be serialized")
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newAuthContext(e, `{"email":"alice@example.com"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists})

	c, rec := newAuthContext(e, `{"email":"alice@example.com","password":"pass123","first_name":"Alice","last_name":"Smith"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_StoreFailureStaysInternal(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{
		registerErr: fmt.Errorf("insert user: connection(mongo-0.internal:27017) socket was unexpectedly closed"),
	})

	c, rec := newAuthContext(e, `{"email":"alice@example.com","password":"pass123","first_name":"Alice","last_name":"Smith"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "internal server error" {
		t.Errorf("expected generic error message, got %v", resp["error"])
	}
	body := rec.Body.String()
	for _, fragment := range []string{"insert user", "mongo", "socket"} {
		if strings.Contains(body, fragment) {
			t.Errorf("store detail %q leaked to the client: %s", fragment, body)
		}
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{
		loginToken: "signed-token",
		loginUser:  &domain.User{ID: "user-1", Email: "alice@example.com", Role: domain.RoleSales},
	})

	c, rec := newAuthContext(e, `{"email":"alice@example.com","password":"pass123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["token"] != "signed-token" {
		t.Errorf("unexpected token: %v", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	c, rec := newAuthContext(e, `{"email":"alice@example.com","password":"wrong"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, present := resp["token"]; present {
		t.Errorf("failed login must not carry a token field")
	}
	if resp["error"] == "" {
		t.Errorf("expected error message in response")
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newAuthContext(e, `{"email":"alice@example.com"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
