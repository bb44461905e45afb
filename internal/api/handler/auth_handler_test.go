package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storelane/commerce-api/internal/api/middleware"
	"github.com/storelane/commerce-api/internal/core/domain"
	"github.com/storelane/commerce-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, *ports.TokenPair, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.User, *ports.TokenPair, error)
	refreshFn  func(ctx context.Context, refreshToken string) (*domain.User, *ports.TokenPair, error)
	logoutFn   func(ctx context.Context, userID string) error
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, *ports.TokenPair, error) {
	return s.registerFn(ctx, name, email, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, *ports.TokenPair, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.User, *ports.TokenPair, error) {
	return s.refreshFn(ctx, refreshToken)
}

func (s *stubAuthService) Logout(ctx context.Context, userID string) error {
	return s.logoutFn(ctx, userID)
}

type stubLimiter struct {
	allowed bool
	resets  int
}

func (l *stubLimiter) Allow(_ context.Context, _ string) (bool, error) { return l.allowed, nil }
func (l *stubLimiter) Reset(_ context.Context, _ string) error {
	l.resets++
	return nil
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testPair() *ports.TokenPair {
	return &ports.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, *ports.TokenPair, error) {
			if name != "Alice" || email != "alice@example.com" || role != domain.RoleCustomer {
				t.Fatalf("unexpected args: %s %s %s", name, email, role)
			}
			return &domain.User{ID: "user-1", Name: name, Email: email, Role: role}, testPair(), nil
		},
	}
	h := NewAuthHandler(stub, nil)

	c, rec := postJSON(e, "/api/auth/register", `{"name":"Alice","email":"alice@example.com","password":"secret123","role":"customer"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success envelope, got %+v", resp)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data in response")
	}
	if data["access_token"] != "access-token" || data["refresh_token"] != "refresh-token" {
		t.Fatalf("unexpected tokens: %+v", data)
	}
	user, ok := data["user"].(map[string]any)
	if !ok || user["email"] != "alice@example.com" {
		t.Fatalf("unexpected user payload: %+v", data["user"])
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash must never be serialized")
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, *ports.TokenPair, error) {
			t.Fatalf("service must not be called on invalid payload")
			return nil, nil, nil
		},
	}
	h := NewAuthHandler(stub, nil)

	// Password below the 8 character minimum.
	c, rec := postJSON(e, "/api/auth/register", `{"name":"Alice","email":"alice@example.com","password":"short"}`)
	if err := h.Register(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, *ports.TokenPair, error) {
			return nil, nil, domain.ErrEmailExists
		},
	}
	h := NewAuthHandler(stub, nil)

	c, _ := postJSON(e, "/api/auth/register", `{"name":"Bob","email":"bob@example.com","password":"secret123"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	limiter := &stubLimiter{allowed: true}
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, *ports.TokenPair, error) {
			return &domain.User{ID: "user-1", Email: email, Role: domain.RoleCustomer}, testPair(), nil
		},
	}
	h := NewAuthHandler(stub, limiter)

	c, rec := postJSON(e, "/api/auth/login", `{"email":"alice@example.com","password":"secret123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if limiter.resets != 1 {
		t.Fatalf("successful login must reset the attempt counter")
	}
}

func TestAuthHandler_Login_RateLimited(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, *ports.TokenPair, error) {
			t.Fatalf("service must not be called when rate limited")
			return nil, nil, nil
		},
	}
	h := NewAuthHandler(stub, &stubLimiter{allowed: false})

	c, _ := postJSON(e, "/api/auth/login", `{"email":"alice@example.com","password":"secret123"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newEcho()
	limiter := &stubLimiter{allowed: true}
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, *ports.TokenPair, error) {
			return nil, nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, limiter)

	c, _ := postJSON(e, "/api/auth/login", `{"email":"alice@example.com","password":"bad12345"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if limiter.resets != 0 {
		t.Fatalf("failed login must not reset the attempt counter")
	}
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, refreshToken string) (*domain.User, *ports.TokenPair, error) {
			if refreshToken != "old-refresh" {
				t.Fatalf("unexpected token: %s", refreshToken)
			}
			return &domain.User{ID: "user-1"}, testPair(), nil
		},
	}
	h := NewAuthHandler(stub, nil)

	c, rec := postJSON(e, "/api/auth/refresh-token", `{"refresh_token":"old-refresh"}`)
	if err := h.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Refresh_InvalidToken(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, refreshToken string) (*domain.User, *ports.TokenPair, error) {
			return nil, nil, domain.ErrInvalidToken
		},
	}
	h := NewAuthHandler(stub, nil)

	c, _ := postJSON(e, "/api/auth/refresh-token", `{"refresh_token":"stale"}`)
	if err := h.Refresh(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newEcho()
	var loggedOut string
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, userID string) error {
			loggedOut = userID
			return nil
		},
	}
	h := NewAuthHandler(stub, nil)

	c, rec := postJSON(e, "/api/auth/logout", "")
	c.Set(middleware.CtxUserID, "user-1")
	c.Set(middleware.CtxRole, "customer")

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if loggedOut != "user-1" {
		t.Fatalf("expected logout for user-1, got %q", loggedOut)
	}
}
