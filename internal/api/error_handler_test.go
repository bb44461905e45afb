package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storelane/commerce-api/internal/core/domain"
)

func render(t *testing.T, err error) (int, errorEnvelope) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.New(io.Discard))
	handler(err, c)

	var body errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized},
		{"email exists", domain.ErrEmailExists, http.StatusBadRequest},
		{"wrong password", domain.ErrWrongPassword, http.StatusBadRequest},
		{"self action", domain.ErrSelfAction, http.StatusBadRequest},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound},
		{"too many attempts", domain.ErrTooManyAttempts, http.StatusTooManyRequests},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := render(t, tc.err)
			if code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, code)
			}
			if body.Success {
				t.Fatalf("error envelope must have success=false")
			}
			if body.Message == "" {
				t.Fatalf("error envelope must carry a message")
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("update refresh token"), domain.ErrUserNotFound)
	code, _ := render(t, wrapped)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped domain error, got %d", code)
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	code, body := render(t, echo.NewHTTPError(http.StatusForbidden, "forbidden"))
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
	if body.Message != "forbidden" {
		t.Fatalf("expected message passthrough, got %q", body.Message)
	}
}

func TestErrorHandler_UnexpectedErrorHidesDetails(t *testing.T) {
	code, body := render(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body.Message != "internal server error" {
		t.Fatalf("internal details must not leak, got %q", body.Message)
	}
}
