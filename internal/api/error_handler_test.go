package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shoplane/catalog-service/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products/p1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound, "product not found"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"wrapped domain error", errors.Join(errors.New("context"), domain.ErrProductNotFound), http.StatusNotFound, "product not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := renderError(t, tt.err)
			if code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, code)
			}
			if body["error"] != tt.wantMsg {
				t.Fatalf("expected %q, got %q", tt.wantMsg, body["error"])
			}
		})
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusTooManyRequests, "too many requests"))
	if code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}
	if body["error"] != "too many requests" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	code, body := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	// internal details must not leak to the client
	if body["error"] != "internal server error" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}
