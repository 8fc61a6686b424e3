package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/airlinehq/airline-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestErrorHandler_KindMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"auth", domain.NewAuthError("token expired"), http.StatusUnauthorized, "token expired"},
		{"authz", domain.NewAuthzError("role 'user' is not authorized to access this route"), http.StatusForbidden, "role 'user' is not authorized to access this route"},
		{"validation", domain.NewValidationError("page and limit must be positive"), http.StatusBadRequest, "page and limit must be positive"},
		{"not_found", domain.NewNotFoundError("user not found"), http.StatusNotFound, "user not found"},
		{"conflict", domain.NewConflictError("email already in use"), http.StatusConflict, "email already in use"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := renderError(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if body["success"] != false {
				t.Fatalf("expected success=false, got %+v", body)
			}
			if body["error"] != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, body["error"])
			}
		})
	}
}

func TestErrorHandler_InternalHidesCause(t *testing.T) {
	rec, body := renderError(t, domain.NewInternalError("database error", errors.New("dial tcp: refused")))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("cause must not leak, got %q", body["error"])
	}
}

func TestErrorHandler_UnknownErrorIsInternal(t *testing.T) {
	rec, body := renderError(t, errors.New("boom"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("expected generic message, got %q", body["error"])
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body["error"] != "Not Found" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}
