package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/airlinehq/airline-api/internal/core/domain"
	"github.com/airlinehq/airline-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn    func(ctx context.Context, input ports.CreateUserInput) (string, *domain.User, error)
	loginFn       func(ctx context.Context, email, password string) (string, *domain.User, error)
	loginPhoneFn  func(ctx context.Context, phone, password string) (string, *domain.User, error)
	currentUserFn func(ctx context.Context, identity domain.Identity) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.CreateUserInput) (string, *domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) LoginPhone(ctx context.Context, phone, password string) (string, *domain.User, error) {
	return s.loginPhoneFn(ctx, phone, password)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	return s.currentUserFn(ctx, identity)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func newJSONContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.CreateUserInput) (string, *domain.User, error) {
			if input.FirstName != "Alice" || input.Email == nil || *input.Email != "a@example.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return "tok123", &domain.User{UserID: 1, FirstName: "Alice", Role: domain.RoleUser}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/api/auth/register",
		`{"first_name":"Alice","email":"a@example.com","password":"secret1"}`)

	if err := handler.Register(c); err != nil {
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
	if resp["token"] != "tok123" {
		t.Fatalf("expected token in response, got %+v", resp)
	}
	user, ok := resp["data"].(map[string]any)
	if !ok || user["first_name"] != "Alice" {
		t.Fatalf("unexpected user payload: %+v", resp["data"])
	}
}

func TestAuthHandler_Register_MissingPassword(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(e, http.MethodPost, "/api/auth/register",
		`{"first_name":"Alice","email":"a@example.com"}`)

	if err := handler.Register(c); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAuthHandler_Register_ShortPasswordAccepted(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.CreateUserInput) (string, *domain.User, error) {
			if input.Password == nil || *input.Password != "pw" {
				t.Fatalf("expected password to pass through, got %+v", input.Password)
			}
			return "tok123", &domain.User{UserID: 2, FirstName: "Jo", Role: domain.RoleUser}, nil
		},
	}
	handler := NewAuthHandler(stub)

	// Presence is the only password rule; length is not restricted.
	c, rec := newJSONContext(e, http.MethodPost, "/api/auth/register",
		`{"first_name":"Jo","email":"jo@x.com","password":"pw"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_ProfileFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.CreateUserInput) (string, *domain.User, error) {
			if input.PassportNumber == nil || *input.PassportNumber != "AB123456" {
				t.Fatalf("expected passport number, got %+v", input.PassportNumber)
			}
			if input.Nationality == nil || *input.Nationality != "Ukrainian" {
				t.Fatalf("expected nationality, got %+v", input.Nationality)
			}
			if input.DateOfBirth == nil || input.DateOfBirth.Format(dateLayout) != "1990-04-01" {
				t.Fatalf("expected parsed date of birth, got %+v", input.DateOfBirth)
			}
			if input.Gender == nil || *input.Gender != "female" {
				t.Fatalf("expected gender, got %+v", input.Gender)
			}
			return "tok123", &domain.User{UserID: 3, FirstName: "Olha", Role: domain.RoleUser}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/api/auth/register",
		`{"first_name":"Olha","email":"o@x.com","password":"pw","passport_number":"AB123456","nationality":"Ukrainian","date_of_birth":"1990-04-01","gender":"female"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "a@example.com" || password != "secret1" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return "tok123", &domain.User{UserID: 1, FirstName: "Alice"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/api/auth/login",
		`{"email":"a@example.com","password":"secret1"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_BadCredentialsPropagates(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.NewAuthError("invalid credentials")
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/api/auth/login",
		`{"email":"a@example.com","password":"wrong1"}`)

	if err := handler.Login(c); !domain.IsKind(err, domain.KindAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
}

func TestAuthHandler_LoginPhone(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginPhoneFn: func(ctx context.Context, phone, password string) (string, *domain.User, error) {
			if phone != "+380501234567" {
				t.Fatalf("unexpected phone: %s", phone)
			}
			return "tok123", &domain.User{UserID: 2}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/api/auth/login/phone",
		`{"phone":"+380501234567","password":"secret1"}`)

	if err := handler.LoginPhone(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		currentUserFn: func(ctx context.Context, identity domain.Identity) (*domain.User, error) {
			if identity.UserID != 7 {
				t.Fatalf("unexpected identity: %+v", identity)
			}
			return &domain.User{UserID: 7, FirstName: "Greta"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("identity", domain.Identity{UserID: 7, Role: domain.RoleUser})

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	if err := handler.Me(c); !domain.IsKind(err, domain.KindAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
}
