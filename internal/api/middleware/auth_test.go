package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/havenbridge/homecare-api/internal/core/domain"
	"github.com/havenbridge/homecare-api/internal/core/service"
)

type stubAdminRepo struct {
	admins map[string]*domain.Admin
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[string]*domain.Admin)}
}

func (r *stubAdminRepo) FindByEmail(_ context.Context, email string) (*domain.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

func (r *stubAdminRepo) FindByID(_ context.Context, id string) (*domain.Admin, error) {
	if a, ok := r.admins[id]; ok {
		return a, nil
	}
	return nil, domain.ErrAdminNotFound
}

func (r *stubAdminRepo) Create(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	r.admins[admin.ID] = admin
	return admin, nil
}

func (r *stubAdminRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	if a, ok := r.admins[id]; ok {
		a.LastLogin = &at
		return nil
	}
	return domain.ErrAdminNotFound
}

func testAdmin() *domain.Admin {
	return &domain.Admin{
		ID:       "admin_1",
		Email:    "admin@havenbridge.com",
		FullName: "System Administrator",
		Role:     domain.RoleSuperAdmin,
	}
}

func newTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder, *echo.Echo) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec, e
}

func TestAuthGuard_ValidToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	repo := newStubAdminRepo()
	admin := testAdmin()
	repo.admins[admin.ID] = admin

	signed, err := tokens.Issue(admin)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	guard := NewAuthGuard(tokens, repo)
	c, _, _ := newTestContext(t, "Bearer "+signed)

	principal, err := guard.Authenticate(c)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if principal.ID != admin.ID || principal.Email != admin.Email || principal.Role != admin.Role {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestAuthGuard_MissingHeader(t *testing.T) {
	guard := NewAuthGuard(service.NewTokenService("secret", time.Hour), newStubAdminRepo())
	c, _, _ := newTestContext(t, "")

	_, err := guard.Authenticate(c)
	assertUnauthorized(t, err, "no token provided")
}

func TestAuthGuard_InvalidHeaderFormat(t *testing.T) {
	guard := NewAuthGuard(service.NewTokenService("secret", time.Hour), newStubAdminRepo())
	c, _, _ := newTestContext(t, "Token abc")

	_, err := guard.Authenticate(c)
	assertUnauthorized(t, err, "no token provided")
}

func TestAuthGuard_InvalidToken(t *testing.T) {
	guard := NewAuthGuard(service.NewTokenService("secret", time.Hour), newStubAdminRepo())
	c, _, _ := newTestContext(t, "Bearer not-a-token")

	_, err := guard.Authenticate(c)
	assertUnauthorized(t, err, "invalid or expired token")
}

func TestAuthGuard_ExpiredTokenRejectedEvenWhenAdminExists(t *testing.T) {
	// TTL in the past produces an already expired but correctly signed token.
	tokens := service.NewTokenService("secret", -time.Minute)
	repo := newStubAdminRepo()
	admin := testAdmin()
	repo.admins[admin.ID] = admin

	signed, err := tokens.Issue(admin)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	guard := NewAuthGuard(tokens, repo)
	c, _, _ := newTestContext(t, "Bearer "+signed)

	_, err = guard.Authenticate(c)
	assertUnauthorized(t, err, "invalid or expired token")
}

func TestAuthGuard_DeletedAdmin(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	admin := testAdmin()

	signed, err := tokens.Issue(admin)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	// Structurally valid unexpired token, but the admin no longer exists.
	guard := NewAuthGuard(tokens, newStubAdminRepo())
	c, _, _ := newTestContext(t, "Bearer "+signed)

	_, err = guard.Authenticate(c)
	assertUnauthorized(t, err, "admin not found")
}

func TestAuthGuard_WrongSigningSecret(t *testing.T) {
	issuer := service.NewTokenService("other-secret", time.Hour)
	repo := newStubAdminRepo()
	admin := testAdmin()
	repo.admins[admin.ID] = admin

	signed, err := issuer.Issue(admin)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	guard := NewAuthGuard(service.NewTokenService("secret", time.Hour), repo)
	c, _, _ := newTestContext(t, "Bearer "+signed)

	_, err = guard.Authenticate(c)
	assertUnauthorized(t, err, "invalid or expired token")
}

func TestAuthGuard_MiddlewareStoresPrincipal(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	repo := newStubAdminRepo()
	admin := testAdmin()
	repo.admins[admin.ID] = admin

	signed, err := tokens.Issue(admin)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	guard := NewAuthGuard(tokens, repo)
	c, rec, _ := newTestContext(t, "Bearer "+signed)

	called := false
	handler := guard.Middleware()(func(c echo.Context) error {
		called = true
		principal, err := Principal(c)
		if err != nil {
			t.Fatalf("Principal returned error: %v", err)
		}
		if principal.ID != admin.ID {
			t.Fatalf("unexpected principal id: %s", principal.ID)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func assertUnauthorized(t *testing.T, err error, wantMsg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
	if he.Message != wantMsg {
		t.Fatalf("expected message %q, got %v", wantMsg, he.Message)
	}
}
