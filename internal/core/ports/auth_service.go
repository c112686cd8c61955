package ports

import (
	"context"

	"github.com/havenbridge/homecare-api/internal/core/domain"
)

// AuthService authenticates administrators.
type AuthService interface {
	// Login verifies the credentials, updates lastLogin and returns a signed
	// token plus the admin profile. Any mismatch (unknown email or wrong
	// password) yields domain.ErrInvalidCredentials without disclosing which
	// check failed.
	Login(ctx context.Context, email, password string) (string, *domain.Admin, error)
}
