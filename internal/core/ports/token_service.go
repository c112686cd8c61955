package ports

import "github.com/havenbridge/homecare-api/internal/core/domain"

// TokenClaims is the identity encoded in a signed admin token.
type TokenClaims struct {
	AdminID string
	Email   string
	Role    string
}

// TokenService issues and verifies signed, time-limited admin identity
// tokens. Verify fails closed: any malformed token, signature mismatch or
// expiry yields domain.ErrTokenInvalid. Expiry is the only invalidation
// mechanism; there is no revocation list.
type TokenService interface {
	Issue(admin *domain.Admin) (string, error)
	Verify(token string) (*TokenClaims, error)
}
