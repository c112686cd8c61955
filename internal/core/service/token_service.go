package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/havenbridge/homecare-api/internal/core/domain"
	"github.com/havenbridge/homecare-api/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// TokenService issues and verifies HS256-signed admin identity tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a token service. A zero ttl falls back to the
// default; a negative ttl is kept as-is and yields already expired tokens.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl == 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue encodes {adminId, email, role} with an expiry.
func (s *TokenService) Issue(admin *domain.Admin) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"email":    admin.Email,
		"role":     admin.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify fails closed: malformed tokens, signature mismatches and expired
// tokens all collapse to domain.ErrTokenInvalid.
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	adminID, _ := claims["admin_id"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if adminID == "" {
		return nil, domain.ErrTokenInvalid
	}

	return &ports.TokenClaims{AdminID: adminID, Email: email, Role: role}, nil
}
