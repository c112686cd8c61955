package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/havenbridge/homecare-api/internal/core/domain"
	"github.com/havenbridge/homecare-api/internal/core/ports"
)

// AuthService implements admin login.
type AuthService struct {
	admins ports.AdminRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(admins ports.AdminRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{admins: admins, tokens: tokens, logger: logger}
}

// Login verifies the credentials and returns a signed token plus the admin
// profile. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.admins.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		// Not worth failing the login over.
		s.logger.Warn().Err(err).Str("admin_id", admin.ID).Msg("failed to update last login")
	} else {
		admin.LastLogin = &now
	}

	token, err := s.tokens.Issue(admin)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("admin_id", admin.ID).Str("email", admin.Email).Msg("admin logged in")
	return token, admin, nil
}
