package ports

import (
	"context"
	"time"

	"github.com/havenbridge/homecare-api/internal/core/domain"
)

// AdminRepository defines persistence for administrator credentials.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	FindByID(ctx context.Context, id string) (*domain.Admin, error)
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}
