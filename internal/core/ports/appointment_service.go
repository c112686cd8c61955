package ports

import (
	"context"

	"github.com/havenbridge/homecare-api/internal/core/domain"
)

// CreateAppointmentInput carries a validated public appointment submission.
type CreateAppointmentInput struct {
	FullName      string
	Email         string
	Phone         string
	ServiceType   string
	PreferredDate string
	PreferredTime string
	Message       string
}

// AppointmentService defines use-case operations for appointment requests.
type AppointmentService interface {
	// Create persists the request with status PENDING and fires a
	// confirmation notification without awaiting delivery.
	Create(ctx context.Context, in CreateAppointmentInput) (string, error)
	List(ctx context.Context, status string) ([]*domain.Appointment, error)
	Get(ctx context.Context, id string) (*domain.Appointment, error)
	// UpdateStatus rejects values outside the appointment enumeration with
	// domain.ErrInvalidStatus and records an audit entry on success.
	UpdateStatus(ctx context.Context, actor domain.AdminPrincipal, id, status string) (*domain.Appointment, error)
	// Reply persists the admin reply, records an audit entry and notifies the
	// submitter best-effort.
	Reply(ctx context.Context, actor domain.AdminPrincipal, id, reply string) (*domain.Appointment, error)
}
