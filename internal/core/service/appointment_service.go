package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/havenbridge/homecare-api/internal/core/domain"
	"github.com/havenbridge/homecare-api/internal/core/ports"
)

const minReplyLength = 10

// AppointmentService implements the appointment request lifecycle.
type AppointmentService struct {
	repo     ports.RequestRepository[domain.Appointment]
	audit    ports.AuditRecorder
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewAppointmentService(
	repo ports.RequestRepository[domain.Appointment],
	audit ports.AuditRecorder,
	notifier ports.Notifier,
	logger zerolog.Logger,
) *AppointmentService {
	return &AppointmentService{repo: repo, audit: audit, notifier: notifier, logger: logger}
}

// Create persists a public submission with status PENDING and fires a
// confirmation notification. The caller gets the id as soon as the store
// write succeeds, regardless of notification outcome.
func (s *AppointmentService) Create(ctx context.Context, in ports.CreateAppointmentInput) (string, error) {
	appt := &domain.Appointment{
		FullName:      in.FullName,
		Email:         in.Email,
		Phone:         in.Phone,
		ServiceType:   in.ServiceType,
		PreferredDate: in.PreferredDate,
		PreferredTime: in.PreferredTime,
		Message:       in.Message,
		Status:        domain.AppointmentPending,
		CreatedAt:     time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, appt)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create appointment")
		return "", err
	}

	s.notifier.Notify(ports.Notification{
		Kind:          ports.NotifyAppointmentConfirmation,
		To:            in.Email,
		RecipientName: in.FullName,
		PreferredDate: in.PreferredDate,
		PreferredTime: in.PreferredTime,
	})

	s.logger.Info().Str("appointment_id", id).Str("service_type", in.ServiceType).Msg("appointment created")
	return id, nil
}

func (s *AppointmentService) List(ctx context.Context, status string) ([]*domain.Appointment, error) {
	return s.repo.List(ctx, status)
}

func (s *AppointmentService) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateStatus writes the new status after checking membership in the
// appointment enumeration; an invalid value leaves the stored status
// untouched.
func (s *AppointmentService) UpdateStatus(ctx context.Context, actor domain.AdminPrincipal, id, status string) (*domain.Appointment, error) {
	newStatus := domain.AppointmentStatus(status)
	if !newStatus.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "Updated appointment status to "+status, domain.EntityAppointment, id)
	s.logger.Info().Str("appointment_id", id).Str("status", status).Str("admin_id", actor.ID).Msg("appointment status updated")

	return s.repo.FindByID(ctx, id)
}

// Reply persists the admin reply and notifies the submitter best-effort.
func (s *AppointmentService) Reply(ctx context.Context, actor domain.AdminPrincipal, id, reply string) (*domain.Appointment, error) {
	if len(strings.TrimSpace(reply)) < minReplyLength {
		return nil, domain.ErrReplyTooShort
	}

	appt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetReply(ctx, id, reply, nil, ""); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "Replied to appointment", domain.EntityAppointment, id)
	s.notifier.Notify(ports.Notification{
		Kind:          ports.NotifyAdminReply,
		To:            appt.Email,
		RecipientName: appt.FullName,
		ReplyText:     reply,
		Regarding:     "appointment",
	})

	return s.repo.FindByID(ctx, id)
}
