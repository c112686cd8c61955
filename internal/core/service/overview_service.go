package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/havenbridge/homecare-api/internal/core/domain"
	"github.com/havenbridge/homecare-api/internal/core/ports"
)

const (
	recentRequestLimit = 5
	recentAuditLimit   = 10
)

// OverviewCache abstracts the short-TTL dashboard cache (Redis).
type OverviewCache interface {
	Get(ctx context.Context) (*ports.Overview, error)
	Set(ctx context.Context, o *ports.Overview) error
}

// OverviewService aggregates per-status counts, the most recent pending
// items and the most recent audit entries. Cache failures fall through to
// the store; the endpoint never fails because the cache is down.
type OverviewService struct {
	appointments ports.RequestRepository[domain.Appointment]
	applications ports.RequestRepository[domain.CareerApplication]
	messages     ports.RequestRepository[domain.ContactMessage]
	audit        ports.AuditRepository
	cache        OverviewCache
	logger       zerolog.Logger
}

func NewOverviewService(
	appointments ports.RequestRepository[domain.Appointment],
	applications ports.RequestRepository[domain.CareerApplication],
	messages ports.RequestRepository[domain.ContactMessage],
	audit ports.AuditRepository,
	cache OverviewCache,
	logger zerolog.Logger,
) *OverviewService {
	return &OverviewService{
		appointments: appointments,
		applications: applications,
		messages:     messages,
		audit:        audit,
		cache:        cache,
		logger:       logger,
	}
}

func (s *OverviewService) Overview(ctx context.Context) (*ports.Overview, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("overview cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	o := &ports.Overview{}
	var err error

	if o.Appointments, err = s.appointmentCounts(ctx); err != nil {
		return nil, err
	}
	if o.Applications, err = s.applicationCounts(ctx); err != nil {
		return nil, err
	}
	if o.Messages, err = s.messageCounts(ctx); err != nil {
		return nil, err
	}

	if o.RecentAppointments, err = s.appointments.ListRecent(ctx, string(domain.AppointmentPending), recentRequestLimit); err != nil {
		return nil, err
	}
	if o.RecentApplications, err = s.applications.ListRecent(ctx, string(domain.ApplicationNew), recentRequestLimit); err != nil {
		return nil, err
	}
	if o.RecentActivity, err = s.audit.ListRecent(ctx, recentAuditLimit); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, o); err != nil {
			s.logger.Warn().Err(err).Msg("overview cache write failed")
		}
	}

	return o, nil
}

func (s *OverviewService) appointmentCounts(ctx context.Context) (ports.StatusCounts, error) {
	var c ports.StatusCounts
	var err error
	if c.Total, err = s.appointments.CountByStatus(ctx, ""); err != nil {
		return c, err
	}
	if c.Pending, err = s.appointments.CountByStatus(ctx, string(domain.AppointmentPending)); err != nil {
		return c, err
	}
	if c.Confirmed, err = s.appointments.CountByStatus(ctx, string(domain.AppointmentConfirmed)); err != nil {
		return c, err
	}
	c.Completed, err = s.appointments.CountByStatus(ctx, string(domain.AppointmentCompleted))
	return c, err
}

func (s *OverviewService) applicationCounts(ctx context.Context) (ports.StatusCounts, error) {
	var c ports.StatusCounts
	var err error
	if c.Total, err = s.applications.CountByStatus(ctx, ""); err != nil {
		return c, err
	}
	if c.New, err = s.applications.CountByStatus(ctx, string(domain.ApplicationNew)); err != nil {
		return c, err
	}
	if c.Reviewing, err = s.applications.CountByStatus(ctx, string(domain.ApplicationReviewing)); err != nil {
		return c, err
	}
	c.Shortlisted, err = s.applications.CountByStatus(ctx, string(domain.ApplicationShortlisted))
	return c, err
}

func (s *OverviewService) messageCounts(ctx context.Context) (ports.StatusCounts, error) {
	var c ports.StatusCounts
	var err error
	if c.Total, err = s.messages.CountByStatus(ctx, ""); err != nil {
		return c, err
	}
	if c.Unread, err = s.messages.CountByStatus(ctx, string(domain.MessageUnread)); err != nil {
		return c, err
	}
	c.Replied, err = s.messages.CountByStatus(ctx, string(domain.MessageReplied))
	return c, err
}
