package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/havenbridge/homecare-api/internal/core/domain"
	"github.com/havenbridge/homecare-api/internal/core/ports"
)

type stubAuditRepo struct {
	entries   []*domain.AuditLogEntry
	insertErr error
}

func (r *stubAuditRepo) Insert(_ context.Context, entry *domain.AuditLogEntry) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *stubAuditRepo) ListRecent(_ context.Context, limit int64) ([]*domain.AuditLogEntry, error) {
	if int64(len(r.entries)) < limit {
		return r.entries, nil
	}
	return r.entries[:limit], nil
}

type stubOverviewCache struct {
	cached *ports.Overview
	getErr error
	sets   int
}

func (c *stubOverviewCache) Get(_ context.Context) (*ports.Overview, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.cached, nil
}

func (c *stubOverviewCache) Set(_ context.Context, o *ports.Overview) error {
	c.cached = o
	c.sets++
	return nil
}

func newOverviewFixture() (*OverviewService, *stubRequestRepo[domain.Appointment], *stubAuditRepo, *stubOverviewCache) {
	appointments := newStubRequestRepo[domain.Appointment](domain.ErrAppointmentNotFound)
	applications := newStubRequestRepo[domain.CareerApplication](domain.ErrApplicationNotFound)
	messages := newStubRequestRepo[domain.ContactMessage](domain.ErrMessageNotFound)
	audit := &stubAuditRepo{}
	cache := &stubOverviewCache{}
	svc := NewOverviewService(appointments, applications, messages, audit, cache, zerolog.Nop())
	return svc, appointments, audit, cache
}

func TestOverviewService_CountsAndRecents(t *testing.T) {
	svc, appointments, audit, cache := newOverviewFixture()

	appointments.add(&domain.Appointment{FullName: "A", Status: domain.AppointmentPending})
	appointments.add(&domain.Appointment{FullName: "B", Status: domain.AppointmentPending})
	appointments.add(&domain.Appointment{FullName: "C", Status: domain.AppointmentConfirmed})
	audit.entries = append(audit.entries, &domain.AuditLogEntry{Action: "Updated appointment status to CONFIRMED"})

	o, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if o.Appointments.Total != 3 {
		t.Errorf("total: got %d, want 3", o.Appointments.Total)
	}
	if o.Appointments.Pending != 2 {
		t.Errorf("pending: got %d, want 2", o.Appointments.Pending)
	}
	if o.Appointments.Confirmed != 1 {
		t.Errorf("confirmed: got %d, want 1", o.Appointments.Confirmed)
	}
	if len(o.RecentActivity) != 1 {
		t.Errorf("recent activity: got %d entries", len(o.RecentActivity))
	}
	if cache.sets != 1 {
		t.Errorf("expected the aggregation to be cached, sets=%d", cache.sets)
	}
}

func TestOverviewService_CacheHitShortCircuits(t *testing.T) {
	svc, appointments, _, cache := newOverviewFixture()
	cache.cached = &ports.Overview{Appointments: ports.StatusCounts{Total: 42}}

	// A stale store would change the counts; the cached copy wins.
	appointments.add(&domain.Appointment{Status: domain.AppointmentPending})

	o, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if o.Appointments.Total != 42 {
		t.Errorf("expected cached total 42, got %d", o.Appointments.Total)
	}
}

func TestOverviewService_CacheFailureFallsThrough(t *testing.T) {
	svc, appointments, _, cache := newOverviewFixture()
	cache.getErr = errors.New("cache down")
	appointments.add(&domain.Appointment{Status: domain.AppointmentPending})

	o, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview should not fail on cache errors: %v", err)
	}
	if o.Appointments.Total != 1 {
		t.Errorf("total: got %d, want 1", o.Appointments.Total)
	}
}

func TestAuditRecorder_SwallowsInsertFailure(t *testing.T) {
	repo := &stubAuditRepo{insertErr: errors.New("insert failed")}
	rec := NewAuditRecorder(repo, zerolog.Nop())

	// Must not panic or propagate anything.
	rec.Record(context.Background(), testActor(), "Updated appointment status to CONFIRMED", domain.EntityAppointment, "1")
}

func TestAuditRecorder_DenormalizesActor(t *testing.T) {
	repo := &stubAuditRepo{}
	rec := NewAuditRecorder(repo, zerolog.Nop())

	rec.Record(context.Background(), testActor(), "Replied to contact message", domain.EntityMessage, "7")

	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(repo.entries))
	}
	entry := repo.entries[0]
	if entry.AdminName != "System Administrator" || entry.AdminEmail != "admin@havenbridge.com" {
		t.Errorf("actor not denormalized: %+v", entry)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("expected a creation timestamp")
	}
}
