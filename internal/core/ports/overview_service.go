package ports

import (
	"context"

	"github.com/havenbridge/homecare-api/internal/core/domain"
)

// StatusCounts aggregates per-status totals for one request kind. Only the
// buckets relevant to that kind are populated.
type StatusCounts struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pending,omitempty"`
	Confirmed   int64 `json:"confirmed,omitempty"`
	Completed   int64 `json:"completed,omitempty"`
	New         int64 `json:"new,omitempty"`
	Reviewing   int64 `json:"reviewing,omitempty"`
	Shortlisted int64 `json:"shortlisted,omitempty"`
	Unread      int64 `json:"unread,omitempty"`
	Replied     int64 `json:"replied,omitempty"`
}

// Overview is the read-only dashboard aggregation.
type Overview struct {
	Appointments       StatusCounts                `json:"appointments"`
	Applications       StatusCounts                `json:"applications"`
	Messages           StatusCounts                `json:"messages"`
	RecentAppointments []*domain.Appointment       `json:"recent_appointments"`
	RecentApplications []*domain.CareerApplication `json:"recent_applications"`
	RecentActivity     []*domain.AuditLogEntry     `json:"recent_activity"`
}

// OverviewService produces the dashboard aggregation. Read-only, no side
// effects beyond cache population.
type OverviewService interface {
	Overview(ctx context.Context) (*Overview, error)
}
