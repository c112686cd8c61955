package ports

import (
	"context"
	"time"
)

// RequestRepository is the uniform persistence pattern shared by all three
// public request kinds (appointments, career applications, contact messages).
// One generic implementation is instantiated per entity type instead of
// triplicating the CRUD logic.
type RequestRepository[T any] interface {
	// Create inserts rec and returns the generated id.
	Create(ctx context.Context, rec *T) (string, error)
	// List returns records newest-created-first, optionally restricted to one
	// status value ("" = all).
	List(ctx context.Context, status string) ([]*T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	// UpdateStatus writes the new status value. Membership in the entity's
	// enumeration is validated by the service before this is called.
	UpdateStatus(ctx context.Context, id, status string) error
	// SetReply persists the admin reply. repliedAt and status are optional:
	// a nil repliedAt and empty status leave those fields untouched.
	SetReply(ctx context.Context, id, reply string, repliedAt *time.Time, status string) error
	// CountByStatus counts records with the given status ("" = all).
	CountByStatus(ctx context.Context, status string) (int64, error)
	// ListRecent returns up to limit records newest-first, optionally
	// restricted to one status.
	ListRecent(ctx context.Context, status string, limit int64) ([]*T, error)
}
