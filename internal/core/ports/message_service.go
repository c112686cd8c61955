package ports

import (
	"context"

	"github.com/havenbridge/homecare-api/internal/core/domain"
)

// CreateMessageInput carries a validated public contact submission.
type CreateMessageInput struct {
	FullName string
	Email    string
	Phone    string
	Subject  string
	Message  string
}

// MessageService defines use-case operations for contact messages.
type MessageService interface {
	Create(ctx context.Context, in CreateMessageInput) (string, error)
	List(ctx context.Context, status string) ([]*domain.ContactMessage, error)
	Get(ctx context.Context, id string) (*domain.ContactMessage, error)
	UpdateStatus(ctx context.Context, actor domain.AdminPrincipal, id, status string) (*domain.ContactMessage, error)
	// Reply persists the reply, stamps repliedAt, moves the status to
	// REPLIED, records an audit entry and notifies the submitter.
	Reply(ctx context.Context, actor domain.AdminPrincipal, id, reply string) (*domain.ContactMessage, error)
}
