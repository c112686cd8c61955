package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/havenbridge/homecare-api/internal/core/domain"
	"github.com/havenbridge/homecare-api/internal/core/ports"
)

// MessageService implements the contact message lifecycle.
type MessageService struct {
	repo     ports.RequestRepository[domain.ContactMessage]
	audit    ports.AuditRecorder
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewMessageService(
	repo ports.RequestRepository[domain.ContactMessage],
	audit ports.AuditRecorder,
	notifier ports.Notifier,
	logger zerolog.Logger,
) *MessageService {
	return &MessageService{repo: repo, audit: audit, notifier: notifier, logger: logger}
}

func (s *MessageService) Create(ctx context.Context, in ports.CreateMessageInput) (string, error) {
	msg := &domain.ContactMessage{
		FullName:  in.FullName,
		Email:     in.Email,
		Phone:     in.Phone,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    domain.MessageUnread,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, msg)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create contact message")
		return "", err
	}

	s.logger.Info().Str("message_id", id).Msg("contact message created")
	return id, nil
}

func (s *MessageService) List(ctx context.Context, status string) ([]*domain.ContactMessage, error) {
	return s.repo.List(ctx, status)
}

func (s *MessageService) Get(ctx context.Context, id string) (*domain.ContactMessage, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MessageService) UpdateStatus(ctx context.Context, actor domain.AdminPrincipal, id, status string) (*domain.ContactMessage, error) {
	newStatus := domain.MessageStatus(status)
	if !newStatus.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "Updated message status to "+status, domain.EntityMessage, id)
	s.logger.Info().Str("message_id", id).Str("status", status).Str("admin_id", actor.ID).Msg("message status updated")

	return s.repo.FindByID(ctx, id)
}

// Reply persists the reply, stamps repliedAt and moves the status to REPLIED
// in a single write, then notifies the submitter best-effort.
func (s *MessageService) Reply(ctx context.Context, actor domain.AdminPrincipal, id, reply string) (*domain.ContactMessage, error) {
	if len(strings.TrimSpace(reply)) < minReplyLength {
		return nil, domain.ErrReplyTooShort
	}

	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.repo.SetReply(ctx, id, reply, &now, string(domain.MessageReplied)); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "Replied to contact message", domain.EntityMessage, id)
	s.notifier.Notify(ports.Notification{
		Kind:          ports.NotifyAdminReply,
		To:            msg.Email,
		RecipientName: msg.FullName,
		ReplyText:     reply,
		Regarding:     "message",
	})

	return s.repo.FindByID(ctx, id)
}
