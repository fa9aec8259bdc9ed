package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// MessageService implements the staff messages section.
type MessageService struct {
	repo ports.MessageRepository
	log  zerolog.Logger
}

func NewMessageService(repo ports.MessageRepository, log zerolog.Logger) *MessageService {
	return &MessageService{repo: repo, log: log}
}

func (s *MessageService) ListMessages(ctx context.Context, query string) ([]*domain.Message, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]*domain.Message, 0, len(messages))
	for _, m := range messages {
		if matchesQuery(query, m.From, m.To, m.Subject, string(m.Priority)) {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

func (s *MessageService) Send(ctx context.Context, in ports.SendMessageInput) (*domain.Message, error) {
	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}
	message := &domain.Message{
		From:     in.From,
		To:       in.To,
		Subject:  in.Subject,
		Priority: priority,
		SentAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, err
	}
	s.log.Info().Str("message_id", message.ID).Str("to", in.To).Msg("message sent")
	return message, nil
}

func (s *MessageService) MarkRead(ctx context.Context, id string) (*domain.Message, error) {
	message, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !message.Read {
		message.Read = true
		if err := s.repo.Update(ctx, message); err != nil {
			return nil, err
		}
	}
	return message, nil
}

func (s *MessageService) DeleteMessage(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *MessageService) Stats(ctx context.Context) (*ports.MessageStats, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := &ports.MessageStats{Total: len(messages)}
	for _, m := range messages {
		if !m.Read {
			stats.Unread++
		}
	}
	return stats, nil
}
