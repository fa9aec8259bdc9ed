package ports

import (
	"context"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
)

// MessageRepository defines storage operations for staff messages.
type MessageRepository interface {
	List(ctx context.Context) ([]*domain.Message, error)
	Find(ctx context.Context, id string) (*domain.Message, error)
	Create(ctx context.Context, m *domain.Message) error
	Update(ctx context.Context, m *domain.Message) error
	Delete(ctx context.Context, id string) error
}

// SendMessageInput carries the fields of a new message.
type SendMessageInput struct {
	From     string
	To       string
	Subject  string
	Priority domain.MessagePriority
}

// MessageStats is the inbox's aggregate label.
type MessageStats struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
}

// MessageService defines use-case operations for the messages section.
type MessageService interface {
	ListMessages(ctx context.Context, query string) ([]*domain.Message, error)
	Send(ctx context.Context, in SendMessageInput) (*domain.Message, error)
	MarkRead(ctx context.Context, id string) (*domain.Message, error)
	DeleteMessage(ctx context.Context, id string) error
	Stats(ctx context.Context) (*MessageStats, error)
}
