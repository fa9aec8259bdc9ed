package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// MessageStore is the in-memory staff message inbox.
type MessageStore struct {
	mu       sync.RWMutex
	messages map[string]*domain.Message
	seq      int
}

var _ ports.MessageRepository = (*MessageStore)(nil)

// NewMessageStore returns a store seeded with the demo messages.
func NewMessageStore() *MessageStore {
	s := &MessageStore{messages: make(map[string]*domain.Message), seq: 1000}
	for _, m := range seedMessages() {
		s.messages[m.ID] = m
		s.seq++
	}
	return s
}

func seedMessages() []*domain.Message {
	at := func(day, hour, minute int) time.Time {
		return time.Date(2025, 1, day, hour, minute, 0, 0, time.UTC)
	}
	return []*domain.Message{
		{
			ID: "MSG-1001", From: "System", To: "All Staff", Subject: "Low Stock Alert",
			Priority: domain.PriorityHigh, SentAt: at(19, 9, 30), Read: false,
		},
		{
			ID: "MSG-1002", From: "Dr. Ama Mensah", To: "Admin", Subject: "Patient Consultation",
			Priority: domain.PriorityNormal, SentAt: at(19, 8, 15), Read: true,
		},
		{
			ID: "MSG-1003", From: "Pharmacy", To: "Inventory Manager", Subject: "Medication Restocked",
			Priority: domain.PriorityNormal, SentAt: at(18, 16, 45), Read: true,
		},
		{
			ID: "MSG-1004", From: "System", To: "Nursing Staff", Subject: "New Admission",
			Priority: domain.PriorityUrgent, SentAt: at(18, 14, 20), Read: false,
		},
		{
			ID: "MSG-1005", From: "HR Department", To: "All Doctors", Subject: "Staff Meeting",
			Priority: domain.PriorityLow, SentAt: at(18, 10, 0), Read: true,
		},
	}
}

func (s *MessageStore) List(_ context.Context) ([]*domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Message, 0, len(s.messages))
	for _, m := range s.messages {
		clone := *m
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SentAt.After(out[j].SentAt) })
	return out, nil
}

func (s *MessageStore) Find(_ context.Context, id string) (*domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.messages[id]
	if !ok {
		return nil, domain.ErrMessageNotFound
	}
	clone := *m
	return &clone, nil
}

func (s *MessageStore) Create(_ context.Context, m *domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	m.ID = fmt.Sprintf("MSG-%d", s.seq)
	clone := *m
	s.messages[m.ID] = &clone
	return nil
}

func (s *MessageStore) Update(_ context.Context, m *domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.messages[m.ID]; !ok {
		return domain.ErrMessageNotFound
	}
	clone := *m
	s.messages[m.ID] = &clone
	return nil
}

func (s *MessageStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.messages[id]; !ok {
		return domain.ErrMessageNotFound
	}
	delete(s.messages, id)
	return nil
}
