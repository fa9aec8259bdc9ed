package domain

import (
	"errors"
	"time"
)

// MessagePriority orders internal messages for display.
type MessagePriority string

const (
	PriorityLow    MessagePriority = "Low"
	PriorityNormal MessagePriority = "Normal"
	PriorityHigh   MessagePriority = "High"
	PriorityUrgent MessagePriority = "Urgent"
)

var ErrMessageNotFound = errors.New("message not found")

// Message is one internal staff message.
type Message struct {
	ID       string          `json:"id"`
	From     string          `json:"from"`
	To       string          `json:"to"`
	Subject  string          `json:"subject"`
	Priority MessagePriority `json:"priority"`
	SentAt   time.Time       `json:"sent_at"`
	Read     bool            `json:"read"`
}
