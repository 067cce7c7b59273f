package domain

import (
	"context"
	"time"
)

// Message is a note sent from one user to another user or to a whole class.
// Exactly one of ToID and ClassName is normally set; the store does not
// enforce this.
type Message struct {
	ID        int
	FromID    int
	ToID      *int
	ClassName *string
	Content   string
	CreatedAt time.Time
}

// MessageFilter narrows a message listing; nil fields match everything.
type MessageFilter struct {
	FromID    *int
	ToID      *int
	ClassName *string
}

// MessageRepository is the data-access contract for messages.
type MessageRepository interface {
	// Create inserts a message and returns the stored row including the
	// database-assigned creation timestamp.
	Create(ctx context.Context, m Message) (*Message, error)

	// List returns messages matching the filter, oldest first.
	List(ctx context.Context, filter MessageFilter) ([]Message, error)
}
