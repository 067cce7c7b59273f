package v1

import (
	"context"
	"fmt"

	"github.com/edziennik/school-backend/internal/core/domain"
)

// MessageService sends and lists messages on behalf of an authenticated
// user.
type MessageService struct {
	messages domain.MessageRepository
}

// NewMessageService creates a new MessageService.
func NewMessageService(messages domain.MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// Send stores a message. When m.FromID is zero the authenticated sender is
// filled in.
func (s *MessageService) Send(ctx context.Context, m domain.Message, senderID int) (*domain.Message, error) {
	if m.FromID == 0 {
		m.FromID = senderID
	}
	created, err := s.messages.Create(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("send message: %v: %w", err, ErrInternal)
	}
	return created, nil
}

// List returns messages matching the filter. With no filter at all it
// defaults to messages sent by the authenticated user.
func (s *MessageService) List(ctx context.Context, filter domain.MessageFilter, currentUserID int) ([]domain.Message, error) {
	if filter.FromID == nil && filter.ToID == nil && filter.ClassName == nil {
		filter.FromID = &currentUserID
	}
	messages, err := s.messages.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list messages: %v: %w", err, ErrInternal)
	}
	return messages, nil
}
