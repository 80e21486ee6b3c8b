package voat

import (
	"context"
	"fmt"
	"net/http"
)

// GetMessages gets messages for the authenticated user, filtered by mailbox
// and read state.
func (s *Session) GetMessages(ctx context.Context, mtype MessageType, state MessageState) ([]Message, error) {
	path := fmt.Sprintf("/u/messages/%s/%s", mtype, state)

	var messages []Message
	if err := s.getJSON(ctx, path, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SendMessage sends a new private message to a user.
func (s *Session) SendMessage(ctx context.Context, msg NewMessage) error {
	resp, err := s.doAuth(ctx, http.MethodPost, "/u/messages", nil, msg)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, nil)
}

// ReplyToMessage replies to a user message.
func (s *Session) ReplyToMessage(ctx context.Context, messageID int64, value string) error {
	resp, err := s.doAuth(ctx, http.MethodPost, fmt.Sprintf("/u/messages/reply/%d", messageID), nil, commentValue{Value: value})
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, nil)
}
