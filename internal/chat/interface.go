package chat

import (
	"context"

	"github.com/devHamzaIrshad/study-buddy-agent/pkg/domain"
)

//go:generate mockgen -package mockchat -source=interface.go -destination=mock/mockchat.go *
type Chatter interface {
	// Ask answers a question grounded on the user's ready documents. When
	// conversationID is nil a new conversation is started. It returns the
	// stored assistant message including the cited excerpts.
	Ask(ctx context.Context,
		userID domain.UserID,
		conversationID *domain.ConversationID,
		question string) (*domain.Message, error)

	// Conversations lists the user's conversations with cursor pagination.
	Conversations(ctx context.Context,
		userID domain.UserID,
		cursor string,
		limit uint) ([]domain.Conversation, string, error)
	// Conversation fetches a single conversation by ID.
	Conversation(ctx context.Context,
		userID domain.UserID,
		id domain.ConversationID) (*domain.Conversation, error)
	// Messages returns a conversation's messages in chronological order.
	Messages(ctx context.Context,
		userID domain.UserID,
		id domain.ConversationID,
		limit uint) ([]domain.Message, error)
	// Delete removes a conversation and hides its messages.
	Delete(ctx context.Context, userID domain.UserID, id domain.ConversationID) error
}
