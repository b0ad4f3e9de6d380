package storage

import (
	"context"
	"time"

	"github.com/devHamzaIrshad/study-buddy-agent/pkg/domain"
)

// UserConversations groups a page of conversations with an optional
// NextCursor for pagination.
type UserConversations struct {
	// Conversations contains the current page of conversation records.
	Conversations []domain.Conversation
	// NextCursor points to the timestamp cursor for the next page, nil when
	// there is no next page.
	NextCursor *time.Time
}

// ConversationStorage defines persistence operations for conversations and
// their messages.
type ConversationStorage interface {
	// StoreConversation inserts a conversation and returns the stored row.
	StoreConversation(ctx context.Context, conv domain.Conversation) (*domain.Conversation, error)
	// ConversationByID fetches a conversation for the given user, excluding
	// soft-deleted rows. Returns nil when not found.
	ConversationByID(ctx context.Context,
		userID domain.UserID,
		id domain.ConversationID) (*domain.Conversation, error)
	// DeleteConversation soft-deletes a conversation for the given user and
	// returns the deleted row, or nil when not found.
	DeleteConversation(ctx context.Context,
		userID domain.UserID,
		id domain.ConversationID) (*domain.Conversation, error)
	// UserConversations returns a page of conversations created before the
	// optional cursor time, newest first, limited by limit.
	UserConversations(ctx context.Context,
		userID domain.UserID,
		cursor time.Time,
		limit uint) (UserConversations, error)

	// StoreMessages inserts one or more messages and returns the stored rows.
	// The owning conversation's updated_at is bumped.
	StoreMessages(ctx context.Context, msgs ...domain.Message) ([]domain.Message, error)
	// ConversationMessages returns up to limit most recent messages of a
	// conversation in ascending creation order. A limit of zero returns all.
	ConversationMessages(ctx context.Context,
		id domain.ConversationID,
		limit uint) ([]domain.Message, error)
}
