package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConversationID uniquely identifies a conversation.
type ConversationID uuid.UUID

// MessageID uniquely identifies a message within a conversation.
type MessageID uuid.UUID

// MessageRole identifies the author of a message.
type MessageRole string

const (
	// MessageRoleUser marks a question sent by the user.
	MessageRoleUser MessageRole = "user"
	// MessageRoleAssistant marks an answer produced by the model.
	MessageRoleAssistant MessageRole = "assistant"
)

// Conversation groups a user's chat history.
type Conversation struct {
	// ID is the unique identifier of the conversation.
	ID ConversationID `json:"id"`
	// UserID is the owner of the conversation.
	UserID UserID `json:"userId"`
	// Title is an optional user-provided label.
	Title string `json:"title"`

	// CreatedAt is the time the conversation was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time of the last message exchange.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the conversation was soft-deleted; zero means live.
	DeletedAt time.Time `json:"-"`
}

// Excerpt is a retrieval hit cited by an assistant message.
type Excerpt struct {
	// DocumentID is the cited document.
	DocumentID DocumentID `json:"documentId"`
	// DocumentName is the cited document's name.
	DocumentName string `json:"documentName"`
	// ChunkIndex is the cited chunk's position within the document.
	ChunkIndex int `json:"chunkIndex"`
	// Text is the cited chunk content.
	Text string `json:"text"`
	// Score is the keyword-overlap retrieval score.
	Score float64 `json:"score"`
}

// Message is a single exchange entry in a conversation. Assistant messages
// carry the excerpts that were offered to the model as context.
type Message struct {
	// ID is the unique identifier of the message.
	ID MessageID `json:"id"`
	// ConversationID is the owning conversation.
	ConversationID ConversationID `json:"conversationId"`

	// Role identifies the author (user or assistant).
	Role MessageRole `json:"role"`
	// Content is the message text.
	Content string `json:"content"`
	// Excerpts lists the cited sources for assistant messages.
	Excerpts []Excerpt `json:"excerpts,omitempty"`

	// CreatedAt is the time the message was stored.
	CreatedAt time.Time `json:"createdAt"`
}
