// Package llm defines the abstraction for chat-completion providers used to
// generate study answers, together with the data types exchanged with them.
package llm

import (
	"context"
	"time"
)

// Role identifies the author of a prompt message.
type Role string

const (
	// RoleSystem carries the tutoring rules and persona.
	RoleSystem Role = "system"
	// RoleUser carries user questions (and the retrieved excerpt block).
	RoleUser Role = "user"
	// RoleAssistant carries prior model answers for conversational context.
	RoleAssistant Role = "assistant"
)

// Message is a single prompt message sent to the provider.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// CompletionReq describes one chat-completion request.
type CompletionReq struct {
	// Messages is the full prompt, system message first.
	Messages []Message
	// Temperature controls sampling randomness.
	Temperature float64
	// MaxTokens caps the generated answer length.
	MaxTokens int
}

// CompletionRes is the provider's answer plus usage accounting.
type CompletionRes struct {
	// Content is the generated answer text.
	Content string
	// Model is the concrete model that produced the answer.
	Model string
	// PromptTokens and CompletionTokens report the provider's usage numbers.
	PromptTokens     int
	CompletionTokens int
}

// RateLimitStatus describes the provider's request budget as reported in
// response headers.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining indicates how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the window resets.
}

// Client is the abstraction for chat-completion providers.
//
//go:generate mockgen -package mockllm -source=interface.go -destination=mock/mockllm.go *
type Client interface {
	// Complete sends the prompt and returns the generated answer together
	// with the provider's current rate-limit status. A provider rejection
	// due to rate limiting is reported as serrors.ErrRateLimited.
	Complete(ctx context.Context, req CompletionReq) (CompletionRes, RateLimitStatus, error)
}
