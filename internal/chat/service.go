// Package chat answers study questions: it retrieves matching chunks from the
// user's ready documents, builds a grounded prompt and persists the exchange
// as conversation messages.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/devHamzaIrshad/study-buddy-agent/internal/config"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/domain"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/llm"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/serrors"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/storage"
)

// maxTitleLength caps auto-generated conversation titles.
const maxTitleLength = 80

// Options configure retrieval and prompting. These settings are typically
// derived from application configuration.
type Options struct {
	// TopK is how many retrieved excerpts are offered to the model.
	TopK int
	// MaxContextChars caps the rendered excerpt block size.
	MaxContextChars int
	// HistoryLimit is how many prior messages are replayed into the prompt.
	HistoryLimit int
	// Temperature controls sampling randomness of generated answers.
	Temperature float64
	// MaxTokens caps the generated answer length.
	MaxTokens int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		TopK:            cfg.Chat.TopK,
		MaxContextChars: cfg.Chat.MaxContextChars,
		HistoryLimit:    cfg.Chat.HistoryLimit,
		Temperature:     cfg.Groq.Temperature,
		MaxTokens:       cfg.Groq.MaxTokens,
	}
}

// chatter is the concrete implementation of the Chatter interface.
type chatter struct {
	options Options
	storage storage.Storage
	llm     llm.Client

	promptTokens     metric.Int64Counter
	completionTokens metric.Int64Counter
}

// Ask retrieves matching excerpts, asks the model and stores both sides of
// the exchange. Nothing is persisted when the completion fails, so a retried
// question does not leave unanswered messages behind.
func (c *chatter) Ask(ctx context.Context,
	userID domain.UserID,
	conversationID *domain.ConversationID,
	question string) (*domain.Message, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "question is empty")
	}

	conv, err := c.resolveConversation(ctx, userID, conversationID, question)
	if err != nil {
		return nil, err
	}

	history, err := c.storage.ConversationMessages(ctx, conv.ID, uint(c.options.HistoryLimit)) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("could not load conversation history: %w", err)
	}

	contextBlock, kept, err := c.retrieve(ctx, userID, question)
	if err != nil {
		return nil, err
	}

	res, _, err := c.llm.Complete(ctx, llm.CompletionReq{
		Messages:    BuildPrompt(question, contextBlock, history),
		Temperature: c.options.Temperature,
		MaxTokens:   c.options.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("could not generate answer: %w", err)
	}

	c.promptTokens.Add(ctx, int64(res.PromptTokens))
	c.completionTokens.Add(ctx, int64(res.CompletionTokens))

	excerpts := make([]domain.Excerpt, 0, len(kept))
	for _, sc := range kept {
		excerpts = append(excerpts, domain.Excerpt{
			DocumentID:   sc.Chunk.DocumentID,
			DocumentName: sc.Chunk.DocumentName,
			ChunkIndex:   sc.Chunk.Index,
			Text:         sc.Chunk.Text,
			Score:        sc.Score,
		})
	}

	stored, err := c.storage.StoreMessages(ctx,
		domain.Message{
			ConversationID: conv.ID,
			Role:           domain.MessageRoleUser,
			Content:        question,
		},
		domain.Message{
			ConversationID: conv.ID,
			Role:           domain.MessageRoleAssistant,
			Content:        res.Content,
			Excerpts:       excerpts,
		})
	if err != nil {
		return nil, fmt.Errorf("could not store messages: %w", err)
	}

	answer := stored[len(stored)-1]

	return &answer, nil
}

// resolveConversation loads the target conversation or starts a new one
// titled after the question.
func (c *chatter) resolveConversation(ctx context.Context,
	userID domain.UserID,
	conversationID *domain.ConversationID,
	question string) (*domain.Conversation, error) {
	if conversationID == nil {
		title := question
		if len(title) > maxTitleLength {
			cut := maxTitleLength
			// back up to a rune boundary so the title stays valid UTF-8
			for cut > 0 && !utf8.RuneStart(title[cut]) {
				cut--
			}
			title = title[:cut]
		}

		conv, err := c.storage.StoreConversation(ctx, domain.Conversation{
			UserID: userID,
			Title:  title,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create conversation: %w", err)
		}

		return conv, nil
	}

	conv, err := c.storage.ConversationByID(ctx, userID, *conversationID)
	if err != nil {
		return nil, fmt.Errorf("could not get conversation: %w", err)
	}
	if conv == nil {
		return nil, serrors.With(serrors.ErrNotFound, "conversation not found")
	}

	return conv, nil
}

// retrieve runs the keyword search against the user's ready documents and
// renders the budgeted excerpt block. Questions without usable tokens skip
// the database entirely.
func (c *chatter) retrieve(ctx context.Context,
	userID domain.UserID,
	question string) (string, []ScoredChunk, error) {
	tokens := QueryTokens(question)
	if len(tokens) == 0 {
		return noExcerptsContext, nil, nil
	}

	chunks, err := c.storage.ChunksMatching(ctx, userID, tokens)
	if err != nil {
		return "", nil, fmt.Errorf("could not retrieve chunks: %w", err)
	}

	contextBlock, kept := ContextBlock(TopK(tokens, chunks, c.options.TopK), c.options.MaxContextChars)

	return contextBlock, kept, nil
}

// Conversations returns a page of conversations for the given user. It
// supports cursor-based pagination using an RFC3339 timestamp string and
// returns the next cursor when more results are available.
func (c *chatter) Conversations(ctx context.Context,
	userID domain.UserID,
	cursor string,
	limit uint) ([]domain.Conversation, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := c.storage.UserConversations(ctx, userID, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user conversations: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Conversations, next, nil
}

// Conversation fetches a single conversation by ID for the given user.
func (c *chatter) Conversation(ctx context.Context,
	userID domain.UserID,
	id domain.ConversationID) (*domain.Conversation, error) {
	conv, err := c.storage.ConversationByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get conversation: %w", err)
	}
	if conv == nil {
		return nil, serrors.With(serrors.ErrNotFound, "conversation not found")
	}

	return conv, nil
}

// Messages returns a conversation's messages in chronological order after
// verifying ownership.
func (c *chatter) Messages(ctx context.Context,
	userID domain.UserID,
	id domain.ConversationID,
	limit uint) ([]domain.Message, error) {
	conv, err := c.storage.ConversationByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get conversation: %w", err)
	}
	if conv == nil {
		return nil, serrors.With(serrors.ErrNotFound, "conversation not found")
	}

	msgs, err := c.storage.ConversationMessages(ctx, id, limit)
	if err != nil {
		return nil, fmt.Errorf("could not get conversation messages: %w", err)
	}

	return msgs, nil
}

// Delete removes a conversation belonging to the given user.
func (c *chatter) Delete(ctx context.Context, userID domain.UserID, id domain.ConversationID) error {
	conv, err := c.storage.DeleteConversation(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete conversation: %w", err)
	}
	if conv == nil {
		return serrors.With(serrors.ErrNotFound, "conversation not found")
	}

	return nil
}

// New creates a new Chatter instance backed by the provided storage and
// completion client.
func New(storage storage.Storage, client llm.Client, options Options) Chatter {
	meter := otel.Meter("chat")
	promptTokens, _ := meter.Int64Counter("llm_prompt_tokens_total",
		metric.WithDescription("Total prompt tokens sent to the completion provider."))
	completionTokens, _ := meter.Int64Counter("llm_completion_tokens_total",
		metric.WithDescription("Total completion tokens received from the completion provider."))

	return &chatter{
		options:          options,
		storage:          storage,
		llm:              client,
		promptTokens:     promptTokens,
		completionTokens: completionTokens,
	}
}
