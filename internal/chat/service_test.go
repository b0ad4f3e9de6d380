package chat_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"go.uber.org/mock/gomock"

	"github.com/devHamzaIrshad/study-buddy-agent/internal/chat"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/domain"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/llm"
	mockllm "github.com/devHamzaIrshad/study-buddy-agent/pkg/llm/mock"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/serrors"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/storage"
	mockstorage "github.com/devHamzaIrshad/study-buddy-agent/pkg/storage/mock"
)

func newTestChatter(t *testing.T) (*mockstorage.MockStorage, *mockllm.MockClient, chat.Chatter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	client := mockllm.NewMockClient(ctrl)
	c := chat.New(st, client, chat.Options{
		TopK:            5,
		MaxContextChars: 14_000,
		HistoryLimit:    12,
		Temperature:     0.6,
		MaxTokens:       1500,
	})

	return st, client, c
}

func TestChatter_Ask_NewConversation(t *testing.T) {
	st, client, c := newTestChatter(t)
	userID := domain.UserID{}

	question := "Explain recursion with an example"

	st.EXPECT().StoreConversation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, conv domain.Conversation) (*domain.Conversation, error) {
			if conv.Title != question {
				t.Fatalf("expected title from question, got %q", conv.Title)
			}

			return &conv, nil
		},
	)
	st.EXPECT().ConversationMessages(gomock.Any(), gomock.Any(), uint(12)).Return(nil, nil)
	st.EXPECT().ChunksMatching(gomock.Any(), userID, gomock.Any()).Return([]domain.Chunk{
		{DocumentName: "cs.pdf", Index: 3, Text: "Recursion is a function calling itself with a base case."},
	}, nil)

	client.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req llm.CompletionReq) (llm.CompletionRes, llm.RateLimitStatus, error) {
			if req.Temperature != 0.6 || req.MaxTokens != 1500 {
				t.Fatalf("unexpected completion settings: %+v", req)
			}
			last := req.Messages[len(req.Messages)-1]
			if last.Role != llm.RoleUser {
				t.Fatalf("expected user message last, got %s", last.Role)
			}

			return llm.CompletionRes{Content: "Recursion is...", PromptTokens: 100, CompletionTokens: 50},
				llm.RateLimitStatus{}, nil
		},
	)

	st.EXPECT().StoreMessages(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...domain.Message) ([]domain.Message, error) {
			if len(msgs) != 2 {
				t.Fatalf("expected 2 messages, got %d", len(msgs))
			}
			if msgs[0].Role != domain.MessageRoleUser || msgs[1].Role != domain.MessageRoleAssistant {
				t.Fatalf("unexpected roles: %s, %s", msgs[0].Role, msgs[1].Role)
			}
			if len(msgs[1].Excerpts) != 1 || msgs[1].Excerpts[0].DocumentName != "cs.pdf" {
				t.Fatalf("expected cited excerpt, got %+v", msgs[1].Excerpts)
			}

			return msgs, nil
		},
	)

	answer, err := c.Ask(context.Background(), userID, nil, question)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer.Content != "Recursion is..." {
		t.Fatalf("unexpected answer: %q", answer.Content)
	}
}

func TestChatter_Ask_MultibyteTitleTrimmedOnRuneBoundary(t *testing.T) {
	st, client, c := newTestChatter(t)
	userID := domain.UserID{}

	// 121 bytes; byte 80 falls inside a two-byte rune
	question := "q" + strings.Repeat("é", 60)

	st.EXPECT().StoreConversation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, conv domain.Conversation) (*domain.Conversation, error) {
			if !utf8.ValidString(conv.Title) {
				t.Fatalf("title is not valid UTF-8: %q", conv.Title)
			}
			if len(conv.Title) == 0 || len(conv.Title) > 80 {
				t.Fatalf("unexpected title length: %d bytes", len(conv.Title))
			}

			return &conv, nil
		},
	)
	st.EXPECT().ConversationMessages(gomock.Any(), gomock.Any(), uint(12)).Return(nil, nil)
	st.EXPECT().ChunksMatching(gomock.Any(), userID, gomock.Any()).Return(nil, nil)
	client.EXPECT().Complete(gomock.Any(), gomock.Any()).
		Return(llm.CompletionRes{Content: "answer"}, llm.RateLimitStatus{}, nil)
	st.EXPECT().StoreMessages(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...domain.Message) ([]domain.Message, error) {
			return msgs, nil
		},
	)

	if _, err := c.Ask(context.Background(), userID, nil, question); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestChatter_Ask_ExistingConversationWithHistory(t *testing.T) {
	st, client, c := newTestChatter(t)
	userID := domain.UserID{}
	convID := domain.ConversationID{}

	st.EXPECT().ConversationByID(gomock.Any(), userID, convID).
		Return(&domain.Conversation{ID: convID}, nil)
	st.EXPECT().ConversationMessages(gomock.Any(), convID, uint(12)).Return([]domain.Message{
		{Role: domain.MessageRoleUser, Content: "What is SQL?"},
		{Role: domain.MessageRoleAssistant, Content: "A query language."},
	}, nil)
	st.EXPECT().ChunksMatching(gomock.Any(), userID, gomock.Any()).Return(nil, nil)

	client.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req llm.CompletionReq) (llm.CompletionRes, llm.RateLimitStatus, error) {
			// system + 2 history turns + question
			if len(req.Messages) != 4 {
				t.Fatalf("expected 4 prompt messages, got %d", len(req.Messages))
			}

			return llm.CompletionRes{Content: "Joins combine tables."}, llm.RateLimitStatus{}, nil
		},
	)

	st.EXPECT().StoreMessages(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...domain.Message) ([]domain.Message, error) { return msgs, nil },
	)

	answer, err := c.Ask(context.Background(), userID, &convID, "What about joins?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer.Content != "Joins combine tables." {
		t.Fatalf("unexpected answer: %q", answer.Content)
	}
}

func TestChatter_Ask_EmptyQuestion(t *testing.T) {
	_, _, c := newTestChatter(t)

	_, err := c.Ask(context.Background(), domain.UserID{}, nil, "   ")
	if err == nil || !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestChatter_Ask_ConversationNotFound(t *testing.T) {
	st, _, c := newTestChatter(t)
	convID := domain.ConversationID{}

	st.EXPECT().ConversationByID(gomock.Any(), gomock.Any(), convID).Return(nil, nil)

	_, err := c.Ask(context.Background(), domain.UserID{}, &convID, "What is SQL?")
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestChatter_Ask_RateLimited(t *testing.T) {
	st, client, c := newTestChatter(t)
	userID := domain.UserID{}

	st.EXPECT().StoreConversation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, conv domain.Conversation) (*domain.Conversation, error) { return &conv, nil },
	)
	st.EXPECT().ConversationMessages(gomock.Any(), gomock.Any(), uint(12)).Return(nil, nil)
	st.EXPECT().ChunksMatching(gomock.Any(), userID, gomock.Any()).Return(nil, nil)

	client.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(
		llm.CompletionRes{}, llm.RateLimitStatus{},
		serrors.KindOnly(serrors.ErrRateLimited))

	_, err := c.Ask(context.Background(), userID, nil, "What is SQL?")
	if err == nil || !errors.Is(err, serrors.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestChatter_Conversations_SuccessAndPagination(t *testing.T) {
	st, _, c := newTestChatter(t)
	userID := domain.UserID{}
	cursorTime := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
	cursor := cursorTime.Format(time.RFC3339)

	page := storage.UserConversations{
		Conversations: []domain.Conversation{{Title: "calculus"}},
		NextCursor: func() *time.Time {
			t := cursorTime.Add(-time.Minute)

			return &t
		}(),
	}

	st.EXPECT().UserConversations(gomock.Any(), userID, cursorTime, uint(10)).Return(page, nil)

	convs, next, err := c.Conversations(context.Background(), userID, cursor, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(convs) != 1 || convs[0].Title != "calculus" {
		t.Fatalf("unexpected conversations: %+v", convs)
	}
	if next == "" {
		t.Fatalf("expected next cursor, got empty")
	}
}

func TestChatter_Conversations_InvalidCursor(t *testing.T) {
	_, _, c := newTestChatter(t)

	_, _, err := c.Conversations(context.Background(), domain.UserID{}, "not-a-time", 5)
	if err == nil || !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestChatter_Messages(t *testing.T) {
	st, _, c := newTestChatter(t)
	userID := domain.UserID{}
	convID := domain.ConversationID{}

	// found
	st.EXPECT().ConversationByID(gomock.Any(), userID, convID).
		Return(&domain.Conversation{ID: convID}, nil)
	st.EXPECT().ConversationMessages(gomock.Any(), convID, uint(50)).
		Return([]domain.Message{{Content: "hi"}}, nil)
	msgs, err := c.Messages(context.Background(), userID, convID, 50)
	if err != nil || len(msgs) != 1 {
		t.Fatalf("unexpected: msgs=%+v err=%v", msgs, err)
	}

	// not found
	st.EXPECT().ConversationByID(gomock.Any(), userID, convID).Return(nil, nil)
	_, err = c.Messages(context.Background(), userID, convID, 50)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestChatter_Delete(t *testing.T) {
	st, _, c := newTestChatter(t)
	userID := domain.UserID{}
	convID := domain.ConversationID{}

	// success
	st.EXPECT().DeleteConversation(gomock.Any(), userID, convID).Return(&domain.Conversation{}, nil)
	if err := c.Delete(context.Background(), userID, convID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// not found
	st.EXPECT().DeleteConversation(gomock.Any(), userID, convID).Return(nil, nil)
	err := c.Delete(context.Background(), userID, convID)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// storage error
	st.EXPECT().DeleteConversation(gomock.Any(), userID, convID).Return(nil, errors.New("boom"))
	if err := c.Delete(context.Background(), userID, convID); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
