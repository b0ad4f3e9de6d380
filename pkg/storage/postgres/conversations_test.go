package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/devHamzaIrshad/study-buddy-agent/pkg/domain"
)

func TestPgSQL_StoreConversation_AndFetch(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	stored, err := pgSQL.StoreConversation(ctx, domain.Conversation{
		UserID: userID,
		Title:  "What is photosynthesis?",
	})
	require.NoError(t, err)
	require.NotEqual(t, domain.ConversationID{}, stored.ID)
	require.False(t, stored.CreatedAt.IsZero())

	got, err := pgSQL.ConversationByID(ctx, userID, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "What is photosynthesis?", got.Title)

	// other users cannot see it
	got, err = pgSQL.ConversationByID(ctx, domain.UserID(uuid.New()), stored.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_DeleteConversation(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	stored, err := pgSQL.StoreConversation(ctx, domain.Conversation{UserID: userID, Title: "old"})
	require.NoError(t, err)

	deleted, err := pgSQL.DeleteConversation(ctx, userID, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.False(t, deleted.DeletedAt.IsZero())

	got, err := pgSQL.ConversationByID(ctx, userID, stored.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	deleted, err = pgSQL.DeleteConversation(ctx, userID, stored.ID)
	require.NoError(t, err)
	require.Nil(t, deleted)
}

func TestPgSQL_UserConversations_Pagination(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	for range 3 {
		_, err := pgSQL.StoreConversation(ctx, domain.Conversation{UserID: userID, Title: "t"})
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	}

	first, err := pgSQL.UserConversations(ctx, userID, time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, first.Conversations, 2)
	require.NotNil(t, first.NextCursor)

	second, err := pgSQL.UserConversations(ctx, userID, *first.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, second.Conversations, 1)
	require.Nil(t, second.NextCursor)
}

func TestPgSQL_StoreMessages_AndList(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	conv, err := pgSQL.StoreConversation(ctx, domain.Conversation{UserID: userID, Title: "chat"})
	require.NoError(t, err)

	docID := domain.DocumentID(uuid.New())
	stored, err := pgSQL.StoreMessages(ctx,
		domain.Message{
			ConversationID: conv.ID,
			Role:           domain.MessageRoleUser,
			Content:        "What is photosynthesis?",
		},
		domain.Message{
			ConversationID: conv.ID,
			Role:           domain.MessageRoleAssistant,
			Content:        "It converts light into chemical energy.",
			Excerpts: []domain.Excerpt{
				{DocumentID: docID, DocumentName: "bio.txt", ChunkIndex: 4, Text: "light reactions", Score: 2},
			},
		},
	)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	msgs, err := pgSQL.ConversationMessages(ctx, conv.ID, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, domain.MessageRoleUser, msgs[0].Role)
	require.Equal(t, domain.MessageRoleAssistant, msgs[1].Role)
	require.Len(t, msgs[1].Excerpts, 1)
	require.Equal(t, docID, msgs[1].Excerpts[0].DocumentID)
	require.Equal(t, 4, msgs[1].Excerpts[0].ChunkIndex)

	// storing messages bumps the conversation's updated_at
	bumped, err := pgSQL.ConversationByID(ctx, userID, conv.ID)
	require.NoError(t, err)
	require.False(t, bumped.UpdatedAt.IsZero())

	t.Run("empty insert is a no-op", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreMessages(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_ConversationMessages_ExchangeOrderStable(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	conv, err := pgSQL.StoreConversation(ctx, domain.Conversation{UserID: userID, Title: "exam prep"})
	require.NoError(t, err)

	// each exchange lands in one multi-row insert, so both rows share a
	// created_at; ordering must still return the question before the answer
	for i := range 5 {
		_, err := pgSQL.StoreMessages(ctx,
			domain.Message{
				ConversationID: conv.ID,
				Role:           domain.MessageRoleUser,
				Content:        "question",
			},
			domain.Message{
				ConversationID: conv.ID,
				Role:           domain.MessageRoleAssistant,
				Content:        "answer",
			},
		)
		require.NoError(t, err, "exchange %d", i)
	}

	msgs, err := pgSQL.ConversationMessages(ctx, conv.ID, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 10)
	for i, msg := range msgs {
		want := domain.MessageRoleUser
		if i%2 == 1 {
			want = domain.MessageRoleAssistant
		}
		require.Equal(t, want, msg.Role, "message %d", i)
	}
}

func TestPgSQL_ConversationMessages_LimitKeepsMostRecent(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	conv, err := pgSQL.StoreConversation(ctx, domain.Conversation{UserID: userID, Title: "long chat"})
	require.NoError(t, err)

	for _, content := range []string{"first", "second", "third"} {
		_, err := pgSQL.StoreMessages(ctx, domain.Message{
			ConversationID: conv.ID,
			Role:           domain.MessageRoleUser,
			Content:        content,
		})
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	}

	msgs, err := pgSQL.ConversationMessages(ctx, conv.ID, 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	// the limit window keeps the newest messages, returned oldest-first
	require.Equal(t, "second", msgs[0].Content)
	require.Equal(t, "third", msgs[1].Content)
}
