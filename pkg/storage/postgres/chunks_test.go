package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/devHamzaIrshad/study-buddy-agent/pkg/domain"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/storage"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/storage/postgres"
)

// readyDocumentWithChunks stores a READY document with the given chunk texts.
func readyDocumentWithChunks(t *testing.T,
	pgSQL *postgres.PgSQL,
	userID domain.UserID,
	name string,
	texts ...string) *domain.Document {
	t.Helper()
	ctx := context.Background()

	stored, err := pgSQL.StoreDocument(ctx, newPendingDocument(userID, name, []byte("raw")))
	require.NoError(t, err)

	chunks := make([]domain.Chunk, 0, len(texts))
	for i, text := range texts {
		chunks = append(chunks, domain.Chunk{Index: i, Text: text})
	}
	require.NoError(t, pgSQL.ReplaceChunks(ctx, stored.ID, chunks))

	count := len(chunks)
	_, err = pgSQL.UpdateDocumentByID(ctx, stored.ID, storage.DocumentUpdates{
		Status:     domain.DocumentStatusReady,
		ChunkCount: &count,
	})
	require.NoError(t, err)

	return stored
}

func TestPgSQL_ReplaceChunks(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	doc := readyDocumentWithChunks(t, pgSQL, userID, "bio.txt",
		"photosynthesis occurs in chloroplasts",
		"respiration occurs in mitochondria")

	// replacing drops the old chunks entirely
	require.NoError(t, pgSQL.ReplaceChunks(ctx, doc.ID, []domain.Chunk{
		{Index: 0, Text: "the krebs cycle produces ATP"},
	}))

	chunks, err := pgSQL.ChunksMatching(ctx, userID, []string{"occurs", "krebs"})
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	require.Equal(t, "the krebs cycle produces ATP", chunks[0].Text)
	require.Equal(t, "bio.txt", chunks[0].DocumentName)

	// replacing with nothing removes all chunks
	require.NoError(t, pgSQL.ReplaceChunks(ctx, doc.ID, nil))
	chunks, err = pgSQL.ChunksMatching(ctx, userID, []string{"krebs"})
	require.NoError(t, err)
	require.Empty(t, chunks)
}

func TestPgSQL_ChunksMatching(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	readyDocumentWithChunks(t, pgSQL, userID, "bio.txt",
		"Photosynthesis converts light into chemical energy",
		"Cellular respiration releases energy from glucose")

	t.Run("case insensitive match", func(t *testing.T) {
		chunks, err := pgSQL.ChunksMatching(ctx, userID, []string{"photosynthesis"})
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		require.Equal(t, 0, chunks[0].Index)
	})

	t.Run("any token matches", func(t *testing.T) {
		chunks, err := pgSQL.ChunksMatching(ctx, userID, []string{"glucose", "light"})
		require.NoError(t, err)
		require.Len(t, chunks, 2)
	})

	t.Run("empty tokens yield nothing", func(t *testing.T) {
		chunks, err := pgSQL.ChunksMatching(ctx, userID, nil)
		require.NoError(t, err)
		require.Empty(t, chunks)
	})

	t.Run("like metacharacters are literal", func(t *testing.T) {
		chunks, err := pgSQL.ChunksMatching(ctx, userID, []string{"100%"})
		require.NoError(t, err)
		require.Empty(t, chunks)
	})

	t.Run("other user sees nothing", func(t *testing.T) {
		chunks, err := pgSQL.ChunksMatching(ctx, domain.UserID(uuid.New()), []string{"energy"})
		require.NoError(t, err)
		require.Empty(t, chunks)
	})

	t.Run("pending documents are excluded", func(t *testing.T) {
		pending, err := pgSQL.StoreDocument(ctx, newPendingDocument(userID, "draft.txt", []byte("raw")))
		require.NoError(t, err)
		require.NoError(t, pgSQL.ReplaceChunks(ctx, pending.ID, []domain.Chunk{
			{Index: 0, Text: "entropy always increases"},
		}))

		chunks, err := pgSQL.ChunksMatching(ctx, userID, []string{"entropy"})
		require.NoError(t, err)
		require.Empty(t, chunks)
	})

	t.Run("deleted documents are excluded", func(t *testing.T) {
		doc := readyDocumentWithChunks(t, pgSQL, userID, "old.txt", "phlogiston theory of combustion")
		_, err := pgSQL.DeleteDocument(ctx, userID, doc.ID)
		require.NoError(t, err)

		chunks, err := pgSQL.ChunksMatching(ctx, userID, []string{"phlogiston"})
		require.NoError(t, err)
		require.Empty(t, chunks)
	})
}

func TestPgSQL_StorageStats(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	readyDocumentWithChunks(t, pgSQL, userID, "a.txt", "one", "two", "three")
	readyDocumentWithChunks(t, pgSQL, userID, "b.txt", "four")
	_, err := pgSQL.StoreDocument(ctx, newPendingDocument(userID, "c.txt", []byte("x")))
	require.NoError(t, err)

	stats, err := pgSQL.StorageStats(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 3, stats.TotalDocuments)
	require.Equal(t, 4, stats.TotalChunks)
	require.EqualValues(t, len("one")+len("two")+len("three")+len("four"), stats.TotalTextBytes)
	require.Len(t, stats.Documents, 3)
	require.Equal(t, "a.txt", stats.Documents[0].Name)
	require.Equal(t, 3, stats.Documents[0].ChunkCount)
	require.Equal(t, domain.DocumentStatusPending, stats.Documents[2].Status)

	t.Run("empty for unknown user", func(t *testing.T) {
		t.Parallel()

		stats, err := pgSQL.StorageStats(ctx, domain.UserID(uuid.New()))
		require.NoError(t, err)
		require.Zero(t, stats.TotalDocuments)
		require.Empty(t, stats.Documents)
	})
}
