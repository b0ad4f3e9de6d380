package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/devHamzaIrshad/study-buddy-agent/pkg/domain"
)

const (
	chunksTable = "chunks"
)

// ReplaceChunks atomically replaces all chunks of a document. Callers are
// expected to run this inside a transaction together with the READY status
// update so a half-ingested document is never visible to retrieval.
func (p *PgSQL) ReplaceChunks(ctx context.Context, id domain.DocumentID, chunks []domain.Chunk) error {
	if _, err := p.Builder.Delete(chunksTable).
		Where(goqu.I("document_id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete old chunks in pg: %w", err)
	}

	if len(chunks) == 0 {
		return nil
	}

	rows := make([]PgChunk, 0, len(chunks))
	for _, ch := range chunks {
		rows = append(rows, PgChunk{
			DocumentID: uuid.UUID(id),
			Index:      ch.Index,
			Text:       ch.Text,
		})
	}

	if _, err := p.Builder.Insert(chunksTable).
		Rows(rows).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not insert chunks into pg: %w", err)
	}

	return nil
}

// ChunksMatching returns chunks of the user's ready, non-deleted documents
// whose text contains at least one of the given tokens (case-insensitive).
// This is only a candidate prefilter; relevance scoring happens in the chat
// service. An empty token list yields no rows.
func (p *PgSQL) ChunksMatching(ctx context.Context,
	userID domain.UserID,
	tokens []string) ([]domain.Chunk, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	match := make([]goqu.Expression, 0, len(tokens))
	for _, tok := range tokens {
		match = append(match, goqu.I("c.text").ILike("%"+escapeLike(tok)+"%"))
	}

	ds := p.Builder.From(goqu.T(chunksTable).As("c")).
		Join(goqu.T(documentsTable).As("d"), goqu.On(goqu.I("c.document_id").Eq(goqu.I("d.id")))).
		Select(
			goqu.I("c.document_id"),
			goqu.I("d.name").As("document_name"),
			goqu.I("c.idx"),
			goqu.I("c.text"),
		).
		Where(
			goqu.I("d.user_id").Eq(uuid.UUID(userID)),
			goqu.I("d.status").Eq(string(domain.DocumentStatusReady)),
			goqu.I("d.deleted_at").IsNull(),
			goqu.Or(match...),
		).
		Order(goqu.I("c.document_id").Asc(), goqu.I("c.idx").Asc())

	var rows []PgChunk
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch matching chunks from pg: %w", err)
	}

	out := make([]domain.Chunk, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

// StorageStats aggregates document and chunk counts for a user.
func (p *PgSQL) StorageStats(ctx context.Context, userID domain.UserID) (*domain.StorageStats, error) {
	type statsRow struct {
		ID         uuid.UUID `db:"id"`
		Name       string    `db:"name"`
		Status     string    `db:"status"`
		ChunkCount int       `db:"chunk_count"`
		TextBytes  int64     `db:"text_bytes"`
	}

	ds := p.Builder.From(goqu.T(documentsTable).As("d")).
		LeftJoin(goqu.T(chunksTable).As("c"), goqu.On(goqu.I("c.document_id").Eq(goqu.I("d.id")))).
		Select(
			goqu.I("d.id"),
			goqu.I("d.name"),
			goqu.I("d.status"),
			goqu.COUNT(goqu.I("c.idx")).As("chunk_count"),
			goqu.COALESCE(goqu.SUM(goqu.L("length(c.text)")), 0).As("text_bytes"),
		).
		Where(
			goqu.I("d.user_id").Eq(uuid.UUID(userID)),
			goqu.I("d.deleted_at").IsNull(),
		).
		GroupBy(goqu.I("d.id"), goqu.I("d.name"), goqu.I("d.status")).
		Order(goqu.I("d.name").Asc())

	var rows []statsRow
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch storage stats from pg: %w", err)
	}

	stats := &domain.StorageStats{
		TotalDocuments: len(rows),
		Documents:      make([]domain.DocumentStats, 0, len(rows)),
	}
	for _, row := range rows {
		stats.TotalChunks += row.ChunkCount
		stats.TotalTextBytes += row.TextBytes
		stats.Documents = append(stats.Documents, domain.DocumentStats{
			ID:         domain.DocumentID(row.ID),
			Name:       row.Name,
			Status:     domain.DocumentStatus(row.Status),
			ChunkCount: row.ChunkCount,
		})
	}

	return stats, nil
}

// escapeLike escapes LIKE metacharacters in a user-supplied token so it only
// matches literally.
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}

	return string(out)
}
