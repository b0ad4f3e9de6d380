package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/devHamzaIrshad/study-buddy-agent/pkg/domain"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/storage"
)

const (
	documentsTable = "documents"
)

// documentColumns lists the columns fetched by listing and lookup queries.
// The raw content bytea is excluded so listings stay cheap; DocumentContent
// loads it explicitly for the worker.
var documentColumns = []interface{}{ //nolint: gochecknoglobals
	"id", "user_id", "name", "kind", "status", "size_bytes",
	"page_count", "chunk_count", "attempts", "last_error",
	"created_at", "updated_at", "deleted_at",
}

// StoreDocument inserts a document and returns it as stored.
func (p *PgSQL) StoreDocument(ctx context.Context, doc domain.Document) (*domain.Document, error) {
	var row PgDocument
	row.FromDomain(doc)

	var result PgDocument
	found, err := p.Builder.Insert(documentsTable).
		Rows(row).
		Returning(&PgDocument{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store document into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert of document returned no row")
	}

	return result.ToDomain(), nil
}

// DocumentByID returns a document owned by the user, excluding soft-deleted
// rows and the raw content column.
func (p *PgSQL) DocumentByID(ctx context.Context,
	userID domain.UserID,
	id domain.DocumentID) (*domain.Document, error) {
	var row PgDocument
	found, err := p.Builder.From(documentsTable).
		Select(documentColumns...).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch document by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DocumentContent returns a document including its raw upload bytes. Deleted
// documents are excluded so the worker naturally skips removed uploads.
func (p *PgSQL) DocumentContent(ctx context.Context, id domain.DocumentID) (*domain.Document, error) {
	var row PgDocument
	found, err := p.Builder.From(documentsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch document content: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateDocumentByID updates a single document with the provided fields.
// Attempts is incremented by 1 and updated_at is set automatically. A Failed
// status guarded by MaxAttempts only sticks once attempts after increment
// exceed the threshold; otherwise the row stays Pending for another retry.
func (p *PgSQL) UpdateDocumentByID(ctx context.Context,
	id domain.DocumentID,
	updates storage.DocumentUpdates) (*domain.Document, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
	}

	if updates.Status == domain.DocumentStatusFailed && updates.MaxAttempts > 0 {
		rec["status"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE status END",
			updates.MaxAttempts, string(domain.DocumentStatusFailed))
	} else {
		rec["status"] = string(updates.Status)
	}
	if updates.PageCount != nil {
		rec["page_count"] = *updates.PageCount
	}
	if updates.ChunkCount != nil {
		rec["chunk_count"] = *updates.ChunkCount
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}
	if updates.ClearContent {
		rec["content"] = goqu.L("NULL")
	}

	var row PgDocument
	found, err := p.Builder.Update(documentsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgDocument{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update document in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteDocument performs a soft delete by setting deleted_at for the given
// document id and user, returning the deleted record.
func (p *PgSQL) DeleteDocument(ctx context.Context,
	userID domain.UserID,
	id domain.DocumentID) (*domain.Document, error) {
	var row PgDocument
	found, err := p.Builder.Update(documentsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgDocument{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete document in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserDocuments returns a page of documents for a user filtered by optional
// status and cursor, ordered by created_at DESC, id DESC.
func (p *PgSQL) UserDocuments(ctx context.Context,
	userID domain.UserID,
	status domain.DocumentStatus,
	cursor time.Time,
	limit uint) (storage.UserDocuments, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(documentsTable).
		Select(documentColumns...).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgDocument
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserDocuments{}, fmt.Errorf("could not fetch user documents from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	return storage.UserDocuments{
		Documents:  pgDocumentsToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}
