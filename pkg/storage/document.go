package storage

import (
	"context"
	"time"

	"github.com/devHamzaIrshad/study-buddy-agent/pkg/domain"
)

// DocumentUpdates describes a set of optional fields applied to an existing
// document during an update. Only non-nil fields are written.
type DocumentUpdates struct {
	// Status is the new lifecycle status to set.
	Status domain.DocumentStatus
	// PageCount, when provided, sets the processed page count.
	PageCount *int
	// ChunkCount, when provided, sets the produced chunk count.
	ChunkCount *int
	// LastError, when provided, sets the last error text. An empty string
	// clears the column (sets NULL).
	LastError *string
	// ClearContent drops the stored raw upload bytes. Set once the document
	// has been chunked so large uploads don't stay resident in the table.
	ClearContent bool
	// MaxAttempts, when provided alongside a Failed status, ensures the
	// status only transitions to Failed once attempts after increment exceed
	// this threshold. A value <= 0 disables the guard.
	MaxAttempts int
}

// UserDocuments groups a page of documents together with an optional
// NextCursor for pagination.
type UserDocuments struct {
	// Documents contains the current page of document records.
	Documents []domain.Document
	// NextCursor points to the timestamp to use as the cursor for the next
	// page. It is nil when there is no next page.
	NextCursor *time.Time
}

// DocumentStorage defines CRUD and query operations for documents and their
// chunks. Implementations must honor soft deletes: deleted documents never
// appear in listings, lookups or retrieval.
type DocumentStorage interface {
	// StoreDocument inserts a document and returns the stored row as it
	// exists in the database (including generated fields).
	StoreDocument(ctx context.Context, doc domain.Document) (*domain.Document, error)
	// DocumentByID fetches a document for the given user, excluding
	// soft-deleted rows. Returns nil when not found. Raw content bytes are
	// not loaded; use DocumentContent.
	DocumentByID(ctx context.Context, userID domain.UserID, id domain.DocumentID) (*domain.Document, error)
	// DocumentContent fetches a document including its raw upload bytes,
	// regardless of owner. Used by the ingest worker.
	DocumentContent(ctx context.Context, id domain.DocumentID) (*domain.Document, error)
	// UpdateDocumentByID updates a single document and returns the updated
	// row, or nil when it does not exist. Attempts is incremented by 1 and
	// updated_at is set automatically. When the target status is Failed and
	// MaxAttempts > 0, the status only changes once the incremented attempts
	// exceed MaxAttempts; otherwise it stays Pending.
	UpdateDocumentByID(ctx context.Context, id domain.DocumentID, updates DocumentUpdates) (*domain.Document, error)
	// DeleteDocument soft-deletes a document for the given user and returns
	// the deleted row, or nil when not found.
	DeleteDocument(ctx context.Context, userID domain.UserID, id domain.DocumentID) (*domain.Document, error)
	// UserDocuments returns a page of documents created before the optional
	// cursor time, newest first, limited by limit. When status is non-empty,
	// results are filtered by it.
	UserDocuments(ctx context.Context,
		userID domain.UserID,
		status domain.DocumentStatus,
		cursor time.Time,
		limit uint) (UserDocuments, error)

	// ReplaceChunks atomically replaces all chunks of a document.
	ReplaceChunks(ctx context.Context, id domain.DocumentID, chunks []domain.Chunk) error
	// ChunksMatching returns chunks of the user's ready documents whose text
	// contains at least one of the given tokens (case-insensitive). Tokens
	// must be pre-sanitized; an empty token list yields no rows.
	ChunksMatching(ctx context.Context, userID domain.UserID, tokens []string) ([]domain.Chunk, error)
	// StorageStats aggregates document and chunk counts for a user.
	StorageStats(ctx context.Context, userID domain.UserID) (*domain.StorageStats, error)
}
