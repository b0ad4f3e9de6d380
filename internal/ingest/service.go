// Package ingest implements the document lifecycle: upload validation,
// background extraction and chunking, and document management operations.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/devHamzaIrshad/study-buddy-agent/internal/config"
	"github.com/devHamzaIrshad/study-buddy-agent/internal/extract"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/domain"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/logger"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/serrors"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/storage"
)

// Options configure upload validation and the chunking pipeline. These
// settings are typically derived from application configuration.
type Options struct {
	// ChunkSize is the target chunk length in characters.
	ChunkSize int
	// ChunkOverlap is the desired overlap between consecutive chunks.
	ChunkOverlap int
	// MinChunkLength drops chunks shorter than this after trimming.
	MinChunkLength int
	// MaxFileSizeMB rejects uploads larger than this many megabytes.
	MaxFileSizeMB int
	// MaxPDFPages caps how many PDF pages are extracted per document.
	MaxPDFPages int
	// MaxAttempts is the maximum number of attempts the background worker
	// should make when processing an ingest job before marking the document
	// failed.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ChunkSize:      cfg.Ingest.ChunkSize,
		ChunkOverlap:   cfg.Ingest.ChunkOverlap,
		MinChunkLength: cfg.Ingest.MinChunkLength,
		MaxFileSizeMB:  cfg.Ingest.MaxFileSizeMB,
		MaxPDFPages:    cfg.Ingest.MaxPDFPages,
		MaxAttempts:    cfg.Ingest.MaxAttempts,
	}
}

// ingester is the concrete implementation of the Ingester interface.
// It coordinates persistence with the storage layer and job enqueueing.
type ingester struct {
	// options holds runtime configuration for validation and chunking.
	options Options
	// storage is the persistence layer used to store documents and manage jobs.
	storage storage.Storage
}

// Upload validates the uploaded file, stores it with PENDING status and
// enqueues a background ingest job within the same transaction, so a stored
// document always has a job and vice versa.
func (i ingester) Upload(ctx context.Context,
	userID domain.UserID,
	name string,
	content []byte) (*domain.Document, error) {
	kind, err := ValidateUpload(name, content, i.options.MaxFileSizeMB)
	if err != nil {
		return nil, err
	}

	var doc *domain.Document

	if err := i.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreDocument(ctx, domain.Document{
			UserID:    userID,
			Name:      name,
			Kind:      kind,
			Status:    domain.DocumentStatusPending,
			SizeBytes: int64(len(content)),
			Content:   content,
		})
		if err != nil {
			return fmt.Errorf("could not store document: %w", err)
		}
		doc = res

		// every upload gets a fresh ID, so the unique constraint only guards
		// against double-enqueueing this exact document
		if _, err := tx.AddJob(ctx, JobArgs{
			DocumentID:  doc.ID,
			maxAttempts: i.options.MaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not upload document: %w", err)
	}

	return doc, nil
}

// Documents returns a page of documents for the given user filtered by status.
// It supports cursor-based pagination using an RFC3339 timestamp string and
// returns the next cursor when more results are available.
func (i ingester) Documents(ctx context.Context,
	userID domain.UserID,
	status domain.DocumentStatus,
	cursor string,
	limit uint) ([]domain.Document, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := i.storage.UserDocuments(ctx, userID, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user documents: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Documents, next, nil
}

// Document fetches a single document by ID for the given user. It returns a
// not-found error when no matching document exists.
func (i ingester) Document(ctx context.Context,
	userID domain.UserID,
	id domain.DocumentID) (*domain.Document, error) {
	res, err := i.storage.DocumentByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get document: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "document not found")
	}

	return res, nil
}

// Delete removes a document belonging to the given user. Chunks stay in place
// but are excluded from retrieval because lookups always join on live
// documents; a pending ingest job for the document becomes a no-op.
func (i ingester) Delete(ctx context.Context, userID domain.UserID, id domain.DocumentID) error {
	res, err := i.storage.DeleteDocument(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete document: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "document not found")
	}

	return nil
}

// Stats aggregates per-document chunk counts for the user.
func (i ingester) Stats(ctx context.Context, userID domain.UserID) (*domain.StorageStats, error) {
	stats, err := i.storage.StorageStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get storage stats: %w", err)
	}

	return stats, nil
}

// Ingest extracts text from the stored document, splits it into validated
// chunks and marks the document READY. Extraction failures that can't improve
// with a retry (corrupted or image-only files) mark the document FAILED
// immediately; transient failures only flip the status once the attempt
// budget is exhausted.
func (i ingester) Ingest(ctx context.Context, id domain.DocumentID) error {
	doc, err := i.storage.DocumentContent(ctx, id)
	if err != nil {
		return fmt.Errorf("could not load document content: %w", err)
	}
	if doc == nil {
		// deleted between enqueue and processing
		return serrors.With(serrors.ErrNotFound, "document not found")
	}
	if doc.Status == domain.DocumentStatusReady {
		return nil
	}

	text, pageCount, err := i.extractText(doc)
	if err != nil {
		return i.fail(ctx, id, err)
	}

	chunks := i.buildChunks(doc, text)
	if len(chunks) == 0 {
		return i.fail(ctx, id,
			serrors.With(serrors.ErrUnprocessable, "document produced no usable chunks"))
	}

	chunkCount := len(chunks)
	emptyError := ""

	if err := i.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.ReplaceChunks(ctx, id, chunks); err != nil {
			return fmt.Errorf("could not replace chunks: %w", err)
		}

		if _, err := tx.UpdateDocumentByID(ctx, id, storage.DocumentUpdates{
			Status:       domain.DocumentStatusReady,
			PageCount:    &pageCount,
			ChunkCount:   &chunkCount,
			LastError:    &emptyError,
			ClearContent: true,
		}); err != nil {
			return fmt.Errorf("could not update document: %w", err)
		}

		return nil
	}); err != nil {
		return i.fail(ctx, id, err)
	}

	return nil
}

// extractText runs the kind-specific extraction and enforces a minimum of
// meaningful text for plain-text uploads (PDF extraction enforces its own).
func (i ingester) extractText(doc *domain.Document) (string, int, error) {
	switch doc.Kind {
	case domain.DocumentKindPDF:
		return extract.PDF(doc.Content, i.options.MaxPDFPages)
	case domain.DocumentKindText:
		text := extract.Text(doc.Content)
		if !extract.ValidChunk(text, i.options.MinChunkLength) {
			return "", 0, serrors.With(serrors.ErrUnprocessable, "no meaningful text found in file")
		}

		return text, 0, nil
	default:
		return "", 0, serrors.With(serrors.ErrUnprocessable, "unsupported document kind %q", doc.Kind)
	}
}

// buildChunks splits extracted text and drops chunks below the quality bar.
func (i ingester) buildChunks(doc *domain.Document, text string) []domain.Chunk {
	var chunks []domain.Chunk

	for _, part := range extract.Chunks(text, i.options.ChunkSize, i.options.ChunkOverlap) {
		if !extract.ValidChunk(part, i.options.MinChunkLength) {
			continue
		}

		chunks = append(chunks, domain.Chunk{
			DocumentID: doc.ID,
			Index:      len(chunks),
			Text:       part,
		})
	}

	return chunks
}

// fail records the error on the document and passes the original error back
// to the caller. Unprocessable errors flip the status immediately; other
// errors keep the document PENDING until the attempt budget runs out.
func (i ingester) fail(ctx context.Context, id domain.DocumentID, cause error) error {
	msg := cause.Error()
	updates := storage.DocumentUpdates{
		Status:    domain.DocumentStatusFailed,
		LastError: &msg,
	}
	if !errors.Is(cause, serrors.ErrUnprocessable) {
		updates.MaxAttempts = i.options.MaxAttempts
	}

	if _, err := i.storage.UpdateDocumentByID(ctx, id, updates); err != nil {
		logger.Error(ctx, "could not record ingest failure", zap.Error(err))
	}

	return cause
}

// New creates a new Ingester instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Ingester {
	return &ingester{
		options: options,
		storage: storage,
	}
}
