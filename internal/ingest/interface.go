package ingest

import (
	"context"

	"github.com/devHamzaIrshad/study-buddy-agent/pkg/domain"
)

//go:generate mockgen -package mockingest -source=interface.go -destination=mock/mockingest.go *
type Ingester interface {
	// Upload validates and stores an uploaded document and enqueues a
	// background job to process it.
	Upload(ctx context.Context, userID domain.UserID, name string, content []byte) (*domain.Document, error)
	// Documents lists the user's documents with cursor pagination.
	Documents(ctx context.Context,
		userID domain.UserID,
		status domain.DocumentStatus,
		cursor string,
		limit uint) ([]domain.Document, string, error)
	// Document fetches a single document by ID.
	Document(ctx context.Context, userID domain.UserID, id domain.DocumentID) (*domain.Document, error)
	// Delete removes a document and its chunks from retrieval.
	Delete(ctx context.Context, userID domain.UserID, id domain.DocumentID) error
	// Stats aggregates per-document chunk counts for the user.
	Stats(ctx context.Context, userID domain.UserID) (*domain.StorageStats, error)

	// Ingest extracts, chunks and indexes a stored document. It is called by
	// the background worker.
	Ingest(ctx context.Context, id domain.DocumentID) error
}
