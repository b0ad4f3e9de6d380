package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocumentID uniquely identifies an uploaded document.
type DocumentID uuid.UUID

// DocumentKind distinguishes the supported upload formats.
type DocumentKind string

const (
	// DocumentKindPDF marks a PDF upload.
	DocumentKindPDF DocumentKind = "pdf"
	// DocumentKindText marks a plain-text upload.
	DocumentKindText DocumentKind = "text"
)

// DocumentStatus represents the ingest lifecycle state of a document.
type DocumentStatus string

const (
	// DocumentStatusPending indicates the document is uploaded but not chunked yet.
	DocumentStatusPending DocumentStatus = "PENDING"
	// DocumentStatusReady indicates the document is chunked and retrievable.
	DocumentStatusReady DocumentStatus = "READY"
	// DocumentStatusFailed indicates ingestion ended with an error; see
	// LastError and Attempts for details.
	DocumentStatusFailed DocumentStatus = "FAILED"
)

// Document represents an uploaded study document and its ingest state.
type Document struct {
	// ID is the unique identifier of the document.
	ID DocumentID `json:"id"`
	// UserID is the identifier of the user who uploaded the document.
	UserID UserID `json:"userId"`

	// Name is the original upload filename.
	Name string `json:"name"`
	// Kind is the detected upload format.
	Kind DocumentKind `json:"kind"`
	// Status is the current ingest lifecycle state.
	Status DocumentStatus `json:"status"`

	// SizeBytes is the size of the uploaded file.
	SizeBytes int64 `json:"sizeBytes"`
	// PageCount is the number of PDF pages processed; zero for text uploads.
	PageCount int `json:"pageCount"`
	// ChunkCount is the number of chunks produced by ingestion.
	ChunkCount int `json:"chunkCount"`

	// Content holds the raw uploaded bytes until ingestion succeeds.
	// It is never serialized to clients.
	Content []byte `json:"-"`

	// Attempts is the number of ingest attempts made for this document.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent ingest error message, if any.
	LastError string `json:"-"`

	// CreatedAt is the time the document was uploaded.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the document was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the document was soft-deleted; zero means live.
	DeletedAt time.Time `json:"-"`
}

// Chunk is a retrievable excerpt of a ready document.
type Chunk struct {
	// DocumentID is the owning document.
	DocumentID DocumentID `json:"documentId"`
	// DocumentName is the owning document's name, denormalized for citations.
	DocumentName string `json:"documentName"`
	// Index is the zero-based position of the chunk within the document.
	Index int `json:"index"`
	// Text is the chunk content.
	Text string `json:"text"`
}

// StorageStats summarizes what a user has stored and how retrievable it is.
type StorageStats struct {
	// TotalDocuments counts live documents.
	TotalDocuments int `json:"totalDocuments"`
	// TotalChunks counts chunks across all ready documents.
	TotalChunks int `json:"totalChunks"`
	// TotalTextBytes approximates the stored chunk text size.
	TotalTextBytes int64 `json:"totalTextBytes"`
	// Documents lists per-document chunk counts.
	Documents []DocumentStats `json:"documents"`
}

// DocumentStats is the per-document slice of StorageStats.
type DocumentStats struct {
	ID         DocumentID     `json:"id"`
	Name       string         `json:"name"`
	Status     DocumentStatus `json:"status"`
	ChunkCount int            `json:"chunkCount"`
}
