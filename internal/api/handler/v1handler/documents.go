package v1handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/devHamzaIrshad/study-buddy-agent/pkg/domain"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/serrors"
)

// maxUploadMemory is the in-memory threshold for multipart parsing; larger
// parts spill to temporary files.
const maxUploadMemory = 32 << 20

// uploadFormOverhead leaves room for multipart framing around the file part
// when capping the request body.
const uploadFormOverhead = 1 << 20

// documentList is the response body for document listings.
type documentList struct {
	Items      []domain.Document `json:"items"`
	NextCursor string            `json:"nextCursor,omitempty"`
}

func (h *Handler) registerDocumentRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/documents", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			h.handleDocumentUpload(w, r)
		case http.MethodGet:
			h.handleDocumentList(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/v1/documents/stats", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)

			return
		}
		h.handleDocumentStats(w, r)
	})

	mux.HandleFunc("/v1/documents/", func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDPath(w, r, "/v1/documents/")
		if !ok {
			return
		}

		switch r.Method {
		case http.MethodGet:
			h.handleDocumentGet(w, r, domain.DocumentID(id))
		case http.MethodDelete:
			h.handleDocumentDelete(w, r, domain.DocumentID(id))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

// parseIDPath extracts a single UUID path segment after the given prefix. It
// writes the error response itself when parsing fails.
func parseIDPath(w http.ResponseWriter, r *http.Request, prefix string) (uuid.UUID, bool) {
	raw := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, prefix), "/")
	if raw == "" || strings.Contains(raw, "/") {
		w.WriteHeader(http.StatusNotFound)

		return uuid.UUID{}, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		respondError(r.Context(), w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid ID"))

		return uuid.UUID{}, false
	}

	return id, true
}

// parseLimit reads the limit query parameter, falling back to DefaultLimit.
func parseLimit(r *http.Request) (uint, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return DefaultLimit, nil
	}

	limit, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || limit == 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid limit")
	}

	return uint(limit), nil
}

// handleDocumentUpload accepts a multipart upload with a single "file" part
// and schedules it for ingestion.
func (h *Handler) handleDocumentUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.deps.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.deps.MaxUploadBytes+uploadFormOverhead)
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondError(ctx, w, serrors.Wrap(serrors.ErrValidation, err, "uploaded file is too large"))

			return
		}
		respondError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid multipart form"))

		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "missing file part"))

		return
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		respondError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "could not read file"))

		return
	}

	doc, err := h.deps.Ingester.Upload(ctx, GetUserIDFromContext(ctx), header.Filename, content)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusCreated, doc)
}

func (h *Handler) handleDocumentList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := parseLimit(r)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	docs, next, err := h.deps.Ingester.Documents(ctx,
		GetUserIDFromContext(ctx),
		domain.DocumentStatus(r.URL.Query().Get("status")),
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	if docs == nil {
		docs = []domain.Document{}
	}

	respondJSON(ctx, w, http.StatusOK, documentList{Items: docs, NextCursor: next})
}

func (h *Handler) handleDocumentGet(w http.ResponseWriter, r *http.Request, id domain.DocumentID) {
	ctx := r.Context()

	doc, err := h.deps.Ingester.Document(ctx, GetUserIDFromContext(ctx), id)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusOK, doc)
}

func (h *Handler) handleDocumentDelete(w http.ResponseWriter, r *http.Request, id domain.DocumentID) {
	ctx := r.Context()

	if err := h.deps.Ingester.Delete(ctx, GetUserIDFromContext(ctx), id); err != nil {
		respondError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDocumentStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.deps.Ingester.Stats(ctx, GetUserIDFromContext(ctx))
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusOK, stats)
}
