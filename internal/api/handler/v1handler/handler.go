// Package v1handler implements the version 1 HTTP API: document management,
// chat and conversation endpoints. Handlers translate HTTP requests into
// service calls and semantic errors back into status codes.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/devHamzaIrshad/study-buddy-agent/internal/chat"
	"github.com/devHamzaIrshad/study-buddy-agent/internal/ingest"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/logger"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/serrors"
)

// DefaultLimit is the page size used when the client does not provide one.
const DefaultLimit = 20

// Deps carries the services the handlers delegate to.
type Deps struct {
	// Ingester manages document uploads and lifecycle.
	Ingester ingest.Ingester
	// Chatter answers questions and manages conversations.
	Chatter chat.Chatter
	// MaxUploadBytes caps the request body size accepted by the upload
	// endpoint before any of it is read. Zero disables the cap.
	MaxUploadBytes int64
}

// Handler serves the v1 API routes.
type Handler struct {
	deps Deps
}

// New constructs a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register attaches all v1 routes to the given mux. The mux is expected to be
// mounted behind the authentication middleware.
func (h *Handler) Register(mux *http.ServeMux) {
	h.registerDocumentRoutes(mux)
	h.registerChatRoutes(mux)
}

// errorResponse is the JSON error envelope returned by all endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error(ctx, "could not encode response", zap.Error(err))
	}
}

// respondError maps semantic error kinds to HTTP status codes. Unclassified
// errors become 500s with a generic message so internals don't leak.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, serrors.ErrBadRequest), errors.Is(err, serrors.ErrValidation):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, serrors.ErrUnauthorized):
		status, msg = http.StatusUnauthorized, err.Error()
	case errors.Is(err, serrors.ErrNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, serrors.ErrConflict):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, serrors.ErrUnprocessable):
		status, msg = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, serrors.ErrRateLimited):
		status, msg = http.StatusTooManyRequests, "rate limited by the completion provider, retry later"
	default:
		logger.Error(ctx, "request failed", zap.Error(err))
	}

	respondJSON(ctx, w, status, errorResponse{Error: msg})
}
