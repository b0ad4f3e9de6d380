package v1handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/devHamzaIrshad/study-buddy-agent/pkg/domain"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/serrors"
)

// chatRequest is the request body for asking a question.
type chatRequest struct {
	// Question is the user's question.
	Question string `json:"question"`
	// ConversationID continues an existing conversation when set.
	ConversationID *domain.ConversationID `json:"conversationId,omitempty"`
}

// conversationList is the response body for conversation listings.
type conversationList struct {
	Items      []domain.Conversation `json:"items"`
	NextCursor string                `json:"nextCursor,omitempty"`
}

// messageList is the response body for conversation messages.
type messageList struct {
	Items []domain.Message `json:"items"`
}

func (h *Handler) registerChatRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/chat", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)

			return
		}
		h.handleChat(w, r)
	})

	mux.HandleFunc("/v1/conversations", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)

			return
		}
		h.handleConversationList(w, r)
	})

	mux.HandleFunc("/v1/conversations/", func(w http.ResponseWriter, r *http.Request) {
		remainder := strings.TrimPrefix(r.URL.Path, "/v1/conversations/")

		if strings.HasSuffix(remainder, "/messages") {
			r2 := r.Clone(r.Context())
			r2.URL.Path = "/v1/conversations/" + strings.TrimSuffix(remainder, "/messages")

			id, ok := parseIDPath(w, r2, "/v1/conversations/")
			if !ok {
				return
			}
			if r.Method != http.MethodGet {
				w.WriteHeader(http.StatusMethodNotAllowed)

				return
			}
			h.handleConversationMessages(w, r, domain.ConversationID(id))

			return
		}

		id, ok := parseIDPath(w, r, "/v1/conversations/")
		if !ok {
			return
		}

		switch r.Method {
		case http.MethodGet:
			h.handleConversationGet(w, r, domain.ConversationID(id))
		case http.MethodDelete:
			h.handleConversationDelete(w, r, domain.ConversationID(id))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

// handleChat answers a question, creating a conversation when none is given.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON payload"))

		return
	}

	answer, err := h.deps.Chatter.Ask(ctx, GetUserIDFromContext(ctx), req.ConversationID, req.Question)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusOK, answer)
}

func (h *Handler) handleConversationList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := parseLimit(r)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	convs, next, err := h.deps.Chatter.Conversations(ctx,
		GetUserIDFromContext(ctx),
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	if convs == nil {
		convs = []domain.Conversation{}
	}

	respondJSON(ctx, w, http.StatusOK, conversationList{Items: convs, NextCursor: next})
}

func (h *Handler) handleConversationGet(w http.ResponseWriter, r *http.Request, id domain.ConversationID) {
	ctx := r.Context()

	conv, err := h.deps.Chatter.Conversation(ctx, GetUserIDFromContext(ctx), id)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusOK, conv)
}

func (h *Handler) handleConversationDelete(w http.ResponseWriter, r *http.Request, id domain.ConversationID) {
	ctx := r.Context()

	if err := h.deps.Chatter.Delete(ctx, GetUserIDFromContext(ctx), id); err != nil {
		respondError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleConversationMessages(w http.ResponseWriter, r *http.Request, id domain.ConversationID) {
	ctx := r.Context()

	limit, err := parseLimit(r)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	msgs, err := h.deps.Chatter.Messages(ctx, GetUserIDFromContext(ctx), id, limit)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	if msgs == nil {
		msgs = []domain.Message{}
	}

	respondJSON(ctx, w, http.StatusOK, messageList{Items: msgs})
}
