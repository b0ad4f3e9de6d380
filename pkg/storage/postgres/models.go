package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/devHamzaIrshad/study-buddy-agent/pkg/domain"
)

// PgDocument is the row model for the documents table.
type PgDocument struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Name       string `db:"name"`
	Kind       string `db:"kind"`
	Status     string `db:"status"`
	SizeBytes  int64  `db:"size_bytes"`
	PageCount  int    `db:"page_count"  goqu:"skipinsert"`
	ChunkCount int    `db:"chunk_count" goqu:"skipinsert"`

	Content []byte `db:"content"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

// ToDomain converts the row model into a domain document.
func (p *PgDocument) ToDomain() *domain.Document {
	return &domain.Document{
		ID:         domain.DocumentID(p.ID),
		UserID:     domain.UserID(p.UserID),
		Name:       p.Name,
		Kind:       domain.DocumentKind(p.Kind),
		Status:     domain.DocumentStatus(p.Status),
		SizeBytes:  p.SizeBytes,
		PageCount:  p.PageCount,
		ChunkCount: p.ChunkCount,
		Content:    p.Content,
		Attempts:   p.Attempts,
		LastError:  p.LastError.String,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt.Time,
		DeletedAt:  p.DeletedAt.Time,
	}
}

// FromDomain fills the row model from a domain document.
func (p *PgDocument) FromDomain(doc domain.Document) {
	*p = PgDocument{
		ID:         uuid.UUID(doc.ID),
		UserID:     uuid.UUID(doc.UserID),
		Name:       doc.Name,
		Kind:       string(doc.Kind),
		Status:     string(doc.Status),
		SizeBytes:  doc.SizeBytes,
		PageCount:  doc.PageCount,
		ChunkCount: doc.ChunkCount,
		Content:    doc.Content,
		Attempts:   doc.Attempts,
		LastError: sql.NullString{
			String: doc.LastError,
			Valid:  doc.LastError != "",
		},
		CreatedAt: doc.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  doc.UpdatedAt,
			Valid: !doc.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  doc.DeletedAt,
			Valid: !doc.DeletedAt.IsZero(),
		},
	}
}

func pgDocumentsToDomain(docs []PgDocument) []domain.Document {
	out := make([]domain.Document, 0, len(docs))
	for i := range docs {
		out = append(out, *docs[i].ToDomain())
	}

	return out
}

// PgChunk is the row model for the chunks table. DocumentName is populated by
// queries that join the documents table.
type PgChunk struct {
	DocumentID   uuid.UUID `db:"document_id"`
	DocumentName string    `db:"document_name" goqu:"skipinsert"`
	Index        int       `db:"idx"`
	Text         string    `db:"text"`
}

// ToDomain converts the row model into a domain chunk.
func (p *PgChunk) ToDomain() domain.Chunk {
	return domain.Chunk{
		DocumentID:   domain.DocumentID(p.DocumentID),
		DocumentName: p.DocumentName,
		Index:        p.Index,
		Text:         p.Text,
	}
}

// PgConversation is the row model for the conversations table.
type PgConversation struct {
	ID     uuid.UUID `db:"id" goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`
	Title  string    `db:"title"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

// ToDomain converts the row model into a domain conversation.
func (p *PgConversation) ToDomain() *domain.Conversation {
	return &domain.Conversation{
		ID:        domain.ConversationID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Title:     p.Title,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}
}

func pgConversationsToDomain(convs []PgConversation) []domain.Conversation {
	out := make([]domain.Conversation, 0, len(convs))
	for i := range convs {
		out = append(out, *convs[i].ToDomain())
	}

	return out
}

// PgMessage is the row model for the messages table. Seq is the insertion
// order; created_at cannot break ties within a multi-row insert.
type PgMessage struct {
	ID             uuid.UUID `db:"id"  goqu:"skipinsert"`
	Seq            int64     `db:"seq" goqu:"skipinsert"`
	ConversationID uuid.UUID `db:"conversation_id"`

	Role     string          `db:"role"`
	Content  string          `db:"content"`
	Excerpts json.RawMessage `db:"excerpts"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

// ToDomain converts the row model into a domain message.
func (p *PgMessage) ToDomain() (*domain.Message, error) {
	var excerpts []domain.Excerpt
	if len(p.Excerpts) > 0 {
		if err := json.Unmarshal(p.Excerpts, &excerpts); err != nil {
			return nil, fmt.Errorf("could not unmarshal message excerpts: %w", err)
		}
	}

	return &domain.Message{
		ID:             domain.MessageID(p.ID),
		ConversationID: domain.ConversationID(p.ConversationID),
		Role:           domain.MessageRole(p.Role),
		Content:        p.Content,
		Excerpts:       excerpts,
		CreatedAt:      p.CreatedAt,
	}, nil
}

// FromDomain fills the row model from a domain message.
func (p *PgMessage) FromDomain(msg domain.Message) error {
	var excerpts json.RawMessage
	if len(msg.Excerpts) > 0 {
		b, err := json.Marshal(msg.Excerpts)
		if err != nil {
			return fmt.Errorf("could not marshal message excerpts: %w", err)
		}
		excerpts = b
	}

	*p = PgMessage{
		ID:             uuid.UUID(msg.ID),
		ConversationID: uuid.UUID(msg.ConversationID),
		Role:           string(msg.Role),
		Content:        msg.Content,
		Excerpts:       excerpts,
		CreatedAt:      msg.CreatedAt,
	}

	return nil
}

func pgMessagesToDomain(msgs []PgMessage) ([]domain.Message, error) {
	out := make([]domain.Message, 0, len(msgs))
	for i := range msgs {
		d, err := msgs[i].ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
