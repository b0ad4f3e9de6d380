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
	conversationsTable = "conversations"
	messagesTable      = "messages"
)

// StoreConversation inserts a conversation and returns it as stored.
func (p *PgSQL) StoreConversation(ctx context.Context,
	conv domain.Conversation) (*domain.Conversation, error) {
	row := PgConversation{
		UserID: uuid.UUID(conv.UserID),
		Title:  conv.Title,
	}

	var result PgConversation
	found, err := p.Builder.Insert(conversationsTable).
		Rows(row).
		Returning(&PgConversation{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store conversation into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert of conversation returned no row")
	}

	return result.ToDomain(), nil
}

// ConversationByID returns a conversation owned by the user, excluding
// soft-deleted rows.
func (p *PgSQL) ConversationByID(ctx context.Context,
	userID domain.UserID,
	id domain.ConversationID) (*domain.Conversation, error) {
	var row PgConversation
	found, err := p.Builder.From(conversationsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch conversation by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteConversation performs a soft delete and returns the deleted record.
func (p *PgSQL) DeleteConversation(ctx context.Context,
	userID domain.UserID,
	id domain.ConversationID) (*domain.Conversation, error) {
	var row PgConversation
	found, err := p.Builder.Update(conversationsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgConversation{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete conversation in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserConversations returns a page of conversations for a user, ordered by
// created_at DESC, id DESC, with cursor pagination.
func (p *PgSQL) UserConversations(ctx context.Context,
	userID domain.UserID,
	cursor time.Time,
	limit uint) (storage.UserConversations, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	fetch := limit + 1
	ds := p.Builder.From(conversationsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgConversation
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserConversations{}, fmt.Errorf("could not fetch user conversations from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	return storage.UserConversations{
		Conversations: pgConversationsToDomain(rows),
		NextCursor:    nextCursor,
	}, nil
}

// StoreMessages inserts messages and bumps the owning conversation's
// updated_at timestamp.
func (p *PgSQL) StoreMessages(ctx context.Context, msgs ...domain.Message) ([]domain.Message, error) {
	if len(msgs) == 0 {
		return nil, nil
	}

	rows := make([]PgMessage, len(msgs))
	for i := range msgs {
		if err := rows[i].FromDomain(msgs[i]); err != nil {
			return nil, err
		}
	}

	var result []PgMessage
	if err := p.Builder.Insert(messagesTable).
		Rows(rows).
		Returning(&PgMessage{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store messages into pg: %w", err)
	}

	if _, err := p.Builder.Update(conversationsTable).
		Set(goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}).
		Where(goqu.I("id").Eq(rows[0].ConversationID)).
		Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not bump conversation updated_at: %w", err)
	}

	return pgMessagesToDomain(result)
}

// ConversationMessages returns up to limit most recent messages of a
// conversation in ascending creation order. A limit of zero returns all.
func (p *PgSQL) ConversationMessages(ctx context.Context,
	id domain.ConversationID,
	limit uint) ([]domain.Message, error) {
	ds := p.Builder.From(messagesTable).
		Where(goqu.I("conversation_id").Eq(uuid.UUID(id))).
		Order(goqu.I("seq").Desc())
	if limit > 0 {
		ds = ds.Limit(limit)
	}

	var rows []PgMessage
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch conversation messages from pg: %w", err)
	}

	// rows are newest-first for the limit window; flip to chronological order.
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	return pgMessagesToDomain(rows)
}
