package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/voltquote/voltquote/internal/model"
	"github.com/voltquote/voltquote/internal/service"
)

// SaveDocument persists a document and its ordered line items atomically.
func (s *SQLiteStorage) SaveDocument(ctx context.Context, doc *model.Document) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDocument(doc); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	result, err := tx.ExecContext(ctx, `
		INSERT INTO documents (title, customer, kind, created_at)
		VALUES (?, ?, ?, ?)`,
		doc.Title, doc.Customer, string(doc.Kind), now)
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get document id: %w", err)
	}

	for i, li := range doc.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO document_items (document_id, position, particular, unit, quantity, rate)
			VALUES (?, ?, ?, ?, ?, ?)`,
			id, i, li.Particular, li.Unit, li.Quantity, li.Rate); err != nil {
			return fmt.Errorf("failed to insert line item %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit document: %w", err)
	}

	doc.ID = id
	doc.CreatedAt = now
	slog.Info("saved document", "id", id, "title", doc.Title, "items", len(doc.Items))
	return nil
}

// GetDocuments returns saved documents, newest first, with line items attached.
func (s *SQLiteStorage) GetDocuments(ctx context.Context, filter service.DocumentFilter) ([]model.Document, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, title, COALESCE(customer, ''), kind, created_at
		FROM documents`
	args := []any{}
	if filter.Kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(filter.Kind))
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []model.Document
	for rows.Next() {
		var doc model.Document
		var kind string
		if err := rows.Scan(&doc.ID, &doc.Title, &doc.Customer, &kind, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc.Kind = model.DocumentKind(kind)
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}

	for i := range docs {
		items, err := s.getDocumentItems(ctx, docs[i].ID)
		if err != nil {
			return nil, err
		}
		docs[i].Items = items
	}

	slog.Debug("retrieved documents", "count", len(docs))
	return docs, nil
}

// GetDocumentByID returns one document with its line items, or nil when absent.
func (s *SQLiteStorage) GetDocumentByID(ctx context.Context, id int64) (*model.Document, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var doc model.Document
	var kind string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, COALESCE(customer, ''), kind, created_at
		FROM documents WHERE id = ?`, id).Scan(
		&doc.ID, &doc.Title, &doc.Customer, &kind, &doc.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query document: %w", err)
	}
	doc.Kind = model.DocumentKind(kind)

	items, err := s.getDocumentItems(ctx, doc.ID)
	if err != nil {
		return nil, err
	}
	doc.Items = items

	return &doc, nil
}

func (s *SQLiteStorage) getDocumentItems(ctx context.Context, documentID int64) ([]model.LineItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT position, particular, COALESCE(unit, ''), quantity, rate
		FROM document_items
		WHERE document_id = ?
		ORDER BY position`, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items: %w", err)
	}
	defer rows.Close()

	var items []model.LineItem
	for rows.Next() {
		var li model.LineItem
		if err := rows.Scan(&li.Position, &li.Particular, &li.Unit, &li.Quantity, &li.Rate); err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		items = append(items, li)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line items: %w", err)
	}

	return items, nil
}
