package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/voltquote/voltquote/internal/model"
)

// GetCatalogItems returns all catalog items in insertion order.
func (s *SQLiteStorage) GetCatalogItems(ctx context.Context) ([]model.Item, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, COALESCE(category, ''), COALESCE(unit, ''), rate, quantity, created_at
		FROM catalog_items
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Unit,
			&item.Rate, &item.Quantity, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan catalog item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog items: %w", err)
	}

	slog.Debug("retrieved catalog items", "count", len(items))
	return items, nil
}

// GetCatalogItemByName returns a catalog item by exact name, or nil when absent.
func (s *SQLiteStorage) GetCatalogItemByName(ctx context.Context, name string) (*model.Item, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, COALESCE(category, ''), COALESCE(unit, ''), rate, quantity, created_at
		FROM catalog_items
		WHERE name = ? COLLATE NOCASE`

	var item model.Item
	err := s.db.QueryRowContext(ctx, query, name).Scan(
		&item.ID, &item.Name, &item.Category, &item.Unit,
		&item.Rate, &item.Quantity, &item.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog item: %w", err)
	}

	return &item, nil
}

// AddCatalogItem inserts a new catalog item. Duplicate names (case-insensitive)
// are left untouched so re-adding a selected free-text entry is harmless.
func (s *SQLiteStorage) AddCatalogItem(ctx context.Context, item *model.Item) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateItem(item); err != nil {
		return err
	}

	existing, err := s.GetCatalogItemByName(ctx, item.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		item.ID = existing.ID
		slog.Debug("catalog item already exists", "name", item.Name)
		return nil
	}

	now := time.Now()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO catalog_items (name, category, unit, rate, quantity, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		item.Name, item.Category, item.Unit, item.Rate, item.Quantity, now)
	if err != nil {
		return fmt.Errorf("failed to insert catalog item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get catalog item id: %w", err)
	}
	item.ID = id
	item.CreatedAt = now

	slog.Info("added catalog item", "name", item.Name, "id", id)
	return nil
}
