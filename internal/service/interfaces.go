// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/voltquote/voltquote/internal/model"
)

// DocumentFilter defines filtering options for document queries.
type DocumentFilter struct {
	Kind   model.DocumentKind
	Limit  int
	Offset int
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Catalog operations
	GetCatalogItems(ctx context.Context) ([]model.Item, error)
	GetCatalogItemByName(ctx context.Context, name string) (*model.Item, error)
	AddCatalogItem(ctx context.Context, item *model.Item) error

	// Document operations
	SaveDocument(ctx context.Context, doc *model.Document) error
	GetDocuments(ctx context.Context, filter DocumentFilter) ([]model.Document, error)
	GetDocumentByID(ctx context.Context, id int64) (*model.Document, error)

	// Key-value operations back the sequence store
	KeyValueStore

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// KeyValueStore is the minimal persistence contract the sequence store
// needs: one key read at load, one write per set, one delete per clear.
type KeyValueStore interface {
	GetValue(ctx context.Context, key string) (string, bool, error)
	SetValue(ctx context.Context, key, value string) error
	DeleteValue(ctx context.Context, key string) error
}
