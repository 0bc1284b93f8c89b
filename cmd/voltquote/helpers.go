package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/voltquote/voltquote/internal/config"
	"github.com/voltquote/voltquote/internal/knowledge"
	"github.com/voltquote/voltquote/internal/model"
	"github.com/voltquote/voltquote/internal/sequence"
	"github.com/voltquote/voltquote/internal/service"
	"github.com/voltquote/voltquote/internal/storage"
	"github.com/voltquote/voltquote/internal/suggest"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/voltquote/voltquote.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initEngine wires the full suggestion engine over the given storage.
func initEngine(ctx context.Context, store service.Storage) (*suggest.Aggregator, *sequence.Store, error) {
	scoring := model.DefaultScoring()

	patternPath := config.ExpandPath(viper.GetString("patterns.path"))
	patterns, err := knowledge.LoadPatterns(patternPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load patterns: %w", err)
	}

	kb, err := knowledge.NewBase(patterns, scoring)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build knowledge base: %w", err)
	}

	sequences, err := sequence.NewStore(ctx, store, scoring)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build sequence store: %w", err)
	}

	return suggest.New(kb, sequences, scoring), sequences, nil
}
