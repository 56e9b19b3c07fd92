package cmd

import (
	"context"
	"fmt"

	"msforge/core/config"
	"msforge/core/logger"
	"msforge/core/msdata"
	"msforge/core/snapshot"
	"msforge/core/storage"

	"go.uber.org/zap"
)

// env bundles what every document command needs.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *snapshot.Store
}

// newEnv loads configuration and builds a snapshot store. The object storage
// client is only created when one of keys refers to the bucket.
func newEnv(keys ...string) (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	var client storage.Client
	for _, key := range keys {
		if snapshot.IsStorageKey(key) {
			if client, err = storage.NewClient(cfg.Storage); err != nil {
				return nil, fmt.Errorf("failed to connect to storage: %w", err)
			}
			break
		}
	}

	store := snapshot.NewStore(client, cfg.Storage.Bucket,
		snapshot.WithCacheTTL(0),
		snapshot.WithLogger(l),
	)
	return &env{cfg: cfg, logger: l, store: store}, nil
}

// loadAll loads keys in order.
func (e *env) loadAll(ctx context.Context, keys []string) ([]*msdata.Document, error) {
	docs := make([]*msdata.Document, 0, len(keys))
	for _, key := range keys {
		doc, err := e.store.Load(ctx, key)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
