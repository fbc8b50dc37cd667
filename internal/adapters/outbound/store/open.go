// Package store persists classification results.
package store

import (
	"context"

	"github.com/abdidvp/polaxis/internal/domain"
)

// Open returns the store selected by cfg, or nil when no driver is set.
func Open(ctx context.Context, cfg domain.StoreConfig) (domain.ResultStore, error) {
	switch cfg.Driver {
	case domain.StoreNone:
		return nil, nil
	case domain.StoreMongo:
		return DialMongo(ctx, cfg.DSN, cfg.Database)
	default:
		return OpenSQL(ctx, cfg.Driver, cfg.DSN)
	}
}
