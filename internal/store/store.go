// Package store implements persistence on top of bun over the pgx stdlib
// driver. A Repository is bound to either the root *bun.DB or a transaction;
// WithinTx hands callers a transaction-bound copy so every failure path rolls
// back without duplicated cleanup.
package store

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/extra/bundebug"

	// Registers the "pgx" database/sql driver.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/givehub/givehub/internal/auth"
)

// Options tune the database handle created by Open.
type Options struct {
	// Debug logs every query through bundebug.
	Debug bool
}

// Open connects to Postgres and wraps the handle in bun.
func Open(dsn string, opts Options) (*bun.DB, error) {
	sqldb, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db := bun.NewDB(sqldb, pgdialect.New())
	if opts.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}
	return db, nil
}

// Repository is the storage port consumed by the auth service, the
// authorization middleware, and the item routes.
type Repository struct {
	db bun.IDB
}

// NewRepository creates a Repository bound to the root database handle.
func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

var _ auth.Store = (*Repository)(nil)

// WithinTx runs fn against a transaction-bound Repository. A nested call
// reuses the enclosing transaction.
func (r *Repository) WithinTx(ctx context.Context, fn func(tx auth.Store) error) error {
	db, ok := r.db.(*bun.DB)
	if !ok {
		return fn(r)
	}
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(&Repository{db: tx})
	})
}
