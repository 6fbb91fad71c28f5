// Package transaction carries an open gorm transaction through a
// context.Context so repositories join the caller's transaction when one is
// in flight and fall back to the shared pool otherwise.
package transaction

import (
	"context"

	"gorm.io/gorm"
)

type txContextKey struct{}

// WithTx returns ctx with tx attached.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// Database hands repositories either the ambient transaction or the base
// connection.
type Database struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db}
}

// GetTx returns the transaction stored in ctx, or the base connection.
func (t *Database) GetTx(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok {
		return tx
	}
	return t.db
}

// RunInTransaction executes fn within one transaction. The transaction is
// attached to the context passed to fn; an error return rolls everything
// back, nil commits.
func (t *Database) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}
