package gormrepo

import (
	"context"

	"gorm.io/gorm"
)

// TxManager runs a function inside one database transaction. The open
// transaction travels in the context so both repos see the same *gorm.DB
// when a save spans observation and session-state rows.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return TxManager{db: db}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, bargainTxKey{}, tx))
	})
}

type bargainTxKey struct{}

// dbFor prefers the context's open transaction over the base handle.
func dbFor(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(bargainTxKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return base.WithContext(ctx)
}
