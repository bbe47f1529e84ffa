package gormrepo

import (
	"context"
	"fmt"

	"duskpact/internal/adapter/repo/gorm/model"
	"duskpact/internal/app/ports"
	"duskpact/internal/domain/bargain"

	"gorm.io/gorm"
)

// LedgerRepo stores one row per tracked attribute. Save replaces the whole
// set so a zeroed ledger really is empty on disk.
type LedgerRepo struct {
	db *gorm.DB
	tx TxManager
}

func NewLedgerRepo(db *gorm.DB) LedgerRepo {
	return LedgerRepo{db: db, tx: NewTxManager(db)}
}

func (r LedgerRepo) Load(ctx context.Context) (map[bargain.Attribute]float64, error) {
	var rows []model.LedgerEntry
	if err := dbFor(ctx, r.db).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}
	out := make(map[bargain.Attribute]float64, len(rows))
	for _, row := range rows {
		out[bargain.Attribute(row.Attribute)] = row.Value
	}
	return out, nil
}

func (r LedgerRepo) Save(ctx context.Context, values map[bargain.Attribute]float64) error {
	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		db := dbFor(ctx, r.db)
		if err := db.Where("1 = 1").Delete(&model.LedgerEntry{}).Error; err != nil {
			return fmt.Errorf("clear ledger: %w", err)
		}
		if len(values) == 0 {
			return nil
		}
		rows := make([]model.LedgerEntry, 0, len(values))
		for attr, v := range values {
			rows = append(rows, model.LedgerEntry{Attribute: string(attr), Value: v})
		}
		if err := db.Create(&rows).Error; err != nil {
			return fmt.Errorf("insert ledger: %w", err)
		}
		return nil
	})
}
