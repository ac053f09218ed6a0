package postgres

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/model"
)

var errPartialBatch = errors.New("some rows failed to persist")

// PersistBatch upserts blocks first and transactions second, one row at a time.
// A failing row is logged as a PersistenceError and left out of the result; the
// rest of the batch still goes through.
func (r *Repository) PersistBatch(ctx context.Context, transactions []model.Transaction, blocks []model.Block) (model.SaveResult, error) {
	if err := ctx.Err(); err != nil {
		return model.SaveResult{}, err
	}

	start := time.Now()
	var failed int
	defer func() {
		var err error
		if failed > 0 {
			err = errPartialBatch
		}
		r.metrics.Observe("persist_batch", err, start)
	}()

	result := model.SaveResult{
		Blocks:       make([]model.Block, 0, len(blocks)),
		Transactions: make([]model.Transaction, 0, len(transactions)),
	}

	for _, block := range blocks {
		stored, _, err := r.UpsertBlock(ctx, block)
		if err != nil {
			failed++
			r.logFailure(&model.PersistenceError{Entity: "block", ID: block.Hash, Err: err})
			continue
		}
		result.Blocks = append(result.Blocks, stored)
	}

	for _, tx := range transactions {
		stored, outcome, err := r.UpsertTransaction(ctx, tx)
		if err != nil {
			failed++
			r.logFailure(&model.PersistenceError{Entity: "transaction", ID: tx.ID, Err: err})
			continue
		}
		if outcome.Changed() {
			result.Changed++
		}
		result.Transactions = append(result.Transactions, stored)
	}

	r.logger.Debug("batch persisted",
		zap.Int("blocks", len(result.Blocks)),
		zap.Int("transactions", len(result.Transactions)),
		zap.Int("changed", result.Changed),
		zap.Int("failed", failed),
	)
	return result, nil
}

func (r *Repository) logFailure(err *model.PersistenceError) {
	r.logger.Warn("failed to persist row",
		zap.String("entity", err.Entity),
		zap.String("id", err.ID),
		zap.Error(err),
	)
}
