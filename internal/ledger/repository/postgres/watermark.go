package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/model"
	"github.com/goodnatureofminers/ledgermirror-backend/pkg/safe"
)

const (
	maxBlockHeightQuery = `
SELECT max(height)
FROM blocks`

	knownTransactionIDsQuery = `
SELECT id
FROM transactions
WHERE block_hash IS NOT NULL`
)

// MaxBlockHeight returns the highest stored block height. ok is false while the store holds no blocks.
func (r *Repository) MaxBlockHeight(ctx context.Context) (height uint64, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_block_height", err, start)
	}()

	var value sql.NullInt64
	if err = r.db.QueryRowContext(ctx, maxBlockHeightQuery).Scan(&value); err != nil {
		return 0, false, fmt.Errorf("query max block height: %w", err)
	}
	if !value.Valid {
		return 0, false, nil
	}

	height, err = safe.Uint64(value.Int64)
	if err != nil {
		return 0, false, fmt.Errorf("convert max block height: %w", err)
	}
	return height, true, nil
}

// KnownTransactionIDs returns the IDs of transactions already linked to a block.
// Pending transactions are excluded so they are fetched again until confirmed.
func (r *Repository) KnownTransactionIDs(ctx context.Context) (ids map[string]struct{}, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("known_transaction_ids", err, start)
	}()

	rows, err := r.db.QueryContext(ctx, knownTransactionIDsQuery)
	if err != nil {
		return nil, fmt.Errorf("query known transaction ids: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	ids = make(map[string]struct{})
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan known transaction id: %w", err)
		}
		ids[id] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate known transaction ids: %w", err)
	}
	return ids, nil
}

// Watermark reads the current store watermark. It is never cached.
func (r *Repository) Watermark(ctx context.Context) (model.Watermark, error) {
	height, ok, err := r.MaxBlockHeight(ctx)
	if err != nil {
		return model.Watermark{}, err
	}
	ids, err := r.KnownTransactionIDs(ctx)
	if err != nil {
		return model.Watermark{}, err
	}
	return model.Watermark{Height: height, HasHeight: ok, KnownIDs: ids}, nil
}
