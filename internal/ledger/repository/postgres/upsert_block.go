package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/model"
	"github.com/goodnatureofminers/ledgermirror-backend/pkg/safe"
)

const (
	insertBlockQuery = `
INSERT INTO blocks (hash, height, timestamp, raw_data)
VALUES ($1, $2, $3, $4)
ON CONFLICT (hash) DO NOTHING
RETURNING hash, height, timestamp, raw_data, created_at`

	selectBlockQuery = `
SELECT hash, height, timestamp, raw_data, created_at
FROM blocks
WHERE hash = $1`
)

// UpsertBlock stores a block keyed by hash. An existing row is returned untouched;
// created reports whether this call inserted it.
func (r *Repository) UpsertBlock(ctx context.Context, block model.Block) (stored model.Block, created bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("upsert_block", err, start)
	}()

	if block.Hash == "" {
		return model.Block{}, false, errors.New("block hash is required")
	}
	height, err := safe.Int64(block.Height)
	if err != nil {
		return model.Block{}, false, fmt.Errorf("convert block height: %w", err)
	}

	stored, err = scanBlock(r.db.QueryRowContext(ctx, insertBlockQuery,
		block.Hash,
		height,
		block.Timestamp,
		rawJSON(block.RawData),
	))
	switch {
	case err == nil:
		return stored, true, nil
	case !errors.Is(err, sql.ErrNoRows):
		return model.Block{}, false, fmt.Errorf("insert block %s: %w", block.Hash, err)
	}

	stored, err = scanBlock(r.db.QueryRowContext(ctx, selectBlockQuery, block.Hash))
	if err != nil {
		return model.Block{}, false, fmt.Errorf("select block %s: %w", block.Hash, err)
	}
	return stored, false, nil
}

func scanBlock(row *sql.Row) (model.Block, error) {
	var (
		block  model.Block
		height int64
		raw    []byte
	)
	if err := row.Scan(&block.Hash, &height, &block.Timestamp, &raw, &block.CreatedAt); err != nil {
		return model.Block{}, err
	}
	h, err := safe.Uint64(height)
	if err != nil {
		return model.Block{}, fmt.Errorf("convert block height: %w", err)
	}
	block.Height = h
	block.RawData = raw
	return block, nil
}

// rawJSON passes a payload to a jsonb column; an empty payload becomes an empty object.
func rawJSON(raw []byte) string {
	if len(raw) == 0 {
		return "{}"
	}
	return string(raw)
}
