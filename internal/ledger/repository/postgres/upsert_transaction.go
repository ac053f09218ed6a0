package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/model"
)

const (
	// The conflict branch only fires for a pending row gaining its block, so a
	// returned row always means inserted or promoted.
	upsertTransactionQuery = `
INSERT INTO transactions (id, block_hash, raw_data, owner_address, tags, app_name, created_at)
VALUES ($1, NULLIF($2, ''), $3, $4, $5, NULLIF($6, ''),
        COALESCE((SELECT to_timestamp(b.timestamp) FROM blocks b WHERE b.hash = NULLIF($2, '')), now()))
ON CONFLICT (id) DO UPDATE
SET block_hash = EXCLUDED.block_hash
WHERE transactions.block_hash IS NULL AND EXCLUDED.block_hash IS NOT NULL
RETURNING id, COALESCE(block_hash, ''), raw_data, owner_address, tags, COALESCE(app_name, ''), seq_id, created_at, (xmax = 0) AS inserted`

	selectTransactionQuery = `
SELECT id, COALESCE(block_hash, ''), raw_data, owner_address, tags, COALESCE(app_name, ''), seq_id, created_at, false AS inserted
FROM transactions
WHERE id = $1`
)

// UpsertOutcome describes what an upsert did to the stored row.
type UpsertOutcome int

const (
	// Unchanged means the row already existed and nothing was written.
	Unchanged UpsertOutcome = iota
	// Inserted means a new row was created.
	Inserted
	// Promoted means a pending row gained its block hash.
	Promoted
)

// Changed reports whether the upsert wrote anything.
func (o UpsertOutcome) Changed() bool {
	return o != Unchanged
}

func (o UpsertOutcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Promoted:
		return "promoted"
	default:
		return "unchanged"
	}
}

// UpsertTransaction stores a transaction keyed by id. A confirmed row never changes;
// a pending row only ever gains a block hash.
func (r *Repository) UpsertTransaction(ctx context.Context, tx model.Transaction) (stored model.Transaction, outcome UpsertOutcome, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("upsert_transaction", err, start)
	}()

	if tx.ID == "" {
		return model.Transaction{}, Unchanged, errors.New("transaction id is required")
	}
	tags := tx.Tags
	if tags == nil {
		tags = []model.Tag{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return model.Transaction{}, Unchanged, fmt.Errorf("marshal tags: %w", err)
	}

	stored, inserted, err := scanTransaction(r.db.QueryRowContext(ctx, upsertTransactionQuery,
		tx.ID,
		tx.BlockHash,
		rawJSON(tx.RawData),
		tx.OwnerAddress,
		string(tagsJSON),
		tx.AppName,
	))
	switch {
	case err == nil:
		if inserted {
			return stored, Inserted, nil
		}
		return stored, Promoted, nil
	case !errors.Is(err, sql.ErrNoRows):
		return model.Transaction{}, Unchanged, fmt.Errorf("upsert transaction %s: %w", tx.ID, err)
	}

	stored, _, err = scanTransaction(r.db.QueryRowContext(ctx, selectTransactionQuery, tx.ID))
	if err != nil {
		return model.Transaction{}, Unchanged, fmt.Errorf("select transaction %s: %w", tx.ID, err)
	}
	return stored, Unchanged, nil
}

func scanTransaction(row *sql.Row) (model.Transaction, bool, error) {
	var (
		tx       model.Transaction
		raw      []byte
		tags     []byte
		inserted bool
	)
	if err := row.Scan(
		&tx.ID,
		&tx.BlockHash,
		&raw,
		&tx.OwnerAddress,
		&tags,
		&tx.AppName,
		&tx.SeqID,
		&tx.CreatedAt,
		&inserted,
	); err != nil {
		return model.Transaction{}, false, err
	}
	tx.RawData = raw
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &tx.Tags); err != nil {
			return model.Transaction{}, false, fmt.Errorf("decode tags: %w", err)
		}
	}
	return tx, inserted, nil
}
