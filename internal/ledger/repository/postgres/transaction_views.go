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
	transactionViewSelect = `
SELECT t.id,
       COALESCE(t.block_hash, ''),
       t.owner_address,
       COALESCE(t.app_name, ''),
       t.tags,
       COALESCE(t.raw_data->>'data', ''),
       t.raw_data->'reward',
       COALESCE(b.timestamp, extract(epoch FROM t.created_at)::bigint),
       t.seq_id
FROM transactions t
LEFT JOIN blocks b ON b.hash = t.block_hash`

	transactionsByAppNameQuery = transactionViewSelect + `
WHERE t.app_name = $1
ORDER BY b.height DESC NULLS FIRST, t.seq_id DESC`

	transactionsByTagQuery = transactionViewSelect + `
WHERE t.app_name = $1 AND t.tags @> $2::jsonb
ORDER BY b.height DESC NULLS FIRST, t.seq_id DESC`

	transactionsByOwnerQuery = transactionViewSelect + `
WHERE t.owner_address = $1 AND ($2 = '' OR t.app_name = $2)
ORDER BY b.height DESC NULLS FIRST, t.seq_id DESC`

	transactionViewByIDQuery = transactionViewSelect + `
WHERE t.id = $1`

	appNamesQuery = `
SELECT DISTINCT app_name
FROM transactions
WHERE app_name IS NOT NULL
ORDER BY app_name`
)

// TransactionsByAppName lists an application's transactions, pending first, then newest block first.
func (r *Repository) TransactionsByAppName(ctx context.Context, appName string) (views []model.TransactionView, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transactions_by_app_name", err, start)
	}()

	return r.queryViews(ctx, transactionsByAppNameQuery, appName)
}

// TransactionsByTag lists an application's transactions carrying the given tag.
func (r *Repository) TransactionsByTag(ctx context.Context, appName string, tag model.Tag) (views []model.TransactionView, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transactions_by_tag", err, start)
	}()

	filter, err := json.Marshal([]model.Tag{tag})
	if err != nil {
		return nil, fmt.Errorf("marshal tag filter: %w", err)
	}
	return r.queryViews(ctx, transactionsByTagQuery, appName, string(filter))
}

// TransactionsByOwner lists transactions sent by an owner address, optionally for one application.
func (r *Repository) TransactionsByOwner(ctx context.Context, owner, appName string) (views []model.TransactionView, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transactions_by_owner", err, start)
	}()

	return r.queryViews(ctx, transactionsByOwnerQuery, owner, appName)
}

// TransactionView returns one transaction or model.ErrNotFound.
func (r *Repository) TransactionView(ctx context.Context, id string) (view model.TransactionView, err error) {
	start := time.Now()
	defer func() {
		if errors.Is(err, model.ErrNotFound) {
			r.metrics.Observe("transaction_view", nil, start)
			return
		}
		r.metrics.Observe("transaction_view", err, start)
	}()

	views, err := r.queryViews(ctx, transactionViewByIDQuery, id)
	if err != nil {
		return model.TransactionView{}, err
	}
	if len(views) == 0 {
		return model.TransactionView{}, model.ErrNotFound
	}
	return views[0], nil
}

// AppNames lists the distinct application names seen so far.
func (r *Repository) AppNames(ctx context.Context) (names []string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("app_names", err, start)
	}()

	rows, err := r.db.QueryContext(ctx, appNamesQuery)
	if err != nil {
		return nil, fmt.Errorf("query app names: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	names = make([]string, 0)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan app name: %w", err)
		}
		names = append(names, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate app names: %w", err)
	}
	return names, nil
}

func (r *Repository) queryViews(ctx context.Context, query string, args ...any) (views []model.TransactionView, err error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	views = make([]model.TransactionView, 0)
	for rows.Next() {
		view, scanErr := scanView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return views, nil
}

func scanView(rows *sql.Rows) (model.TransactionView, error) {
	var (
		view model.TransactionView
		tags []byte
		data string
		fee  []byte
	)
	if err := rows.Scan(
		&view.ID,
		&view.BlockHash,
		&view.OwnerAddress,
		&view.AppName,
		&tags,
		&data,
		&fee,
		&view.Timestamp,
		&view.SeqID,
	); err != nil {
		return model.TransactionView{}, fmt.Errorf("scan transaction: %w", err)
	}

	view.Tags = []model.Tag{}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &view.Tags); err != nil {
			return model.TransactionView{}, fmt.Errorf("decode tags of %s: %w", view.ID, err)
		}
	}
	view.Content = decodeContent(data)
	if len(fee) > 0 {
		view.Fee = fee
	}
	return view, nil
}

// decodeContent turns the base64url data field into text, keeping it verbatim when it does not decode.
func decodeContent(data string) string {
	if data == "" {
		return ""
	}
	decoded, err := model.DecodeBase64URL(data)
	if err != nil {
		return data
	}
	return string(decoded)
}
