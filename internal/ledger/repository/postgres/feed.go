package postgres

import (
	"context"
	"time"

	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/model"
)

const feedQuery = transactionViewSelect + `
WHERE t.app_name = ANY($1)
  AND ($2::bigint = 0 OR t.seq_id <= $2::bigint)
  AND ($3 = '' OR t.owner_address = $3)
ORDER BY t.seq_id DESC
LIMIT $4`

// Feed returns one page of transactions ordered by seq_id descending. The row
// after the page supplies NextCursor.
func (r *Repository) Feed(ctx context.Context, q model.FeedQuery) (page model.FeedPage, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("feed", err, start)
	}()

	limit := q.Limit
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	appNames := q.AppNames
	if appNames == nil {
		appNames = []string{}
	}

	views, err := r.queryViews(ctx, feedQuery, appNames, q.Cursor, q.Owner, limit+1)
	if err != nil {
		return model.FeedPage{}, err
	}

	if len(views) > limit {
		next := views[limit].SeqID
		page.NextCursor = &next
		views = views[:limit]
	}
	page.Transactions = views
	return page, nil
}
