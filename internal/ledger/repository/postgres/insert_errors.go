package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/model"
)

const insertErrorsQuery = `
INSERT INTO errors (url, error, created_at)
VALUES `

// InsertErrors appends fetch failures to the error log in one statement.
func (r *Repository) InsertErrors(ctx context.Context, records []model.ErrorRecord) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_errors", err, start)
	}()

	if len(records) == 0 {
		return nil
	}

	query, args := buildInsertErrors(records)
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert errors: %w", err)
	}
	return nil
}

func buildInsertErrors(records []model.ErrorRecord) (string, []any) {
	var sb strings.Builder
	sb.WriteString(insertErrorsQuery)

	args := make([]any, 0, len(records)*3)
	for i, rec := range records {
		if i > 0 {
			sb.WriteString(", ")
		}
		n := i * 3
		fmt.Fprintf(&sb, "($%d, $%d, $%d)", n+1, n+2, n+3)

		createdAt := rec.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		args = append(args, rec.URL, rec.Error, createdAt.UTC())
	}
	return sb.String(), args
}
