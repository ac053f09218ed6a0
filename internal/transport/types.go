// Package transport exposes the read-only REST API.
package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Reader interface {
		Ping(ctx context.Context) error
		TransactionsByAppName(ctx context.Context, appName string) ([]model.TransactionView, error)
		TransactionsByTag(ctx context.Context, appName string, tag model.Tag) ([]model.TransactionView, error)
		TransactionsByOwner(ctx context.Context, owner, appName string) ([]model.TransactionView, error)
		TransactionView(ctx context.Context, id string) (model.TransactionView, error)
		AppNames(ctx context.Context) ([]string, error)
		Feed(ctx context.Context, q model.FeedQuery) (model.FeedPage, error)
	}
	Metrics interface {
		ObserveRequest(route, method string, code int, started time.Time)
	}
)
