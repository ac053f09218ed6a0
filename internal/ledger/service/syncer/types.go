// Package syncer runs the incremental ledger sync loop.
package syncer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/model"
	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/webhook"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	LedgerSource interface {
		ChainHeight(ctx context.Context) (uint64, error)
		TransactionIDsByAppNames(ctx context.Context, names []string) ([]string, error)
		TransactionWithBlockHash(ctx context.Context, id string) (model.Transaction, error)
		Block(ctx context.Context, hash string) (model.Block, error)
	}
	Repository interface {
		Watermark(ctx context.Context) (model.Watermark, error)
		PersistBatch(ctx context.Context, transactions []model.Transaction, blocks []model.Block) (model.SaveResult, error)
	}
	Notifier interface {
		Notify(ctx context.Context) <-chan webhook.Result
	}
	ErrorSink interface {
		InsertErrors(ctx context.Context, records []model.ErrorRecord) error
	}
	DeltaResolver interface {
		Resolve(ctx context.Context, watermark model.Watermark) (Delta, error)
	}
	Fetcher interface {
		Fetch(ctx context.Context, ids []string) ([]model.Transaction, []model.Block)
	}
	Metrics interface {
		ObserveIteration(err error, started time.Time)
		ObserveDelta(chainHeight uint64, newIDs int)
		ObserveFetchFailure(entity string)
		ObservePersisted(result model.SaveResult)
		SetWatermark(height uint64)
		SetSyncing(syncing bool)
	}
)
