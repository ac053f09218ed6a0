// Package arweave implements the remote ledger client over the arweave HTTP gateway API.
package arweave

import (
	"context"
	"time"

	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records outcomes of ledger operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveRetry(operation string)
	}

	// ErrorRecorder appends exhausted fetch failures to the error log.
	ErrorRecorder interface {
		Record(ctx context.Context, rec model.ErrorRecord) error
	}
)
