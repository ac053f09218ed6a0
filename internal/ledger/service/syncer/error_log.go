package syncer

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/model"
	"github.com/goodnatureofminers/ledgermirror-backend/pkg/batcher"
)

var errRecordDropped = errors.New("error record dropped")

// ErrorLog buffers fetch failures and appends them to the store in batches, so
// recording one never waits on the database.
type ErrorLog struct {
	batcher *batcher.Batcher[model.ErrorRecord]
	logger  *zap.Logger
	now     func() time.Time
}

func NewErrorLog(sink ErrorSink, logger *zap.Logger) *ErrorLog {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("errorLog")
	return &ErrorLog{
		batcher: batcher.New[model.ErrorRecord](
			logger,
			sink.InsertErrors,
			errorLogFlushSize,
			errorLogFlushInterval,
			0,
		),
		logger: logger,
		now:    time.Now,
	}
}

// Start runs the background flush. Queued records are flushed on Stop even after ctx ends.
func (l *ErrorLog) Start(ctx context.Context) {
	l.batcher.Start(context.WithoutCancel(ctx))
}

func (l *ErrorLog) Stop() {
	l.batcher.Stop()
}

// Record queues rec without blocking. The record is dropped when the buffer is full or the log stopped.
func (l *ErrorLog) Record(_ context.Context, rec model.ErrorRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = l.now()
	}
	if !l.batcher.TryAdd(rec) {
		l.logger.Warn("error record dropped", zap.String("url", rec.URL), zap.String("error", rec.Error))
		return errRecordDropped
	}
	return nil
}
