package arweave

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	defaultRetryAttempts = 5
	defaultRetryBase     = 2 * time.Second
)

// retryPolicy retries a call with exponentially growing delays: after the k-th
// failed attempt it sleeps base*2^(k-1).
type retryPolicy struct {
	attempts int
	base     time.Duration
	sleep    func(context.Context, time.Duration) error
	onRetry  func(attempt int, delay time.Duration, err error)
}

func (p retryPolicy) delay(attempt int) time.Duration {
	return p.base << (attempt - 1)
}

// Do runs fn until it succeeds or attempts are exhausted and returns the last
// error together with the number of attempts made. Context cancellation stops
// retrying immediately and returns the context error.
func (p retryPolicy) Do(ctx context.Context, fn func(context.Context) error) (int, error) {
	var lastErr error
	attempt := 0
	for attempt < p.attempts {
		if err := ctx.Err(); err != nil {
			return attempt, err
		}
		attempt++
		if lastErr = fn(ctx); lastErr == nil {
			return attempt, nil
		}
		if attempt == p.attempts {
			break
		}

		d := p.delay(attempt)
		if p.onRetry != nil {
			p.onRetry(attempt, d, lastErr)
		}
		if err := p.sleep(ctx, d); err != nil {
			return attempt, err
		}
	}
	return attempt, lastErr
}

func logRetry(logger *zap.Logger, operation, url string, maxAttempts int) func(int, time.Duration, error) {
	return func(attempt int, delay time.Duration, err error) {
		logger.Warn("ledger request failed, retrying",
			zap.String("operation", operation),
			zap.String("url", url),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", maxAttempts),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)
	}
}
