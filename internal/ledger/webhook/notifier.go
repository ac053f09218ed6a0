// Package webhook fires the post-sync notification hook.
package webhook

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(target string, err error, started time.Time)
	}
)

const defaultTimeout = 10 * time.Second

// Result is the outcome of one webhook call. Err is a *model.NotificationError when the call failed.
type Result struct {
	URL string
	Err error
}

// Notifier posts an empty body to every configured URL. Failures are logged and reported, never retried.
type Notifier struct {
	http    *resty.Client
	urls    []string
	metrics Metrics
	logger  *zap.Logger
}

func New(urls []string, timeout time.Duration, metrics Metrics, logger *zap.Logger) (*Notifier, error) {
	if metrics == nil {
		return nil, errors.New("webhook metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	for _, raw := range urls {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse webhook url %q: %w", raw, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return nil, fmt.Errorf("webhook url %q must be http or https", raw)
		}
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger = logger.Named("webhook")
	return &Notifier{
		http:    resty.New().SetTimeout(timeout).SetLogger(logger.Named("resty").Sugar()),
		urls:    append([]string(nil), urls...),
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Notify calls every URL in the background and returns at once. The channel yields
// one Result per URL and is closed when all calls are done; reading it is optional.
func (n *Notifier) Notify(ctx context.Context) <-chan Result {
	results := make(chan Result, len(n.urls))
	ctx = context.WithoutCancel(ctx)

	var wg sync.WaitGroup
	for _, target := range n.urls {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- n.post(ctx, target)
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

func (n *Notifier) post(ctx context.Context, target string) (res Result) {
	started := time.Now()
	res.URL = target
	defer func() {
		n.metrics.Observe(target, res.Err, started)
	}()

	resp, err := n.http.R().SetContext(ctx).Post(target)
	if err == nil && resp.StatusCode() >= 400 {
		err = fmt.Errorf("unexpected status %s", resp.Status())
	}
	if err != nil {
		res.Err = &model.NotificationError{URL: target, Err: err}
		n.logger.Warn("webhook call failed", zap.String("url", target), zap.Error(err))
		return res
	}

	n.logger.Debug("webhook called", zap.String("url", target), zap.Int("status", resp.StatusCode()))
	return res
}
