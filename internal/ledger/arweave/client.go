package arweave

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goodnatureofminers/ledgermirror-backend/internal/clock"
	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	operationInfo        = "info"
	operationQuery       = "arql"
	operationTransaction = "transaction"
	operationStatus      = "transaction_status"
	operationBlock       = "block"
)

// Config configures the gateway client.
type Config struct {
	BaseURL       string
	Timeout       time.Duration
	RPS           int
	RetryAttempts int
	RetryBase     time.Duration
}

// StatusError is returned for gateway responses with status >= 400.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Status)
}

// Client talks to an arweave gateway. Every request goes through the same
// rate limiter and retry policy; exhausted failures are returned as
// *model.TransientFetchError and appended to the error log.
type Client struct {
	http     *resty.Client
	baseURL  string
	limiter  ratelimit.Limiter
	retry    retryPolicy
	metrics  Metrics
	recorder ErrorRecorder
	logger   *zap.Logger
}

// NewClient builds a gateway client.
func NewClient(cfg Config, metrics Metrics, recorder ErrorRecorder, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("ledger base url is required")
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("parse ledger url: %w", err)
	}
	if metrics == nil {
		return nil, errors.New("ledger client metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = defaultRetryAttempts
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = defaultRetryBase
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetLogger(logger.Named("resty").Sugar())
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}

	return &Client{
		http:     httpClient,
		baseURL:  baseURL,
		limiter:  limiter,
		metrics:  metrics,
		recorder: recorder,
		logger:   logger,
		retry: retryPolicy{
			attempts: cfg.RetryAttempts,
			base:     cfg.RetryBase,
			sleep:    clock.SleepWithContext,
		},
	}, nil
}

// ChainHeight returns the current height reported by the gateway.
func (c *Client) ChainHeight(ctx context.Context) (uint64, error) {
	resp, err := c.do(ctx, operationInfo, http.MethodGet, "/info", nil)
	if err != nil {
		return 0, err
	}
	var info infoPayload
	if err := json.Unmarshal(resp.Body(), &info); err != nil {
		return 0, fmt.Errorf("unmarshal chain info: %w", err)
	}
	return info.Height, nil
}

// TransactionIDsByAppNames returns every transaction ID tagged with one of names.
func (c *Client) TransactionIDsByAppNames(ctx context.Context, names []string) ([]string, error) {
	query, err := AppNamesQuery(names)
	if err != nil {
		return nil, err
	}
	return c.TransactionIDsByQuery(ctx, query)
}

// TransactionIDsByQuery runs a raw gateway query.
func (c *Client) TransactionIDsByQuery(ctx context.Context, query Expr) ([]string, error) {
	resp, err := c.do(ctx, operationQuery, http.MethodPost, "/arql", query)
	if err != nil {
		return nil, err
	}
	body := resp.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal(body, &ids); err != nil {
		return nil, fmt.Errorf("unmarshal query result: %w", err)
	}
	return ids, nil
}

// Transaction fetches and decodes a transaction without its block link. The
// gateway answers 202 while the payload is not yet available, which is reported
// as model.ErrTransactionPending.
func (c *Client) Transaction(ctx context.Context, id string) (model.Transaction, error) {
	resp, err := c.do(ctx, operationTransaction, http.MethodGet, "/tx/"+url.PathEscape(id), nil)
	if err != nil {
		return model.Transaction{}, err
	}
	if resp.StatusCode() == http.StatusAccepted {
		return model.Transaction{}, model.ErrTransactionPending
	}
	return ParseTransaction(resp.Body())
}

// TransactionBlockHash returns the hash of the block confirming id, or
// model.ErrTransactionPending while it is unconfirmed.
func (c *Client) TransactionBlockHash(ctx context.Context, id string) (string, error) {
	resp, err := c.do(ctx, operationStatus, http.MethodGet, "/tx/"+url.PathEscape(id)+"/status", nil)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() == http.StatusAccepted {
		return "", model.ErrTransactionPending
	}
	var status statusPayload
	if err := json.Unmarshal(resp.Body(), &status); err != nil {
		return "", fmt.Errorf("unmarshal transaction status: %w", err)
	}
	if status.BlockIndepHash == "" {
		return "", model.ErrTransactionPending
	}
	return status.BlockIndepHash, nil
}

// TransactionWithBlockHash fetches a transaction and merges in the hash of its
// confirming block. Pending transactions come back with an empty BlockHash, or
// with model.ErrTransactionPending when the gateway has no payload for them yet.
func (c *Client) TransactionWithBlockHash(ctx context.Context, id string) (model.Transaction, error) {
	tx, err := c.Transaction(ctx, id)
	if err != nil {
		return model.Transaction{}, err
	}
	hash, err := c.TransactionBlockHash(ctx, id)
	switch {
	case errors.Is(err, model.ErrTransactionPending):
		return tx, nil
	case err != nil:
		return model.Transaction{}, err
	}
	tx.BlockHash = hash
	return tx, nil
}

// Block fetches a block by its independent hash.
func (c *Client) Block(ctx context.Context, hash string) (model.Block, error) {
	resp, err := c.do(ctx, operationBlock, http.MethodGet, "/block/hash/"+url.PathEscape(hash), nil)
	if err != nil {
		return model.Block{}, err
	}
	return ParseBlock(resp.Body())
}

// BlockForTransaction resolves the confirming block of a transaction.
func (c *Client) BlockForTransaction(ctx context.Context, id string) (model.Block, error) {
	hash, err := c.TransactionBlockHash(ctx, id)
	if err != nil {
		return model.Block{}, err
	}
	return c.Block(ctx, hash)
}

func (c *Client) do(ctx context.Context, operation, method, path string, body any) (resp *resty.Response, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()

	target := c.baseURL + path
	policy := c.retry
	policy.onRetry = func(attempt int, delay time.Duration, retryErr error) {
		c.metrics.ObserveRetry(operation)
		logRetry(c.logger, operation, target, policy.attempts)(attempt, delay, retryErr)
	}

	attempts, err := policy.Do(ctx, func(ctx context.Context) error {
		c.limiter.Take()
		req := c.http.R().SetContext(ctx)
		if body != nil {
			req.SetHeader("Content-Type", "application/json").SetBody(body)
		}
		r, reqErr := req.Execute(method, path)
		if reqErr != nil {
			return reqErr
		}
		if r.StatusCode() >= http.StatusBadRequest {
			return &StatusError{Code: r.StatusCode(), Status: r.Status()}
		}
		resp = r
		return nil
	})
	if err == nil {
		return resp, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	fetchErr := &model.TransientFetchError{URL: target, Attempts: attempts, Err: err}
	c.recordFailure(ctx, fetchErr)
	return nil, fetchErr
}

func (c *Client) recordFailure(ctx context.Context, fetchErr *model.TransientFetchError) {
	if c.recorder == nil {
		return
	}
	rec := model.ErrorRecord{
		URL:       fetchErr.URL,
		Error:     fetchErr.Err.Error(),
		CreatedAt: time.Now().UTC(),
	}
	if err := c.recorder.Record(ctx, rec); err != nil {
		c.logger.Warn("record fetch error failed", zap.String("url", fetchErr.URL), zap.Error(err))
	}
}
