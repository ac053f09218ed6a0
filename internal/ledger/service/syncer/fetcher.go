package syncer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/model"
	"github.com/goodnatureofminers/ledgermirror-backend/pkg/workerpool"
)

type fetcher struct {
	source  LedgerSource
	workers int
	metrics Metrics
	logger  *zap.Logger
}

// Fetch resolves ids to transactions and their confirming blocks with bounded
// fan-out. An ID whose transaction or block cannot be fetched is logged and left
// out, as is one the ledger reports as not yet available. A panicking fetch only
// drops its own ID. Each block is fetched at most once per call.
func (f *fetcher) Fetch(ctx context.Context, ids []string) ([]model.Transaction, []model.Block) {
	blocks := newBlockCache(f.source)

	results := workerpool.Map(ctx, f.workers, ids, func(ctx context.Context, id string) (model.Transaction, error) {
		tx, err := f.source.TransactionWithBlockHash(ctx, id)
		if errors.Is(err, model.ErrTransactionPending) {
			return model.Transaction{}, err
		}
		if err != nil {
			f.metrics.ObserveFetchFailure("transaction")
			return model.Transaction{}, err
		}
		if !tx.Confirmed() {
			return tx, nil
		}
		if _, err := blocks.get(ctx, tx.BlockHash); err != nil {
			f.metrics.ObserveFetchFailure("block")
			return model.Transaction{}, fmt.Errorf("fetch block %s: %w", tx.BlockHash, err)
		}
		return tx, nil
	})

	txs := make([]model.Transaction, 0, len(results))
	for _, res := range results {
		if errors.Is(res.Err, model.ErrTransactionPending) {
			f.logger.Debug("transaction not yet available", zap.String("id", res.Item))
			continue
		}
		if res.Err != nil {
			f.logger.Warn("dropping transaction from batch", zap.String("id", res.Item), zap.Error(res.Err))
			continue
		}
		txs = append(txs, res.Value)
	}
	return txs, blocks.list()
}

type blockCache struct {
	source LedgerSource
	group  singleflight.Group

	mu     sync.Mutex
	blocks map[string]model.Block
	failed map[string]error
}

func newBlockCache(source LedgerSource) *blockCache {
	return &blockCache{
		source: source,
		blocks: make(map[string]model.Block),
		failed: make(map[string]error),
	}
}

func (c *blockCache) get(ctx context.Context, hash string) (model.Block, error) {
	if block, ok, err := c.cached(hash); ok || err != nil {
		return block, err
	}

	v, err, _ := c.group.Do(hash, func() (any, error) {
		if block, ok, err := c.cached(hash); ok || err != nil {
			return block, err
		}

		block, err := c.source.Block(ctx, hash)
		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			c.failed[hash] = err
			return nil, err
		}
		c.blocks[hash] = block
		return block, nil
	})
	if err != nil {
		return model.Block{}, err
	}
	return v.(model.Block), nil
}

// cached reports a block or failure already seen for hash.
func (c *blockCache) cached(hash string) (model.Block, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if block, ok := c.blocks[hash]; ok {
		return block, true, nil
	}
	return model.Block{}, false, c.failed[hash]
}

// list returns the fetched blocks ordered by height.
func (c *blockCache) list() []model.Block {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.Block, 0, len(c.blocks))
	for _, b := range c.blocks {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Height < out[j].Height })
	return out
}
