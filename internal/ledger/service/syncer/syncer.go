package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledgermirror-backend/internal/clock"
	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/model"
	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/webhook"
)

// State is the loop state observed from outside.
type State int32

const (
	StateIdle State = iota
	StateSyncing
)

func (s State) String() string {
	if s == StateSyncing {
		return "SYNCING"
	}
	return "IDLE"
}

// Config tunes one sync loop.
type Config struct {
	AppNames     []string
	MinPollDelay time.Duration
	MaxPollDelay time.Duration
	FetchWorkers int
}

// Report summarizes one iteration.
type Report struct {
	Iteration   uint64
	ChainHeight uint64
	NewIDs      int
	Saved       model.SaveResult
	// Notifications is nil unless the iteration changed at least one transaction.
	Notifications <-chan webhook.Result
}

// Syncer mirrors ledger transactions for a set of app names into the store.
type Syncer struct {
	logger    *zap.Logger
	repo      Repository
	resolver  DeltaResolver
	fetcher   Fetcher
	notifier  Notifier
	metrics   Metrics
	sleep     func(context.Context, time.Duration) error
	jitter    func(lo, hi time.Duration) time.Duration
	minDelay  time.Duration
	maxDelay  time.Duration
	state     atomic.Int32
	iteration uint64
}

// NewSyncer builds a Syncer. notifier may be nil when no hook is configured.
func NewSyncer(
	cfg Config,
	source LedgerSource,
	repo Repository,
	notifier Notifier,
	metrics Metrics,
	logger *zap.Logger,
) (*Syncer, error) {
	if len(cfg.AppNames) == 0 {
		return nil, errors.New("at least one app name is required")
	}
	if source == nil {
		return nil, errors.New("ledger source is required")
	}
	if repo == nil {
		return nil, errors.New("repository is required")
	}
	if metrics == nil {
		return nil, errors.New("syncer metrics is required")
	}
	if cfg.MinPollDelay <= 0 {
		cfg.MinPollDelay = defaultMinPollDelay
	}
	if cfg.MaxPollDelay <= 0 {
		cfg.MaxPollDelay = defaultMaxPollDelay
	}
	if cfg.MaxPollDelay < cfg.MinPollDelay {
		return nil, fmt.Errorf("max poll delay %s is below min poll delay %s", cfg.MaxPollDelay, cfg.MinPollDelay)
	}
	if cfg.FetchWorkers <= 0 {
		cfg.FetchWorkers = defaultFetchWorkers
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.Strings("app_names", cfg.AppNames))

	return &Syncer{
		logger:   logger,
		repo:     repo,
		notifier: notifier,
		metrics:  metrics,
		sleep:    clock.SleepWithContext,
		jitter:   clock.Jitter,
		minDelay: cfg.MinPollDelay,
		maxDelay: cfg.MaxPollDelay,
		resolver: &deltaResolver{
			source:   source,
			appNames: append([]string(nil), cfg.AppNames...),
			logger:   logger.Named("deltaResolver"),
		},
		fetcher: &fetcher{
			source:  source,
			workers: cfg.FetchWorkers,
			metrics: metrics,
			logger:  logger.Named("fetcher"),
		},
	}, nil
}

// State reports whether an iteration is in flight.
func (s *Syncer) State() State {
	return State(s.state.Load())
}

// Run loops until ctx is canceled. Iteration failures are logged and never end the loop.
func (s *Syncer) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if _, err := s.SyncOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Error("sync iteration failed", zap.Error(err))
		}

		delay := s.jitter(s.minDelay, s.maxDelay)
		s.logger.Debug("sleeping before next iteration", zap.Duration("sleep", delay))
		if err := s.sleep(ctx, delay); err != nil {
			return err
		}
	}
}

// SyncOnce runs a single iteration: read the watermark, resolve and fetch the
// delta, persist it, then fire the hook if anything changed. Any failure comes
// back as a *model.LoopError.
func (s *Syncer) SyncOnce(ctx context.Context) (report Report, err error) {
	s.iteration++
	report.Iteration = s.iteration

	started := time.Now()
	s.setState(StateSyncing)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		if err != nil {
			err = &model.LoopError{Iteration: report.Iteration, Err: err}
		}
		s.metrics.ObserveIteration(err, started)
		s.setState(StateIdle)
	}()

	watermark, err := s.repo.Watermark(ctx)
	if err != nil {
		return report, fmt.Errorf("read watermark: %w", err)
	}

	delta, err := s.resolver.Resolve(ctx, watermark)
	if err != nil {
		return report, fmt.Errorf("resolve delta: %w", err)
	}
	report.ChainHeight = delta.ChainHeight
	report.NewIDs = len(delta.IDs)
	s.metrics.ObserveDelta(delta.ChainHeight, len(delta.IDs))

	if len(delta.IDs) == 0 {
		return report, nil
	}

	txs, blocks := s.fetcher.Fetch(ctx, delta.IDs)
	if len(txs) == 0 {
		s.logger.Warn("no transactions fetched", zap.Int("requested", len(delta.IDs)))
		return report, ctx.Err()
	}

	saved, err := s.repo.PersistBatch(ctx, txs, blocks)
	if err != nil {
		return report, fmt.Errorf("persist batch: %w", err)
	}
	report.Saved = saved
	s.metrics.ObservePersisted(saved)
	s.metrics.SetWatermark(maxHeight(watermark, saved.Blocks))

	s.logger.Info("iteration persisted",
		zap.Uint64("chain_height", delta.ChainHeight),
		zap.Int("new_ids", len(delta.IDs)),
		zap.Int("fetched", len(txs)),
		zap.Int("saved_transactions", len(saved.Transactions)),
		zap.Int("saved_blocks", len(saved.Blocks)),
		zap.Int("changed", saved.Changed),
	)

	if saved.Changed > 0 && s.notifier != nil {
		report.Notifications = s.notifier.Notify(ctx)
	}
	return report, nil
}

func (s *Syncer) setState(state State) {
	s.state.Store(int32(state))
	s.metrics.SetSyncing(state == StateSyncing)
}

func maxHeight(watermark model.Watermark, blocks []model.Block) uint64 {
	height := watermark.Height
	for _, b := range blocks {
		if b.Height > height {
			height = b.Height
		}
	}
	return height
}
