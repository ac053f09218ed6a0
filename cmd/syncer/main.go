package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/arweave"
	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/repository/postgres"
	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/service/syncer"
	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/webhook"
	"github.com/goodnatureofminers/ledgermirror-backend/internal/metrics"
)

type config struct {
	DatabaseURL   string        `long:"database-url" env:"SYNCER_DATABASE_URL" description:"Postgres DSN" required:"true"`
	LedgerURL     string        `long:"ledger-url" env:"SYNCER_LEDGER_URL" description:"ledger gateway base URL" default:"https://arweave.net"`
	AppNames      []string      `long:"app-name" env:"SYNCER_APP_NAMES" env-delim:";" description:"comma-separated app names synced by one loop; repeat for more loops" required:"true"`
	MinPollDelay  time.Duration `long:"min-poll-delay" env:"SYNCER_MIN_POLL_DELAY" description:"minimum sleep between iterations" default:"10s"`
	MaxPollDelay  time.Duration `long:"max-poll-delay" env:"SYNCER_MAX_POLL_DELAY" description:"maximum sleep between iterations" default:"20s"`
	RetryAttempts int           `long:"retry-attempts" env:"SYNCER_RETRY_ATTEMPTS" description:"attempts per ledger request" default:"5"`
	RetryBase     time.Duration `long:"retry-base" env:"SYNCER_RETRY_BASE" description:"base backoff between ledger attempts" default:"2s"`
	NotifyURLs    []string      `long:"notify-url" env:"SYNCER_NOTIFY_URLS" env-delim:"," description:"URLs POSTed after new transactions are stored"`
	FetchWorkers  int           `long:"fetch-workers" env:"SYNCER_FETCH_WORKERS" description:"concurrent per-transaction fetches" default:"8"`
	RPS           int           `long:"rps" env:"SYNCER_RPS" description:"ledger request rate limit, 0 disables" default:"10"`
	HTTPTimeout   time.Duration `long:"http-timeout" env:"SYNCER_HTTP_TIMEOUT" description:"HTTP timeout for ledger and hook requests" default:"30s"`
	MetricsAddr   string        `long:"metrics-addr" env:"SYNCER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	LogFormat     string        `long:"log-format" env:"SYNCER_LOG_FORMAT" description:"log encoding" choice:"console" choice:"json" default:"console"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogFormat)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("syncer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	targets := parseTargets(cfg.AppNames)
	if len(targets) == 0 {
		return errors.New("at least one app name is required")
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := postgres.NewRepository(cfg.DatabaseURL, metrics.NewPostgresRepository(), logger)
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			logger.Warn("close repository", zap.Error(closeErr))
		}
	}()
	if err := repo.Ping(ctx); err != nil {
		return fmt.Errorf("ping repository: %w", err)
	}

	errorLog := syncer.NewErrorLog(repo, logger)
	errorLog.Start(ctx)
	defer errorLog.Stop()

	client, err := arweave.NewClient(arweave.Config{
		BaseURL:       cfg.LedgerURL,
		Timeout:       cfg.HTTPTimeout,
		RPS:           cfg.RPS,
		RetryAttempts: cfg.RetryAttempts,
		RetryBase:     cfg.RetryBase,
	}, metrics.NewLedgerClient(gatewayHost(cfg.LedgerURL)), errorLog, logger)
	if err != nil {
		return fmt.Errorf("init ledger client: %w", err)
	}

	var notifier syncer.Notifier
	if len(cfg.NotifyURLs) > 0 {
		n, err := webhook.New(cfg.NotifyURLs, cfg.HTTPTimeout, metrics.NewWebhook(), logger)
		if err != nil {
			return fmt.Errorf("init notifier: %w", err)
		}
		notifier = n
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, appNames := range targets {
		s, err := syncer.NewSyncer(syncer.Config{
			AppNames:     appNames,
			MinPollDelay: cfg.MinPollDelay,
			MaxPollDelay: cfg.MaxPollDelay,
			FetchWorkers: cfg.FetchWorkers,
		}, client, repo, notifier, metrics.NewSyncer(appNames), logger.Named("syncer"))
		if err != nil {
			return fmt.Errorf("init syncer for %v: %w", appNames, err)
		}
		g.Go(func() error {
			return s.Run(gctx)
		})
	}

	logger.Info("syncer started", zap.Int("loops", len(targets)), zap.String("ledger", cfg.LedgerURL))
	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		logger.Info("syncer stopped")
		return nil
	}
	return err
}

// parseTargets splits every --app-name value into one app name subset.
func parseTargets(values []string) [][]string {
	targets := make([][]string, 0, len(values))
	for _, value := range values {
		var names []string
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		if len(names) > 0 {
			targets = append(targets, names)
		}
	}
	return targets
}

func gatewayHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}

func newLogger(format string) (*zap.Logger, error) {
	if format == "json" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
