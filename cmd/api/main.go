package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/repository/postgres"
	"github.com/goodnatureofminers/ledgermirror-backend/internal/metrics"
	"github.com/goodnatureofminers/ledgermirror-backend/internal/transport"
)

type config struct {
	DatabaseURL  string   `long:"database-url" env:"API_DATABASE_URL" description:"Postgres DSN" required:"true"`
	Addr         string   `long:"addr" env:"API_ADDR" description:"HTTP listen address" default:":4000"`
	FeedAppNames []string `long:"feed-app-name" env:"API_FEED_APP_NAMES" env-delim:"," description:"app names included in /feed"`
	LogFormat    string   `long:"log-format" env:"API_LOG_FORMAT" description:"log encoding" choice:"console" choice:"json" default:"console"`
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

	newLogger := zap.NewDevelopment
	if cfg.LogFormat == "json" {
		newLogger = zap.NewProduction
	}
	logger, err := newLogger()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("api failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := postgres.NewRepository(cfg.DatabaseURL, metrics.NewPostgresRepository(), logger)
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			logger.Warn("close repository", zap.Error(closeErr))
		}
	}()

	handler, err := transport.NewHandler(repo, cfg.FeedAppNames, metrics.NewHTTPAPI(), logger)
	if err != nil {
		return fmt.Errorf("init handler: %w", err)
	}

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(handler.NewRouter()),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}
