package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bank-accounts/internal/cli"
	"bank-accounts/internal/config"
	"bank-accounts/internal/database"
	"bank-accounts/internal/handlers"
	"bank-accounts/internal/logging"
	"bank-accounts/internal/models"
	"bank-accounts/internal/repositories"
	"bank-accounts/internal/server"
	"bank-accounts/internal/services"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// shutdownGrace bounds how long an interrupted session waits for the menu
const shutdownGrace = 2 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bank: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional
	_ = godotenv.Load()

	cfg := config.Load()

	appLevel := slog.LevelWarn
	if cfg.IsDevelopment() {
		appLevel = slog.LevelInfo
	}
	appLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: appLevel}))

	var console io.Writer
	if cfg.App.EchoLogToConsole {
		console = os.Stderr
	}
	sink, err := logging.OpenSink(cfg.App.LogFile, console, slog.LevelInfo)
	if err != nil {
		return err
	}
	defer sink.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := services.NewPrometheusMetrics(registry)

	recorders := models.MultiRecorder{services.NewTransactionLogger(sink.Logger), metrics}

	var journal repositories.JournalRepositoryInterface
	var journalHealth handlers.HealthCheckerInterface
	if cfg.Journal.Enabled {
		db, err := database.Initialize(&cfg.Journal, appLogger)
		if err != nil {
			return fmt.Errorf("failed to initialize journal: %w", err)
		}
		defer db.Close()

		journal = repositories.NewJournalRepository(db.DB)
		journalHealth = db
		breaker := services.NewJournalBreaker(cfg.Journal.BreakerMaxFailures, cfg.Journal.BreakerResetTimeout)
		recorders = append(recorders, services.NewJournalRecorder(journal, breaker, appLogger))
	}

	seed := cfg.App.InvestmentSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rates := models.NewUniformRateBetween(cfg.Accounts.MinInvestmentReturn, cfg.Accounts.MaxInvestmentReturn, seed)

	processor := services.NewMonthlyProcessor(metrics, appLogger)
	accountService := services.NewAccountService(cfg.Accounts, rates, recorders, metrics, processor, journal, appLogger)
	if cfg.App.SeedDemoAccounts {
		accountService.SeedDemoAccounts()
	}

	snapshots := services.NewSnapshotStore()

	statusDone := make(chan struct{})
	if cfg.StatusEnabled() {
		status := server.NewStatusServer(cfg.Status, server.Deps{
			Snapshots: snapshots,
			Journal:   journalHealth,
			Registry:  registry,
			Logger:    appLogger,
		})
		go func() {
			defer close(statusDone)
			if err := status.Run(ctx); err != nil {
				appLogger.Error("status server stopped",
					slog.String("event_type", "status_server_failed"),
					slog.String("error", err.Error()),
				)
			}
		}()
	} else {
		close(statusDone)
	}

	menu := cli.NewMenu(accountService, processor, snapshots, os.Stdin, os.Stdout, appLogger)

	// The menu blocks on stdin, so a signal ends the session from here
	done := make(chan error, 1)
	go func() { done <- menu.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil && !stderrors.Is(err, context.Canceled) {
			return err
		}
	case <-ctx.Done():
		fmt.Fprintln(os.Stdout, "\nInterrupted, closing session")
		// Let an action in flight finish its log write before the sink
		// closes. A menu blocked reading stdin never returns, hence the cap.
		select {
		case <-done:
		case <-time.After(shutdownGrace):
		}
	}

	stop()
	<-statusDone
	return nil
}
