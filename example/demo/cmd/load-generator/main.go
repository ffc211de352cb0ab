package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/shelftrack/loanledger-go/config"
	"github.com/shelftrack/loanledger-go/ledger/postgresengine"
	"github.com/shelftrack/loanledger-go/slogadapter"
)

const (
	defaultRate          = 30
	defaultInitialCopies = 100
)

// Config holds the command line settings for one load generator run.
type Config struct {
	Rate          int
	InitialCopies int
	Quiet         bool
}

func main() {
	cfg := parseFlags()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown on Ctrl+C
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	_ = godotenv.Load()

	dsn := config.PostgresDSN()
	if dsn == "" {
		fmt.Fprintf(os.Stderr, "%s is not set\n", config.EnvPostgresDSN)
		os.Exit(1)
	}

	poolConfig, err := config.PostgresPoolConfig(dsn)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid database URL:", err)
		os.Exit(1)
	}

	pgxPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to database:", err)
		os.Exit(1)
	}
	defer pgxPool.Close()

	logLevel := slog.LevelInfo
	if cfg.Quiet {
		logLevel = slog.LevelWarn
	}
	logger := slogadapter.NewSlogLogger(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})),
	)

	ledgerEngine, err := postgresengine.NewLedgerFromPGXPool(pgxPool, postgresengine.WithLogger(logger))
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build ledger:", err)
		os.Exit(1)
	}

	generator := NewLoadGenerator(ledgerEngine, pgxPool, cfg)

	if seedErr := generator.SeedCopies(ctx); seedErr != nil {
		fmt.Fprintln(os.Stderr, "failed to seed copies:", seedErr)
		os.Exit(1)
	}

	go func() {
		<-sigChan
		fmt.Println("\nshutting down...")
		cancel()
	}()

	generator.Run(ctx)
	generator.PrintSummary()
}

func parseFlags() Config {
	rate := flag.Int("rate", defaultRate, "operations per second")
	initialCopies := flag.Int("copies", defaultInitialCopies, "number of copies to seed")
	quiet := flag.Bool("quiet", false, "only log warnings and errors")
	flag.Parse()

	return Config{
		Rate:          *rate,
		InitialCopies: *initialCopies,
		Quiet:         *quiet,
	}
}
