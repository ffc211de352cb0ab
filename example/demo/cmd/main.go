// Command demo runs one full borrow/return cycle against a PostgreSQL
// database to show how the pieces wire together. It expects the schema from
// the postgresengine and postgresstore package docs and reads the database
// URL from LOANLEDGER_POSTGRES_DSN (a .env file is honored when present).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/shelftrack/loanledger-go/auditlog"
	"github.com/shelftrack/loanledger-go/catalog/postgresstore"
	"github.com/shelftrack/loanledger-go/config"
	"github.com/shelftrack/loanledger-go/features/command/borrowcopy"
	"github.com/shelftrack/loanledger-go/features/command/returncopy"
	"github.com/shelftrack/loanledger-go/features/query/loansbyborrower"
	"github.com/shelftrack/loanledger-go/identity"
	"github.com/shelftrack/loanledger-go/ledger/postgresengine"
	"github.com/shelftrack/loanledger-go/slogadapter"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "demo failed:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	dsn := config.PostgresDSN()
	if dsn == "" {
		return fmt.Errorf("%s is not set", config.EnvPostgresDSN)
	}

	poolConfig, err := config.PostgresPoolConfig(dsn)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return err
	}
	defer pool.Close()

	logger := slogadapter.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	auditSink, err := auditlog.NewLoggerSink(logger)
	if err != nil {
		return err
	}

	loanLedger, err := postgresengine.NewLedgerFromPGXPool(
		pool,
		postgresengine.WithLogger(logger),
		postgresengine.WithAuditSink(auditSink),
	)
	if err != nil {
		return err
	}

	catalogStore, err := postgresstore.NewStoreFromPGXPool(pool, postgresstore.WithLogger(logger))
	if err != nil {
		return err
	}

	copyID := uuid.New()
	borrowerID := uuid.New()

	if seedErr := seedCopy(ctx, pool, copyID); seedErr != nil {
		return seedErr
	}

	borrowHandler := borrowcopy.NewCommandHandler(loanLedger, catalogStore, identity.NewStaticProvider())
	returnHandler := returncopy.NewCommandHandler(loanLedger)
	loansHandler := loansbyborrower.NewQueryHandler(loanLedger)

	loan, err := borrowHandler.Handle(ctx, borrowcopy.BuildCommand(copyID, borrowerID))
	if err != nil {
		return err
	}
	fmt.Printf("borrowed copy %s, due back %s\n", loan.CopyID, loan.DueAt.Format(time.DateOnly))

	borrowerLoans, err := loansHandler.Handle(ctx, loansbyborrower.BuildQuery(borrowerID))
	if err != nil {
		return err
	}
	fmt.Printf("borrower has %d loan(s) on record\n", borrowerLoans.Count)

	closedLoan, err := returnHandler.Handle(ctx, returncopy.BuildCommand(copyID))
	if err != nil {
		return err
	}
	fmt.Printf("returned copy %s at %s\n", closedLoan.CopyID, closedLoan.ReturnedAt.Format(time.RFC3339))

	return nil
}

func seedCopy(ctx context.Context, pool *pgxpool.Pool, copyID uuid.UUID) error {
	_, err := pool.Exec(
		ctx,
		`INSERT INTO copies (copy_id, status) VALUES ($1, 'available') ON CONFLICT (copy_id) DO NOTHING`,
		copyID.String(),
	)

	return err
}
