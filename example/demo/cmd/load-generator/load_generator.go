// Command load-generator drives randomized borrow and return cycles against
// a PostgreSQL-backed loan ledger at a configurable request rate. It is
// meant for observing contention behavior and database load, not for
// benchmarking exact numbers.
package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shelftrack/loanledger-go/ledger"
	"github.com/shelftrack/loanledger-go/ledger/postgresengine"
)

const loadLoanPeriod = 21 * 24 * time.Hour

// LoadGenerator fires borrow and return operations against the ledger at a
// fixed rate. Conflicts are expected under load and counted, not treated as
// failures.
type LoadGenerator struct {
	ledgerEngine postgresengine.Ledger
	pool         *pgxpool.Pool
	config       Config

	copyIDs     []uuid.UUID
	borrowerIDs []uuid.UUID

	wg sync.WaitGroup

	borrowed  atomic.Int64
	returned  atomic.Int64
	conflicts atomic.Int64
	failures  atomic.Int64

	startedAt time.Time
}

// NewLoadGenerator creates a generator for the given ledger and settings.
func NewLoadGenerator(ledgerEngine postgresengine.Ledger, pool *pgxpool.Pool, config Config) *LoadGenerator {
	return &LoadGenerator{
		ledgerEngine: ledgerEngine,
		pool:         pool,
		config:       config,
	}
}

// SeedCopies inserts the configured number of available copies and a pool of
// borrowers to pick from.
func (g *LoadGenerator) SeedCopies(ctx context.Context) error {
	g.copyIDs = make([]uuid.UUID, 0, g.config.InitialCopies)

	for i := 0; i < g.config.InitialCopies; i++ {
		copyID := uuid.New()

		_, err := g.pool.Exec(
			ctx,
			`INSERT INTO copies (copy_id, status) VALUES ($1, 'available')`,
			copyID.String(),
		)
		if err != nil {
			return err
		}

		g.copyIDs = append(g.copyIDs, copyID)
	}

	numBorrowers := g.config.InitialCopies / 4
	if numBorrowers < 1 {
		numBorrowers = 1
	}

	g.borrowerIDs = make([]uuid.UUID, numBorrowers)
	for i := range g.borrowerIDs {
		g.borrowerIDs[i] = uuid.New()
	}

	fmt.Printf("seeded %d copies and %d borrowers\n", len(g.copyIDs), len(g.borrowerIDs))

	return nil
}

// Run fires operations until the context is canceled.
func (g *LoadGenerator) Run(ctx context.Context) {
	g.startedAt = time.Now()

	interval := time.Second / time.Duration(g.config.Rate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	statsTicker := time.NewTicker(10 * time.Second)
	defer statsTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			g.wg.Wait()
			return

		case <-statsTicker.C:
			g.printStats()

		case <-ticker.C:
			g.wg.Add(1)
			go func() {
				defer g.wg.Done()
				g.fireOperation(ctx)
			}()
		}
	}
}

// fireOperation borrows or returns a random copy. Roughly half the
// operations are returns so the pool does not drain to all-reserved.
func (g *LoadGenerator) fireOperation(ctx context.Context) {
	copyID := g.copyIDs[rand.Intn(len(g.copyIDs))]

	if rand.Intn(2) == 0 {
		borrowerID := g.borrowerIDs[rand.Intn(len(g.borrowerIDs))]

		_, err := g.ledgerEngine.OpenLoan(ctx, copyID, borrowerID, loadLoanPeriod)
		g.count(&g.borrowed, err)

		return
	}

	_, err := g.ledgerEngine.CloseLoan(ctx, copyID)
	g.count(&g.returned, err)
}

func (g *LoadGenerator) count(success *atomic.Int64, err error) {
	switch {
	case err == nil:
		success.Add(1)
	case errors.Is(err, ledger.ErrLoanConflict):
		g.conflicts.Add(1)
	case errors.Is(err, context.Canceled):
		// shutdown in progress
	default:
		g.failures.Add(1)
	}
}

func (g *LoadGenerator) printStats() {
	elapsed := time.Since(g.startedAt).Seconds()
	total := g.borrowed.Load() + g.returned.Load() + g.conflicts.Load() + g.failures.Load()

	fmt.Printf(
		"elapsed %.0fs: %d ops (%.1f/s), %d borrowed, %d returned, %d conflicts, %d failures\n",
		elapsed, total, float64(total)/elapsed,
		g.borrowed.Load(), g.returned.Load(), g.conflicts.Load(), g.failures.Load(),
	)
}

// PrintSummary prints the final counters after the run.
func (g *LoadGenerator) PrintSummary() {
	fmt.Println("--- summary ---")
	g.printStats()
}
