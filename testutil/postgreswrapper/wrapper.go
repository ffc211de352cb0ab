// Package postgreswrapper provides database wrappers for the ledger and
// catalog integration tests. The wrapper type is selected via the
// ADAPTER_TYPE environment variable (pgxpool, sqldb, sqlx) so the same
// test suite exercises every supported adapter. Tests skip when
// LOANLEDGER_TEST_POSTGRES_DSN is not set.
package postgreswrapper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/shelftrack/loanledger-go/config"
	"github.com/shelftrack/loanledger-go/ledger/postgresengine"
)

// Engine type constants
const (
	typePGXPool = "pgxpool"
	typeSQLDB   = "sqldb"
	typeSQLX    = "sqlx"
)

// Wrapper interface to abstract over different adapter types
type Wrapper interface {
	GetLedger() postgresengine.Ledger
	Exec(t testing.TB, query string, args ...any)
	Close()
}

// PGXPoolWrapper wraps pgxpool-based testing
type PGXPoolWrapper struct {
	pool         *pgxpool.Pool
	ledgerEngine postgresengine.Ledger
}

func (w *PGXPoolWrapper) GetLedger() postgresengine.Ledger {
	return w.ledgerEngine
}

func (w *PGXPoolWrapper) Exec(t testing.TB, query string, args ...any) {
	_, err := w.pool.Exec(context.Background(), query, args...)
	assert.NoError(t, err, "error in arranging test data")
}

func (w *PGXPoolWrapper) Close() {
	w.pool.Close()
}

// SQLDBWrapper wraps sql.DB-based testing
type SQLDBWrapper struct {
	db           *sql.DB
	ledgerEngine postgresengine.Ledger
}

func (w *SQLDBWrapper) GetLedger() postgresengine.Ledger {
	return w.ledgerEngine
}

func (w *SQLDBWrapper) Exec(t testing.TB, query string, args ...any) {
	_, err := w.db.Exec(query, args...)
	assert.NoError(t, err, "error in arranging test data")
}

func (w *SQLDBWrapper) Close() {
	_ = w.db.Close() // ignore error
}

// SQLXWrapper wraps sqlx-based testing
type SQLXWrapper struct {
	db           *sqlx.DB
	ledgerEngine postgresengine.Ledger
}

func (w *SQLXWrapper) GetLedger() postgresengine.Ledger {
	return w.ledgerEngine
}

func (w *SQLXWrapper) Exec(t testing.TB, query string, args ...any) {
	_, err := w.db.Exec(query, args...)
	assert.NoError(t, err, "error in arranging test data")
}

func (w *SQLXWrapper) Close() {
	_ = w.db.Close() // ignore error
}

// CreateWrapperWithTestConfig creates the appropriate wrapper based on the
// ADAPTER_TYPE environment variable, skipping the test when no test
// database is configured.
func CreateWrapperWithTestConfig(t testing.TB, options ...postgresengine.Option) Wrapper {
	dsn := config.PostgresTestDSN()
	if dsn == "" {
		t.Skipf("%s is not set, skipping integration test", config.EnvPostgresTestDSN)
	}

	adapterTypeFromEnv := strings.ToLower(os.Getenv("ADAPTER_TYPE"))

	switch adapterTypeFromEnv {
	case typePGXPool, "":
		poolConfig, err := config.PostgresPoolConfig(dsn)
		assert.NoError(t, err, "error parsing DB config in test setup")

		connPool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
		assert.NoError(t, err, "error connecting to DB pool in test setup")

		ledgerEngine, err := postgresengine.NewLedgerFromPGXPool(connPool, options...)
		assert.NoError(t, err, "error building ledger in test setup")

		return &PGXPoolWrapper{pool: connPool, ledgerEngine: ledgerEngine}

	case typeSQLDB:
		db, err := config.OpenSQLDB(dsn)
		assert.NoError(t, err, "error connecting to DB in test setup")

		ledgerEngine, err := postgresengine.NewLedgerFromSQLDB(db, options...)
		assert.NoError(t, err, "error building ledger in test setup")

		return &SQLDBWrapper{db: db, ledgerEngine: ledgerEngine}

	case typeSQLX:
		db, err := config.OpenSQLX(dsn)
		assert.NoError(t, err, "error connecting to DB in test setup")

		ledgerEngine, err := postgresengine.NewLedgerFromSQLX(db, options...)
		assert.NoError(t, err, "error building ledger in test setup")

		return &SQLXWrapper{db: db, ledgerEngine: ledgerEngine}

	default: // neither one of the known types nor empty
		panic(fmt.Sprintf("unsupported wrapper type from env: %s", adapterTypeFromEnv))
	}
}

// CleanUp empties the loans and copies tables for the given wrapper.
func CleanUp(t testing.TB, wrapper Wrapper) {
	wrapper.Exec(t, "TRUNCATE TABLE loans")
	wrapper.Exec(t, "TRUNCATE TABLE copies")
}

// SeedAvailableCopy inserts an available copy so it can be borrowed in a test.
func SeedAvailableCopy(t testing.TB, wrapper Wrapper, copyID uuid.UUID) {
	wrapper.Exec(
		t,
		"INSERT INTO copies (copy_id, status) VALUES ($1, 'available') ON CONFLICT (copy_id) DO NOTHING",
		copyID.String(),
	)
}
