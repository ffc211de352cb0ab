// Package config provides PostgreSQL connection configuration for the
// demo command and the integration tests, read from the environment.
package config

import (
	"database/sql"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // driver import for the database/sql and sqlx paths
)

const (
	// EnvPostgresDSN is the environment variable holding the database URL.
	EnvPostgresDSN = "LOANLEDGER_POSTGRES_DSN"

	// EnvPostgresTestDSN is the environment variable holding the database URL
	// for integration tests. Tests that need a database skip when it is unset.
	EnvPostgresTestDSN = "LOANLEDGER_TEST_POSTGRES_DSN"

	defaultMaxConnections    = int32(4)
	defaultMinConnections    = int32(0)
	defaultMaxConnLifetime   = time.Hour
	defaultMaxConnIdleTime   = time.Minute * 30
	defaultHealthCheckPeriod = time.Minute
	defaultConnectTimeout    = time.Second * 5
)

// PostgresDSN returns the database URL from the environment, empty when unset.
func PostgresDSN() string {
	return os.Getenv(EnvPostgresDSN)
}

// PostgresTestDSN returns the integration test database URL, empty when unset.
func PostgresTestDSN() string {
	return os.Getenv(EnvPostgresTestDSN)
}

// PostgresPoolConfig builds a pgxpool configuration with sensible defaults
// for the given database URL.
func PostgresPoolConfig(databaseURL string) (*pgxpool.Config, error) {
	dbConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}

	dbConfig.MaxConns = defaultMaxConnections
	dbConfig.MinConns = defaultMinConnections
	dbConfig.MaxConnLifetime = defaultMaxConnLifetime
	dbConfig.MaxConnIdleTime = defaultMaxConnIdleTime
	dbConfig.HealthCheckPeriod = defaultHealthCheckPeriod
	dbConfig.ConnConfig.ConnectTimeout = defaultConnectTimeout

	return dbConfig, nil
}

// OpenSQLDB opens a database/sql connection via the pq driver.
func OpenSQLDB(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(int(defaultMaxConnections))
	db.SetConnMaxLifetime(defaultMaxConnLifetime)
	db.SetConnMaxIdleTime(defaultMaxConnIdleTime)

	return db, nil
}

// OpenSQLX opens a sqlx connection via the pq driver.
func OpenSQLX(databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(int(defaultMaxConnections))
	db.SetConnMaxLifetime(defaultMaxConnLifetime)
	db.SetConnMaxIdleTime(defaultMaxConnIdleTime)

	return db, nil
}
