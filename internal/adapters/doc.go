// Package adapters wraps the supported database client libraries (pgx pool,
// database/sql, sqlx) behind one small interface so the Postgres-backed
// ledger and catalog stores stay driver-agnostic.
package adapters
