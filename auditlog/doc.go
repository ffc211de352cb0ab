// Package auditlog provides ready-made ledger.AuditSink implementations:
// a logger-backed sink that serializes events to JSON and an in-memory
// recording sink for tests. The storage format of a real audit trail is
// owned by the embedding application; these sinks only cover the common
// cases of structured log output and test inspection.
package auditlog
