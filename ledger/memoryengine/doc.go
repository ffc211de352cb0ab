// Package memoryengine implements the loan ledger in process memory.
//
// It mirrors the semantics of the Postgres engine exactly: mutations take a
// write lock so the copy-status check and the loan write form one atomic
// unit, and of two borrow attempts racing for the same copy exactly one
// succeeds. It is intended for unit tests and for embedders that do not
// need durability.
package memoryengine
