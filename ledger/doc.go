// Package ledger defines the core types and contracts of the loan lifecycle
// engine: the Loan record, the loan-related state of a physical book copy,
// the Ledger write interface with its invariants, read-only projections,
// audit events, and the dependency-free observability interfaces.
//
// The ledger is the sole writer of a copy's status, due date and borrower.
// Concrete engines live in the sub-packages postgresengine and memoryengine;
// both guarantee that opening and closing a loan execute as one atomic unit,
// so that of two borrowers racing for the same copy exactly one succeeds.
package ledger
