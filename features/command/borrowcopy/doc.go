// Package borrowcopy implements the borrow use case: a registered user
// takes a physical copy out of the library for a fixed loan period.
//
// Policy lives here, not in the ledger: staff accounts do not borrow, and
// the copy must exist in the catalog. The at-most-one-open-loan invariant
// is enforced by the ledger's atomic OpenLoan, not by this handler.
package borrowcopy
