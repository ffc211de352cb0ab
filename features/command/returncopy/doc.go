// Package returncopy implements the return use case: a copy that is out on
// loan comes back and becomes available again. Returning a copy with no
// open loan is rejected with ledger.ErrLoanConflict, not silently ignored.
package returncopy
