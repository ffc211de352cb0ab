// Package copyavailability answers whether a copy can be borrowed right
// now. The answer reflects ledger state at call time; there is no caching,
// since loan volume is low and staleness risk outweighs the benefit.
package copyavailability
