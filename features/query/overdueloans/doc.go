// Package overdueloans lists all open loans whose due date has passed as of
// a reference date, most urgent first. Librarians use this to chase
// returns; the reference date is explicit so reports are reproducible.
package overdueloans
