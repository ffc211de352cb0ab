package overdueloans

import (
	"time"
)

const (
	queryType = "OverdueLoans"
)

// Query represents the intent to list overdue loans as of a reference date.
type Query struct {
	AsOf time.Time
}

// BuildQuery creates a new Query with the provided reference date.
func BuildQuery(asOf time.Time) Query {
	return Query{AsOf: asOf}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
