package loansbyborrower

import (
	"github.com/google/uuid"
)

const (
	queryType = "LoansByBorrower"
)

// Query represents the intent to list all loans of one user.
type Query struct {
	BorrowerID uuid.UUID
}

// BuildQuery creates a new Query with the provided borrower ID.
func BuildQuery(borrowerID uuid.UUID) Query {
	return Query{BorrowerID: borrowerID}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
