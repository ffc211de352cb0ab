// Package loansbyborrower lists all loans of one user, open and
// historical, most recent first — the data behind a "my borrowed books"
// page.
package loansbyborrower
