package copyavailability

import (
	"time"
)

// CopyAvailability is the query result for one copy. DueBack is only set
// while the copy is out on loan.
type CopyAvailability struct {
	CopyID    string
	Available bool
	DueBack   time.Time
}
