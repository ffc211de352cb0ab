package borrowcopy

import (
	"github.com/google/uuid"
)

const commandType = "BorrowCopy"

// Command represents the intent to borrow a copy for a user.
type Command struct {
	CopyID     uuid.UUID
	BorrowerID uuid.UUID
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(copyID uuid.UUID, borrowerID uuid.UUID) Command {
	return Command{
		CopyID:     copyID,
		BorrowerID: borrowerID,
	}
}
