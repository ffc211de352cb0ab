package returncopy

import (
	"github.com/google/uuid"
)

const commandType = "ReturnCopy"

// Command represents the intent to return a borrowed copy.
type Command struct {
	CopyID uuid.UUID
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(copyID uuid.UUID) Command {
	return Command{CopyID: copyID}
}
