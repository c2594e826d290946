package commands

import (
	"errors"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/space"
	"cargospace/internal/pkg/guard"
)

// ErrSetSpaceStatusCommandIsNotConstructed is returned when a
// SetSpaceStatusCommand bypassed its constructor.
var ErrSetSpaceStatusCommandIsNotConstructed = errors.New(
	"SetSpaceStatusCommand must be created via NewSetSpaceStatusCommand constructor")

// SetSpaceStatusCommand represents an operator request to force a space into
// a specific availability status.
type SetSpaceStatusCommand struct { //nolint:recvcheck //using for validation
	spaceID kernel.UUID
	status  space.Status

	guard guard.ConstructorGuard
}

// NewSetSpaceStatusCommand creates a command to set a space's status. Only
// the closed set of valid statuses is accepted.
func NewSetSpaceStatusCommand(spaceID kernel.UUID, status space.Status) (SetSpaceStatusCommand, error) {
	cmd := SetSpaceStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSpaceID(spaceID),
		cmd.setStatus(status),
	); err != nil {
		return SetSpaceStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetSpaceStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetSpaceStatusCommandIsNotConstructed)
}

// SpaceID returns the target space.
func (c SetSpaceStatusCommand) SpaceID() kernel.UUID {
	return c.spaceID
}

// Status returns the requested status.
func (c SetSpaceStatusCommand) Status() space.Status {
	return c.status
}

func (c *SetSpaceStatusCommand) setSpaceID(spaceID kernel.UUID) error {
	if err := spaceID.Validate(); err != nil {
		return err
	}
	c.spaceID = spaceID
	return nil
}

func (c *SetSpaceStatusCommand) setStatus(status space.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
