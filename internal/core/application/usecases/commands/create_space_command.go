package commands

import (
	"errors"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/pkg/errs"
	"cargospace/internal/pkg/guard"
)

// ErrCreateSpaceCommandIsNotConstructed is returned when a
// CreateSpaceCommand bypassed its constructor.
var ErrCreateSpaceCommandIsNotConstructed = errors.New(
	"CreateSpaceCommand must be created via NewCreateSpaceCommand constructor")

// CreateSpaceCommand represents a request by a logistics user to offer a new
// unit of capacity for booking.
type CreateSpaceCommand struct { //nolint:recvcheck //using for validation
	spaceID     kernel.UUID
	tokenID     string
	source      string
	destination string
	dimensions  string
	maxWeight   int
	ownerID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateSpaceCommand creates a command to register a new logistics space.
// The token ID must be unique across the store; that check happens in the
// handler against the repository.
func NewCreateSpaceCommand(
	spaceID kernel.UUID,
	tokenID string,
	source string,
	destination string,
	dimensions string,
	maxWeight int,
	ownerID kernel.UUID,
) (CreateSpaceCommand, error) {
	cmd := CreateSpaceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSpaceID(spaceID),
		cmd.setTokenID(tokenID),
		cmd.setRoute(source, destination),
		cmd.setDimensions(dimensions),
		cmd.setMaxWeight(maxWeight),
		cmd.setOwnerID(ownerID),
	); err != nil {
		return CreateSpaceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSpaceCommand) Validate() error {
	return c.guard.Validate(ErrCreateSpaceCommandIsNotConstructed)
}

// SpaceID returns the identifier for the new space.
func (c CreateSpaceCommand) SpaceID() kernel.UUID {
	return c.spaceID
}

// TokenID returns the capacity token identifier.
func (c CreateSpaceCommand) TokenID() string {
	return c.tokenID
}

// Source returns the route origin.
func (c CreateSpaceCommand) Source() string {
	return c.source
}

// Destination returns the route destination.
func (c CreateSpaceCommand) Destination() string {
	return c.destination
}

// Dimensions returns the free-form dimensions string.
func (c CreateSpaceCommand) Dimensions() string {
	return c.dimensions
}

// MaxWeight returns the maximum cargo weight in kilograms.
func (c CreateSpaceCommand) MaxWeight() int {
	return c.maxWeight
}

// OwnerID returns the offering logistics user.
func (c CreateSpaceCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *CreateSpaceCommand) setSpaceID(spaceID kernel.UUID) error {
	if err := spaceID.Validate(); err != nil {
		return err
	}
	c.spaceID = spaceID
	return nil
}

func (c *CreateSpaceCommand) setTokenID(tokenID string) error {
	if tokenID == "" {
		return errs.NewValueIsRequiredError("tokenId")
	}
	c.tokenID = tokenID
	return nil
}

func (c *CreateSpaceCommand) setRoute(source, destination string) error {
	if source == "" {
		return errs.NewValueIsRequiredError("source")
	}
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	c.source = source
	c.destination = destination
	return nil
}

func (c *CreateSpaceCommand) setDimensions(dimensions string) error {
	if dimensions == "" {
		return errs.NewValueIsRequiredError("dimensions")
	}
	c.dimensions = dimensions
	return nil
}

func (c *CreateSpaceCommand) setMaxWeight(maxWeight int) error {
	if maxWeight <= 0 {
		return errs.NewValueIsInvalidError("maxWeight")
	}
	c.maxWeight = maxWeight
	return nil
}

func (c *CreateSpaceCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}
