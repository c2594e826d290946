package commands

import (
	"errors"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/pkg/errs"
	"cargospace/internal/pkg/guard"
)

// ErrBookShipmentCommandIsNotConstructed is returned when a
// BookShipmentCommand bypassed its constructor.
var ErrBookShipmentCommandIsNotConstructed = errors.New(
	"BookShipmentCommand must be created via NewBookShipmentCommand constructor")

// BookShipmentCommand represents a user's request to book cargo against a
// logistics space.
type BookShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	spaceID    kernel.UUID
	ownerID    kernel.UUID
	goodsType  string
	weight     int

	guard guard.ConstructorGuard
}

// NewBookShipmentCommand creates a command to book a shipment. The owner is
// the requesting user, passed explicitly; there is no ambient caller
// identity.
func NewBookShipmentCommand(
	shipmentID kernel.UUID,
	spaceID kernel.UUID,
	ownerID kernel.UUID,
	goodsType string,
	weight int,
) (BookShipmentCommand, error) {
	cmd := BookShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setSpaceID(spaceID),
		cmd.setOwnerID(ownerID),
		cmd.setGoodsType(goodsType),
		cmd.setWeight(weight),
	); err != nil {
		return BookShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BookShipmentCommand) Validate() error {
	return c.guard.Validate(ErrBookShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier for the new shipment.
func (c BookShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// SpaceID returns the space to book against.
func (c BookShipmentCommand) SpaceID() kernel.UUID {
	return c.spaceID
}

// OwnerID returns the requesting user.
func (c BookShipmentCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// GoodsType returns the declared cargo category.
func (c BookShipmentCommand) GoodsType() string {
	return c.goodsType
}

// Weight returns the cargo weight in kilograms.
func (c BookShipmentCommand) Weight() int {
	return c.weight
}

func (c *BookShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *BookShipmentCommand) setSpaceID(spaceID kernel.UUID) error {
	if err := spaceID.Validate(); err != nil {
		return err
	}
	c.spaceID = spaceID
	return nil
}

func (c *BookShipmentCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *BookShipmentCommand) setGoodsType(goodsType string) error {
	if goodsType == "" {
		return errs.NewValueIsRequiredError("goodsType")
	}
	c.goodsType = goodsType
	return nil
}

func (c *BookShipmentCommand) setWeight(weight int) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidError("weight")
	}
	c.weight = weight
	return nil
}
