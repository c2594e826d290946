package commands

import (
	"errors"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/shipment"
	"cargospace/internal/pkg/guard"
)

// ErrAdvanceShipmentStatusCommandIsNotConstructed is returned when an
// AdvanceShipmentStatusCommand bypassed its constructor.
var ErrAdvanceShipmentStatusCommandIsNotConstructed = errors.New(
	"AdvanceShipmentStatusCommand must be created via NewAdvanceShipmentStatusCommand constructor")

// AdvanceShipmentStatusCommand represents a request to move a shipment
// forward in its delivery lifecycle.
type AdvanceShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	status     shipment.Status

	guard guard.ConstructorGuard
}

// NewAdvanceShipmentStatusCommand creates a command to advance a shipment's
// status. Only the closed set of valid statuses is accepted; transition
// legality is the aggregate's concern.
func NewAdvanceShipmentStatusCommand(
	shipmentID kernel.UUID,
	status shipment.Status,
) (AdvanceShipmentStatusCommand, error) {
	cmd := AdvanceShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setStatus(status),
	); err != nil {
		return AdvanceShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the target shipment.
func (c AdvanceShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Status returns the requested lifecycle status.
func (c AdvanceShipmentStatusCommand) Status() shipment.Status {
	return c.status
}

func (c *AdvanceShipmentStatusCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *AdvanceShipmentStatusCommand) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
