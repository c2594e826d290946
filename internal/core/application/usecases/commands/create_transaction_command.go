package commands

import (
	"errors"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/pkg/errs"
	"cargospace/internal/pkg/guard"
)

// ErrCreateTransactionCommandIsNotConstructed is returned when a
// CreateTransactionCommand bypassed its constructor.
var ErrCreateTransactionCommandIsNotConstructed = errors.New(
	"CreateTransactionCommand must be created via NewCreateTransactionCommand constructor")

// CreateTransactionCommand represents a request to open a settlement record
// for a booked shipment.
type CreateTransactionCommand struct { //nolint:recvcheck //using for validation
	transactionID kernel.UUID
	shipmentID    kernel.UUID
	amount        int

	guard guard.ConstructorGuard
}

// NewCreateTransactionCommand creates a command to open a settlement
// transaction. Amount is in the smallest currency unit and must be positive.
func NewCreateTransactionCommand(
	transactionID kernel.UUID,
	shipmentID kernel.UUID,
	amount int,
) (CreateTransactionCommand, error) {
	cmd := CreateTransactionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTransactionID(transactionID),
		cmd.setShipmentID(shipmentID),
		cmd.setAmount(amount),
	); err != nil {
		return CreateTransactionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTransactionCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransactionCommandIsNotConstructed)
}

// TransactionID returns the identifier for the new transaction.
func (c CreateTransactionCommand) TransactionID() kernel.UUID {
	return c.transactionID
}

// ShipmentID returns the shipment being settled.
func (c CreateTransactionCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Amount returns the settlement amount.
func (c CreateTransactionCommand) Amount() int {
	return c.amount
}

func (c *CreateTransactionCommand) setTransactionID(transactionID kernel.UUID) error {
	if err := transactionID.Validate(); err != nil {
		return err
	}
	c.transactionID = transactionID
	return nil
}

func (c *CreateTransactionCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *CreateTransactionCommand) setAmount(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}
	c.amount = amount
	return nil
}
