package commands

import (
	"errors"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/pkg/errs"
	"cargospace/internal/pkg/guard"
)

// ErrConfirmTransactionCommandIsNotConstructed is returned when a
// ConfirmTransactionCommand bypassed its constructor.
var ErrConfirmTransactionCommandIsNotConstructed = errors.New(
	"ConfirmTransactionCommand must be created via NewConfirmTransactionCommand constructor")

// ConfirmTransactionCommand represents on-chain settlement proof for a
// pending transaction.
type ConfirmTransactionCommand struct { //nolint:recvcheck //using for validation
	transactionID    kernel.UUID
	blockchainTxHash string

	guard guard.ConstructorGuard
}

// NewConfirmTransactionCommand creates a command to complete a transaction
// with its blockchain settlement hash.
func NewConfirmTransactionCommand(
	transactionID kernel.UUID,
	blockchainTxHash string,
) (ConfirmTransactionCommand, error) {
	cmd := ConfirmTransactionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTransactionID(transactionID),
		cmd.setBlockchainTxHash(blockchainTxHash),
	); err != nil {
		return ConfirmTransactionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmTransactionCommand) Validate() error {
	return c.guard.Validate(ErrConfirmTransactionCommandIsNotConstructed)
}

// TransactionID returns the transaction being completed.
func (c ConfirmTransactionCommand) TransactionID() kernel.UUID {
	return c.transactionID
}

// BlockchainTxHash returns the settlement proof.
func (c ConfirmTransactionCommand) BlockchainTxHash() string {
	return c.blockchainTxHash
}

func (c *ConfirmTransactionCommand) setTransactionID(transactionID kernel.UUID) error {
	if err := transactionID.Validate(); err != nil {
		return err
	}
	c.transactionID = transactionID
	return nil
}

func (c *ConfirmTransactionCommand) setBlockchainTxHash(blockchainTxHash string) error {
	if blockchainTxHash == "" {
		return errs.NewValueIsRequiredError("blockchainTxHash")
	}
	c.blockchainTxHash = blockchainTxHash
	return nil
}
