package transaction

import (
	"errors"
	"fmt"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/pkg/errs"
)

// ErrTransactionIsNotConstructed is returned when a Transaction instance was
// not created through NewTransaction or RestoreTransaction.
var ErrTransactionIsNotConstructed = errors.New(
	"Transaction must be created via NewTransaction or RestoreTransaction constructor")

// Transaction is the payment record associated 1:1 with a shipment. The 1:1
// invariant itself is enforced by the settlement flow and a unique index on
// the shipment reference; the aggregate guarantees that a blockchain hash is
// present exactly when the transaction is completed.
type Transaction struct {
	id               kernel.UUID
	shipmentID       kernel.UUID
	amount           int
	status           Status
	blockchainTxHash string

	isConstructed bool
}

// NewTransaction creates a pending Transaction for a shipment. The amount is
// accepted as given (no ledger verification) but must be positive.
func NewTransaction(id kernel.UUID, shipmentID kernel.UUID, amount int) (*Transaction, error) {
	tx := &Transaction{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		tx.setID(id),
		tx.setShipmentID(shipmentID),
		tx.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return tx, nil
}

// RestoreTransaction reconstructs a Transaction from persistence. A
// completed transaction must carry its hash; a pending one must not.
func RestoreTransaction(
	id kernel.UUID,
	shipmentID kernel.UUID,
	amount int,
	status Status,
	blockchainTxHash string,
) (*Transaction, error) {
	tx, err := NewTransaction(id, shipmentID, amount)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if status == Completed && blockchainTxHash == "" {
		return nil, errs.NewValueIsRequiredError("blockchainTxHash")
	}
	if status == Pending && blockchainTxHash != "" {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"blockchainTxHash", errors.New("pending transaction cannot carry a hash"))
	}

	tx.status = status
	tx.blockchainTxHash = blockchainTxHash

	return tx, nil
}

// Validate ensures the Transaction was built through a constructor.
func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

// ID returns the transaction's unique identifier.
func (t *Transaction) ID() kernel.UUID {
	return t.id
}

// ShipmentID returns the shipment this transaction settles.
func (t *Transaction) ShipmentID() kernel.UUID {
	return t.shipmentID
}

// Amount returns the payment amount.
func (t *Transaction) Amount() int {
	return t.amount
}

// Status returns the confirmation state.
func (t *Transaction) Status() Status {
	return t.status
}

// BlockchainTxHash returns the confirmation hash, empty until completion.
func (t *Transaction) BlockchainTxHash() string {
	return t.blockchainTxHash
}

// Complete confirms the transaction with the given blockchain hash. The
// hash is required; completing an already completed transaction is a
// Conflict.
func (t *Transaction) Complete(blockchainTxHash string) error {
	if blockchainTxHash == "" {
		return errs.NewValueIsRequiredError("blockchainTxHash")
	}
	if t.status == Completed {
		return errs.NewConflictError("transaction already completed")
	}

	t.status = Completed
	t.blockchainTxHash = blockchainTxHash
	return nil
}

func (t *Transaction) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transaction) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	t.shipmentID = shipmentID
	return nil
}

func (t *Transaction) setAmount(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%d is not greater than 0", amount))
	}
	t.amount = amount
	return nil
}
