package ports

import (
	"context"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/transaction"
)

// TransactionRepository defines the persistence contract for payment
// transactions. The storage schema carries a unique index on the shipment
// reference, backing the one-transaction-per-shipment invariant under
// concurrent writers.
type TransactionRepository interface {
	// Add persists a new transaction. Fails with Conflict when the shipment
	// already has one.
	Add(ctx context.Context, aggregate *transaction.Transaction) error

	// Update persists changes to an existing transaction.
	Update(ctx context.Context, aggregate *transaction.Transaction) error

	// Get retrieves a transaction by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*transaction.Transaction, error)

	// GetByShipmentID retrieves the transaction settling the given shipment.
	GetByShipmentID(ctx context.Context, shipmentID kernel.UUID) (*transaction.Transaction, error)
}
