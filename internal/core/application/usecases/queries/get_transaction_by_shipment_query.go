package queries

import (
	"errors"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/transaction"
	"cargospace/internal/pkg/guard"
)

var ErrGetTransactionByShipmentQueryIsNotConstructed = errors.New(
	"GetTransactionByShipmentQuery must be created via NewGetTransactionByShipmentQuery constructor",
)

// GetTransactionByShipmentQuery retrieves the settlement transaction of one
// shipment. Each shipment has at most one.
type GetTransactionByShipmentQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTransactionByShipmentQuery creates a query for a shipment's
// settlement transaction.
func NewGetTransactionByShipmentQuery(shipmentID kernel.UUID) (GetTransactionByShipmentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetTransactionByShipmentQuery{}, err
	}
	return GetTransactionByShipmentQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTransactionByShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetTransactionByShipmentQueryIsNotConstructed)
}

// ShipmentID returns the settled shipment.
func (q GetTransactionByShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// GetTransactionByShipmentQueryResponse represents a transaction read model.
// BlockchainTxHash is empty while the transaction is pending.
type GetTransactionByShipmentQueryResponse struct {
	ID               kernel.UUID
	ShipmentID       kernel.UUID
	Amount           int
	Status           transaction.Status
	BlockchainTxHash string
}
