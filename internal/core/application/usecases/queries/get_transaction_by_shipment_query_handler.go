package queries

import (
	"context"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/transaction"
	"cargospace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTransactionByShipmentQueryHandler retrieves a shipment's settlement
// transaction from the database.
type GetTransactionByShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetTransactionByShipmentQueryHandler creates a handler for settlement
// lookups.
func NewGetTransactionByShipmentQueryHandler(db *gorm.DB) GetTransactionByShipmentQueryHandler {
	return GetTransactionByShipmentQueryHandler{db: db}
}

// Handle executes the lookup. Fails with ObjectNotFound when the shipment
// has no transaction.
func (h GetTransactionByShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetTransactionByShipmentQuery,
) (*GetTransactionByShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipment_id,
			amount,
			status,
			blockchain_tx_hash
		FROM transactions
		WHERE shipment_id = ?
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("shipmentID", query.ShipmentID())
	}

	var resp GetTransactionByShipmentQueryResponse
	var id, shipmentID uuid.UUID
	var status string

	err = rows.Scan(
		&id,
		&shipmentID,
		&resp.Amount,
		&status,
		&resp.BlockchainTxHash,
	)
	if err != nil {
		return nil, err
	}

	transactionID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return nil, idErr
	}
	resp.ID = transactionID

	settledShipmentID, idErr := kernel.UUIDFromBytes(shipmentID[:])
	if idErr != nil {
		return nil, idErr
	}
	resp.ShipmentID = settledShipmentID

	transactionStatus, statusErr := transaction.StatusFromString(status)
	if statusErr != nil {
		return nil, statusErr
	}
	resp.Status = transactionStatus

	return &resp, nil
}
