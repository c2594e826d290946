package queries

import (
	"context"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/transaction"
	"cargospace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTransactionByIDQueryHandler retrieves a single settlement transaction
// from the database.
type GetTransactionByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetTransactionByIDQueryHandler creates a handler for single-transaction
// lookups.
func NewGetTransactionByIDQueryHandler(db *gorm.DB) GetTransactionByIDQueryHandler {
	return GetTransactionByIDQueryHandler{db: db}
}

// Handle executes the lookup. Fails with ObjectNotFound when no transaction
// has the requested ID.
func (h GetTransactionByIDQueryHandler) Handle(
	ctx context.Context,
	query GetTransactionByIDQuery,
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
		WHERE id = ?
	`, query.TransactionID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("transactionID", query.TransactionID())
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
