// Package transactionrepo provides data transfer objects and mapping
// functions for payment transaction persistence.
package transactionrepo

import (
	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/transaction"

	"github.com/google/uuid"
)

// TransactionDTO represents the database structure for persisting payment
// transactions. The unique index on ShipmentID backs the
// one-transaction-per-shipment invariant under concurrent writers.
type TransactionDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Amount           int
	Status           string
	BlockchainTxHash string
}

// TableName specifies the database table name for transactions.
func (TransactionDTO) TableName() string {
	return "transactions"
}

func fromDomain(aggregate *transaction.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:               aggregate.ID().Bytes(),
		ShipmentID:       aggregate.ShipmentID().Bytes(),
		Amount:           aggregate.Amount(),
		Status:           aggregate.Status().String(),
		BlockchainTxHash: aggregate.BlockchainTxHash(),
	}
}

func toDomain(dto TransactionDTO) (*transaction.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	status, err := transaction.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return transaction.RestoreTransaction(
		id,
		shipmentID,
		dto.Amount,
		status,
		dto.BlockchainTxHash,
	)
}
