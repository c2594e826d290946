package queries

import (
	"errors"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/pkg/guard"
)

var ErrGetTransactionByIDQueryIsNotConstructed = errors.New(
	"GetTransactionByIDQuery must be created via NewGetTransactionByIDQuery constructor",
)

// GetTransactionByIDQuery retrieves a single settlement transaction.
type GetTransactionByIDQuery struct {
	transactionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTransactionByIDQuery creates a query for one transaction.
func NewGetTransactionByIDQuery(transactionID kernel.UUID) (GetTransactionByIDQuery, error) {
	if err := transactionID.Validate(); err != nil {
		return GetTransactionByIDQuery{}, err
	}
	return GetTransactionByIDQuery{
		transactionID: transactionID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTransactionByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetTransactionByIDQueryIsNotConstructed)
}

// TransactionID returns the requested transaction.
func (q GetTransactionByIDQuery) TransactionID() kernel.UUID {
	return q.transactionID
}
