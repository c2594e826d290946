package queries

import (
	"errors"
	"time"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/shipment"
	"cargospace/internal/pkg/guard"
)

var ErrGetShipmentsByUserQueryIsNotConstructed = errors.New(
	"GetShipmentsByUserQuery must be created via NewGetShipmentsByUserQuery constructor",
)

// GetShipmentsByUserQuery retrieves all shipments booked by one user, newest
// first.
type GetShipmentsByUserQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentsByUserQuery creates a query for a user's shipments.
func NewGetShipmentsByUserQuery(ownerID kernel.UUID) (GetShipmentsByUserQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetShipmentsByUserQuery{}, err
	}
	return GetShipmentsByUserQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsByUserQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsByUserQueryIsNotConstructed)
}

// OwnerID returns the user whose shipments are listed.
func (q GetShipmentsByUserQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// GetShipmentsByUserQueryResponse represents a shipment read model.
type GetShipmentsByUserQueryResponse struct {
	ID        kernel.UUID
	SpaceID   kernel.UUID
	GoodsType string
	Weight    int
	Status    shipment.Status
	CreatedAt time.Time
}
