package queries

import (
	"errors"
	"time"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/shipment"
	"cargospace/internal/pkg/guard"
)

var ErrGetShipmentByIDQueryIsNotConstructed = errors.New(
	"GetShipmentByIDQuery must be created via NewGetShipmentByIDQuery constructor",
)

// GetShipmentByIDQuery retrieves a single shipment.
type GetShipmentByIDQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentByIDQuery creates a query for one shipment.
func NewGetShipmentByIDQuery(shipmentID kernel.UUID) (GetShipmentByIDQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentByIDQuery{}, err
	}
	return GetShipmentByIDQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByIDQueryIsNotConstructed)
}

// ShipmentID returns the requested shipment.
func (q GetShipmentByIDQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// GetShipmentByIDQueryResponse represents a shipment read model including
// its owner.
type GetShipmentByIDQueryResponse struct {
	ID        kernel.UUID
	SpaceID   kernel.UUID
	OwnerID   kernel.UUID
	GoodsType string
	Weight    int
	Status    shipment.Status
	CreatedAt time.Time
}
