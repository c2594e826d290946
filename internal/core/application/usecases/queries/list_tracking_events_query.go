package queries

import (
	"errors"
	"time"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/pkg/guard"
)

var ErrListTrackingEventsQueryIsNotConstructed = errors.New(
	"ListTrackingEventsQuery must be created via NewListTrackingEventsQuery constructor",
)

// ListTrackingEventsQuery retrieves a shipment's tracking history in
// chronological order.
type ListTrackingEventsQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListTrackingEventsQuery creates a query for a shipment's tracking
// trail.
func NewListTrackingEventsQuery(shipmentID kernel.UUID) (ListTrackingEventsQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return ListTrackingEventsQuery{}, err
	}
	return ListTrackingEventsQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListTrackingEventsQuery) Validate() error {
	return q.guard.Validate(ErrListTrackingEventsQueryIsNotConstructed)
}

// ShipmentID returns the tracked shipment.
func (q ListTrackingEventsQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// ListTrackingEventsQueryResponse represents one tracking event read model.
type ListTrackingEventsQueryResponse struct {
	ID        kernel.UUID
	EventType string
	Location  string
	Details   string
	Timestamp time.Time
}
