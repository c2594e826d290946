package ports

import (
	"context"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)
}

// TrackingEventRepository defines the persistence contract for the
// append-only tracking audit trail. Events are never updated or deleted;
// reads go through the query side.
type TrackingEventRepository interface {
	// Add appends a tracking event to the shipment's audit trail.
	Add(ctx context.Context, event *shipment.TrackingEvent) error
}
