package ports

import (
	"context"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/shipment"
)

// ShipmentEventPublisher notifies external consumers of shipment lifecycle
// changes. Publishing is best effort: command handlers call it only after a
// successful commit and a publish failure never fails the command.
type ShipmentEventPublisher interface {
	// PublishStatusChanged emits an event announcing the shipment's new
	// lifecycle status.
	PublishStatusChanged(ctx context.Context, shipmentID kernel.UUID, status shipment.Status) error
}
