package commands

import (
	"context"

	"cargospace/internal/core/domain/model/shipment"
	"cargospace/internal/core/ports"
)

// BookShipmentCommandHandler handles the booking flow: claim the space, then
// create the shipment in pending status. Both writes run in one unit of work
// so a failure on either side leaves no partial booking behind.
type BookShipmentCommandHandler struct {
	uowFactory BookingUoWFactory
	publisher  ports.ShipmentEventPublisher
}

// NewBookShipmentCommandHandler creates a handler for shipment bookings.
func NewBookShipmentCommandHandler(
	uowFactory BookingUoWFactory,
	publisher ports.ShipmentEventPublisher,
) BookShipmentCommandHandler {
	return BookShipmentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the booking. The space row is read under a lock so two
// concurrent bookings of the same space serialize: the first wins, the
// second sees the booked status and fails with Conflict. Fails with
// ObjectNotFound when the space does not exist.
func (h *BookShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd BookShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	spaceRepo := uow.SpaceRepository()

	sp, err := spaceRepo.GetForUpdate(ctx, cmd.SpaceID())
	if err != nil {
		return nil, err
	}

	if err = sp.Book(); err != nil {
		return nil, err
	}

	newShipment, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.SpaceID(),
		cmd.OwnerID(),
		cmd.GoodsType(),
		cmd.Weight(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Add(ctx, newShipment); err != nil {
		return nil, err
	}

	if err = spaceRepo.Update(ctx, sp); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Publish failures must not fail the committed booking; the publisher
	// logs them itself.
	_ = h.publisher.PublishStatusChanged(ctx, newShipment.ID(), newShipment.Status())

	return newShipment, nil
}
