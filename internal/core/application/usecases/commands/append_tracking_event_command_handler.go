package commands

import (
	"context"

	"cargospace/internal/core/domain/model/shipment"
	"cargospace/internal/core/ports"
)

// AppendTrackingEventCommandHandler handles tracking ingest. Every event is
// appended to the shipment's history; recognized event types additionally
// pull the shipment's lifecycle forward, never backward.
type AppendTrackingEventCommandHandler struct {
	uowFactory TrackingUoWFactory
	publisher  ports.ShipmentEventPublisher
}

// NewAppendTrackingEventCommandHandler creates a handler for tracking
// events.
func NewAppendTrackingEventCommandHandler(
	uowFactory TrackingUoWFactory,
	publisher ports.ShipmentEventPublisher,
) AppendTrackingEventCommandHandler {
	return AppendTrackingEventCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the event. Fails with ObjectNotFound when the shipment
// does not exist. A pickup event moves the shipment to in transit and a
// delivered event to delivered; an event whose derived status is at or
// behind the current one is still recorded, without touching the shipment.
func (h *AppendTrackingEventCommandHandler) Handle(
	ctx context.Context,
	cmd AppendTrackingEventCommand,
) (*shipment.TrackingEvent, error) {
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

	shipmentRepo := uow.ShipmentRepository()

	sh, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	event, err := shipment.NewTrackingEvent(
		cmd.EventID(),
		cmd.ShipmentID(),
		cmd.EventType(),
		cmd.Location(),
		cmd.Details(),
		cmd.Timestamp(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.TrackingEventRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	advanced := false
	if derived, ok := event.DerivedStatus(); ok && derived > sh.Status() {
		if err = sh.AdvanceTo(derived); err != nil {
			return nil, err
		}
		if err = shipmentRepo.Update(ctx, sh); err != nil {
			return nil, err
		}
		advanced = true
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if advanced {
		_ = h.publisher.PublishStatusChanged(ctx, sh.ID(), sh.Status())
	}

	return event, nil
}
