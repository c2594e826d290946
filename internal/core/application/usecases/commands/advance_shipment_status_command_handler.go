package commands

import (
	"context"

	"cargospace/internal/core/domain/model/shipment"
	"cargospace/internal/core/ports"
)

// AdvanceShipmentStatusCommandHandler handles explicit lifecycle moves. The
// monotonicity rule lives in the aggregate: forward moves and repeats pass,
// regressions fail with InvalidTransition.
type AdvanceShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.ShipmentEventPublisher
}

// NewAdvanceShipmentStatusCommandHandler creates a handler for shipment
// status advancement.
func NewAdvanceShipmentStatusCommandHandler(
	uowFactory ShipmentUoWFactory,
	publisher ports.ShipmentEventPublisher,
) AdvanceShipmentStatusCommandHandler {
	return AdvanceShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the advancement. Fails with ObjectNotFound when the
// shipment does not exist and InvalidTransition on a backward move.
func (h *AdvanceShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceShipmentStatusCommand,
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

	shipmentRepo := uow.ShipmentRepository()

	sh, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = sh.AdvanceTo(cmd.Status()); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, sh); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.publisher.PublishStatusChanged(ctx, sh.ID(), sh.Status())

	return sh, nil
}
