package commands_test

import (
	"testing"
	"time"

	"cargospace/internal/core/application/usecases/commands"
	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/shipment"
	"cargospace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAppendTrackingEventCommandHandler_Handle_PickupAdvancesShipment(t *testing.T) {
	ctx := t.Context()
	shipmentID := kernel.NewUUID()
	cmd, _ := commands.NewAppendTrackingEventCommand(
		kernel.NewUUID(), shipmentID, shipment.EventTypePickup, "Rotterdam", "", time.Time{})

	sh, err := shipment.RestoreShipment(
		shipmentID, kernel.NewUUID(), kernel.NewUUID(), "electronics", 120, shipment.Confirmed)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	trackingRepo := new(MockTrackingEventRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, shipmentID).Return(sh, nil).Once(),
		uow.On("TrackingEventRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.TrackingEvent")).
			Return(nil).Once(),
		shipmentRepo.On("Update", mock.Anything, sh).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := &StubPublisher{}
	h := commands.NewAppendTrackingEventCommandHandler(factory, publisher)
	event, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, shipment.EventTypePickup, event.EventType())
	assert.False(t, event.Timestamp().IsZero())
	assert.Equal(t, shipment.InTransit, sh.Status())
	assert.Equal(t, []shipment.Status{shipment.InTransit}, publisher.calls)
	shipmentRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAppendTrackingEventCommandHandler_Handle_DeliveredAdvancesShipment(t *testing.T) {
	ctx := t.Context()
	shipmentID := kernel.NewUUID()
	cmd, _ := commands.NewAppendTrackingEventCommand(
		kernel.NewUUID(), shipmentID, shipment.EventTypeDelivered, "Hamburg", "left at reception", time.Time{})

	sh, err := shipment.RestoreShipment(
		shipmentID, kernel.NewUUID(), kernel.NewUUID(), "electronics", 120, shipment.InTransit)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	trackingRepo := new(MockTrackingEventRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, shipmentID).Return(sh, nil).Once(),
		uow.On("TrackingEventRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.TrackingEvent")).
			Return(nil).Once(),
		shipmentRepo.On("Update", mock.Anything, sh).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := &StubPublisher{}
	h := commands.NewAppendTrackingEventCommandHandler(factory, publisher)
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, shipment.Delivered, sh.Status())
	assert.Equal(t, []shipment.Status{shipment.Delivered}, publisher.calls)
}

func TestAppendTrackingEventCommandHandler_Handle_CheckpointDoesNotAdvance(t *testing.T) {
	ctx := t.Context()
	shipmentID := kernel.NewUUID()
	cmd, _ := commands.NewAppendTrackingEventCommand(
		kernel.NewUUID(), shipmentID, "checkpoint", "Bremen", "", time.Time{})

	sh, err := shipment.RestoreShipment(
		shipmentID, kernel.NewUUID(), kernel.NewUUID(), "electronics", 120, shipment.InTransit)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	trackingRepo := new(MockTrackingEventRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, shipmentID).Return(sh, nil).Once(),
		uow.On("TrackingEventRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.TrackingEvent")).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := &StubPublisher{}
	h := commands.NewAppendTrackingEventCommandHandler(factory, publisher)
	event, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.NotNil(t, event)
	assert.Equal(t, shipment.InTransit, sh.Status())
	assert.Empty(t, publisher.calls)
	shipmentRepo.AssertExpectations(t)
}

func TestAppendTrackingEventCommandHandler_Handle_StaleEventStillRecorded(t *testing.T) {
	ctx := t.Context()
	shipmentID := kernel.NewUUID()
	cmd, _ := commands.NewAppendTrackingEventCommand(
		kernel.NewUUID(), shipmentID, shipment.EventTypePickup, "Rotterdam", "", time.Time{})

	// Pickup arrives after delivery was already recorded; the event is kept
	// for the audit trail but the shipment stays delivered.
	sh, err := shipment.RestoreShipment(
		shipmentID, kernel.NewUUID(), kernel.NewUUID(), "electronics", 120, shipment.Delivered)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	trackingRepo := new(MockTrackingEventRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, shipmentID).Return(sh, nil).Once(),
		uow.On("TrackingEventRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.TrackingEvent")).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := &StubPublisher{}
	h := commands.NewAppendTrackingEventCommandHandler(factory, publisher)
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, shipment.Delivered, sh.Status())
	assert.Empty(t, publisher.calls)
}

func TestAppendTrackingEventCommandHandler_Handle_ShipmentNotFound(t *testing.T) {
	ctx := t.Context()
	shipmentID := kernel.NewUUID()
	cmd, _ := commands.NewAppendTrackingEventCommand(
		kernel.NewUUID(), shipmentID, shipment.EventTypePickup, "Rotterdam", "", time.Time{})

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, shipmentID).
			Return(nil, errs.NewObjectNotFoundError("shipmentID", shipmentID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAppendTrackingEventCommandHandler(factory, &StubPublisher{})
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAppendTrackingEventCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AppendTrackingEventCommand{} // not constructed properly
	factory := new(MockTrackingUoWFactory)
	h := commands.NewAppendTrackingEventCommandHandler(factory, &StubPublisher{})
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
