package commands_test

import (
	"testing"

	"cargospace/internal/core/application/usecases/commands"
	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceShipmentStatusCommand_ValidInput(t *testing.T) {
	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewAdvanceShipmentStatusCommand(shipmentID, shipment.InTransit)
	require.NoError(t, err)
	assert.Equal(t, shipmentID, cmd.ShipmentID())
	assert.Equal(t, shipment.InTransit, cmd.Status())
}

func TestNewAdvanceShipmentStatusCommand_InvalidShipmentID(t *testing.T) {
	_, err := commands.NewAdvanceShipmentStatusCommand(kernel.UUID{}, shipment.Confirmed)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAdvanceShipmentStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewAdvanceShipmentStatusCommand(kernel.NewUUID(), shipment.Unknown)
	require.Error(t, err)
}
