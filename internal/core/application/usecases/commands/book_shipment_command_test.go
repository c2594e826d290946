package commands_test

import (
	"testing"

	"cargospace/internal/core/application/usecases/commands"
	"cargospace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookShipmentCommand_ValidInput(t *testing.T) {
	shipmentID := kernel.NewUUID()
	spaceID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	cmd, err := commands.NewBookShipmentCommand(shipmentID, spaceID, ownerID, "electronics", 120)
	require.NoError(t, err)
	assert.Equal(t, shipmentID, cmd.ShipmentID())
	assert.Equal(t, spaceID, cmd.SpaceID())
	assert.Equal(t, ownerID, cmd.OwnerID())
	assert.Equal(t, "electronics", cmd.GoodsType())
	assert.Equal(t, 120, cmd.Weight())
}

func TestNewBookShipmentCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewBookShipmentCommand(
		kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), "electronics", 120)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewBookShipmentCommand(
		kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), "electronics", 120)
	require.Error(t, err)

	_, err = commands.NewBookShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, "electronics", 120)
	require.Error(t, err)
}

func TestNewBookShipmentCommand_EmptyGoodsType(t *testing.T) {
	_, err := commands.NewBookShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", 120)
	require.Error(t, err)
}

func TestNewBookShipmentCommand_InvalidWeight(t *testing.T) {
	_, err := commands.NewBookShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "electronics", 0)
	require.Error(t, err)

	_, err = commands.NewBookShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "electronics", -5)
	require.Error(t, err)
}
