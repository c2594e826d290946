package commands_test

import (
	"testing"
	"time"

	"cargospace/internal/core/application/usecases/commands"
	"cargospace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppendTrackingEventCommand_ValidInput(t *testing.T) {
	eventID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	ts := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	cmd, err := commands.NewAppendTrackingEventCommand(
		eventID, shipmentID, "pickup", "Rotterdam", "picked up at warehouse 7", ts)
	require.NoError(t, err)
	assert.Equal(t, eventID, cmd.EventID())
	assert.Equal(t, shipmentID, cmd.ShipmentID())
	assert.Equal(t, "pickup", cmd.EventType())
	assert.Equal(t, "Rotterdam", cmd.Location())
	assert.Equal(t, "picked up at warehouse 7", cmd.Details())
	assert.Equal(t, ts, cmd.Timestamp())
}

func TestNewAppendTrackingEventCommand_OptionalFields(t *testing.T) {
	cmd, err := commands.NewAppendTrackingEventCommand(
		kernel.NewUUID(), kernel.NewUUID(), "checkpoint", "Hamburg", "", time.Time{})
	require.NoError(t, err)
	assert.Empty(t, cmd.Details())
	assert.True(t, cmd.Timestamp().IsZero())
}

func TestNewAppendTrackingEventCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewAppendTrackingEventCommand(
		kernel.UUID{}, kernel.NewUUID(), "pickup", "Rotterdam", "", time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewAppendTrackingEventCommand(
		kernel.NewUUID(), kernel.UUID{}, "pickup", "Rotterdam", "", time.Time{})
	require.Error(t, err)
}

func TestNewAppendTrackingEventCommand_EmptyEventType(t *testing.T) {
	_, err := commands.NewAppendTrackingEventCommand(
		kernel.NewUUID(), kernel.NewUUID(), "", "Rotterdam", "", time.Time{})
	require.Error(t, err)
}

func TestNewAppendTrackingEventCommand_EmptyLocation(t *testing.T) {
	_, err := commands.NewAppendTrackingEventCommand(
		kernel.NewUUID(), kernel.NewUUID(), "pickup", "", "", time.Time{})
	require.Error(t, err)
}
