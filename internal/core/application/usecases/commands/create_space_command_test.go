package commands_test

import (
	"testing"

	"cargospace/internal/core/application/usecases/commands"
	"cargospace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateSpaceCommand_ValidInput(t *testing.T) {
	spaceID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	cmd, err := commands.NewCreateSpaceCommand(spaceID, "SPACE-001", "Rotterdam", "Hamburg", "2x2x2m", 500, ownerID)
	require.NoError(t, err)
	assert.Equal(t, spaceID, cmd.SpaceID())
	assert.Equal(t, "SPACE-001", cmd.TokenID())
	assert.Equal(t, "Rotterdam", cmd.Source())
	assert.Equal(t, "Hamburg", cmd.Destination())
	assert.Equal(t, "2x2x2m", cmd.Dimensions())
	assert.Equal(t, 500, cmd.MaxWeight())
	assert.Equal(t, ownerID, cmd.OwnerID())
}

func TestNewCreateSpaceCommand_InvalidSpaceID(t *testing.T) {
	_, err := commands.NewCreateSpaceCommand(
		kernel.UUID{}, "SPACE-001", "Rotterdam", "Hamburg", "2x2x2m", 500, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateSpaceCommand_EmptyTokenID(t *testing.T) {
	_, err := commands.NewCreateSpaceCommand(
		kernel.NewUUID(), "", "Rotterdam", "Hamburg", "2x2x2m", 500, kernel.NewUUID())
	require.Error(t, err)
}

func TestNewCreateSpaceCommand_EmptyRoute(t *testing.T) {
	_, err := commands.NewCreateSpaceCommand(
		kernel.NewUUID(), "SPACE-001", "", "Hamburg", "2x2x2m", 500, kernel.NewUUID())
	require.Error(t, err)

	_, err = commands.NewCreateSpaceCommand(
		kernel.NewUUID(), "SPACE-001", "Rotterdam", "", "2x2x2m", 500, kernel.NewUUID())
	require.Error(t, err)
}

func TestNewCreateSpaceCommand_InvalidMaxWeight(t *testing.T) {
	_, err := commands.NewCreateSpaceCommand(
		kernel.NewUUID(), "SPACE-001", "Rotterdam", "Hamburg", "2x2x2m", 0, kernel.NewUUID())
	require.Error(t, err)
}
