package shipment_test

import (
	"testing"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/shipment"
	"cargospace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	sh, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "electronics", 1200)
	require.NoError(t, err)
	return sh
}

func TestNewShipment(t *testing.T) {
	t.Run("creates shipment in pending status", func(t *testing.T) {
		id := kernel.NewUUID()
		spaceID := kernel.NewUUID()
		owner := kernel.NewUUID()

		sh, err := shipment.NewShipment(id, spaceID, owner, "electronics", 1200)
		require.NoError(t, err)

		assert.True(t, sh.ID().IsEqual(id))
		assert.True(t, sh.SpaceID().IsEqual(spaceID))
		assert.True(t, sh.Owner().IsEqual(owner))
		assert.Equal(t, "electronics", sh.GoodsType())
		assert.Equal(t, 1200, sh.Weight())
		assert.Equal(t, shipment.Pending, sh.Status())
		require.NoError(t, sh.Validate())
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		id, spaceID, owner := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

		_, err := shipment.NewShipment(kernel.UUID{}, spaceID, owner, "electronics", 1200)
		require.Error(t, err)

		_, err = shipment.NewShipment(id, kernel.UUID{}, owner, "electronics", 1200)
		require.Error(t, err)

		_, err = shipment.NewShipment(id, spaceID, kernel.UUID{}, "electronics", 1200)
		require.Error(t, err)

		_, err = shipment.NewShipment(id, spaceID, owner, "", 1200)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = shipment.NewShipment(id, spaceID, owner, "electronics", 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreShipment(t *testing.T) {
	t.Run("restores stored status", func(t *testing.T) {
		sh, err := shipment.RestoreShipment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "electronics", 1200,
			shipment.InTransit)
		require.NoError(t, err)
		assert.Equal(t, shipment.InTransit, sh.Status())
	})

	t.Run("rejects invalid stored status", func(t *testing.T) {
		_, err := shipment.RestoreShipment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "electronics", 1200,
			shipment.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestShipment_Validate(t *testing.T) {
	var zero shipment.Shipment
	require.ErrorIs(t, zero.Validate(), shipment.ErrShipmentIsNotConstructed)

	var nilShipment *shipment.Shipment
	require.ErrorIs(t, nilShipment.Validate(), shipment.ErrShipmentIsNotConstructed)
}

func TestShipment_AdvanceTo(t *testing.T) {
	t.Run("walks the full lifecycle", func(t *testing.T) {
		sh := validShipment(t)

		require.NoError(t, sh.AdvanceTo(shipment.Confirmed))
		assert.Equal(t, shipment.Confirmed, sh.Status())

		require.NoError(t, sh.AdvanceTo(shipment.InTransit))
		assert.Equal(t, shipment.InTransit, sh.Status())

		require.NoError(t, sh.AdvanceTo(shipment.Delivered))
		assert.Equal(t, shipment.Delivered, sh.Status())
	})

	t.Run("regression is rejected and state preserved", func(t *testing.T) {
		sh := validShipment(t)
		require.NoError(t, sh.AdvanceTo(shipment.Confirmed))

		err := sh.AdvanceTo(shipment.Pending)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, shipment.Confirmed, sh.Status())
	})

	t.Run("repeating the current status is a no-op", func(t *testing.T) {
		sh := validShipment(t)
		require.NoError(t, sh.AdvanceTo(shipment.Pending))
		assert.Equal(t, shipment.Pending, sh.Status())
	})
}
