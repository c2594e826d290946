package shipment_test

import (
	"testing"
	"time"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/shipment"
	"cargospace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingEvent(t *testing.T) {
	t.Run("creates event with supplied timestamp", func(t *testing.T) {
		ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		e, err := shipment.NewTrackingEvent(
			kernel.NewUUID(), kernel.NewUUID(), "customs_hold", "Hamburg", "awaiting clearance", ts)
		require.NoError(t, err)

		assert.Equal(t, "customs_hold", e.EventType())
		assert.Equal(t, "Hamburg", e.Location())
		assert.Equal(t, "awaiting clearance", e.Details())
		assert.Equal(t, ts, e.Timestamp())
		require.NoError(t, e.Validate())
	})

	t.Run("assigns append time when timestamp missing", func(t *testing.T) {
		before := time.Now().UTC()
		e, err := shipment.NewTrackingEvent(
			kernel.NewUUID(), kernel.NewUUID(), shipment.EventTypePickup, "", "", time.Time{})
		require.NoError(t, err)
		after := time.Now().UTC()

		assert.False(t, e.Timestamp().Before(before))
		assert.False(t, e.Timestamp().After(after))
	})

	t.Run("location and details are optional", func(t *testing.T) {
		e, err := shipment.NewTrackingEvent(
			kernel.NewUUID(), kernel.NewUUID(), "scan", "", "", time.Time{})
		require.NoError(t, err)
		assert.Empty(t, e.Location())
		assert.Empty(t, e.Details())
	})

	t.Run("rejects missing event type", func(t *testing.T) {
		_, err := shipment.NewTrackingEvent(
			kernel.NewUUID(), kernel.NewUUID(), "", "", "", time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects zero identifiers", func(t *testing.T) {
		_, err := shipment.NewTrackingEvent(
			kernel.UUID{}, kernel.NewUUID(), "scan", "", "", time.Time{})
		require.Error(t, err)

		_, err = shipment.NewTrackingEvent(
			kernel.NewUUID(), kernel.UUID{}, "scan", "", "", time.Time{})
		require.Error(t, err)
	})
}

func TestRestoreTrackingEvent(t *testing.T) {
	t.Run("requires a stored timestamp", func(t *testing.T) {
		_, err := shipment.RestoreTrackingEvent(
			kernel.NewUUID(), kernel.NewUUID(), "scan", "", "", time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("restores a complete event", func(t *testing.T) {
		ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		e, err := shipment.RestoreTrackingEvent(
			kernel.NewUUID(), kernel.NewUUID(), shipment.EventTypeDelivered, "Singapore", "", ts)
		require.NoError(t, err)
		assert.Equal(t, ts, e.Timestamp())
	})
}

func TestTrackingEvent_DerivedStatus(t *testing.T) {
	newEvent := func(eventType string) *shipment.TrackingEvent {
		e, err := shipment.NewTrackingEvent(
			kernel.NewUUID(), kernel.NewUUID(), eventType, "", "", time.Time{})
		require.NoError(t, err)
		return e
	}

	t.Run("pickup derives in_transit", func(t *testing.T) {
		status, ok := newEvent(shipment.EventTypePickup).DerivedStatus()
		assert.True(t, ok)
		assert.Equal(t, shipment.InTransit, status)
	})

	t.Run("delivered derives delivered", func(t *testing.T) {
		status, ok := newEvent(shipment.EventTypeDelivered).DerivedStatus()
		assert.True(t, ok)
		assert.Equal(t, shipment.Delivered, status)
	})

	t.Run("other event types carry no side effect", func(t *testing.T) {
		_, ok := newEvent("customs_hold").DerivedStatus()
		assert.False(t, ok)
	})
}

func TestTrackingEvent_Validate(t *testing.T) {
	var zero shipment.TrackingEvent
	require.ErrorIs(t, zero.Validate(), shipment.ErrTrackingEventIsNotConstructed)
}
