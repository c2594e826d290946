package kernel_test

import (
	"testing"

	"cargospace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id := kernel.NewUUID()
	require.NoError(t, id.Validate())
	assert.NotEqual(t, kernel.UUID{}, id)
}

func TestUUIDFromString(t *testing.T) {
	t.Run("valid string round-trips", func(t *testing.T) {
		const raw = "550e8400-e29b-41d4-a716-446655440000"
		id, err := kernel.UUIDFromString(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, id.String())
	})

	t.Run("invalid string is rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("bytes of a generated UUID round-trip", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])
		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("wrong length is rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x01, 0x02})
		require.Error(t, err)
	})

	t.Run("nil UUID bytes are rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		require.Error(t, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var id kernel.UUID
		err := id.Validate()
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("constructed value is valid", func(t *testing.T) {
		require.NoError(t, kernel.NewUUID().Validate())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	a := kernel.NewUUID()
	b := kernel.NewUUID()

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
}
