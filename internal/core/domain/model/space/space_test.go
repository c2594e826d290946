package space_test

import (
	"testing"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/space"
	"cargospace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSpace(t *testing.T) *space.Space {
	t.Helper()
	s, err := space.NewSpace(
		kernel.NewUUID(), "T-100", "Rotterdam", "Singapore", "12x2.4x2.6", 24000, kernel.NewUUID())
	require.NoError(t, err)
	return s
}

func TestNewSpace(t *testing.T) {
	t.Run("creates space in available status", func(t *testing.T) {
		id := kernel.NewUUID()
		owner := kernel.NewUUID()

		s, err := space.NewSpace(id, "T-100", "Rotterdam", "Singapore", "12x2.4x2.6", 24000, owner)
		require.NoError(t, err)

		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, "T-100", s.TokenID())
		assert.Equal(t, "Rotterdam", s.Source())
		assert.Equal(t, "Singapore", s.Destination())
		assert.Equal(t, "12x2.4x2.6", s.Dimensions())
		assert.Equal(t, 24000, s.MaxWeight())
		assert.True(t, s.Owner().IsEqual(owner))
		assert.Equal(t, space.Available, s.Status())
		require.NoError(t, s.Validate())
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		owner := kernel.NewUUID()
		tests := []struct {
			name string
			fn   func() (*space.Space, error)
		}{
			{"zero id", func() (*space.Space, error) {
				return space.NewSpace(kernel.UUID{}, "T-1", "A", "B", "1x1x1", 10, owner)
			}},
			{"empty token", func() (*space.Space, error) {
				return space.NewSpace(kernel.NewUUID(), "", "A", "B", "1x1x1", 10, owner)
			}},
			{"empty source", func() (*space.Space, error) {
				return space.NewSpace(kernel.NewUUID(), "T-1", "", "B", "1x1x1", 10, owner)
			}},
			{"empty destination", func() (*space.Space, error) {
				return space.NewSpace(kernel.NewUUID(), "T-1", "A", "", "1x1x1", 10, owner)
			}},
			{"empty dimensions", func() (*space.Space, error) {
				return space.NewSpace(kernel.NewUUID(), "T-1", "A", "B", "", 10, owner)
			}},
			{"zero max weight", func() (*space.Space, error) {
				return space.NewSpace(kernel.NewUUID(), "T-1", "A", "B", "1x1x1", 0, owner)
			}},
			{"zero owner", func() (*space.Space, error) {
				return space.NewSpace(kernel.NewUUID(), "T-1", "A", "B", "1x1x1", 10, kernel.UUID{})
			}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := tt.fn()
				require.Error(t, err)
			})
		}
	})
}

func TestRestoreSpace(t *testing.T) {
	t.Run("restores stored status", func(t *testing.T) {
		s, err := space.RestoreSpace(
			kernel.NewUUID(), "T-100", "Rotterdam", "Singapore", "12x2.4x2.6", 24000,
			kernel.NewUUID(), space.Booked)
		require.NoError(t, err)
		assert.Equal(t, space.Booked, s.Status())
	})

	t.Run("rejects invalid stored status", func(t *testing.T) {
		_, err := space.RestoreSpace(
			kernel.NewUUID(), "T-100", "Rotterdam", "Singapore", "12x2.4x2.6", 24000,
			kernel.NewUUID(), space.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSpace_Validate(t *testing.T) {
	t.Run("direct struct literal fails validation", func(t *testing.T) {
		var s space.Space
		require.ErrorIs(t, s.Validate(), space.ErrSpaceIsNotConstructed)
	})

	t.Run("nil space fails validation", func(t *testing.T) {
		var s *space.Space
		require.ErrorIs(t, s.Validate(), space.ErrSpaceIsNotConstructed)
	})
}

func TestSpace_Book(t *testing.T) {
	t.Run("available space becomes booked", func(t *testing.T) {
		s := validSpace(t)
		require.NoError(t, s.Book())
		assert.Equal(t, space.Booked, s.Status())
	})

	t.Run("booked space rejects booking and keeps state", func(t *testing.T) {
		s := validSpace(t)
		require.NoError(t, s.Book())

		err := s.Book()
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, space.Booked, s.Status())
	})
}

func TestSpace_SetStatus(t *testing.T) {
	t.Run("any valid status is accepted", func(t *testing.T) {
		s := validSpace(t)
		require.NoError(t, s.SetStatus(space.Partial))
		assert.Equal(t, space.Partial, s.Status())

		require.NoError(t, s.SetStatus(space.Available))
		assert.Equal(t, space.Available, s.Status())
	})

	t.Run("invalid status is rejected without state change", func(t *testing.T) {
		s := validSpace(t)
		err := s.SetStatus(space.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, space.Available, s.Status())
	})
}

func TestSpace_IsEqual(t *testing.T) {
	a := validSpace(t)
	b := validSpace(t)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
