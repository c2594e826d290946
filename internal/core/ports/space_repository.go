package ports

import (
	"context"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/space"
)

// SpaceRepository defines the persistence contract for space aggregates.
type SpaceRepository interface {
	// Add persists a new space. Fails with ObjectAlreadyExists when the
	// token ID is already taken.
	Add(ctx context.Context, aggregate *space.Space) error

	// Update persists changes to an existing space.
	Update(ctx context.Context, aggregate *space.Space) error

	// Get retrieves a space by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*space.Space, error)

	// GetForUpdate retrieves a space by ID taking a row lock for the
	// duration of the surrounding transaction. The booking flow uses it so
	// concurrent bookings of one space serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*space.Space, error)

	// GetByTokenID retrieves a space by its globally unique token ID.
	GetByTokenID(ctx context.Context, tokenID string) (*space.Space, error)
}
