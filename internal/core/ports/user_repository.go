package ports

import (
	"context"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user identities.
// Username, email, and wallet address are each globally unique.
type UserRepository interface {
	// Add persists a new user. Fails with ObjectAlreadyExists when any
	// uniqueness invariant would be violated.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByUsername retrieves a user by username.
	GetByUsername(ctx context.Context, username string) (*user.User, error)

	// GetByEmail retrieves a user by email address.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// GetByWalletAddress retrieves a user by wallet address.
	GetByWalletAddress(ctx context.Context, walletAddress string) (*user.User, error)
}
