package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command. This ensures proper isolation between concurrent
// operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and repositories bound to the running transaction.
// Client code must explicitly manage the transaction lifecycle; the booking
// flow relies on it to make its shipment-create and space-update writes
// visible atomically or not at all.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// SpaceRepository returns a SpaceRepository bound to the current
	// transaction.
	SpaceRepository() SpaceRepository

	// ShipmentRepository returns a ShipmentRepository bound to the current
	// transaction.
	ShipmentRepository() ShipmentRepository

	// TransactionRepository returns a TransactionRepository bound to the
	// current transaction.
	TransactionRepository() TransactionRepository

	// TrackingEventRepository returns a TrackingEventRepository bound to the
	// current transaction.
	TrackingEventRepository() TrackingEventRepository

	// UserRepository returns a UserRepository bound to the current
	// transaction.
	UserRepository() UserRepository
}
