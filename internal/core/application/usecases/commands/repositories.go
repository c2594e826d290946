// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"cargospace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest interface covering the
// aggregates it touches, so the booking handler cannot accidentally reach
// into transactions and the settlement handler cannot touch spaces.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SpaceRepoFactory provides access to the space repository within a
	// transaction.
	SpaceRepoFactory interface {
		SpaceRepository() ports.SpaceRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within
	// a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// TransactionRepoFactory provides access to the transaction repository
	// within a transaction.
	TransactionRepoFactory interface {
		TransactionRepository() ports.TransactionRepository
	}

	// TrackingEventRepoFactory provides access to the tracking event
	// repository within a transaction.
	TrackingEventRepoFactory interface {
		TrackingEventRepository() ports.TrackingEventRepository
	}

	// UserRepoFactory provides access to the user repository within a
	// transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// SpaceUoW manages transactions for space-only operations.
	SpaceUoW interface {
		TxManager
		SpaceRepoFactory
	}

	// SpaceUoWFactory creates new space unit of work instances.
	SpaceUoWFactory interface {
		Create() SpaceUoW
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// BookingUoW manages the dual write of the booking flow: the shipment
	// insert and the space status update commit or roll back together.
	BookingUoW interface {
		TxManager
		SpaceRepoFactory
		ShipmentRepoFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// SettlementUoW manages transactions spanning a payment transaction and
	// its shipment, used when recording a payment confirms the shipment.
	SettlementUoW interface {
		TxManager
		TransactionRepoFactory
		ShipmentRepoFactory
	}

	// SettlementUoWFactory creates new settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}

	// TransactionUoW manages transactions for payment-transaction-only
	// operations.
	TransactionUoW interface {
		TxManager
		TransactionRepoFactory
	}

	// TransactionUoWFactory creates new transaction unit of work instances.
	TransactionUoWFactory interface {
		Create() TransactionUoW
	}

	// TrackingUoW manages transactions spanning the tracking audit trail and
	// the shipment whose status a tracking event may advance.
	TrackingUoW interface {
		TxManager
		TrackingEventRepoFactory
		ShipmentRepoFactory
	}

	// TrackingUoWFactory creates new tracking unit of work instances.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
