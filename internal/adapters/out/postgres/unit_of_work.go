// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work maintains the set of aggregates touched by a
// business transaction and coordinates writing changes atomically.
//
// Each command handler creates a fresh unit of work through the factory,
// begins a transaction, drives its repositories, and commits or rolls back.
// Repository accessors return repositories bound to the running transaction,
// so multi-aggregate flows like booking (shipment insert plus space update)
// become visible all at once or not at all.
package postgres

import (
	"context"

	"cargospace/internal/adapters/out/postgres/shipmentrepo"
	"cargospace/internal/adapters/out/postgres/spacerepo"
	"cargospace/internal/adapters/out/postgres/trackingrepo"
	"cargospace/internal/adapters/out/postgres/transactionrepo"
	"cargospace/internal/adapters/out/postgres/userrepo"
	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Useful for implementing patterns like the outbox pattern later.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances over one GORM database
// connection. Each business operation gets a fresh instance, isolated from
// other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations, using GORM's transaction support.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Repeated calls on the same
// instance are safe and do not nest transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction. After
// commit the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction. After
// rollback the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// SpaceRepository returns a space repository bound to the current
// transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) SpaceRepository() ports.SpaceRepository {
	return spacerepo.NewGormSpaceRepository(uow.conn(), uow)
}

// ShipmentRepository returns a shipment repository bound to the current
// transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

// TransactionRepository returns a payment transaction repository bound to
// the current transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) TransactionRepository() ports.TransactionRepository {
	return transactionrepo.NewGormTransactionRepository(uow.conn(), uow)
}

// TrackingEventRepository returns a tracking event repository bound to the
// current transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) TrackingEventRepository() ports.TrackingEventRepository {
	return trackingrepo.NewGormTrackingEventRepository(uow.conn(), uow)
}

// UserRepository returns a user repository bound to the current transaction,
// or to the main connection when none is active.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call it on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
