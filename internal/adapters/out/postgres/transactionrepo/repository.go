package transactionrepo

import (
	"context"
	"errors"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/transaction"
	"cargospace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransactionRepository implements TransactionRepository using GORM.
type GormTransactionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransactionRepository creates a new GORM transaction repository.
func NewGormTransactionRepository(db *gorm.DB, tracker aggregateTracker) *GormTransactionRepository {
	return &GormTransactionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new transaction to the database. A second transaction for the
// same shipment surfaces as Conflict via the unique index, closing the race
// the handler's pre-check cannot.
func (r *GormTransactionRepository) Add(ctx context.Context, aggregate *transaction.Transaction) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("transaction already exists for this shipment", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing transaction to the database.
func (r *GormTransactionRepository) Update(ctx context.Context, aggregate *transaction.Transaction) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TransactionDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a transaction by ID.
func (r *GormTransactionRepository) Get(ctx context.Context, id kernel.UUID) (*transaction.Transaction, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransactionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transaction", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByShipmentID retrieves the transaction settling the given shipment.
func (r *GormTransactionRepository) GetByShipmentID(
	ctx context.Context,
	shipmentID kernel.UUID,
) (*transaction.Transaction, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto TransactionDTO
	err := r.db.WithContext(ctx).First(&dto, "shipment_id = ?", shipmentID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipmentID", shipmentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
