package spacerepo

import (
	"context"
	"errors"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/space"
	"cargospace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSpaceRepository implements SpaceRepository using GORM.
type GormSpaceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSpaceRepository creates a new GORM space repository.
func NewGormSpaceRepository(db *gorm.DB, tracker aggregateTracker) *GormSpaceRepository {
	return &GormSpaceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new space to the database. A token ID collision surfaces as
// ObjectAlreadyExists via the unique index.
func (r *GormSpaceRepository) Add(ctx context.Context, aggregate *space.Space) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("tokenId", aggregate.TokenID(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing space to the database.
func (r *GormSpaceRepository) Update(ctx context.Context, aggregate *space.Space) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SpaceDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a space by ID.
func (r *GormSpaceRepository) Get(ctx context.Context, id kernel.UUID) (*space.Space, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SpaceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("space", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a space by ID holding a row lock until the
// surrounding transaction ends. Concurrent bookings of the same space
// serialize on this lock.
func (r *GormSpaceRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*space.Space, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SpaceDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("space", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTokenID retrieves a space by its capacity token ID.
func (r *GormSpaceRepository) GetByTokenID(ctx context.Context, tokenID string) (*space.Space, error) {
	if tokenID == "" {
		return nil, errs.NewValueIsRequiredError("tokenId")
	}

	var dto SpaceDTO
	if err := r.db.WithContext(ctx).First(&dto, "token_id = ?", tokenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tokenId", tokenID)
		}
		return nil, err
	}

	return toDomain(dto)
}
