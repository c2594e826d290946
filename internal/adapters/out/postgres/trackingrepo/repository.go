package trackingrepo

import (
	"context"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GormTrackingEventRepository implements TrackingEventRepository using GORM.
// Only Add exists; reads of the audit trail go through the query side.
type GormTrackingEventRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTrackingEventRepository creates a new GORM tracking event
// repository.
func NewGormTrackingEventRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackingEventRepository {
	return &GormTrackingEventRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a tracking event to the audit trail.
func (r *GormTrackingEventRepository) Add(ctx context.Context, event *shipment.TrackingEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(event.ID(), event)
	return nil
}
