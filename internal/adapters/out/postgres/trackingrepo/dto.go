// Package trackingrepo provides data transfer objects and mapping functions
// for the append-only tracking audit trail.
package trackingrepo

import (
	"time"

	"cargospace/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// TrackingEventDTO represents the database structure for persisting tracking
// events. Rows are insert-only; history is never rewritten. Seq is a
// database-assigned sequence that fixes the append order: the event
// timestamp is caller-suppliable and may be backdated, so it cannot order
// the trail.
type TrackingEventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int64     `gorm:"autoIncrement"`
	ShipmentID uuid.UUID `gorm:"type:uuid;index"`
	EventType  string
	Location   string
	Details    string
	Timestamp  time.Time
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

func fromDomain(event *shipment.TrackingEvent) TrackingEventDTO {
	return TrackingEventDTO{
		ID:         event.ID().Bytes(),
		ShipmentID: event.ShipmentID().Bytes(),
		EventType:  event.EventType(),
		Location:   event.Location(),
		Details:    event.Details(),
		Timestamp:  event.Timestamp(),
	}
}
