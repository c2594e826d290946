package shipment

import (
	"errors"
	"time"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/pkg/errs"
)

// Well-known tracking event types with lifecycle side effects. Any other
// event type is recorded in the audit trail without touching the shipment
// status.
const (
	EventTypePickup    = "pickup"
	EventTypeDelivered = "delivered"
)

// ErrTrackingEventIsNotConstructed is returned when a TrackingEvent was not
// created through NewTrackingEvent or RestoreTrackingEvent.
var ErrTrackingEventIsNotConstructed = errors.New(
	"TrackingEvent must be created via NewTrackingEvent or RestoreTrackingEvent constructor")

// TrackingEvent is one immutable entry of a shipment's audit trail. Events
// are append-only and ordered by creation; they are never updated or
// deleted.
type TrackingEvent struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	eventType  string
	location   string
	details    string
	timestamp  time.Time

	isConstructed bool
}

// NewTrackingEvent creates a TrackingEvent. Location and details are
// optional; a zero timestamp is replaced with the current UTC time, so the
// trail stays ordered by append time when carriers omit their own clock.
func NewTrackingEvent(
	id kernel.UUID,
	shipmentID kernel.UUID,
	eventType string,
	location string,
	details string,
	timestamp time.Time,
) (*TrackingEvent, error) {
	e := &TrackingEvent{
		location:      location,
		details:       details,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setShipmentID(shipmentID),
		e.setEventType(eventType),
	); err != nil {
		return nil, err
	}

	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}
	e.timestamp = timestamp

	return e, nil
}

// RestoreTrackingEvent reconstructs a TrackingEvent from persistence. Used
// only by storage adapters.
func RestoreTrackingEvent(
	id kernel.UUID,
	shipmentID kernel.UUID,
	eventType string,
	location string,
	details string,
	timestamp time.Time,
) (*TrackingEvent, error) {
	if timestamp.IsZero() {
		return nil, errs.NewValueIsRequiredError("timestamp")
	}
	return NewTrackingEvent(id, shipmentID, eventType, location, details, timestamp)
}

// Validate ensures the TrackingEvent was built through a constructor.
func (e *TrackingEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrTrackingEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *TrackingEvent) ID() kernel.UUID {
	return e.id
}

// ShipmentID returns the shipment the event belongs to.
func (e *TrackingEvent) ShipmentID() kernel.UUID {
	return e.shipmentID
}

// EventType returns the carrier-supplied event type literal.
func (e *TrackingEvent) EventType() string {
	return e.eventType
}

// Location returns the optional location string, empty when not supplied.
func (e *TrackingEvent) Location() string {
	return e.location
}

// Details returns the optional free-form details, empty when not supplied.
func (e *TrackingEvent) Details() string {
	return e.details
}

// Timestamp returns the event time.
func (e *TrackingEvent) Timestamp() time.Time {
	return e.timestamp
}

// DerivedStatus returns the shipment status implied by the event type and
// whether the event carries a lifecycle side effect at all.
func (e *TrackingEvent) DerivedStatus() (Status, bool) {
	switch e.eventType {
	case EventTypePickup:
		return InTransit, true
	case EventTypeDelivered:
		return Delivered, true
	default:
		return Unknown, false
	}
}

func (e *TrackingEvent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *TrackingEvent) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	e.shipmentID = shipmentID
	return nil
}

func (e *TrackingEvent) setEventType(eventType string) error {
	if eventType == "" {
		return errs.NewValueIsRequiredError("eventType")
	}
	e.eventType = eventType
	return nil
}
