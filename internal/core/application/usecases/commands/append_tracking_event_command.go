package commands

import (
	"errors"
	"time"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/pkg/errs"
	"cargospace/internal/pkg/guard"
)

// ErrAppendTrackingEventCommandIsNotConstructed is returned when an
// AppendTrackingEventCommand bypassed its constructor.
var ErrAppendTrackingEventCommandIsNotConstructed = errors.New(
	"AppendTrackingEventCommand must be created via NewAppendTrackingEventCommand constructor")

// AppendTrackingEventCommand represents a courier-side tracking report for a
// shipment.
type AppendTrackingEventCommand struct { //nolint:recvcheck //using for validation
	eventID    kernel.UUID
	shipmentID kernel.UUID
	eventType  string
	location   string
	details    string
	timestamp  time.Time

	guard guard.ConstructorGuard
}

// NewAppendTrackingEventCommand creates a command to append a tracking
// event. Details are optional free text; a zero timestamp means the event is
// stamped on receipt.
func NewAppendTrackingEventCommand(
	eventID kernel.UUID,
	shipmentID kernel.UUID,
	eventType string,
	location string,
	details string,
	timestamp time.Time,
) (AppendTrackingEventCommand, error) {
	cmd := AppendTrackingEventCommand{
		details:   details,
		timestamp: timestamp,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEventID(eventID),
		cmd.setShipmentID(shipmentID),
		cmd.setEventType(eventType),
		cmd.setLocation(location),
	); err != nil {
		return AppendTrackingEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AppendTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrAppendTrackingEventCommandIsNotConstructed)
}

// EventID returns the identifier for the new event.
func (c AppendTrackingEventCommand) EventID() kernel.UUID {
	return c.eventID
}

// ShipmentID returns the tracked shipment.
func (c AppendTrackingEventCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// EventType returns the reported event kind.
func (c AppendTrackingEventCommand) EventType() string {
	return c.eventType
}

// Location returns where the event was reported from.
func (c AppendTrackingEventCommand) Location() string {
	return c.location
}

// Details returns optional free-text details.
func (c AppendTrackingEventCommand) Details() string {
	return c.details
}

// Timestamp returns the reported event time, zero when unset.
func (c AppendTrackingEventCommand) Timestamp() time.Time {
	return c.timestamp
}

func (c *AppendTrackingEventCommand) setEventID(eventID kernel.UUID) error {
	if err := eventID.Validate(); err != nil {
		return err
	}
	c.eventID = eventID
	return nil
}

func (c *AppendTrackingEventCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *AppendTrackingEventCommand) setEventType(eventType string) error {
	if eventType == "" {
		return errs.NewValueIsRequiredError("eventType")
	}
	c.eventType = eventType
	return nil
}

func (c *AppendTrackingEventCommand) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	c.location = location
	return nil
}
