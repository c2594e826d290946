package shipment

import (
	"fmt"

	"cargospace/internal/pkg/errs"
)

// Status represents the delivery lifecycle state of a shipment.
//
// The statuses form a total order:
//
//	pending < confirmed < in_transit < delivered
//
// A shipment only ever moves forward through that order. Repeating the
// current status is an idempotent no-op; skipping ahead is legal (a
// "delivered" tracking event may arrive before a "pickup" one); moving
// backward is an InvalidTransition error. Delivered is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly booked shipment, waiting
	// for its payment transaction.
	Pending

	// Confirmed means a payment transaction has been recorded.
	Confirmed

	// InTransit means the carrier has picked the cargo up.
	InTransit

	// Delivered is the terminal status.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		InTransit: "in_transit",
		Delivered: "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		InTransit: "in_transit",
		Delivered: "delivered",
	}
}

// StatusFromString parses a wire-format status literal. Only the closed set
// of valid statuses is accepted.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid shipment status", s))
}

// Validate checks that the Status is one of the closed set of valid values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// String returns the wire-format literal for the status, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// AdvanceTo validates a move to target and returns the resulting status.
//
//   - target == current: idempotent no-op, returns current
//   - target after current in the lifecycle order: returns target
//   - target before current: InvalidTransition, the status never regresses
func (s Status) AdvanceTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if target < s {
		return 0, errs.NewInvalidTransitionError("shipment", s.String(), target.String())
	}

	return target, nil
}
