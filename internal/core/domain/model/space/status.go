package space

import (
	"fmt"

	"cargospace/internal/pkg/errs"
)

// Status represents the availability state of a logistics space.
//
// Every space starts as Available. Booking a shipment against a space moves
// it to Booked. Partial is a valid operator-settable state (a space whose
// capacity is partly committed outside the system); no automatic call path
// produces it, but it round-trips through storage and SetSpaceStatus.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available means the space accepts bookings.
	Available

	// Partial means part of the capacity is committed. Bookings are still
	// accepted; only Booked rejects them.
	Partial

	// Booked means the space is fully committed and rejects further
	// bookings.
	Booked
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Available: "available",
		Partial:   "partial",
		Booked:    "booked",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "available",
		Partial:   "partial",
		Booked:    "booked",
	}
}

// StatusFromString parses a wire-format status literal. Only the closed set
// of valid statuses is accepted; any other string is a ValueIsInvalid error.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid space status", s))
}

// Validate checks that the Status is one of the closed set of valid values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid space status", s))
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

// Book transitions the status to Booked. Available and Partial spaces can be
// booked; a Booked space rejects the move with a Conflict error carrying the
// "space already booked" message the booking flow relies on.
func (s Status) Book() (Status, error) {
	if s == Booked {
		return 0, errs.NewConflictError("space already booked")
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Booked, nil
}
