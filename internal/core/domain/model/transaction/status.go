package transaction

import (
	"fmt"

	"cargospace/internal/pkg/errs"
)

// Status represents the confirmation state of a payment transaction.
// A transaction is created Pending and moves to Completed exactly once,
// when its blockchain hash is recorded.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending means the payment intent is recorded but not yet confirmed.
	Pending

	// Completed means the payment was confirmed with a blockchain hash.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Completed: "completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Completed: "completed",
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
		"status", fmt.Errorf("%q is not a valid transaction status", s))
}

// Validate checks that the Status is one of the closed set of valid values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid transaction status", s))
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
