package user

import (
	"fmt"

	"cargospace/internal/pkg/errs"
)

// Role classifies what a user does on the platform.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleUser books shipments against offered spaces.
	RoleUser

	// RoleLogistics offers logistics spaces for booking.
	RoleLogistics

	// RoleDeveloper has API access for integrations.
	RoleDeveloper
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:   "unknown",
		RoleUser:      "user",
		RoleLogistics: "logistics",
		RoleDeveloper: "developer",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleUser:      "user",
		RoleLogistics: "logistics",
		RoleDeveloper: "developer",
	}
}

// RoleFromString parses a wire-format role literal.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of the closed set of valid values.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire-format literal for the role, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
