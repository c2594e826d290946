package user

import (
	"errors"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User is a platform identity. Username, email, and wallet address (when
// present) are each globally unique; the repository enforces that. A user is
// immutable once created; profile editing is out of scope.
type User struct {
	id            kernel.UUID
	username      string
	email         string
	firstName     string
	lastName      string
	role          Role
	walletAddress string

	isConstructed bool
}

// NewUser creates a User after validating identity fields. The wallet
// address is optional (empty means the user has none).
func NewUser(
	id kernel.UUID,
	username string,
	email string,
	firstName string,
	lastName string,
	role Role,
	walletAddress string,
) (*User, error) {
	u := &User{
		firstName:     firstName,
		lastName:      lastName,
		walletAddress: walletAddress,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(
	id kernel.UUID,
	username string,
	email string,
	firstName string,
	lastName string,
	role Role,
	walletAddress string,
) (*User, error) {
	return NewUser(id, username, email, firstName, lastName, role, walletAddress)
}

// Validate ensures the User was built through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the globally unique username.
func (u *User) Username() string {
	return u.username
}

// Email returns the globally unique email address.
func (u *User) Email() string {
	return u.email
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name.
func (u *User) LastName() string {
	return u.lastName
}

// Role returns the user's platform role.
func (u *User) Role() Role {
	return u.role
}

// WalletAddress returns the optional wallet address, empty when absent.
func (u *User) WalletAddress() string {
	return u.walletAddress
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
