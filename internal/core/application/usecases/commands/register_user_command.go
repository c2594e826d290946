package commands

import (
	"errors"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/user"
	"cargospace/internal/pkg/errs"
	"cargospace/internal/pkg/guard"
)

// ErrRegisterUserCommandIsNotConstructed is returned when a
// RegisterUserCommand bypassed its constructor.
var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor")

// RegisterUserCommand represents a request to register a platform account.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID        kernel.UUID
	username      string
	email         string
	firstName     string
	lastName      string
	role          user.Role
	walletAddress string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user. Name parts
// and wallet address are optional; the wallet only matters for accounts that
// settle on chain.
func NewRegisterUserCommand(
	userID kernel.UUID,
	username string,
	email string,
	firstName string,
	lastName string,
	role user.Role,
	walletAddress string,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		firstName:     firstName,
		lastName:      lastName,
		walletAddress: walletAddress,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setUsername(username),
		cmd.setEmail(email),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new user.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Username returns the login name.
func (c RegisterUserCommand) Username() string {
	return c.username
}

// Email returns the contact email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// FirstName returns the optional first name.
func (c RegisterUserCommand) FirstName() string {
	return c.firstName
}

// LastName returns the optional last name.
func (c RegisterUserCommand) LastName() string {
	return c.lastName
}

// Role returns the platform role.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

// WalletAddress returns the optional settlement wallet.
func (c RegisterUserCommand) WalletAddress() string {
	return c.walletAddress
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
