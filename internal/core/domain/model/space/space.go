package space

import (
	"errors"
	"fmt"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/pkg/errs"
)

// ErrSpaceIsNotConstructed is returned when a Space instance was not created
// through NewSpace or RestoreSpace.
var ErrSpaceIsNotConstructed = errors.New("Space must be created via NewSpace or RestoreSpace constructor")

// Space is a unit of transportable capacity offered for booking. It is an
// aggregate root identified by a globally unique, immutable token ID.
//
// Invariants:
//   - tokenID, route, dimensions, maxWeight, and owner never change after
//     creation; status is the only mutable field
//   - maxWeight is positive
//   - status is always one of the closed valid set
type Space struct {
	id          kernel.UUID
	tokenID     string
	source      string
	destination string
	dimensions  string
	maxWeight   int
	ownerID     kernel.UUID
	status      Status

	isConstructed bool
}

// NewSpace creates a Space in Available status after validating all fields.
// The owner is the logistics user offering the capacity; tokenID uniqueness
// is enforced by the repository, not here.
func NewSpace(
	id kernel.UUID,
	tokenID string,
	source string,
	destination string,
	dimensions string,
	maxWeight int,
	ownerID kernel.UUID,
) (*Space, error) {
	s := &Space{
		status:        Available,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTokenID(tokenID),
		s.setRoute(source, destination),
		s.setDimensions(dimensions),
		s.setMaxWeight(maxWeight),
		s.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSpace reconstructs a Space from persistence, including its stored
// status. Used only by storage adapters.
func RestoreSpace(
	id kernel.UUID,
	tokenID string,
	source string,
	destination string,
	dimensions string,
	maxWeight int,
	ownerID kernel.UUID,
	status Status,
) (*Space, error) {
	s, err := NewSpace(id, tokenID, source, destination, dimensions, maxWeight, ownerID)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	s.status = status

	return s, nil
}

// Validate ensures the Space was built through a constructor.
func (s *Space) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSpaceIsNotConstructed
	}
	return nil
}

// IsEqual compares two spaces by identifier.
func (s *Space) IsEqual(other *Space) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the space's unique identifier.
func (s *Space) ID() kernel.UUID {
	return s.id
}

// TokenID returns the globally unique capacity token.
func (s *Space) TokenID() string {
	return s.tokenID
}

// Source returns the route origin.
func (s *Space) Source() string {
	return s.source
}

// Destination returns the route destination.
func (s *Space) Destination() string {
	return s.destination
}

// Dimensions returns the free-form "LxWxH" dimensions string.
func (s *Space) Dimensions() string {
	return s.dimensions
}

// MaxWeight returns the maximum cargo weight in kilograms.
func (s *Space) MaxWeight() int {
	return s.maxWeight
}

// Owner returns the ID of the logistics user offering the space.
func (s *Space) Owner() kernel.UUID {
	return s.ownerID
}

// Status returns the current availability status.
func (s *Space) Status() Status {
	return s.status
}

// Book marks the space fully committed. Returns a Conflict error when the
// space is already booked; the booking flow relies on that message.
func (s *Space) Book() error {
	newStatus, err := s.status.Book()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// SetStatus forces the space into any valid status. Used by the operator
// endpoint; no transition legality beyond variant validity is checked here.
func (s *Space) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	s.status = status
	return nil
}

func (s *Space) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Space) setTokenID(tokenID string) error {
	if tokenID == "" {
		return errs.NewValueIsRequiredError("tokenId")
	}
	s.tokenID = tokenID
	return nil
}

func (s *Space) setRoute(source, destination string) error {
	if source == "" {
		return errs.NewValueIsRequiredError("source")
	}
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	s.source = source
	s.destination = destination
	return nil
}

func (s *Space) setDimensions(dimensions string) error {
	if dimensions == "" {
		return errs.NewValueIsRequiredError("dimensions")
	}
	s.dimensions = dimensions
	return nil
}

func (s *Space) setMaxWeight(maxWeight int) error {
	if maxWeight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxWeight", fmt.Errorf("%d is not greater than 0", maxWeight))
	}
	s.maxWeight = maxWeight
	return nil
}

func (s *Space) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	s.ownerID = ownerID
	return nil
}
