package shipment

import (
	"errors"
	"fmt"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New(
	"Shipment must be created via NewShipment or RestoreShipment constructor")

// Shipment is a booking of cargo against exactly one logistics space, owned
// by exactly one requesting user and tracked through the delivery lifecycle.
//
// Invariants:
//   - spaceID and ownerID never change after creation
//   - weight is positive
//   - status only moves forward through the lifecycle order (see Status)
type Shipment struct {
	id        kernel.UUID
	spaceID   kernel.UUID
	ownerID   kernel.UUID
	goodsType string
	weight    int
	status    Status

	isConstructed bool
}

// NewShipment creates a Shipment in Pending status after validating all
// fields. The space's availability is the booking flow's concern, not this
// constructor's.
func NewShipment(
	id kernel.UUID,
	spaceID kernel.UUID,
	ownerID kernel.UUID,
	goodsType string,
	weight int,
) (*Shipment, error) {
	sh := &Shipment{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		sh.setID(id),
		sh.setSpaceID(spaceID),
		sh.setOwnerID(ownerID),
		sh.setGoodsType(goodsType),
		sh.setWeight(weight),
	); err != nil {
		return nil, err
	}

	return sh, nil
}

// RestoreShipment reconstructs a Shipment from persistence, including its
// stored status. Used only by storage adapters.
func RestoreShipment(
	id kernel.UUID,
	spaceID kernel.UUID,
	ownerID kernel.UUID,
	goodsType string,
	weight int,
	status Status,
) (*Shipment, error) {
	sh, err := NewShipment(id, spaceID, ownerID, goodsType, weight)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	sh.status = status

	return sh, nil
}

// Validate ensures the Shipment was built through a constructor.
func (sh *Shipment) Validate() error {
	if sh == nil || !sh.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by identifier.
func (sh *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && sh.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (sh *Shipment) ID() kernel.UUID {
	return sh.id
}

// SpaceID returns the booked logistics space. Immutable after creation.
func (sh *Shipment) SpaceID() kernel.UUID {
	return sh.spaceID
}

// Owner returns the requesting user's ID.
func (sh *Shipment) Owner() kernel.UUID {
	return sh.ownerID
}

// GoodsType returns the declared cargo category.
func (sh *Shipment) GoodsType() string {
	return sh.goodsType
}

// Weight returns the cargo weight in kilograms.
func (sh *Shipment) Weight() int {
	return sh.weight
}

// Status returns the current lifecycle status.
func (sh *Shipment) Status() Status {
	return sh.status
}

// AdvanceTo moves the shipment forward in its lifecycle. Repeating the
// current status is a no-op; a backward move fails with InvalidTransition
// and leaves the shipment unchanged.
func (sh *Shipment) AdvanceTo(target Status) error {
	newStatus, err := sh.status.AdvanceTo(target)
	if err != nil {
		return err
	}

	sh.status = newStatus
	return nil
}

func (sh *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	sh.id = id
	return nil
}

func (sh *Shipment) setSpaceID(spaceID kernel.UUID) error {
	if err := spaceID.Validate(); err != nil {
		return err
	}
	sh.spaceID = spaceID
	return nil
}

func (sh *Shipment) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	sh.ownerID = ownerID
	return nil
}

func (sh *Shipment) setGoodsType(goodsType string) error {
	if goodsType == "" {
		return errs.NewValueIsRequiredError("goodsType")
	}
	sh.goodsType = goodsType
	return nil
}

func (sh *Shipment) setWeight(weight int) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%d is not greater than 0", weight))
	}
	sh.weight = weight
	return nil
}
