package queries

import (
	"errors"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/pkg/guard"
)

var ErrGetSpacesByOwnerQueryIsNotConstructed = errors.New(
	"GetSpacesByOwnerQuery must be created via NewGetSpacesByOwnerQuery constructor",
)

// GetSpacesByOwnerQuery retrieves every logistics space registered by one
// owner.
type GetSpacesByOwnerQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSpacesByOwnerQuery creates a query for an owner's spaces.
func NewGetSpacesByOwnerQuery(ownerID kernel.UUID) (GetSpacesByOwnerQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetSpacesByOwnerQuery{}, err
	}
	return GetSpacesByOwnerQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSpacesByOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetSpacesByOwnerQueryIsNotConstructed)
}

// OwnerID returns the owning user.
func (q GetSpacesByOwnerQuery) OwnerID() kernel.UUID {
	return q.ownerID
}
