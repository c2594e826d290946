package queries

import (
	"errors"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/pkg/guard"
)

var ErrGetSpaceByIDQueryIsNotConstructed = errors.New(
	"GetSpaceByIDQuery must be created via NewGetSpaceByIDQuery constructor",
)

// GetSpaceByIDQuery retrieves a single logistics space.
type GetSpaceByIDQuery struct {
	spaceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSpaceByIDQuery creates a query for one space.
func NewGetSpaceByIDQuery(spaceID kernel.UUID) (GetSpaceByIDQuery, error) {
	if err := spaceID.Validate(); err != nil {
		return GetSpaceByIDQuery{}, err
	}
	return GetSpaceByIDQuery{
		spaceID: spaceID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSpaceByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetSpaceByIDQueryIsNotConstructed)
}

// SpaceID returns the requested space.
func (q GetSpaceByIDQuery) SpaceID() kernel.UUID {
	return q.spaceID
}
