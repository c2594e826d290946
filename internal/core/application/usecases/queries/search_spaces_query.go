// Package queries contains read-only operations against the database.
// Implements the Query pattern of the CQRS architecture: handlers run raw
// SQL and return flat read models, bypassing the aggregate constructors.
package queries

import (
	"errors"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/space"
	"cargospace/internal/pkg/guard"
)

var ErrSearchSpacesQueryIsNotConstructed = errors.New(
	"SearchSpacesQuery must be created via NewSearchSpacesQuery constructor",
)

// SearchSpacesQuery retrieves logistics spaces matching a route. Source and
// destination are exact-match filters combined with AND; an empty string
// matches everything on that side, so the zero-filter query backs the
// catalog listing.
//
// Example:
//
//	query := NewSearchSpacesQuery("Rotterdam", "")
//	handler := NewSearchSpacesQueryHandler(db)
//
//	spaces, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to search spaces: %w", err)
//	}
//
//	fmt.Printf("Found %d spaces\n", len(spaces))
type SearchSpacesQuery struct {
	source      string
	destination string

	guard guard.ConstructorGuard
}

// NewSearchSpacesQuery creates a query matching spaces by source and
// destination. Pass empty strings to leave either side unfiltered.
func NewSearchSpacesQuery(source, destination string) SearchSpacesQuery {
	return SearchSpacesQuery{
		source:      source,
		destination: destination,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q SearchSpacesQuery) Validate() error {
	return q.guard.Validate(ErrSearchSpacesQueryIsNotConstructed)
}

// Source returns the route origin filter; empty matches all.
func (q SearchSpacesQuery) Source() string {
	return q.source
}

// Destination returns the route destination filter; empty matches all.
func (q SearchSpacesQuery) Destination() string {
	return q.destination
}

// SearchSpacesQueryResponse represents a logistics space read model.
type SearchSpacesQueryResponse struct {
	ID          kernel.UUID
	TokenID     string
	Source      string
	Destination string
	Dimensions  string
	MaxWeight   int
	OwnerID     kernel.UUID
	Status      space.Status
}
