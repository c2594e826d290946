// Package spacerepo provides data transfer objects and mapping functions for
// space persistence. Implements the repository pattern for the space domain
// aggregate, handling the conversion between domain entities and database
// representations.
package spacerepo

import (
	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/space"

	"github.com/google/uuid"
)

// SpaceDTO represents the database structure for persisting space
// aggregates. The unique index on TokenID backs the global token uniqueness
// invariant under concurrent creators.
type SpaceDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TokenID     string    `gorm:"uniqueIndex"`
	Source      string
	Destination string
	Dimensions  string
	MaxWeight   int
	OwnerID     uuid.UUID `gorm:"type:uuid;index"`
	Status      string
}

// TableName specifies the database table name for space entities.
func (SpaceDTO) TableName() string {
	return "spaces"
}

func fromDomain(aggregate *space.Space) SpaceDTO {
	return SpaceDTO{
		ID:          aggregate.ID().Bytes(),
		TokenID:     aggregate.TokenID(),
		Source:      aggregate.Source(),
		Destination: aggregate.Destination(),
		Dimensions:  aggregate.Dimensions(),
		MaxWeight:   aggregate.MaxWeight(),
		OwnerID:     aggregate.Owner().Bytes(),
		Status:      aggregate.Status().String(),
	}
}

func toDomain(dto SpaceDTO) (*space.Space, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	status, err := space.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return space.RestoreSpace(
		id,
		dto.TokenID,
		dto.Source,
		dto.Destination,
		dto.Dimensions,
		dto.MaxWeight,
		ownerID,
		status,
	)
}
