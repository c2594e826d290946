// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence.
package shipmentrepo

import (
	"time"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. CreatedAt is a storage concern only: the settlement reminder
// query needs booking times, the domain does not.
type ShipmentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SpaceID   uuid.UUID `gorm:"type:uuid;index"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index"`
	GoodsType string
	Weight    int
	Status    string
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:        aggregate.ID().Bytes(),
		SpaceID:   aggregate.SpaceID().Bytes(),
		OwnerID:   aggregate.Owner().Bytes(),
		GoodsType: aggregate.GoodsType(),
		Weight:    aggregate.Weight(),
		Status:    aggregate.Status().String(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	spaceID, err := kernel.UUIDFromBytes(dto.SpaceID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		spaceID,
		ownerID,
		dto.GoodsType,
		dto.Weight,
		status,
	)
}
