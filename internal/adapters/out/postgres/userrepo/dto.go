// Package userrepo provides data transfer objects and mapping functions for
// user persistence.
package userrepo

import (
	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting users. Wallet
// addresses are nullable so users without one don't collide on the unique
// index.
type UserDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username      string    `gorm:"uniqueIndex"`
	Email         string    `gorm:"uniqueIndex"`
	FirstName     string
	LastName      string
	Role          string
	WalletAddress *string `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	var walletAddress *string
	if w := aggregate.WalletAddress(); w != "" {
		walletAddress = &w
	}

	return UserDTO{
		ID:            aggregate.ID().Bytes(),
		Username:      aggregate.Username(),
		Email:         aggregate.Email(),
		FirstName:     aggregate.FirstName(),
		LastName:      aggregate.LastName(),
		Role:          aggregate.Role().String(),
		WalletAddress: walletAddress,
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	walletAddress := ""
	if dto.WalletAddress != nil {
		walletAddress = *dto.WalletAddress
	}

	return user.RestoreUser(
		id,
		dto.Username,
		dto.Email,
		dto.FirstName,
		dto.LastName,
		role,
		walletAddress,
	)
}
