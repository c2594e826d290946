package http

import "time"

// Request bodies.

type RegisterUserRequest struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Role          string `json:"role"`
	WalletAddress string `json:"walletAddress"`
}

type CreateSpaceRequest struct {
	TokenID     string `json:"tokenId"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Dimensions  string `json:"dimensions"`
	MaxWeight   int    `json:"maxWeight"`
	OwnerID     string `json:"ownerId"`
}

type BookShipmentRequest struct {
	SpaceID   string `json:"spaceId"`
	OwnerID   string `json:"ownerId"`
	GoodsType string `json:"goodsType"`
	Weight    int    `json:"weight"`
}

// SetStatusRequest is shared by the space and shipment status endpoints.
type SetStatusRequest struct {
	Status string `json:"status"`
}

type CreateTransactionRequest struct {
	ShipmentID string `json:"shipmentId"`
	Amount     int    `json:"amount"`
}

type ConfirmTransactionRequest struct {
	BlockchainTxHash string `json:"blockchainTxHash"`
}

type AppendTrackingEventRequest struct {
	ShipmentID string     `json:"shipmentId"`
	EventType  string     `json:"eventType"`
	Location   string     `json:"location"`
	Details    string     `json:"details"`
	Timestamp  *time.Time `json:"timestamp"`
}

// Response bodies.

type UserResponse struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	Role          string `json:"role"`
	WalletAddress string `json:"walletAddress,omitempty"`
}

type SpaceResponse struct {
	ID          string `json:"id"`
	TokenID     string `json:"tokenId"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Dimensions  string `json:"dimensions"`
	MaxWeight   int    `json:"maxWeight"`
	OwnerID     string `json:"ownerId"`
	Status      string `json:"status"`
}

type ShipmentResponse struct {
	ID        string    `json:"id"`
	SpaceID   string    `json:"spaceId"`
	OwnerID   string    `json:"ownerId"`
	GoodsType string    `json:"goodsType"`
	Weight    int       `json:"weight"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type TransactionResponse struct {
	ID               string `json:"id"`
	ShipmentID       string `json:"shipmentId"`
	Amount           int    `json:"amount"`
	Status           string `json:"status"`
	BlockchainTxHash string `json:"blockchainTxHash,omitempty"`
}

type TrackingEventResponse struct {
	ID         string    `json:"id"`
	ShipmentID string    `json:"shipmentId"`
	EventType  string    `json:"eventType"`
	Location   string    `json:"location,omitempty"`
	Details    string    `json:"details,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
