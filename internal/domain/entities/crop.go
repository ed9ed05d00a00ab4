package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// CropStatus represents a crop listing's position in the supply chain
type CropStatus string

const (
	CropStatusPending              CropStatus = "pending"
	CropStatusApproved             CropStatus = "approved"
	CropStatusPickedUp             CropStatus = "picked_up"
	CropStatusInTransit            CropStatus = "in_transit"
	CropStatusAwaitingConfirmation CropStatus = "awaiting_confirmation"
	CropStatusDelivered            CropStatus = "delivered"
	CropStatusSold                 CropStatus = "sold"
	CropStatusRejected             CropStatus = "rejected"
)

// Terminal reports whether no further transition can leave the status.
func (s CropStatus) Terminal() bool {
	return s == CropStatusSold || s == CropStatusRejected
}

// Crop represents a farmer's sellable batch of produce. Quantity and price
// are immutable after creation; there is no partial fulfillment. Status moves
// only through the lifecycle usecase.
type Crop struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	FarmerID     uuid.UUID  `json:"farmerId"`
	Type         string     `json:"type"`
	Quantity     int        `json:"quantity"`
	PricePerKg   float64    `json:"pricePerKg"`
	Cultivation  string     `json:"cultivation"`
	FarmLocation string     `json:"farmLocation"`
	HarvestDate  string     `json:"harvestDate"`
	Status       CropStatus `json:"status"`

	TransporterID *uuid.UUID `json:"transporterId,omitempty"`
	CustomerID    *uuid.UUID `json:"customerId,omitempty"`

	// Display names frozen at the moment the party entered the chain; a later
	// rename does not rewrite history.
	FarmerName      string      `json:"farmerName"`
	TransporterName null.String `json:"transporterName,omitempty"`

	// Placeholder identifiers attached at creation
	QRTag       string `json:"qrTag"`
	TxReference string `json:"txReference"`

	// Stage timestamps
	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
	RejectedAt  *time.Time `json:"rejectedAt,omitempty"`
	PickedUpAt  *time.Time `json:"pickedUpAt,omitempty"`
	InTransitAt *time.Time `json:"inTransitAt,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
	SoldAt      *time.Time `json:"soldAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TotalPrice returns the whole-lot price a customer pays.
func (c *Crop) TotalPrice() float64 {
	return float64(c.Quantity) * c.PricePerKg
}

// AddCropInput represents input for listing a crop
type AddCropInput struct {
	Type         string  `json:"type" binding:"required"`
	Quantity     int     `json:"quantity" binding:"required,gt=0"`
	PricePerKg   float64 `json:"pricePerKg" binding:"required,gt=0"`
	Cultivation  string  `json:"cultivation" binding:"required"`
	FarmLocation string  `json:"farmLocation" binding:"required"`
	HarvestDate  string  `json:"harvestDate" binding:"required"`
}

// SettlementBreakdown reports the amounts moved when arrival is confirmed
type SettlementBreakdown struct {
	CropID           uuid.UUID `json:"cropId"`
	FarmerPayment    float64   `json:"farmerPayment"`
	TransportPayment float64   `json:"transportPayment"`
	TotalPayment     float64   `json:"totalPayment"`
	TxReference      string    `json:"txReference"`
}
