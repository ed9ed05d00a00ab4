package models

import (
	"time"

	"github.com/google/uuid"
)

type Crop struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FarmerID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type            string     `gorm:"type:varchar(100);not null"`
	Quantity        int        `gorm:"not null"`
	PricePerKg      float64    `gorm:"not null"`
	Cultivation     string     `gorm:"type:varchar(100)"`
	FarmLocation    string     `gorm:"type:varchar(255)"`
	HarvestDate     string     `gorm:"type:varchar(50)"`
	Status          string     `gorm:"type:varchar(50);not null;index"`
	TransporterID   *uuid.UUID `gorm:"type:uuid;index"`
	CustomerID      *uuid.UUID `gorm:"type:uuid;index"`
	FarmerName      string     `gorm:"type:varchar(100)"`
	TransporterName *string    `gorm:"type:varchar(100)"`
	QRTag           string     `gorm:"type:varchar(50);column:qr_tag"`
	TxReference     string     `gorm:"type:varchar(66)"`
	ApprovedAt      *time.Time
	RejectedAt      *time.Time
	PickedUpAt      *time.Time
	InTransitAt     *time.Time
	DeliveredAt     *time.Time
	ConfirmedAt     *time.Time
	SoldAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
