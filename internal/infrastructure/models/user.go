package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role            string    `gorm:"type:varchar(50);not null;index"`
	Name            string    `gorm:"type:varchar(100)"`
	CompanyName     *string   `gorm:"type:varchar(100)"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	Mobile          *string   `gorm:"type:varchar(50)"`
	FarmAddress     *string   `gorm:"type:varchar(255)"`
	Address         *string   `gorm:"type:varchar(255)"`
	VehicleType     *string   `gorm:"type:varchar(100)"`
	WalletAddress   string    `gorm:"type:varchar(255);not null"`
	WalletNetworkID *string   `gorm:"type:varchar(50)"`
	Balance         float64   `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
