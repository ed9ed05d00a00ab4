package models

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type        string     `gorm:"type:varchar(20);not null"`
	Amount      float64    `gorm:"not null"`
	Description string     `gorm:"type:varchar(255)"`
	CropID      *uuid.UUID `gorm:"type:uuid;index"`
	TxReference string     `gorm:"type:varchar(66);index"`
	CreatedAt   time.Time
}

type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CropID      uuid.UUID `gorm:"type:uuid;not null"`
	ProductName string    `gorm:"type:varchar(150)"`
	Quantity    int       `gorm:"not null"`
	Amount      float64   `gorm:"not null"`
	CreatedAt   time.Time
}
