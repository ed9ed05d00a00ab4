package entities

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents a ledger entry direction
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

// Transaction represents one entry in a user's ledger. The three entries of a
// settlement share one TxReference so the parties' ledgers correlate.
type Transaction struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID       `json:"userId"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	CropID      *uuid.UUID      `json:"cropId,omitempty"`
	TxReference string          `json:"txReference"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Order represents a customer's completed purchase of a crop lot
type Order struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	CustomerID  uuid.UUID `json:"customerId"`
	CropID      uuid.UUID `json:"cropId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
}
