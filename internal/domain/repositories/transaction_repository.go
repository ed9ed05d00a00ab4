package repositories

import (
	"context"

	"github.com/google/uuid"
	"agro-chain.backend/internal/domain/entities"
)

// TransactionRepository defines ledger entry data operations
type TransactionRepository interface {
	Create(ctx context.Context, tx *entities.Transaction) error
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Transaction, int, error)
	GetByTxReference(ctx context.Context, ref string) ([]*entities.Transaction, error)
}

// OrderRepository defines purchase order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entities.Order, error)
}
