package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"agro-chain.backend/internal/domain/entities"
	"agro-chain.backend/internal/infrastructure/models"
)

// TransactionRepository implements ledger entry data operations
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create appends a ledger entry
func (r *TransactionRepository) Create(ctx context.Context, tx *entities.Transaction) error {
	m := &models.Transaction{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Description: tx.Description,
		CropID:      tx.CropID,
		TxReference: tx.TxReference,
		CreatedAt:   tx.CreatedAt,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	tx.ID = m.ID
	return nil
}

// GetByUserID gets a user's ledger with pagination, newest first
func (r *TransactionRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Transaction, int, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Transaction
	if err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	txs := make([]*entities.Transaction, 0, len(ms))
	for i := range ms {
		txs = append(txs, r.toEntity(&ms[i]))
	}
	return txs, int(total), nil
}

// GetByTxReference gets every ledger entry sharing a settlement reference
func (r *TransactionRepository) GetByTxReference(ctx context.Context, ref string) ([]*entities.Transaction, error) {
	var ms []models.Transaction
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("tx_reference = ?", ref).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	txs := make([]*entities.Transaction, 0, len(ms))
	for i := range ms {
		txs = append(txs, r.toEntity(&ms[i]))
	}
	return txs, nil
}

func (r *TransactionRepository) toEntity(m *models.Transaction) *entities.Transaction {
	return &entities.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        entities.TransactionType(m.Type),
		Amount:      m.Amount,
		Description: m.Description,
		CropID:      m.CropID,
		TxReference: m.TxReference,
		CreatedAt:   m.CreatedAt,
	}
}

// OrderRepository implements purchase order data operations
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create appends an order
func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	m := &models.Order{
		ID:          order.ID,
		CustomerID:  order.CustomerID,
		CropID:      order.CropID,
		ProductName: order.ProductName,
		Quantity:    order.Quantity,
		Amount:      order.Amount,
		CreatedAt:   order.CreatedAt,
	}
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(m).Error
}

// GetByCustomerID gets a customer's orders, newest first
func (r *OrderRepository) GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entities.Order, error) {
	var ms []models.Order
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	orders := make([]*entities.Order, 0, len(ms))
	for i := range ms {
		m := ms[i]
		orders = append(orders, &entities.Order{
			ID:          m.ID,
			CustomerID:  m.CustomerID,
			CropID:      m.CropID,
			ProductName: m.ProductName,
			Quantity:    m.Quantity,
			Amount:      m.Amount,
			CreatedAt:   m.CreatedAt,
		})
	}
	return orders, nil
}
