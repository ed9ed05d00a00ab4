package usecases

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"agro-chain.backend/internal/config"
	"agro-chain.backend/internal/domain/entities"
	"agro-chain.backend/internal/domain/repositories"
	"agro-chain.backend/pkg/logger"
	"agro-chain.backend/pkg/placeholder"
	"agro-chain.backend/pkg/utils"
)

// SettlementEngine distributes payment among the three parties of a
// delivered crop. It runs inside the caller's transaction scope; the caller
// decides atomicity by wrapping it together with the lifecycle transition.
type SettlementEngine struct {
	userRepo        repositories.UserRepository
	transactionRepo repositories.TransactionRepository
	cfg             config.SettlementConfig
}

// NewSettlementEngine creates a new settlement engine
func NewSettlementEngine(
	userRepo repositories.UserRepository,
	transactionRepo repositories.TransactionRepository,
	cfg config.SettlementConfig,
) *SettlementEngine {
	return &SettlementEngine{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		cfg:             cfg,
	}
}

// TransportFee returns the flat-rate transport payment for a lot size.
func (e *SettlementEngine) TransportFee(quantity int) float64 {
	return e.cfg.TransportBaseRate + float64(quantity)*e.cfg.TransportPerKgRate
}

// Settle credits the farmer and transporter, debits the warehouse, and
// appends the three ledger entries. All entries share one reference so the
// parties' ledgers correlate. The warehouse balance is allowed to go
// negative: warehouses model working capital without a floor.
func (e *SettlementEngine) Settle(
	ctx context.Context,
	crop *entities.Crop,
	farmer, transporter, warehouse *entities.User,
) (*entities.SettlementBreakdown, error) {
	farmerPayment := crop.TotalPrice()
	transportPayment := e.TransportFee(crop.Quantity)
	totalPayment := farmerPayment + transportPayment

	ref, err := placeholder.TxReference()
	if err != nil {
		return nil, err
	}

	if err := e.userRepo.UpdateBalance(ctx, farmer.ID, farmerPayment); err != nil {
		return nil, err
	}
	if err := e.userRepo.UpdateBalance(ctx, transporter.ID, transportPayment); err != nil {
		return nil, err
	}
	if err := e.userRepo.UpdateBalance(ctx, warehouse.ID, -totalPayment); err != nil {
		return nil, err
	}

	now := time.Now()
	entries := []*entities.Transaction{
		{
			UserID:      farmer.ID,
			Type:        entities.TransactionTypeCredit,
			Amount:      farmerPayment,
			Description: fmt.Sprintf("Crop payment: %s", crop.Type),
		},
		{
			UserID:      transporter.ID,
			Type:        entities.TransactionTypeCredit,
			Amount:      transportPayment,
			Description: fmt.Sprintf("Transport payment: %s", crop.Type),
		},
		{
			UserID:      warehouse.ID,
			Type:        entities.TransactionTypeDebit,
			Amount:      totalPayment,
			Description: fmt.Sprintf("Settlement: %s from %s", crop.Type, farmer.DisplayName()),
		},
	}
	for _, entry := range entries {
		entry.ID = utils.GenerateUUIDv7()
		entry.CropID = &crop.ID
		entry.TxReference = ref
		entry.CreatedAt = now
		if err := e.transactionRepo.Create(ctx, entry); err != nil {
			return nil, err
		}
	}

	logger.Info(ctx, "settlement completed",
		zap.String("cropId", crop.ID.String()),
		zap.String("txReference", ref),
		zap.Float64("farmerPayment", farmerPayment),
		zap.Float64("transportPayment", transportPayment),
		zap.Float64("totalPayment", totalPayment),
	)

	return &entities.SettlementBreakdown{
		CropID:           crop.ID,
		FarmerPayment:    farmerPayment,
		TransportPayment: transportPayment,
		TotalPayment:     totalPayment,
		TxReference:      ref,
	}, nil
}
