package usecases

import (
	"context"

	"github.com/google/uuid"

	"agro-chain.backend/internal/domain/entities"
	"agro-chain.backend/internal/domain/repositories"
	"agro-chain.backend/pkg/utils"
)

// MarketplaceUsecase is the read side of the marketplace: filtered listings,
// directories, ledgers, orders. The rendering layer consumes these instead
// of touching the store.
type MarketplaceUsecase struct {
	cropRepo  repositories.CropRepository
	userRepo  repositories.UserRepository
	txRepo    repositories.TransactionRepository
	orderRepo repositories.OrderRepository
}

// NewMarketplaceUsecase creates a new marketplace usecase
func NewMarketplaceUsecase(
	cropRepo repositories.CropRepository,
	userRepo repositories.UserRepository,
	txRepo repositories.TransactionRepository,
	orderRepo repositories.OrderRepository,
) *MarketplaceUsecase {
	return &MarketplaceUsecase{
		cropRepo:  cropRepo,
		userRepo:  userRepo,
		txRepo:    txRepo,
		orderRepo: orderRepo,
	}
}

// GetCrop returns one crop listing
func (u *MarketplaceUsecase) GetCrop(ctx context.Context, id uuid.UUID) (*entities.Crop, error) {
	return u.cropRepo.GetByID(ctx, id)
}

// CropsByStatus returns crops in a lifecycle state
func (u *MarketplaceUsecase) CropsByStatus(ctx context.Context, status entities.CropStatus) ([]*entities.Crop, error) {
	return u.cropRepo.GetByStatus(ctx, status)
}

// ListingsOf returns a farmer's listings
func (u *MarketplaceUsecase) ListingsOf(ctx context.Context, farmerID uuid.UUID) ([]*entities.Crop, error) {
	return u.cropRepo.GetByFarmerID(ctx, farmerID)
}

// JobsOf returns the crops assigned to a transporter
func (u *MarketplaceUsecase) JobsOf(ctx context.Context, transporterID uuid.UUID) ([]*entities.Crop, error) {
	return u.cropRepo.GetByTransporterID(ctx, transporterID)
}

// AvailableJobs returns approved crops with no transporter assigned
func (u *MarketplaceUsecase) AvailableJobs(ctx context.Context) ([]*entities.Crop, error) {
	return u.cropRepo.GetAvailableJobs(ctx)
}

// GetUser returns one account
func (u *MarketplaceUsecase) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// Directory returns users, optionally filtered by role
func (u *MarketplaceUsecase) Directory(ctx context.Context, role entities.UserRole) ([]*entities.User, error) {
	return u.userRepo.List(ctx, role)
}

// LedgerOf returns a page of a user's ledger entries with pagination metadata
func (u *MarketplaceUsecase) LedgerOf(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]*entities.Transaction, utils.PaginationMeta, error) {
	params = utils.GetPaginationParams(params.Page, params.Limit)
	if params.Limit == 0 {
		params.Limit = LedgerDefaultPage
	}

	entries, total, err := u.txRepo.GetByUserID(ctx, userID, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return entries, utils.CalculateMeta(int64(total), params.Page, params.Limit), nil
}

// SettlementEntries returns the correlated ledger entries for one reference
func (u *MarketplaceUsecase) SettlementEntries(ctx context.Context, txReference string) ([]*entities.Transaction, error) {
	return u.txRepo.GetByTxReference(ctx, txReference)
}

// OrdersOf returns a customer's purchase history
func (u *MarketplaceUsecase) OrdersOf(ctx context.Context, customerID uuid.UUID) ([]*entities.Order, error) {
	return u.orderRepo.GetByCustomerID(ctx, customerID)
}
