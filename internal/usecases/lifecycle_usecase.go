package usecases

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"agro-chain.backend/internal/domain/entities"
	domainerrors "agro-chain.backend/internal/domain/errors"
	"agro-chain.backend/internal/domain/repositories"
	"agro-chain.backend/pkg/placeholder"
	"agro-chain.backend/pkg/utils"
)

// LifecycleUsecase advances crop listings through the supply chain. Every
// transition is guarded by the repository's compare-and-set on the current
// status: an action against a crop in the wrong state alters nothing and
// surfaces as a precondition failure.
type LifecycleUsecase struct {
	cropRepo   repositories.CropRepository
	userRepo   repositories.UserRepository
	orderRepo  repositories.OrderRepository
	txRepo     repositories.TransactionRepository
	uow        repositories.UnitOfWork
	settlement *SettlementEngine
	activity   *ActivityUsecase
}

// NewLifecycleUsecase creates a new lifecycle usecase
func NewLifecycleUsecase(
	cropRepo repositories.CropRepository,
	userRepo repositories.UserRepository,
	orderRepo repositories.OrderRepository,
	txRepo repositories.TransactionRepository,
	uow repositories.UnitOfWork,
	settlement *SettlementEngine,
	activity *ActivityUsecase,
) *LifecycleUsecase {
	return &LifecycleUsecase{
		cropRepo:   cropRepo,
		userRepo:   userRepo,
		orderRepo:  orderRepo,
		txRepo:     txRepo,
		uow:        uow,
		settlement: settlement,
		activity:   activity,
	}
}

// AddCrop lists a new crop for a farmer. The listing starts pending and
// carries its placeholder identifiers from creation.
func (u *LifecycleUsecase) AddCrop(ctx context.Context, farmerID uuid.UUID, input *entities.AddCropInput) (*entities.Crop, error) {
	farmer, err := u.requireRole(ctx, farmerID, entities.UserRoleFarmer)
	if err != nil {
		return nil, err
	}

	qrTag, err := placeholder.QRTag()
	if err != nil {
		return nil, err
	}
	txRef, err := placeholder.TxReference()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	crop := &entities.Crop{
		ID:           utils.GenerateUUIDv7(),
		FarmerID:     farmer.ID,
		Type:         input.Type,
		Quantity:     input.Quantity,
		PricePerKg:   input.PricePerKg,
		Cultivation:  input.Cultivation,
		FarmLocation: input.FarmLocation,
		HarvestDate:  input.HarvestDate,
		Status:       entities.CropStatusPending,
		FarmerName:   farmer.DisplayName(),
		QRTag:        qrTag,
		TxReference:  txRef,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.cropRepo.Create(ctx, crop); err != nil {
		return nil, err
	}

	u.activity.Record(ctx, &entities.Activity{
		Type:        entities.ActivityCropListed,
		ActorID:     farmer.ID,
		CropID:      &crop.ID,
		Description: fmt.Sprintf("%s listed %dkg of %s", farmer.DisplayName(), crop.Quantity, crop.Type),
	})
	return crop, nil
}

// ApproveCrop moves a pending listing to approved
func (u *LifecycleUsecase) ApproveCrop(ctx context.Context, warehouseID, cropID uuid.UUID) (*entities.Crop, error) {
	warehouse, err := u.requireRole(ctx, warehouseID, entities.UserRoleWarehouseManager)
	if err != nil {
		return nil, err
	}

	crop, err := u.cropRepo.GetByID(ctx, cropID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	crop.Status = entities.CropStatusApproved
	crop.ApprovedAt = &now
	if err := u.cropRepo.Transition(ctx, crop, entities.CropStatusPending); err != nil {
		return nil, domainerrors.Conflict("crop is not pending approval")
	}

	u.activity.Record(ctx, &entities.Activity{
		Type:             entities.ActivityCropApproved,
		ActorID:          warehouse.ID,
		SecondaryActorID: &crop.FarmerID,
		CropID:           &crop.ID,
		Description:      fmt.Sprintf("%s approved %s from %s", warehouse.DisplayName(), crop.Type, crop.FarmerName),
	})
	return crop, nil
}

// RejectCrop moves a pending listing to rejected, a terminal state
func (u *LifecycleUsecase) RejectCrop(ctx context.Context, warehouseID, cropID uuid.UUID) (*entities.Crop, error) {
	warehouse, err := u.requireRole(ctx, warehouseID, entities.UserRoleWarehouseManager)
	if err != nil {
		return nil, err
	}

	crop, err := u.cropRepo.GetByID(ctx, cropID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	crop.Status = entities.CropStatusRejected
	crop.RejectedAt = &now
	if err := u.cropRepo.Transition(ctx, crop, entities.CropStatusPending); err != nil {
		return nil, domainerrors.Conflict("crop is not pending approval")
	}

	u.activity.Record(ctx, &entities.Activity{
		Type:             entities.ActivityCropRejected,
		ActorID:          warehouse.ID,
		SecondaryActorID: &crop.FarmerID,
		CropID:           &crop.ID,
		Description:      fmt.Sprintf("%s rejected %s from %s", warehouse.DisplayName(), crop.Type, crop.FarmerName),
	})
	return crop, nil
}

// AcceptJob assigns an approved crop to a transporter and marks it picked
// up. At most one transporter may hold a job: the status guard makes a
// second acceptance fail because the crop already left approved.
func (u *LifecycleUsecase) AcceptJob(ctx context.Context, transporterID, cropID uuid.UUID) (*entities.Crop, error) {
	transporter, err := u.requireRole(ctx, transporterID, entities.UserRoleTransporter)
	if err != nil {
		return nil, err
	}

	crop, err := u.cropRepo.GetByID(ctx, cropID)
	if err != nil {
		return nil, err
	}
	if crop.TransporterID != nil {
		return nil, domainerrors.NewAppError(http.StatusConflict, "transport job already assigned", domainerrors.ErrJobTaken)
	}

	now := time.Now()
	crop.Status = entities.CropStatusPickedUp
	crop.TransporterID = &transporter.ID
	crop.TransporterName = null.StringFrom(transporter.DisplayName())
	crop.PickedUpAt = &now
	if err := u.cropRepo.Transition(ctx, crop, entities.CropStatusApproved); err != nil {
		return nil, domainerrors.Conflict("crop is not available for pickup")
	}

	u.activity.Record(ctx, &entities.Activity{
		Type:             entities.ActivityJobAccepted,
		ActorID:          transporter.ID,
		SecondaryActorID: &crop.FarmerID,
		CropID:           &crop.ID,
		Description:      fmt.Sprintf("%s accepted transport of %s", transporter.DisplayName(), crop.Type),
	})
	return crop, nil
}

// ConfirmPickup moves a picked-up crop into transit. Only the assigned
// transporter may confirm.
func (u *LifecycleUsecase) ConfirmPickup(ctx context.Context, transporterID, cropID uuid.UUID) (*entities.Crop, error) {
	crop, err := u.assignedCrop(ctx, transporterID, cropID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	crop.Status = entities.CropStatusInTransit
	crop.InTransitAt = &now
	if err := u.cropRepo.Transition(ctx, crop, entities.CropStatusPickedUp); err != nil {
		return nil, domainerrors.Conflict("crop is not awaiting pickup confirmation")
	}

	u.activity.Record(ctx, &entities.Activity{
		Type:        entities.ActivityPickupConfirmed,
		ActorID:     transporterID,
		CropID:      &crop.ID,
		Description: fmt.Sprintf("%s is in transit", crop.Type),
	})
	return crop, nil
}

// MarkDelivered moves an in-transit crop to awaiting warehouse confirmation
func (u *LifecycleUsecase) MarkDelivered(ctx context.Context, transporterID, cropID uuid.UUID) (*entities.Crop, error) {
	crop, err := u.assignedCrop(ctx, transporterID, cropID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	crop.Status = entities.CropStatusAwaitingConfirmation
	crop.DeliveredAt = &now
	if err := u.cropRepo.Transition(ctx, crop, entities.CropStatusInTransit); err != nil {
		return nil, domainerrors.Conflict("crop is not in transit")
	}

	u.activity.Record(ctx, &entities.Activity{
		Type:             entities.ActivityCropDelivered,
		ActorID:          transporterID,
		SecondaryActorID: &crop.FarmerID,
		CropID:           &crop.ID,
		Description:      fmt.Sprintf("%s delivered, awaiting confirmation", crop.Type),
	})
	return crop, nil
}

// ConfirmArrival confirms delivery at the warehouse and settles payment with
// the farmer and transporter in one transaction. The status guard makes the
// settlement run at most once per crop: a second confirmation finds the crop
// already delivered and applies nothing.
func (u *LifecycleUsecase) ConfirmArrival(ctx context.Context, warehouseID, cropID uuid.UUID) (*entities.SettlementBreakdown, error) {
	warehouse, err := u.requireRole(ctx, warehouseID, entities.UserRoleWarehouseManager)
	if err != nil {
		return nil, err
	}

	crop, err := u.cropRepo.GetByID(ctx, cropID)
	if err != nil {
		return nil, err
	}
	if crop.TransporterID == nil {
		return nil, domainerrors.Conflict("crop has no assigned transporter")
	}

	farmer, err := u.userRepo.GetByID(ctx, crop.FarmerID)
	if err != nil {
		return nil, err
	}
	transporter, err := u.userRepo.GetByID(ctx, *crop.TransporterID)
	if err != nil {
		return nil, err
	}

	var breakdown *entities.SettlementBreakdown
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		now := time.Now()
		crop.Status = entities.CropStatusDelivered
		crop.ConfirmedAt = &now
		if err := u.cropRepo.Transition(txCtx, crop, entities.CropStatusAwaitingConfirmation); err != nil {
			return domainerrors.Conflict("crop is not awaiting confirmation")
		}

		breakdown, err = u.settlement.Settle(txCtx, crop, farmer, transporter, warehouse)
		return err
	})
	if err != nil {
		return nil, err
	}

	u.activity.Record(ctx, &entities.Activity{
		Type:             entities.ActivitySettlementDone,
		ActorID:          warehouse.ID,
		SecondaryActorID: &crop.FarmerID,
		CropID:           &crop.ID,
		Description: fmt.Sprintf("%s confirmed arrival of %s, paid %s and %s",
			warehouse.DisplayName(), crop.Type, farmer.DisplayName(), transporter.DisplayName()),
	})
	return breakdown, nil
}

// Purchase sells a delivered crop to a customer as a whole lot. The customer
// must cover the full price; no partial fulfillment exists.
func (u *LifecycleUsecase) Purchase(ctx context.Context, customerID, cropID uuid.UUID) (*entities.Order, error) {
	customer, err := u.requireRole(ctx, customerID, entities.UserRoleCustomer)
	if err != nil {
		return nil, err
	}

	crop, err := u.cropRepo.GetByID(ctx, cropID)
	if err != nil {
		return nil, err
	}
	if crop.Status != entities.CropStatusDelivered {
		return nil, domainerrors.Conflict("crop is not available for purchase")
	}

	totalCost := crop.TotalPrice()
	if customer.Balance < totalCost {
		return nil, domainerrors.NewAppError(http.StatusPaymentRequired, "insufficient balance", domainerrors.ErrInsufficientFunds)
	}

	txRef, err := placeholder.TxReference()
	if err != nil {
		return nil, err
	}

	var order *entities.Order
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		now := time.Now()
		crop.Status = entities.CropStatusSold
		crop.CustomerID = &customer.ID
		crop.SoldAt = &now
		if err := u.cropRepo.Transition(txCtx, crop, entities.CropStatusDelivered); err != nil {
			return domainerrors.Conflict("crop is not available for purchase")
		}

		if err := u.userRepo.UpdateBalance(txCtx, customer.ID, -totalCost); err != nil {
			return err
		}

		if err := u.txRepo.Create(txCtx, &entities.Transaction{
			ID:          utils.GenerateUUIDv7(),
			UserID:      customer.ID,
			Type:        entities.TransactionTypeDebit,
			Amount:      totalCost,
			Description: fmt.Sprintf("Purchase: %s", crop.Type),
			CropID:      &crop.ID,
			TxReference: txRef,
			CreatedAt:   now,
		}); err != nil {
			return err
		}

		order = &entities.Order{
			ID:          utils.GenerateUUIDv7(),
			CustomerID:  customer.ID,
			CropID:      crop.ID,
			ProductName: fmt.Sprintf("%s %s", crop.Cultivation, crop.Type),
			Quantity:    crop.Quantity,
			Amount:      totalCost,
			CreatedAt:   now,
		}
		return u.orderRepo.Create(txCtx, order)
	})
	if err != nil {
		return nil, err
	}

	u.activity.Record(ctx, &entities.Activity{
		Type:             entities.ActivityCropSold,
		ActorID:          customer.ID,
		SecondaryActorID: &crop.FarmerID,
		CropID:           &crop.ID,
		Description:      fmt.Sprintf("%s purchased %s", customer.DisplayName(), crop.Type),
	})
	return order, nil
}

func (u *LifecycleUsecase) requireRole(ctx context.Context, userID uuid.UUID, role entities.UserRole) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != role {
		return nil, domainerrors.Forbidden("action not permitted for this role")
	}
	return user, nil
}

func (u *LifecycleUsecase) assignedCrop(ctx context.Context, transporterID, cropID uuid.UUID) (*entities.Crop, error) {
	crop, err := u.cropRepo.GetByID(ctx, cropID)
	if err != nil {
		return nil, err
	}
	if crop.TransporterID == nil || *crop.TransporterID != transporterID {
		return nil, domainerrors.Forbidden("crop is assigned to another transporter")
	}
	return crop, nil
}
