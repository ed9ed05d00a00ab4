package repositories

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"agro-chain.backend/internal/domain/entities"
	"agro-chain.backend/internal/infrastructure/models"
)

// SnapshotSourceImpl assembles the whole entity store into one document for
// the periodic JSON export. Reads go straight at the models; this is a dump,
// not a query surface.
type SnapshotSourceImpl struct {
	db *gorm.DB
}

// NewSnapshotSource creates a new snapshot source
func NewSnapshotSource(db *gorm.DB) *SnapshotSourceImpl {
	return &SnapshotSourceImpl{db: db}
}

// Export reads every table into a StateSnapshot
func (s *SnapshotSourceImpl) Export(ctx context.Context) (*entities.StateSnapshot, error) {
	snap := &entities.StateSnapshot{TakenAt: time.Now()}

	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	for i := range users {
		m := users[i]
		snap.Users = append(snap.Users, &entities.User{
			ID:              m.ID,
			Role:            entities.UserRole(m.Role),
			Name:            m.Name,
			CompanyName:     null.StringFromPtr(m.CompanyName),
			Email:           m.Email,
			Mobile:          null.StringFromPtr(m.Mobile),
			FarmAddress:     null.StringFromPtr(m.FarmAddress),
			Address:         null.StringFromPtr(m.Address),
			VehicleType:     null.StringFromPtr(m.VehicleType),
			WalletAddress:   m.WalletAddress,
			WalletNetworkID: null.StringFromPtr(m.WalletNetworkID),
			Balance:         m.Balance,
			CreatedAt:       m.CreatedAt,
			UpdatedAt:       m.UpdatedAt,
		})
	}

	cropRepo := NewCropRepository(s.db)
	crops, err := cropRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	snap.Crops = crops

	var txs []models.Transaction
	if err := s.db.WithContext(ctx).Find(&txs).Error; err != nil {
		return nil, err
	}
	for i := range txs {
		m := txs[i]
		snap.Transactions = append(snap.Transactions, &entities.Transaction{
			ID:          m.ID,
			UserID:      m.UserID,
			Type:        entities.TransactionType(m.Type),
			Amount:      m.Amount,
			Description: m.Description,
			CropID:      m.CropID,
			TxReference: m.TxReference,
			CreatedAt:   m.CreatedAt,
		})
	}

	var orders []models.Order
	if err := s.db.WithContext(ctx).Find(&orders).Error; err != nil {
		return nil, err
	}
	for i := range orders {
		m := orders[i]
		snap.Orders = append(snap.Orders, &entities.Order{
			ID:          m.ID,
			CustomerID:  m.CustomerID,
			CropID:      m.CropID,
			ProductName: m.ProductName,
			Quantity:    m.Quantity,
			Amount:      m.Amount,
			CreatedAt:   m.CreatedAt,
		})
	}

	var reqs []models.ConnectionRequest
	if err := s.db.WithContext(ctx).Find(&reqs).Error; err != nil {
		return nil, err
	}
	for i := range reqs {
		m := reqs[i]
		snap.Requests = append(snap.Requests, &entities.ConnectionRequest{
			ID:         m.ID,
			FromUserID: m.FromUserID,
			ToUserID:   m.ToUserID,
			Status:     entities.ConnectionRequestStatus(m.Status),
			CreatedAt:  m.CreatedAt,
			ResolvedAt: m.ResolvedAt,
		})
	}

	var conns []models.Connection
	if err := s.db.WithContext(ctx).Find(&conns).Error; err != nil {
		return nil, err
	}
	for i := range conns {
		m := conns[i]
		snap.Connections = append(snap.Connections, &entities.Connection{
			ID:        m.ID,
			UserAID:   m.UserAID,
			UserBID:   m.UserBID,
			CreatedAt: m.CreatedAt,
		})
	}

	var msgs []models.Message
	if err := s.db.WithContext(ctx).Find(&msgs).Error; err != nil {
		return nil, err
	}
	for i := range msgs {
		m := msgs[i]
		snap.Messages = append(snap.Messages, &entities.Message{
			ID:         m.ID,
			FromUserID: m.FromUserID,
			ToUserID:   m.ToUserID,
			Body:       m.Body,
			Read:       m.Read,
			CreatedAt:  m.CreatedAt,
		})
	}

	var acts []models.Activity
	if err := s.db.WithContext(ctx).Find(&acts).Error; err != nil {
		return nil, err
	}
	for i := range acts {
		m := acts[i]
		snap.Activities = append(snap.Activities, &entities.Activity{
			ID:               m.ID,
			Type:             entities.ActivityType(m.Type),
			ActorID:          m.ActorID,
			SecondaryActorID: m.SecondaryActorID,
			CropID:           m.CropID,
			Description:      m.Description,
			Read:             m.Read,
			CreatedAt:        m.CreatedAt,
		})
	}

	return snap, nil
}
