package repositories

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"agro-chain.backend/internal/domain/entities"
	domainerrors "agro-chain.backend/internal/domain/errors"
	"agro-chain.backend/internal/infrastructure/models"
)

// ConnectionRequestRepository implements connection request data operations
type ConnectionRequestRepository struct {
	db *gorm.DB
}

// NewConnectionRequestRepository creates a new connection request repository
func NewConnectionRequestRepository(db *gorm.DB) *ConnectionRequestRepository {
	return &ConnectionRequestRepository{db: db}
}

// Create creates a pending request
func (r *ConnectionRequestRepository) Create(ctx context.Context, req *entities.ConnectionRequest) error {
	m := &models.ConnectionRequest{
		ID:         req.ID,
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		Status:     string(req.Status),
		CreatedAt:  req.CreatedAt,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	req.ID = m.ID
	return nil
}

// GetByID gets a request by ID
func (r *ConnectionRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ConnectionRequest, error) {
	var m models.ConnectionRequest
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByOrderedPair gets the request for the exact (from, to) direction,
// whatever its status. Resolved requests count: the pair is never reopened.
func (r *ConnectionRequestRepository) GetByOrderedPair(ctx context.Context, fromUserID, toUserID uuid.UUID) (*entities.ConnectionRequest, error) {
	var m models.ConnectionRequest
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetPendingForUser gets pending requests addressed to a user, newest first
func (r *ConnectionRequestRepository) GetPendingForUser(ctx context.Context, toUserID uuid.UUID) ([]*entities.ConnectionRequest, error) {
	var ms []models.ConnectionRequest
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("to_user_id = ? AND status = ?", toUserID, string(entities.ConnectionRequestPending)).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	reqs := make([]*entities.ConnectionRequest, 0, len(ms))
	for i := range ms {
		reqs = append(reqs, r.toEntity(&ms[i]))
	}
	return reqs, nil
}

// UpdateStatus resolves a pending request. Guarding on pending keeps accepted
// and rejected terminal.
func (r *ConnectionRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ConnectionRequestStatus) error {
	now := time.Now()
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.ConnectionRequest{}).
		Where("id = ? AND status = ?", id, string(entities.ConnectionRequestPending)).
		Updates(map[string]interface{}{
			"status":      string(status),
			"resolved_at": now,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInvalidState
	}
	return nil
}

func (r *ConnectionRequestRepository) toEntity(m *models.ConnectionRequest) *entities.ConnectionRequest {
	return &entities.ConnectionRequest{
		ID:         m.ID,
		FromUserID: m.FromUserID,
		ToUserID:   m.ToUserID,
		Status:     entities.ConnectionRequestStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		ResolvedAt: m.ResolvedAt,
	}
}

// ConnectionRepository implements connection data operations
type ConnectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates a new connection repository
func NewConnectionRepository(db *gorm.DB) *ConnectionRepository {
	return &ConnectionRepository{db: db}
}

// Create creates a connection. The pair is stored in canonical order so the
// unique index rejects a reversed duplicate.
func (r *ConnectionRepository) Create(ctx context.Context, conn *entities.Connection) error {
	a, b := conn.UserAID, conn.UserBID
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	m := &models.Connection{
		ID:        conn.ID,
		UserAID:   a,
		UserBID:   b,
		CreatedAt: conn.CreatedAt,
	}
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(m).Error
}

// GetByPair checks both directions of the unordered pair
func (r *ConnectionRepository) GetByPair(ctx context.Context, userA, userB uuid.UUID) (*entities.Connection, error) {
	var m models.Connection
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("(user_a_id = ? AND user_b_id = ?) OR (user_a_id = ? AND user_b_id = ?)", userA, userB, userB, userA).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByUserID gets every connection involving a user
func (r *ConnectionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Connection, error) {
	var ms []models.Connection
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	conns := make([]*entities.Connection, 0, len(ms))
	for i := range ms {
		conns = append(conns, r.toEntity(&ms[i]))
	}
	return conns, nil
}

func (r *ConnectionRepository) toEntity(m *models.Connection) *entities.Connection {
	return &entities.Connection{
		ID:        m.ID,
		UserAID:   m.UserAID,
		UserBID:   m.UserBID,
		CreatedAt: m.CreatedAt,
	}
}
