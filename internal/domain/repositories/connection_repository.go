package repositories

import (
	"context"

	"github.com/google/uuid"
	"agro-chain.backend/internal/domain/entities"
)

// ConnectionRequestRepository defines connection request data operations
type ConnectionRequestRepository interface {
	Create(ctx context.Context, req *entities.ConnectionRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ConnectionRequest, error)
	// GetByOrderedPair returns the request for the exact (from, to) direction
	// regardless of its status, or ErrNotFound.
	GetByOrderedPair(ctx context.Context, fromUserID, toUserID uuid.UUID) (*entities.ConnectionRequest, error)
	GetPendingForUser(ctx context.Context, toUserID uuid.UUID) ([]*entities.ConnectionRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ConnectionRequestStatus) error
}

// ConnectionRepository defines connection data operations
type ConnectionRepository interface {
	Create(ctx context.Context, conn *entities.Connection) error
	// GetByPair checks both directions of the unordered pair.
	GetByPair(ctx context.Context, userA, userB uuid.UUID) (*entities.Connection, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Connection, error)
}
