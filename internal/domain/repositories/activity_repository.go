package repositories

import (
	"context"

	"github.com/google/uuid"
	"agro-chain.backend/internal/domain/entities"
)

// ActivityRepository defines activity feed data operations
type ActivityRepository interface {
	Create(ctx context.Context, record *entities.Activity) error
	// GetFeed returns records visible to the viewer: records where the viewer
	// is an actor, plus records whose actor is one of connectedIDs. Newest
	// first, capped at limit. The underlying log is never pruned.
	GetFeed(ctx context.Context, viewerID uuid.UUID, connectedIDs []uuid.UUID, limit int) ([]*entities.Activity, error)
	MarkRead(ctx context.Context, ids []uuid.UUID) error
}
