package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agro-chain.backend/internal/domain/entities"
	"agro-chain.backend/internal/domain/repositories"
	"agro-chain.backend/pkg/logger"
	"agro-chain.backend/pkg/utils"
)

// ActivityUsecase handles the append-only activity feed
type ActivityUsecase struct {
	activityRepo   repositories.ActivityRepository
	connectionRepo repositories.ConnectionRepository
}

// NewActivityUsecase creates a new activity usecase
func NewActivityUsecase(
	activityRepo repositories.ActivityRepository,
	connectionRepo repositories.ConnectionRepository,
) *ActivityUsecase {
	return &ActivityUsecase{
		activityRepo:   activityRepo,
		connectionRepo: connectionRepo,
	}
}

// Record appends one activity entry. The description is rendered by the
// caller from the names current at event time and is never re-derived. A
// failed append is logged and swallowed: the feed is advisory and must not
// fail the domain action that produced the event.
func (u *ActivityUsecase) Record(ctx context.Context, record *entities.Activity) {
	if record.ID == uuid.Nil {
		record.ID = utils.GenerateUUIDv7()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	if err := u.activityRepo.Create(ctx, record); err != nil {
		logger.Error(ctx, "failed to append activity record", zap.Error(err))
	}
}

// FeedFor returns the records visible to a viewer: entries they participated
// in, plus entries of anyone they are connected to. Newest first, capped for
// display.
func (u *ActivityUsecase) FeedFor(ctx context.Context, viewerID uuid.UUID) ([]*entities.Activity, error) {
	conns, err := u.connectionRepo.GetByUserID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	peerIDs := make([]uuid.UUID, 0, len(conns))
	for _, c := range conns {
		peerIDs = append(peerIDs, c.Peer(viewerID))
	}

	return u.activityRepo.GetFeed(ctx, viewerID, peerIDs, FeedDisplayLimit)
}

// MarkRead flags the given feed entries as read
func (u *ActivityUsecase) MarkRead(ctx context.Context, ids []uuid.UUID) error {
	return u.activityRepo.MarkRead(ctx, ids)
}
