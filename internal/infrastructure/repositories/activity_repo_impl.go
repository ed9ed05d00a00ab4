package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"agro-chain.backend/internal/domain/entities"
	"agro-chain.backend/internal/infrastructure/models"
)

// ActivityRepository implements activity feed data operations
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create appends an activity record
func (r *ActivityRepository) Create(ctx context.Context, record *entities.Activity) error {
	m := &models.Activity{
		ID:               record.ID,
		Type:             string(record.Type),
		ActorID:          record.ActorID,
		SecondaryActorID: record.SecondaryActorID,
		CropID:           record.CropID,
		Description:      record.Description,
		Read:             record.Read,
		CreatedAt:        record.CreatedAt,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	record.ID = m.ID
	return nil
}

// GetFeed returns records where the viewer is an actor, or whose actor is
// one of the viewer's connections. Newest first, capped at limit; the log
// itself is unbounded.
func (r *ActivityRepository) GetFeed(ctx context.Context, viewerID uuid.UUID, connectedIDs []uuid.UUID, limit int) ([]*entities.Activity, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	query := db.Where("actor_id = ? OR secondary_actor_id = ?", viewerID, viewerID)
	if len(connectedIDs) > 0 {
		query = db.Where(
			"actor_id = ? OR secondary_actor_id = ? OR actor_id IN ? OR secondary_actor_id IN ?",
			viewerID, viewerID, connectedIDs, connectedIDs,
		)
	}

	var ms []models.Activity
	if err := query.Order("created_at DESC").Limit(limit).Find(&ms).Error; err != nil {
		return nil, err
	}

	records := make([]*entities.Activity, 0, len(ms))
	for i := range ms {
		m := ms[i]
		records = append(records, &entities.Activity{
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
	return records, nil
}

// MarkRead flags the given records as read
func (r *ActivityRepository) MarkRead(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Model(&models.Activity{}).
		Where("id IN ?", ids).
		Update("read", true).Error
}
