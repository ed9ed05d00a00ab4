package repositories

import (
	"context"

	"github.com/google/uuid"
	"agro-chain.backend/internal/domain/entities"
)

// CropRepository defines crop listing data operations
type CropRepository interface {
	Create(ctx context.Context, crop *entities.Crop) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Crop, error)
	GetByStatus(ctx context.Context, status entities.CropStatus) ([]*entities.Crop, error)
	GetByFarmerID(ctx context.Context, farmerID uuid.UUID) ([]*entities.Crop, error)
	GetByTransporterID(ctx context.Context, transporterID uuid.UUID) ([]*entities.Crop, error)
	// GetAvailableJobs returns approved crops with no transporter assigned.
	GetAvailableJobs(ctx context.Context) ([]*entities.Crop, error)
	Update(ctx context.Context, crop *entities.Crop) error
	// Transition persists the crop only if its stored status still equals
	// expected; returns ErrInvalidState otherwise. This is the state guard the
	// lifecycle relies on.
	Transition(ctx context.Context, crop *entities.Crop, expected entities.CropStatus) error
	List(ctx context.Context) ([]*entities.Crop, error)
}
