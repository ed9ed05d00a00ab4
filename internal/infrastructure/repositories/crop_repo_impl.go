package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"agro-chain.backend/internal/domain/entities"
	domainerrors "agro-chain.backend/internal/domain/errors"
	"agro-chain.backend/internal/infrastructure/models"
)

// CropRepository implements crop listing data operations
type CropRepository struct {
	db *gorm.DB
}

// NewCropRepository creates a new crop repository
func NewCropRepository(db *gorm.DB) *CropRepository {
	return &CropRepository{db: db}
}

// Create creates a new crop listing
func (r *CropRepository) Create(ctx context.Context, crop *entities.Crop) error {
	m := r.toModel(crop)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	crop.ID = m.ID
	return nil
}

// GetByID gets a crop by ID
func (r *CropRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Crop, error) {
	var m models.Crop
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByStatus gets crops in a given lifecycle state
func (r *CropRepository) GetByStatus(ctx context.Context, status entities.CropStatus) ([]*entities.Crop, error) {
	return r.find(ctx, "status = ?", string(status))
}

// GetByFarmerID gets a farmer's listings
func (r *CropRepository) GetByFarmerID(ctx context.Context, farmerID uuid.UUID) ([]*entities.Crop, error) {
	return r.find(ctx, "farmer_id = ?", farmerID)
}

// GetByTransporterID gets the crops assigned to a transporter
func (r *CropRepository) GetByTransporterID(ctx context.Context, transporterID uuid.UUID) ([]*entities.Crop, error) {
	return r.find(ctx, "transporter_id = ?", transporterID)
}

// GetAvailableJobs gets approved crops with no transporter assigned
func (r *CropRepository) GetAvailableJobs(ctx context.Context) ([]*entities.Crop, error) {
	return r.find(ctx, "status = ? AND transporter_id IS NULL", string(entities.CropStatusApproved))
}

// List lists all crop listings
func (r *CropRepository) List(ctx context.Context) ([]*entities.Crop, error) {
	return r.find(ctx, "")
}

// Update persists the crop unconditionally
func (r *CropRepository) Update(ctx context.Context, crop *entities.Crop) error {
	crop.UpdatedAt = time.Now()
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Save(r.toModel(crop))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Transition persists the crop only if the stored status still equals
// expected. The WHERE clause is the logical compare-and-set the lifecycle
// relies on: a row in the wrong state is simply not altered.
func (r *CropRepository) Transition(ctx context.Context, crop *entities.Crop, expected entities.CropStatus) error {
	crop.UpdatedAt = time.Now()
	m := r.toModel(crop)
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Crop{}).
		Where("id = ? AND status = ?", crop.ID, string(expected)).
		Select("*").Omit("id", "created_at").
		Updates(m)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInvalidState
	}
	return nil
}

func (r *CropRepository) find(ctx context.Context, query string, args ...interface{}) ([]*entities.Crop, error) {
	var ms []models.Crop
	db := GetDB(ctx, r.db).WithContext(ctx)
	if query != "" {
		db = db.Where(query, args...)
	}
	if err := db.Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	crops := make([]*entities.Crop, 0, len(ms))
	for i := range ms {
		crops = append(crops, r.toEntity(&ms[i]))
	}
	return crops, nil
}

func (r *CropRepository) toModel(c *entities.Crop) *models.Crop {
	return &models.Crop{
		ID:              c.ID,
		FarmerID:        c.FarmerID,
		Type:            c.Type,
		Quantity:        c.Quantity,
		PricePerKg:      c.PricePerKg,
		Cultivation:     c.Cultivation,
		FarmLocation:    c.FarmLocation,
		HarvestDate:     c.HarvestDate,
		Status:          string(c.Status),
		TransporterID:   c.TransporterID,
		CustomerID:      c.CustomerID,
		FarmerName:      c.FarmerName,
		TransporterName: c.TransporterName.Ptr(),
		QRTag:           c.QRTag,
		TxReference:     c.TxReference,
		ApprovedAt:      c.ApprovedAt,
		RejectedAt:      c.RejectedAt,
		PickedUpAt:      c.PickedUpAt,
		InTransitAt:     c.InTransitAt,
		DeliveredAt:     c.DeliveredAt,
		ConfirmedAt:     c.ConfirmedAt,
		SoldAt:          c.SoldAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func (r *CropRepository) toEntity(m *models.Crop) *entities.Crop {
	return &entities.Crop{
		ID:              m.ID,
		FarmerID:        m.FarmerID,
		Type:            m.Type,
		Quantity:        m.Quantity,
		PricePerKg:      m.PricePerKg,
		Cultivation:     m.Cultivation,
		FarmLocation:    m.FarmLocation,
		HarvestDate:     m.HarvestDate,
		Status:          entities.CropStatus(m.Status),
		TransporterID:   m.TransporterID,
		CustomerID:      m.CustomerID,
		FarmerName:      m.FarmerName,
		TransporterName: null.StringFromPtr(m.TransporterName),
		QRTag:           m.QRTag,
		TxReference:     m.TxReference,
		ApprovedAt:      m.ApprovedAt,
		RejectedAt:      m.RejectedAt,
		PickedUpAt:      m.PickedUpAt,
		InTransitAt:     m.InTransitAt,
		DeliveredAt:     m.DeliveredAt,
		ConfirmedAt:     m.ConfirmedAt,
		SoldAt:          m.SoldAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
