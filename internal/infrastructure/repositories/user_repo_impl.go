package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"agro-chain.backend/internal/domain/entities"
	domainerrors "agro-chain.backend/internal/domain/errors"
	"agro-chain.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		ID:              user.ID,
		Role:            string(user.Role),
		Name:            user.Name,
		CompanyName:     user.CompanyName.Ptr(),
		Email:           user.Email,
		PasswordHash:    user.PasswordHash,
		Mobile:          user.Mobile.Ptr(),
		FarmAddress:     user.FarmAddress.Ptr(),
		Address:         user.Address.Ptr(),
		VehicleType:     user.VehicleType.Ptr(),
		WalletAddress:   user.WalletAddress,
		WalletNetworkID: user.WalletNetworkID.Ptr(),
		Balance:         user.Balance,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	user.ID = m.ID
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// UpdateBalance applies a signed delta to the user's balance. No floor is
// enforced here: warehouse balances are allowed to go negative.
func (r *UserRepository) UpdateBalance(ctx context.Context, id uuid.UUID, delta float64) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("balance", gorm.Expr("balance + ?", delta))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists users, optionally filtered by role
func (r *UserRepository) List(ctx context.Context, role entities.UserRole) ([]*entities.User, error) {
	var ms []models.User
	db := GetDB(ctx, r.db).WithContext(ctx)
	if role != "" {
		db = db.Where("role = ?", string(role))
	}
	if err := db.Order("created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(ms))
	for i := range ms {
		users = append(users, r.toEntity(&ms[i]))
	}
	return users, nil
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:              m.ID,
		Role:            entities.UserRole(m.Role),
		Name:            m.Name,
		CompanyName:     null.StringFromPtr(m.CompanyName),
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		Mobile:          null.StringFromPtr(m.Mobile),
		FarmAddress:     null.StringFromPtr(m.FarmAddress),
		Address:         null.StringFromPtr(m.Address),
		VehicleType:     null.StringFromPtr(m.VehicleType),
		WalletAddress:   m.WalletAddress,
		WalletNetworkID: null.StringFromPtr(m.WalletNetworkID),
		Balance:         m.Balance,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
