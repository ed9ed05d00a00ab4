package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"agro-chain.backend/internal/domain/entities"
	"agro-chain.backend/internal/infrastructure/wallet"
	"agro-chain.backend/pkg/redis"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateBalance(ctx context.Context, id uuid.UUID, delta float64) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, role entities.UserRole) ([]*entities.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

// Mock CropRepository
type MockCropRepository struct {
	mock.Mock
}

func (m *MockCropRepository) Create(ctx context.Context, crop *entities.Crop) error {
	args := m.Called(ctx, crop)
	return args.Error(0)
}

func (m *MockCropRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Crop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Crop), args.Error(1)
}

func (m *MockCropRepository) GetByStatus(ctx context.Context, status entities.CropStatus) ([]*entities.Crop, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Crop), args.Error(1)
}

func (m *MockCropRepository) GetByFarmerID(ctx context.Context, farmerID uuid.UUID) ([]*entities.Crop, error) {
	args := m.Called(ctx, farmerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Crop), args.Error(1)
}

func (m *MockCropRepository) GetByTransporterID(ctx context.Context, transporterID uuid.UUID) ([]*entities.Crop, error) {
	args := m.Called(ctx, transporterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Crop), args.Error(1)
}

func (m *MockCropRepository) GetAvailableJobs(ctx context.Context) ([]*entities.Crop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Crop), args.Error(1)
}

func (m *MockCropRepository) Update(ctx context.Context, crop *entities.Crop) error {
	args := m.Called(ctx, crop)
	return args.Error(0)
}

func (m *MockCropRepository) Transition(ctx context.Context, crop *entities.Crop, expected entities.CropStatus) error {
	args := m.Called(ctx, crop, expected)
	return args.Error(0)
}

func (m *MockCropRepository) List(ctx context.Context) ([]*entities.Crop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Crop), args.Error(1)
}

// Mock TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *entities.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Transaction, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Transaction), args.Int(1), args.Error(2)
}

func (m *MockTransactionRepository) GetByTxReference(ctx context.Context, ref string) ([]*entities.Transaction, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Transaction), args.Error(1)
}

// Mock OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entities.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entities.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Order), args.Error(1)
}

// Mock ConnectionRequestRepository
type MockConnectionRequestRepository struct {
	mock.Mock
}

func (m *MockConnectionRequestRepository) Create(ctx context.Context, req *entities.ConnectionRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockConnectionRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ConnectionRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ConnectionRequest), args.Error(1)
}

func (m *MockConnectionRequestRepository) GetByOrderedPair(ctx context.Context, fromUserID, toUserID uuid.UUID) (*entities.ConnectionRequest, error) {
	args := m.Called(ctx, fromUserID, toUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ConnectionRequest), args.Error(1)
}

func (m *MockConnectionRequestRepository) GetPendingForUser(ctx context.Context, toUserID uuid.UUID) ([]*entities.ConnectionRequest, error) {
	args := m.Called(ctx, toUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ConnectionRequest), args.Error(1)
}

func (m *MockConnectionRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ConnectionRequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// Mock ConnectionRepository
type MockConnectionRepository struct {
	mock.Mock
}

func (m *MockConnectionRepository) Create(ctx context.Context, conn *entities.Connection) error {
	args := m.Called(ctx, conn)
	return args.Error(0)
}

func (m *MockConnectionRepository) GetByPair(ctx context.Context, userA, userB uuid.UUID) (*entities.Connection, error) {
	args := m.Called(ctx, userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Connection), args.Error(1)
}

func (m *MockConnectionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Connection, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Connection), args.Error(1)
}

// Mock MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *entities.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepository) GetConversation(ctx context.Context, userA, userB uuid.UUID) ([]*entities.Message, error) {
	args := m.Called(ctx, userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Message), args.Error(1)
}

func (m *MockMessageRepository) MarkConversationRead(ctx context.Context, fromUserID, toUserID uuid.UUID) error {
	args := m.Called(ctx, fromUserID, toUserID)
	return args.Error(0)
}

func (m *MockMessageRepository) CountUnread(ctx context.Context, toUserID uuid.UUID) (int, error) {
	args := m.Called(ctx, toUserID)
	return args.Int(0), args.Error(1)
}

// Mock ActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, record *entities.Activity) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockActivityRepository) GetFeed(ctx context.Context, viewerID uuid.UUID, connectedIDs []uuid.UUID, limit int) ([]*entities.Activity, error) {
	args := m.Called(ctx, viewerID, connectedIDs, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Activity), args.Error(1)
}

func (m *MockActivityRepository) MarkRead(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// Mock WalletResolver
type MockWalletResolver struct {
	mock.Mock
}

func (m *MockWalletResolver) Resolve(address, networkID string) (wallet.Account, error) {
	args := m.Called(address, networkID)
	return args.Get(0).(wallet.Account), args.Error(1)
}

// Mock SessionCreator
type MockSessionCreator struct {
	mock.Mock
}

func (m *MockSessionCreator) CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error {
	args := m.Called(ctx, sessionID, data, expiration)
	return args.Error(0)
}
