package handlers

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"agro-chain.backend/internal/domain/entities"
	domainerrors "agro-chain.backend/internal/domain/errors"
	"agro-chain.backend/internal/interfaces/http/middleware"
)

type userRepoStub struct {
	createFn        func(ctx context.Context, user *entities.User) error
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*entities.User, error)
	updateBalanceFn func(ctx context.Context, id uuid.UUID, delta float64) error
	listFn          func(ctx context.Context, role entities.UserRole) ([]*entities.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) UpdateBalance(ctx context.Context, id uuid.UUID, delta float64) error {
	if s.updateBalanceFn != nil {
		return s.updateBalanceFn(ctx, id, delta)
	}
	return nil
}

func (s *userRepoStub) List(ctx context.Context, role entities.UserRole) ([]*entities.User, error) {
	if s.listFn != nil {
		return s.listFn(ctx, role)
	}
	return []*entities.User{}, nil
}

type cropRepoStub struct {
	createFn           func(ctx context.Context, crop *entities.Crop) error
	getByIDFn          func(ctx context.Context, id uuid.UUID) (*entities.Crop, error)
	getByStatusFn      func(ctx context.Context, status entities.CropStatus) ([]*entities.Crop, error)
	getByFarmerFn      func(ctx context.Context, farmerID uuid.UUID) ([]*entities.Crop, error)
	getByTransporterFn func(ctx context.Context, transporterID uuid.UUID) ([]*entities.Crop, error)
	getAvailableJobsFn func(ctx context.Context) ([]*entities.Crop, error)
	updateFn           func(ctx context.Context, crop *entities.Crop) error
	transitionFn       func(ctx context.Context, crop *entities.Crop, expected entities.CropStatus) error
	listFn             func(ctx context.Context) ([]*entities.Crop, error)
}

func (s *cropRepoStub) Create(ctx context.Context, crop *entities.Crop) error {
	if s.createFn != nil {
		return s.createFn(ctx, crop)
	}
	return nil
}

func (s *cropRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Crop, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *cropRepoStub) GetByStatus(ctx context.Context, status entities.CropStatus) ([]*entities.Crop, error) {
	if s.getByStatusFn != nil {
		return s.getByStatusFn(ctx, status)
	}
	return []*entities.Crop{}, nil
}

func (s *cropRepoStub) GetByFarmerID(ctx context.Context, farmerID uuid.UUID) ([]*entities.Crop, error) {
	if s.getByFarmerFn != nil {
		return s.getByFarmerFn(ctx, farmerID)
	}
	return []*entities.Crop{}, nil
}

func (s *cropRepoStub) GetByTransporterID(ctx context.Context, transporterID uuid.UUID) ([]*entities.Crop, error) {
	if s.getByTransporterFn != nil {
		return s.getByTransporterFn(ctx, transporterID)
	}
	return []*entities.Crop{}, nil
}

func (s *cropRepoStub) GetAvailableJobs(ctx context.Context) ([]*entities.Crop, error) {
	if s.getAvailableJobsFn != nil {
		return s.getAvailableJobsFn(ctx)
	}
	return []*entities.Crop{}, nil
}

func (s *cropRepoStub) Update(ctx context.Context, crop *entities.Crop) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, crop)
	}
	return nil
}

func (s *cropRepoStub) Transition(ctx context.Context, crop *entities.Crop, expected entities.CropStatus) error {
	if s.transitionFn != nil {
		return s.transitionFn(ctx, crop, expected)
	}
	return nil
}

func (s *cropRepoStub) List(ctx context.Context) ([]*entities.Crop, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []*entities.Crop{}, nil
}

type transactionRepoStub struct {
	createFn     func(ctx context.Context, tx *entities.Transaction) error
	getByUserFn  func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Transaction, int, error)
	getByTxRefFn func(ctx context.Context, ref string) ([]*entities.Transaction, error)
}

func (s *transactionRepoStub) Create(ctx context.Context, tx *entities.Transaction) error {
	if s.createFn != nil {
		return s.createFn(ctx, tx)
	}
	return nil
}

func (s *transactionRepoStub) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Transaction, int, error) {
	if s.getByUserFn != nil {
		return s.getByUserFn(ctx, userID, limit, offset)
	}
	return []*entities.Transaction{}, 0, nil
}

func (s *transactionRepoStub) GetByTxReference(ctx context.Context, ref string) ([]*entities.Transaction, error) {
	if s.getByTxRefFn != nil {
		return s.getByTxRefFn(ctx, ref)
	}
	return []*entities.Transaction{}, nil
}

type orderRepoStub struct {
	createFn        func(ctx context.Context, order *entities.Order) error
	getByCustomerFn func(ctx context.Context, customerID uuid.UUID) ([]*entities.Order, error)
}

func (s *orderRepoStub) Create(ctx context.Context, order *entities.Order) error {
	if s.createFn != nil {
		return s.createFn(ctx, order)
	}
	return nil
}

func (s *orderRepoStub) GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entities.Order, error) {
	if s.getByCustomerFn != nil {
		return s.getByCustomerFn(ctx, customerID)
	}
	return []*entities.Order{}, nil
}

type connectionRequestRepoStub struct {
	createFn            func(ctx context.Context, req *entities.ConnectionRequest) error
	getByIDFn           func(ctx context.Context, id uuid.UUID) (*entities.ConnectionRequest, error)
	getByOrderedPairFn  func(ctx context.Context, fromUserID, toUserID uuid.UUID) (*entities.ConnectionRequest, error)
	getPendingForUserFn func(ctx context.Context, toUserID uuid.UUID) ([]*entities.ConnectionRequest, error)
	updateStatusFn      func(ctx context.Context, id uuid.UUID, status entities.ConnectionRequestStatus) error
}

func (s *connectionRequestRepoStub) Create(ctx context.Context, req *entities.ConnectionRequest) error {
	if s.createFn != nil {
		return s.createFn(ctx, req)
	}
	return nil
}

func (s *connectionRequestRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.ConnectionRequest, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *connectionRequestRepoStub) GetByOrderedPair(ctx context.Context, fromUserID, toUserID uuid.UUID) (*entities.ConnectionRequest, error) {
	if s.getByOrderedPairFn != nil {
		return s.getByOrderedPairFn(ctx, fromUserID, toUserID)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *connectionRequestRepoStub) GetPendingForUser(ctx context.Context, toUserID uuid.UUID) ([]*entities.ConnectionRequest, error) {
	if s.getPendingForUserFn != nil {
		return s.getPendingForUserFn(ctx, toUserID)
	}
	return []*entities.ConnectionRequest{}, nil
}

func (s *connectionRequestRepoStub) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ConnectionRequestStatus) error {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, status)
	}
	return nil
}

type connectionRepoStub struct {
	createFn      func(ctx context.Context, conn *entities.Connection) error
	getByPairFn   func(ctx context.Context, userA, userB uuid.UUID) (*entities.Connection, error)
	getByUserIDFn func(ctx context.Context, userID uuid.UUID) ([]*entities.Connection, error)
}

func (s *connectionRepoStub) Create(ctx context.Context, conn *entities.Connection) error {
	if s.createFn != nil {
		return s.createFn(ctx, conn)
	}
	return nil
}

func (s *connectionRepoStub) GetByPair(ctx context.Context, userA, userB uuid.UUID) (*entities.Connection, error) {
	if s.getByPairFn != nil {
		return s.getByPairFn(ctx, userA, userB)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *connectionRepoStub) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Connection, error) {
	if s.getByUserIDFn != nil {
		return s.getByUserIDFn(ctx, userID)
	}
	return []*entities.Connection{}, nil
}

type messageRepoStub struct {
	createFn               func(ctx context.Context, msg *entities.Message) error
	getConversationFn      func(ctx context.Context, userA, userB uuid.UUID) ([]*entities.Message, error)
	markConversationReadFn func(ctx context.Context, fromUserID, toUserID uuid.UUID) error
	countUnreadFn          func(ctx context.Context, toUserID uuid.UUID) (int, error)
}

func (s *messageRepoStub) Create(ctx context.Context, msg *entities.Message) error {
	if s.createFn != nil {
		return s.createFn(ctx, msg)
	}
	return nil
}

func (s *messageRepoStub) GetConversation(ctx context.Context, userA, userB uuid.UUID) ([]*entities.Message, error) {
	if s.getConversationFn != nil {
		return s.getConversationFn(ctx, userA, userB)
	}
	return []*entities.Message{}, nil
}

func (s *messageRepoStub) MarkConversationRead(ctx context.Context, fromUserID, toUserID uuid.UUID) error {
	if s.markConversationReadFn != nil {
		return s.markConversationReadFn(ctx, fromUserID, toUserID)
	}
	return nil
}

func (s *messageRepoStub) CountUnread(ctx context.Context, toUserID uuid.UUID) (int, error) {
	if s.countUnreadFn != nil {
		return s.countUnreadFn(ctx, toUserID)
	}
	return 0, nil
}

type activityRepoStub struct {
	createFn   func(ctx context.Context, record *entities.Activity) error
	getFeedFn  func(ctx context.Context, viewerID uuid.UUID, connectedIDs []uuid.UUID, limit int) ([]*entities.Activity, error)
	markReadFn func(ctx context.Context, ids []uuid.UUID) error
}

func (s *activityRepoStub) Create(ctx context.Context, record *entities.Activity) error {
	if s.createFn != nil {
		return s.createFn(ctx, record)
	}
	return nil
}

func (s *activityRepoStub) GetFeed(ctx context.Context, viewerID uuid.UUID, connectedIDs []uuid.UUID, limit int) ([]*entities.Activity, error) {
	if s.getFeedFn != nil {
		return s.getFeedFn(ctx, viewerID, connectedIDs, limit)
	}
	return []*entities.Activity{}, nil
}

func (s *activityRepoStub) MarkRead(ctx context.Context, ids []uuid.UUID) error {
	if s.markReadFn != nil {
		return s.markReadFn(ctx, ids)
	}
	return nil
}

// uowStub runs the scoped function directly without a transaction.
type uowStub struct {
	doFn func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (s *uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.doFn != nil {
		return s.doFn(ctx, fn)
	}
	return fn(ctx)
}

// authedContext builds a gin test context carrying the identity keys the
// auth middleware would have set.
func authedContext(method, target, body string, userID uuid.UUID, role entities.UserRole) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.UserIDKey, userID)
	c.Set(middleware.UserRoleKey, string(role))
	return c, rec
}
