package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agro-chain.backend/internal/domain/entities"
	domainerrors "agro-chain.backend/internal/domain/errors"
	"agro-chain.backend/internal/domain/repositories"
	"agro-chain.backend/pkg/logger"
	"agro-chain.backend/pkg/utils"
)

// ConnectionUsecase handles the request/accept/reject protocol between user
// pairs. A resolved request is terminal: the same ordered pair can never
// carry a second request, so rejection permanently blocks that direction.
type ConnectionUsecase struct {
	requestRepo    repositories.ConnectionRequestRepository
	connectionRepo repositories.ConnectionRepository
	userRepo       repositories.UserRepository
	uow            repositories.UnitOfWork
	activity       *ActivityUsecase
}

// NewConnectionUsecase creates a new connection usecase
func NewConnectionUsecase(
	requestRepo repositories.ConnectionRequestRepository,
	connectionRepo repositories.ConnectionRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
	activity *ActivityUsecase,
) *ConnectionUsecase {
	return &ConnectionUsecase{
		requestRepo:    requestRepo,
		connectionRepo: connectionRepo,
		userRepo:       userRepo,
		uow:            uow,
		activity:       activity,
	}
}

// SendRequest creates a pending request from one user to another. It fails
// when the target is the requester, when any request for this exact ordered
// pair already exists, or when the pair is already connected.
func (u *ConnectionUsecase) SendRequest(ctx context.Context, fromUserID, toUserID uuid.UUID) (*entities.ConnectionRequest, error) {
	if fromUserID == toUserID {
		return nil, domainerrors.BadRequest("cannot connect to own account")
	}
	if _, err := u.userRepo.GetByID(ctx, toUserID); err != nil {
		return nil, err
	}

	existing, err := u.requestRepo.GetByOrderedPair(ctx, fromUserID, toUserID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.NewError("request already sent", domainerrors.ErrAlreadyExists)
	}

	conn, err := u.connectionRepo.GetByPair(ctx, fromUserID, toUserID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if conn != nil {
		return nil, domainerrors.NewError("already connected", domainerrors.ErrAlreadyExists)
	}

	req := &entities.ConnectionRequest{
		ID:         utils.GenerateUUIDv7(),
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Status:     entities.ConnectionRequestPending,
		CreatedAt:  time.Now(),
	}
	if err := u.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// AcceptRequest resolves a pending request and creates the connection. Only
// the addressee may accept.
func (u *ConnectionUsecase) AcceptRequest(ctx context.Context, actorID, requestID uuid.UUID) (*entities.Connection, error) {
	req, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.ToUserID != actorID {
		return nil, domainerrors.Forbidden("request is addressed to another user")
	}

	conn := &entities.Connection{
		ID:        utils.GenerateUUIDv7(),
		UserAID:   req.FromUserID,
		UserBID:   req.ToUserID,
		CreatedAt: time.Now(),
	}
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.requestRepo.UpdateStatus(txCtx, req.ID, entities.ConnectionRequestAccepted); err != nil {
			return domainerrors.Conflict("request is already resolved")
		}
		// Mutual pending requests both pass the SendRequest checks, so the
		// unordered pair has to be re-checked here before the second accept
		// creates a duplicate connection.
		existing, err := u.connectionRepo.GetByPair(txCtx, req.FromUserID, req.ToUserID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}
		if existing != nil {
			return domainerrors.NewError("already connected", domainerrors.ErrAlreadyExists)
		}
		return u.connectionRepo.Create(txCtx, conn)
	})
	if err != nil {
		return nil, err
	}

	// The connection is committed at this point. Failing to resolve display
	// names only costs the feed entry, not the operation.
	from, fromErr := u.userRepo.GetByID(ctx, req.FromUserID)
	to, toErr := u.userRepo.GetByID(ctx, req.ToUserID)
	if fromErr != nil || toErr != nil {
		logger.Error(ctx, "failed to load actors for connection activity",
			zap.NamedError("fromError", fromErr), zap.NamedError("toError", toErr))
		return conn, nil
	}
	u.activity.Record(ctx, &entities.Activity{
		Type:             entities.ActivityConnectionAccepted,
		ActorID:          to.ID,
		SecondaryActorID: &from.ID,
		Description:      fmt.Sprintf("%s and %s are now connected", to.DisplayName(), from.DisplayName()),
	})
	return conn, nil
}

// RejectRequest resolves a pending request without creating a connection.
// The ordered pair stays blocked: there is no retry path after rejection.
func (u *ConnectionUsecase) RejectRequest(ctx context.Context, actorID, requestID uuid.UUID) error {
	req, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.ToUserID != actorID {
		return domainerrors.Forbidden("request is addressed to another user")
	}

	if err := u.requestRepo.UpdateStatus(ctx, req.ID, entities.ConnectionRequestRejected); err != nil {
		return domainerrors.Conflict("request is already resolved")
	}
	return nil
}

// PendingRequests returns the pending requests addressed to a user
func (u *ConnectionUsecase) PendingRequests(ctx context.Context, userID uuid.UUID) ([]*entities.ConnectionRequest, error) {
	return u.requestRepo.GetPendingForUser(ctx, userID)
}

// ConnectionsOf returns every connection involving a user
func (u *ConnectionUsecase) ConnectionsOf(ctx context.Context, userID uuid.UUID) ([]*entities.Connection, error) {
	return u.connectionRepo.GetByUserID(ctx, userID)
}
