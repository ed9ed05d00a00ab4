package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agro-chain.backend/internal/domain/entities"
	domainerrors "agro-chain.backend/internal/domain/errors"
	"agro-chain.backend/pkg/utils"
)

func TestConnectionRequestRepository_GetByOrderedPair(t *testing.T) {
	db := newTestDB(t)
	createSocialTables(t, db)
	repo := NewConnectionRequestRepository(db)

	from := utils.GenerateUUIDv7()
	to := utils.GenerateUUIDv7()
	req := &entities.ConnectionRequest{
		ID:         utils.GenerateUUIDv7(),
		FromUserID: from,
		ToUserID:   to,
		Status:     entities.ConnectionRequestPending,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), req))

	got, err := repo.GetByOrderedPair(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, req.ID, got.ID)

	// The reverse direction is a different pair.
	_, err = repo.GetByOrderedPair(context.Background(), to, from)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestConnectionRequestRepository_ResolvedPairStillFound(t *testing.T) {
	db := newTestDB(t)
	createSocialTables(t, db)
	repo := NewConnectionRequestRepository(db)

	from := utils.GenerateUUIDv7()
	to := utils.GenerateUUIDv7()
	req := &entities.ConnectionRequest{
		ID:         utils.GenerateUUIDv7(),
		FromUserID: from,
		ToUserID:   to,
		Status:     entities.ConnectionRequestPending,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), req))
	require.NoError(t, repo.UpdateStatus(context.Background(), req.ID, entities.ConnectionRequestRejected))

	got, err := repo.GetByOrderedPair(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, entities.ConnectionRequestRejected, got.Status)
	require.NotNil(t, got.ResolvedAt)
}

func TestConnectionRequestRepository_UpdateStatus_Terminal(t *testing.T) {
	db := newTestDB(t)
	createSocialTables(t, db)
	repo := NewConnectionRequestRepository(db)

	req := &entities.ConnectionRequest{
		ID:         utils.GenerateUUIDv7(),
		FromUserID: utils.GenerateUUIDv7(),
		ToUserID:   utils.GenerateUUIDv7(),
		Status:     entities.ConnectionRequestPending,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), req))
	require.NoError(t, repo.UpdateStatus(context.Background(), req.ID, entities.ConnectionRequestAccepted))

	// Resolving again must not flip an already resolved request.
	err := repo.UpdateStatus(context.Background(), req.ID, entities.ConnectionRequestRejected)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)

	got, err := repo.GetByID(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.ConnectionRequestAccepted, got.Status)
}

func TestConnectionRequestRepository_GetPendingForUser(t *testing.T) {
	db := newTestDB(t)
	createSocialTables(t, db)
	repo := NewConnectionRequestRepository(db)

	to := utils.GenerateUUIDv7()
	pending := &entities.ConnectionRequest{
		ID:         utils.GenerateUUIDv7(),
		FromUserID: utils.GenerateUUIDv7(),
		ToUserID:   to,
		Status:     entities.ConnectionRequestPending,
		CreatedAt:  time.Now(),
	}
	resolved := &entities.ConnectionRequest{
		ID:         utils.GenerateUUIDv7(),
		FromUserID: utils.GenerateUUIDv7(),
		ToUserID:   to,
		Status:     entities.ConnectionRequestPending,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), pending))
	require.NoError(t, repo.Create(context.Background(), resolved))
	require.NoError(t, repo.UpdateStatus(context.Background(), resolved.ID, entities.ConnectionRequestAccepted))

	reqs, err := repo.GetPendingForUser(context.Background(), to)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, pending.ID, reqs[0].ID)
}

func TestConnectionRepository_GetByPair_BothDirections(t *testing.T) {
	db := newTestDB(t)
	createSocialTables(t, db)
	repo := NewConnectionRepository(db)

	a := utils.GenerateUUIDv7()
	b := utils.GenerateUUIDv7()
	conn := &entities.Connection{
		ID:        utils.GenerateUUIDv7(),
		UserAID:   a,
		UserBID:   b,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), conn))

	got, err := repo.GetByPair(context.Background(), a, b)
	require.NoError(t, err)
	assert.Equal(t, conn.ID, got.ID)

	got, err = repo.GetByPair(context.Background(), b, a)
	require.NoError(t, err)
	assert.Equal(t, conn.ID, got.ID)

	_, err = repo.GetByPair(context.Background(), a, utils.GenerateUUIDv7())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestConnectionRepository_Create_RejectsReversedDuplicate(t *testing.T) {
	db := newTestDB(t)
	createSocialTables(t, db)
	repo := NewConnectionRepository(db)

	a := utils.GenerateUUIDv7()
	b := utils.GenerateUUIDv7()
	require.NoError(t, repo.Create(context.Background(), &entities.Connection{
		ID: utils.GenerateUUIDv7(), UserAID: a, UserBID: b, CreatedAt: time.Now(),
	}))

	// The reversed pair normalizes to the same row and must hit the unique
	// index.
	err := repo.Create(context.Background(), &entities.Connection{
		ID: utils.GenerateUUIDv7(), UserAID: b, UserBID: a, CreatedAt: time.Now(),
	})
	require.Error(t, err)

	conns, err := repo.GetByUserID(context.Background(), a)
	require.NoError(t, err)
	assert.Len(t, conns, 1)
}

func TestConnectionRepository_GetByUserID(t *testing.T) {
	db := newTestDB(t)
	createSocialTables(t, db)
	repo := NewConnectionRepository(db)

	a := utils.GenerateUUIDv7()
	require.NoError(t, repo.Create(context.Background(), &entities.Connection{
		ID: utils.GenerateUUIDv7(), UserAID: a, UserBID: utils.GenerateUUIDv7(), CreatedAt: time.Now(),
	}))
	require.NoError(t, repo.Create(context.Background(), &entities.Connection{
		ID: utils.GenerateUUIDv7(), UserAID: utils.GenerateUUIDv7(), UserBID: a, CreatedAt: time.Now(),
	}))
	require.NoError(t, repo.Create(context.Background(), &entities.Connection{
		ID: utils.GenerateUUIDv7(), UserAID: utils.GenerateUUIDv7(), UserBID: utils.GenerateUUIDv7(), CreatedAt: time.Now(),
	}))

	conns, err := repo.GetByUserID(context.Background(), a)
	require.NoError(t, err)
	assert.Len(t, conns, 2)
}
