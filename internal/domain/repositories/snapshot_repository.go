package repositories

import (
	"context"

	"agro-chain.backend/internal/domain/entities"
)

// SnapshotSource assembles the whole entity store into one snapshot document
type SnapshotSource interface {
	Export(ctx context.Context) (*entities.StateSnapshot, error)
}
