package service

import (
	"context"

	"stepbot/models"
)

// SnapshotProvider is the read surface command handlers and workers
// consume. force bypasses the TTL and rebuilds from the row source.
type SnapshotProvider interface {
	GetSnapshot(ctx context.Context, force bool) (*models.Snapshot, error)
}
