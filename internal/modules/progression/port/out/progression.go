package out

import (
	"context"
	"time"

	"ascend/internal/modules/progression/domain"
)

// ProfileStore is the durable snapshot store. The whole profile is written
// back after every mutating operation.
type ProfileStore interface {
	Load(ctx context.Context) (domain.Profile, error)
	Save(ctx context.Context, profile domain.Profile) error
}

// HistoryProjector mirrors finalized sessions into a queryable index for
// reporting. The profile's own capped history stays authoritative.
type HistoryProjector interface {
	Record(ctx context.Context, entry domain.HistoryEntry) error
	Recent(ctx context.Context, since time.Time) ([]domain.HistoryEntry, error)
	Reset(ctx context.Context) error
}
