package out

import (
	"context"
	"time"

	"ascend/internal/modules/session/domain"
)

// ActiveSessionStore persists the single in-flight session between CLI
// invocations.
type ActiveSessionStore interface {
	SaveActive(ctx context.Context, session domain.ActiveSession) error
	LoadActive(ctx context.Context) (domain.ActiveSession, error)
	ClearActive(ctx context.Context) error
}

// EvidenceStore keeps evidence blobs keyed by an opaque image id. Blobs are
// retained for a bounded window and reaped by storage cleanup.
type EvidenceStore interface {
	Put(ctx context.Context, blob []byte, sessionID, kind string) (string, error)
	Get(ctx context.Context, imageID string) ([]byte, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
	Usage(ctx context.Context) (domain.StorageUsage, error)
}
