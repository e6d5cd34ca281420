package out

import (
	"context"
	"time"
)

// MarkerStore remembers when daily maintenance last ran and when the profile
// was last exported. Markers live outside the profile so a corrupt profile
// never wedges the maintenance loop.
type MarkerStore interface {
	LastRun(ctx context.Context) (string, error)
	SetLastRun(ctx context.Context, dateKey string) error
	LastExport(ctx context.Context) (time.Time, error)
	SetLastExport(ctx context.Context, at time.Time) error
}
