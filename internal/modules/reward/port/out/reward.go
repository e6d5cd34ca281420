package out

import (
	"context"

	"ascend/internal/modules/reward/domain"
)

// CatalogStore loads the reward catalog. A missing catalog yields the
// built-in defaults, not an error.
type CatalogStore interface {
	Load(ctx context.Context) ([]domain.Reward, error)
}
