package out

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ascend/internal/modules/reward/domain"
	rewardout "ascend/internal/modules/reward/port/out"
	apperrors "ascend/internal/platform/errors"
)

type catalogFile struct {
	Rewards []domain.Reward `yaml:"rewards"`
}

type YAMLCatalogStore struct {
	path string
}

func NewYAMLCatalogStore(path string) rewardout.CatalogStore {
	return &YAMLCatalogStore{path: path}
}

func (s *YAMLCatalogStore) Load(_ context.Context) ([]domain.Reward, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Defaults(), nil
		}
		return nil, fmt.Errorf("read reward catalog: %w", err)
	}
	catalog := catalogFile{}
	if err := yaml.Unmarshal(payload, &catalog); err != nil {
		return nil, fmt.Errorf("decode reward catalog: %w", err)
	}
	if len(catalog.Rewards) == 0 {
		return domain.Defaults(), nil
	}
	for _, reward := range catalog.Rewards {
		if reward.Name == "" || reward.Cost <= 0 {
			return nil, fmt.Errorf("%w: catalog entry %q needs a name and a positive cost", apperrors.ErrInvalidInput, reward.Name)
		}
	}
	return catalog.Rewards, nil
}
