package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ascend/internal/modules/progression/domain"
	progressionout "ascend/internal/modules/progression/port/out"
	apperrors "ascend/internal/platform/errors"
)

type FileProfileStore struct {
	path string
}

func NewFileProfileStore(path string) progressionout.ProfileStore {
	return &FileProfileStore{path: path}
}

func (s *FileProfileStore) Load(_ context.Context) (domain.Profile, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Profile{}, apperrors.ErrNotFound
		}
		return domain.Profile{}, fmt.Errorf("read profile: %w", err)
	}
	profile := domain.Profile{}
	if err := json.Unmarshal(payload, &profile); err != nil {
		return domain.Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return profile, nil
}

func (s *FileProfileStore) Save(_ context.Context, profile domain.Profile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}
	payload, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace profile: %w", err)
	}
	return nil
}
