package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DataPath    string `env:"ASCEND_DATA"`
	ProfilePath string `env:"-"`
	DBPath      string `env:"-"`
	MarkerPath  string `env:"-"`
	CatalogPath string `env:"-"`
}

// New resolves the data directory: an explicit path wins, then ASCEND_DATA,
// then ~/.ascend.
func New(dataPath string) (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if dataPath != "" {
		cfg.DataPath = dataPath
	}
	if cfg.DataPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.DataPath = filepath.Join(home, ".ascend")
	}
	if err := os.MkdirAll(cfg.DataPath, 0o755); err != nil {
		return Config{}, fmt.Errorf("create data dir: %w", err)
	}
	cfg.ProfilePath = filepath.Join(cfg.DataPath, "profile.json")
	cfg.DBPath = filepath.Join(cfg.DataPath, "ascend.db")
	cfg.MarkerPath = filepath.Join(cfg.DataPath, "maintenance.json")
	cfg.CatalogPath = filepath.Join(cfg.DataPath, "rewards.yaml")
	return cfg, nil
}
