package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	maintenanceout "ascend/internal/modules/maintenance/port/out"
)

type markerFile struct {
	LastMaintenance string    `json:"last_maintenance,omitempty"`
	LastExport      time.Time `json:"last_export,omitzero"`
}

type FileMarkerStore struct {
	path string
}

func NewFileMarkerStore(path string) maintenanceout.MarkerStore {
	return &FileMarkerStore{path: path}
}

func (s *FileMarkerStore) LastRun(_ context.Context) (string, error) {
	markers, err := s.read()
	if err != nil {
		return "", err
	}
	return markers.LastMaintenance, nil
}

func (s *FileMarkerStore) SetLastRun(_ context.Context, dateKey string) error {
	markers, err := s.read()
	if err != nil {
		return err
	}
	markers.LastMaintenance = dateKey
	return s.write(markers)
}

func (s *FileMarkerStore) LastExport(_ context.Context) (time.Time, error) {
	markers, err := s.read()
	if err != nil {
		return time.Time{}, err
	}
	return markers.LastExport, nil
}

func (s *FileMarkerStore) SetLastExport(_ context.Context, at time.Time) error {
	markers, err := s.read()
	if err != nil {
		return err
	}
	markers.LastExport = at
	return s.write(markers)
}

func (s *FileMarkerStore) read() (markerFile, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return markerFile{}, nil
		}
		return markerFile{}, fmt.Errorf("read markers: %w", err)
	}
	markers := markerFile{}
	if err := json.Unmarshal(payload, &markers); err != nil {
		return markerFile{}, fmt.Errorf("decode markers: %w", err)
	}
	return markers, nil
}

func (s *FileMarkerStore) write(markers markerFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create marker dir: %w", err)
	}
	payload, err := json.MarshalIndent(markers, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal markers: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write markers: %w", err)
	}
	return nil
}
