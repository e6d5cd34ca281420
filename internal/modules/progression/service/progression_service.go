package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ascend/internal/modules/progression/domain"
	progressionout "ascend/internal/modules/progression/port/out"
	"ascend/internal/platform/clock"
	apperrors "ascend/internal/platform/errors"
)

// ProgressionService owns the load-mutate-save cycle around the profile
// snapshot. Every other module funnels its profile writes through here.
type ProgressionService struct {
	clock   clock.Clock
	store   progressionout.ProfileStore
	history progressionout.HistoryProjector
}

func NewProgressionService(clock clock.Clock, store progressionout.ProfileStore, history progressionout.HistoryProjector) *ProgressionService {
	return &ProgressionService{clock: clock, store: store, history: history}
}

// LoadOrInit returns the stored profile, seeding a fresh one on first run.
func (s *ProgressionService) LoadOrInit(ctx context.Context) (domain.Profile, error) {
	profile, err := s.store.Load(ctx)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return domain.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	profile = domain.NewProfile(s.clock.Now())
	if err := s.store.Save(ctx, profile); err != nil {
		return domain.Profile{}, fmt.Errorf("seed profile: %w", err)
	}
	return profile, nil
}

func (s *ProgressionService) Save(ctx context.Context, profile domain.Profile) error {
	return s.store.Save(ctx, profile)
}

// RecordHistory mirrors a finalized session into the reporting index. The
// projector is best-effort infrastructure, but write failures still surface.
func (s *ProgressionService) RecordHistory(ctx context.Context, entry domain.HistoryEntry) error {
	if s.history == nil {
		return nil
	}
	return s.history.Record(ctx, entry)
}

// RecentHistory queries the reporting index for sessions finalized since the
// given instant, newest first.
func (s *ProgressionService) RecentHistory(ctx context.Context, since time.Time) ([]domain.HistoryEntry, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.Recent(ctx, since)
}

// ReindexHistory rebuilds the reporting index from the profile snapshot. The
// profile's capped history stays authoritative; the index is disposable.
func (s *ProgressionService) ReindexHistory(ctx context.Context, profile domain.Profile) (int, error) {
	if s.history == nil {
		return 0, nil
	}
	if err := s.history.Reset(ctx); err != nil {
		return 0, fmt.Errorf("reset history index: %w", err)
	}
	for _, entry := range profile.SessionHistory {
		if err := s.history.Record(ctx, entry); err != nil {
			return 0, fmt.Errorf("record %s: %w", entry.SessionID, err)
		}
	}
	return len(profile.SessionHistory), nil
}
