package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	maintenancedto "ascend/internal/modules/maintenance/dto"
	maintenancein "ascend/internal/modules/maintenance/port/in"
	maintenanceout "ascend/internal/modules/maintenance/port/out"
	progressiondomain "ascend/internal/modules/progression/domain"
	progressionout "ascend/internal/modules/progression/port/out"
	questdomain "ascend/internal/modules/quest/domain"
	"ascend/internal/platform/calendar"
	"ascend/internal/platform/clock"
	apperrors "ascend/internal/platform/errors"
	"ascend/internal/platform/rng"
)

// Interactor runs the once-per-day settlement: decay or grace, protection
// expiry, weekly rollover and the daily quest roll. Every CLI invocation
// calls RunDaily; the marker makes repeat calls free.
type Interactor struct {
	clock    clock.Clock
	rng      rng.Source
	profiles progressionout.ProfileStore
	markers  maintenanceout.MarkerStore
}

func NewInteractor(clock clock.Clock, source rng.Source, profiles progressionout.ProfileStore, markers maintenanceout.MarkerStore) maintenancein.Usecase {
	return &Interactor{clock: clock, rng: source, profiles: profiles, markers: markers}
}

func (i *Interactor) RunDaily(ctx context.Context) (maintenancedto.RunOutput, error) {
	now := i.clock.Now()
	today := calendar.DateKey(now)

	last, err := i.markers.LastRun(ctx)
	if err != nil {
		return maintenancedto.RunOutput{}, err
	}
	if last == today {
		return maintenancedto.RunOutput{AlreadyRan: true}, nil
	}

	profile, err := i.loadProfile(ctx, now)
	if err != nil {
		return maintenancedto.RunOutput{}, err
	}
	out := maintenancedto.RunOutput{}

	if profile.LastStudyDate != today {
		if profile.ConsumeGraceDay(now) {
			out.GraceUsed = true
		} else if decay := progressiondomain.DailyDecay(profile.Level); decay > 0 && !profile.ProtectionLive(now) {
			profile.RemoveXP(decay)
			out.DecayApplied = decay
		}
	}

	if profile.Protection.Active && !profile.LastMockDate.IsZero() && now.Sub(profile.LastMockDate) >= progressiondomain.MockInactivity {
		profile.ClearProtection()
		out.ProtectionCleared = true
	}

	weekBefore := profile.WeekStart
	profile.RollWeek(now)
	profile.RollAffirmationWeek(now)
	out.WeekRolled = profile.WeekStart != weekBefore

	out.QuestRolled = questdomain.Generate(&profile, i.rng, now)

	if err := i.profiles.Save(ctx, profile); err != nil {
		return maintenancedto.RunOutput{}, err
	}
	if err := i.markers.SetLastRun(ctx, today); err != nil {
		return maintenancedto.RunOutput{}, err
	}
	return out, nil
}

func (i *Interactor) ExportStatus(ctx context.Context) (maintenancedto.ExportStatusOutput, error) {
	last, err := i.markers.LastExport(ctx)
	if err != nil {
		return maintenancedto.ExportStatusOutput{}, err
	}
	now := i.clock.Now()
	due := last.IsZero() || now.Sub(last) >= progressiondomain.ExportReminder
	return maintenancedto.ExportStatusOutput{Due: due, LastExport: last}, nil
}

func (i *Interactor) MarkExported(ctx context.Context) error {
	return i.markers.SetLastExport(ctx, i.clock.Now())
}

func (i *Interactor) loadProfile(ctx context.Context, now time.Time) (progressiondomain.Profile, error) {
	profile, err := i.profiles.Load(ctx)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return progressiondomain.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return progressiondomain.NewProfile(now), nil
}
