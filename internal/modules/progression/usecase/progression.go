package usecase

import (
	"context"
	"fmt"
	"time"

	"ascend/internal/modules/progression/domain"
	progressiondto "ascend/internal/modules/progression/dto"
	progressionin "ascend/internal/modules/progression/port/in"
	"ascend/internal/modules/progression/service"
	readinessdomain "ascend/internal/modules/readiness/domain"
	"ascend/internal/platform/calendar"
	"ascend/internal/platform/clock"
	apperrors "ascend/internal/platform/errors"
)

const (
	minVisionChars     = 100
	reportHistoryMax   = 50
	defaultHistoryDays = 30
)

type Interactor struct {
	svc   *service.ProgressionService
	clock clock.Clock
}

func NewInteractor(svc *service.ProgressionService, clock clock.Clock) progressionin.Usecase {
	return &Interactor{svc: svc, clock: clock}
}

func (i *Interactor) Status(ctx context.Context) (progressiondto.StatusOutput, error) {
	profile, err := i.svc.LoadOrInit(ctx)
	if err != nil {
		return progressiondto.StatusOutput{}, err
	}
	now := i.clock.Now()

	out := progressiondto.StatusOutput{
		AwakeningDone:  profile.Awakening.Completed,
		Level:          profile.Level,
		Rank:           string(profile.Rank()),
		XP:             profile.XP,
		XPRequired:     domain.RequiredXP(profile.Level),
		Gold:           profile.Gold,
		WeeklyXP:       profile.WeeklyXP,
		WeeklyCap:      domain.WeeklyCap(profile.Level),
		WeeklyRollover: profile.WeeklyRollover,
		RolloverCap:    domain.RolloverCap(profile.Level),
		StudyStreak:    profile.StudyStreak,
		FailureStreak:  profile.FailureStreak,
		Protection:     protectionOutput(profile.Protection),
		GraceRemaining: graceRemaining(profile, now),
	}
	if quest := profile.DailyQuest; quest != nil && quest.Date == calendar.DateKey(now) {
		out.Quest = &progressiondto.QuestOutput{
			Date:      quest.Date,
			Subject:   string(quest.Subject),
			Phase:     string(quest.Phase),
			XP:        quest.XP,
			Completed: quest.Completed,
		}
	}
	return out, nil
}

func (i *Interactor) Report(ctx context.Context) (progressiondto.ReportOutput, error) {
	profile, err := i.svc.LoadOrInit(ctx)
	if err != nil {
		return progressiondto.ReportOutput{}, err
	}
	now := i.clock.Now()
	readiness := readinessdomain.Calculate(&profile, now)

	skills := make(map[string]int, len(profile.Skills))
	for subject, xp := range profile.Skills {
		skills[string(subject)] = xp
	}

	history := profile.SessionHistory
	if len(history) > reportHistoryMax {
		history = history[:reportHistoryMax]
	}
	entries := make([]progressiondto.HistoryEntryOutput, 0, len(history))
	for _, entry := range history {
		entries = append(entries, historyOutput(entry))
	}

	return progressiondto.ReportOutput{
		GeneratedAt:       now,
		StartDate:         profile.StartDate,
		DaysSinceStart:    int(now.Sub(profile.StartDate).Hours() / 24),
		Level:             profile.Level,
		Rank:              string(profile.Rank()),
		XP:                profile.XP,
		XPRequired:        domain.RequiredXP(profile.Level),
		Gold:              profile.Gold,
		WeeklyXP:          profile.WeeklyXP,
		WeeklyCap:         domain.WeeklyCap(profile.Level),
		WeeklyRollover:    profile.WeeklyRollover,
		StudyStreak:       profile.StudyStreak,
		FailureStreak:     profile.FailureStreak,
		Protection:        protectionOutput(profile.Protection),
		GraceRemaining:    graceRemaining(profile, now),
		TotalStudyMinutes: profile.TotalStudyMinutes,
		TotalStudyHours:   float64(profile.TotalStudyMinutes) / 60,
		TotalSessions:     profile.TotalSessions,
		TotalMocks:        profile.TotalMocks,
		Skills:            skills,
		Readiness: progressiondto.ReadinessOutput{
			Show:       readiness.Show,
			Reason:     readiness.Reason,
			Percentage: readiness.Percentage,
			RangeLow:   readiness.RangeLow,
			RangeHigh:  readiness.RangeHigh,
			Base:       readiness.Base,
			Modifiers:  readiness.Modifiers,
		},
		History: entries,
	}, nil
}

func (i *Interactor) Awaken(ctx context.Context, input progressiondto.AwakenInput) (progressiondto.AwakenOutput, error) {
	if len(input.Vision) < minVisionChars {
		return progressiondto.AwakenOutput{}, fmt.Errorf("%w: vision needs at least %d characters", apperrors.ErrInvalidInput, minVisionChars)
	}
	if len(input.AntiVision) < minVisionChars {
		return progressiondto.AwakenOutput{}, fmt.Errorf("%w: anti-vision needs at least %d characters", apperrors.ErrInvalidInput, minVisionChars)
	}
	profile, err := i.svc.LoadOrInit(ctx)
	if err != nil {
		return progressiondto.AwakenOutput{}, err
	}
	if profile.Awakening.Completed {
		return progressiondto.AwakenOutput{Completed: true, StartDate: profile.StartDate}, nil
	}
	profile.CompleteAwakening(input.Vision, input.AntiVision)
	if err := i.svc.Save(ctx, profile); err != nil {
		return progressiondto.AwakenOutput{}, err
	}
	return progressiondto.AwakenOutput{Completed: true, StartDate: profile.StartDate}, nil
}

// History reads the sqlite reporting index instead of the profile snapshot,
// so it can reach past the snapshot's 100-entry cap.
func (i *Interactor) History(ctx context.Context, days int) ([]progressiondto.HistoryEntryOutput, error) {
	if days <= 0 {
		days = defaultHistoryDays
	}
	since := i.clock.Now().AddDate(0, 0, -days)
	entries, err := i.svc.RecentHistory(ctx, since)
	if err != nil {
		return nil, err
	}
	out := make([]progressiondto.HistoryEntryOutput, 0, len(entries))
	for _, entry := range entries {
		out = append(out, historyOutput(entry))
	}
	return out, nil
}

// Reindex rebuilds the reporting index from the profile snapshot.
func (i *Interactor) Reindex(ctx context.Context) (int, error) {
	profile, err := i.svc.LoadOrInit(ctx)
	if err != nil {
		return 0, err
	}
	return i.svc.ReindexHistory(ctx, profile)
}

func historyOutput(entry domain.HistoryEntry) progressiondto.HistoryEntryOutput {
	return progressiondto.HistoryEntryOutput{
		SessionID:   entry.SessionID,
		Kind:        string(entry.Kind),
		Subject:     string(entry.Subject),
		Topic:       entry.Topic,
		Source:      entry.Source,
		Phase:       string(entry.Phase),
		MockType:    string(entry.MockType),
		DurationMin: entry.DurationMin,
		XPEarned:    entry.XPEarned,
		GoldEarned:  entry.GoldEarned,
		CompletedAt: entry.CompletedAt,
	}
}

func protectionOutput(p domain.Protection) progressiondto.ProtectionOutput {
	return progressiondto.ProtectionOutput{
		Active:    p.Active,
		Kind:      string(p.Kind),
		ExpiresAt: p.ExpiresAt,
	}
}

// graceRemaining reports this month's unused grace allowance. Months the
// profile never touched read as a full allowance.
func graceRemaining(p domain.Profile, now time.Time) int {
	if p.GraceMonth != calendar.MonthKey(now) {
		return 1
	}
	remaining := 1 - p.GraceDaysUsed
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}
