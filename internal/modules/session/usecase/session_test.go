package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	progressionadapter "ascend/internal/modules/progression/adapter/out"
	progressiondomain "ascend/internal/modules/progression/domain"
	progressionout "ascend/internal/modules/progression/port/out"
	sessionadapter "ascend/internal/modules/session/adapter/out"
	"ascend/internal/modules/session/domain"
	sessiondto "ascend/internal/modules/session/dto"
	sessionin "ascend/internal/modules/session/port/in"
	"ascend/internal/modules/session/service"
	"ascend/internal/modules/session/usecase"
	apperrors "ascend/internal/platform/errors"
	"ascend/internal/platform/rng"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type fakeID struct {
	n int
}

func (f *fakeID) New() string {
	f.n++
	return fmt.Sprintf("sess-%d", f.n)
}

// fakeSource pins the audit draw.
type fakeSource struct {
	f float64
}

func (s fakeSource) Intn(n int) int   { return 0 }
func (s fakeSource) Float64() float64 { return s.f }

type fakeEvidence struct {
	blobs map[string][]byte
	n     int
}

func newFakeEvidence() *fakeEvidence {
	return &fakeEvidence{blobs: map[string][]byte{}}
}

func (f *fakeEvidence) Put(_ context.Context, blob []byte, _, _ string) (string, error) {
	f.n++
	id := fmt.Sprintf("img-%d", f.n)
	f.blobs[id] = blob
	return id, nil
}

func (f *fakeEvidence) Get(_ context.Context, imageID string) ([]byte, error) {
	blob, ok := f.blobs[imageID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return blob, nil
}

func (f *fakeEvidence) DeleteOlderThan(context.Context, time.Time) (int, error) { return 0, nil }

func (f *fakeEvidence) Usage(context.Context) (domain.StorageUsage, error) {
	total := int64(0)
	for _, b := range f.blobs {
		total += int64(len(b))
	}
	return domain.StorageUsage{Count: len(f.blobs), TotalBytes: total}, nil
}

type fakeProjector struct {
	entries []progressiondomain.HistoryEntry
}

func (f *fakeProjector) Record(_ context.Context, entry progressiondomain.HistoryEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeProjector) Recent(context.Context, time.Time) ([]progressiondomain.HistoryEntry, error) {
	return f.entries, nil
}

func (f *fakeProjector) Reset(context.Context) error {
	f.entries = nil
	return nil
}

type harness struct {
	uc        sessionin.Usecase
	clock     *fakeClock
	profiles  progressionout.ProfileStore
	projector *fakeProjector
	evidence  *fakeEvidence
}

func newHarness(t *testing.T, audit float64) *harness {
	t.Helper()
	dir := t.TempDir()
	clk := &fakeClock{now: time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)}
	profiles := progressionadapter.NewFileProfileStore(dir + "/profile.json")
	projector := &fakeProjector{}
	evidence := newFakeEvidence()
	svc := service.NewSessionService(clk, &fakeID{}, fakeSource{f: audit})
	uc := usecase.NewInteractor(svc, clk, profiles, projector, sessionadapter.NewFileActiveSessionStore(dir), evidence)
	return &harness{uc: uc, clock: clk, profiles: profiles, projector: projector, evidence: evidence}
}

func (h *harness) seedProfile(t *testing.T, mutate func(*progressiondomain.Profile)) {
	t.Helper()
	profile := progressiondomain.NewProfile(h.clock.now)
	if mutate != nil {
		mutate(&profile)
	}
	if err := h.profiles.Save(context.Background(), profile); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
}

func (h *harness) profile(t *testing.T) progressiondomain.Profile {
	t.Helper()
	profile, err := h.profiles.Load(context.Background())
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	return profile
}

func TestStudyLifecycleCreditsXPGoldAndQuest(t *testing.T) {
	t.Parallel()
	h := newHarness(t, 0.9) // no audit
	h.seedProfile(t, func(p *progressiondomain.Profile) {
		p.DailyQuest = &progressiondomain.Quest{
			Date:    "2026-03-02",
			Subject: progressiondomain.SubjectQuant,
			Phase:   progressiondomain.PhaseLearning,
			XP:      30,
		}
	})
	ctx := context.Background()

	start, err := h.uc.StartStudy(ctx, sessiondto.StartStudyInput{Subject: "quant", Topic: "percentages", Phase: "learning"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if start.AuditRequired {
		t.Fatalf("draw above threshold must not audit")
	}
	if start.MinimumMinutes != progressiondomain.MinStudyMinutes {
		t.Fatalf("minimum = %d", start.MinimumMinutes)
	}

	if _, err := h.uc.AttachPhoto(ctx, []byte("jpeg-bytes")); err != nil {
		t.Fatalf("attach photo: %v", err)
	}

	h.clock.now = h.clock.now.Add(60 * time.Minute)
	out, err := h.uc.FinalizeStudy(ctx, sessiondto.FinalizeStudyInput{
		Notes:      "Covered percentage basics, fraction conversions and two shortcut methods.",
		Difficulty: "medium",
		Confidence: "moderate",
	})
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	// 60 min learning at level 1: 20 XP, 2 gold.
	if out.XPEarned != 20 || out.GoldEarned != 2 {
		t.Fatalf("xp/gold = %d/%d, want 20/2", out.XPEarned, out.GoldEarned)
	}
	if !out.QuestCompleted || out.QuestXP != 30 {
		t.Fatalf("quest settle = %v/%d, want true/30", out.QuestCompleted, out.QuestXP)
	}

	profile := h.profile(t)
	if profile.XP != 50 {
		t.Fatalf("profile xp = %d, want 50 (session 20 + quest 30)", profile.XP)
	}
	if profile.StudyStreak != 1 || profile.FailureStreak != 0 {
		t.Fatalf("streaks = %d/%d", profile.StudyStreak, profile.FailureStreak)
	}
	if profile.Skills[progressiondomain.SubjectQuant] != 20 {
		t.Fatalf("skill xp = %d, want 20", profile.Skills[progressiondomain.SubjectQuant])
	}
	if profile.TotalStudyMinutes != 60 || profile.TotalSessions != 1 {
		t.Fatalf("totals = %d min / %d sessions", profile.TotalStudyMinutes, profile.TotalSessions)
	}
	if len(profile.SessionHistory) != 1 || profile.SessionHistory[0].SessionID != start.SessionID {
		t.Fatalf("history not appended: %+v", profile.SessionHistory)
	}
	if len(h.projector.entries) != 1 {
		t.Fatalf("projector entries = %d, want 1", len(h.projector.entries))
	}
	if _, err := h.uc.Active(ctx); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("active session must be cleared, got %v", err)
	}
}

func TestStudyBelowMinimumRegistersFailure(t *testing.T) {
	t.Parallel()
	h := newHarness(t, 0.9)
	h.seedProfile(t, func(p *progressiondomain.Profile) { p.XP = 50 })
	ctx := context.Background()

	if _, err := h.uc.StartStudy(ctx, sessiondto.StartStudyInput{Subject: "english", Phase: "revision"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	h.clock.now = h.clock.now.Add(15 * time.Minute)
	_, err := h.uc.FinalizeStudy(ctx, sessiondto.FinalizeStudyInput{Notes: "too short anyway", Confidence: "weak"})
	if !errors.Is(err, apperrors.ErrMinimumTimeNotMet) {
		t.Fatalf("expected minimum-time failure, got %v", err)
	}

	profile := h.profile(t)
	if profile.FailureStreak != 1 {
		t.Fatalf("failure streak = %d, want 1", profile.FailureStreak)
	}
	if profile.XP != 10 {
		t.Fatalf("xp = %d, want 10 after the 40 XP penalty", profile.XP)
	}
	if _, err := h.uc.Active(ctx); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("failed session must be discarded, got %v", err)
	}
}

func TestStartRejectsWhenSessionActive(t *testing.T) {
	t.Parallel()
	h := newHarness(t, 0.9)
	ctx := context.Background()

	if _, err := h.uc.StartStudy(ctx, sessiondto.StartStudyInput{Subject: "gk", Phase: "learning"}); err != nil {
		t.Fatalf("first start: %v", err)
	}
	if _, err := h.uc.StartStudy(ctx, sessiondto.StartStudyInput{Subject: "quant", Phase: "learning"}); !errors.Is(err, apperrors.ErrActiveSessionExists) {
		t.Fatalf("expected ErrActiveSessionExists, got %v", err)
	}
	if _, err := h.uc.StartMock(ctx, sessiondto.StartMockInput{MockType: "full", Subject: "quant"}); !errors.Is(err, apperrors.ErrActiveSessionExists) {
		t.Fatalf("mock start must also be rejected, got %v", err)
	}
}

func TestAffirmationAuditAndAllowance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	audited := newHarness(t, 0.0) // draw below threshold: audit fires
	if _, err := audited.uc.StartStudy(ctx, sessiondto.StartStudyInput{Subject: "quant", Phase: "learning"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	long := "I studied with full focus for this entire session and my notes prove it in detail."
	if _, err := audited.uc.AttachAffirmation(ctx, long); !errors.Is(err, apperrors.ErrEvidenceRequired) {
		t.Fatalf("audited session must demand a photo, got %v", err)
	}

	h := newHarness(t, 0.9)
	h.seedProfile(t, func(p *progressiondomain.Profile) {
		p.WeeklyAffirmations = progressiondomain.MaxAffirmationsPerWeek
	})
	if _, err := h.uc.StartStudy(ctx, sessiondto.StartStudyInput{Subject: "quant", Phase: "learning"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := h.uc.AttachAffirmation(ctx, "short"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("short affirmation must be rejected, got %v", err)
	}
	if _, err := h.uc.AttachAffirmation(ctx, long); !errors.Is(err, apperrors.ErrAffirmationLimit) {
		t.Fatalf("spent allowance must deny affirmation, got %v", err)
	}
}

func TestAffirmationHalvesGoldAndCountsUsage(t *testing.T) {
	t.Parallel()
	h := newHarness(t, 0.9)
	h.seedProfile(t, nil)
	ctx := context.Background()

	if _, err := h.uc.StartStudy(ctx, sessiondto.StartStudyInput{Subject: "reasoning", Phase: "learning"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	text := "I completed the planned syllogism drills without touching my phone once."
	if _, err := h.uc.AttachAffirmation(ctx, text); err != nil {
		t.Fatalf("attach affirmation: %v", err)
	}

	h.clock.now = h.clock.now.Add(60 * time.Minute)
	out, err := h.uc.FinalizeStudy(ctx, sessiondto.FinalizeStudyInput{
		Notes:      "Worked through all three drill sets and reviewed every mistake afterwards.",
		Confidence: "strong",
	})
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if out.XPEarned != 20 || out.GoldEarned != 1 {
		t.Fatalf("xp/gold = %d/%d, want 20/1 (affirmation halves gold)", out.XPEarned, out.GoldEarned)
	}
	if got := h.profile(t).WeeklyAffirmations; got != 1 {
		t.Fatalf("weekly affirmations = %d, want 1", got)
	}
}

func TestFullMockGrantsProtection(t *testing.T) {
	t.Parallel()
	h := newHarness(t, 0.9)
	h.seedProfile(t, func(p *progressiondomain.Profile) {
		p.FailureStreak = 2
		p.ConsecutiveFailureDays = 2
	})
	ctx := context.Background()

	if _, err := h.uc.StartMock(ctx, sessiondto.StartMockInput{MockType: "full", Subject: "quant", Source: "mock-series-3"}); err != nil {
		t.Fatalf("start mock: %v", err)
	}
	if _, err := h.uc.AttachPhoto(ctx, []byte("scorecard")); err != nil {
		t.Fatalf("attach screenshot: %v", err)
	}

	finishedAt := h.clock.now.Add(65 * time.Minute)
	h.clock.now = finishedAt
	out, err := h.uc.FinalizeMock(ctx, sessiondto.FinalizeMockInput{Score: 142, TotalQuestions: 100, Correct: 71, Analysis: "Ran out of time on GK."})
	if err != nil {
		t.Fatalf("finalize mock: %v", err)
	}
	// Full mock at level 1: 75 XP, 7 gold.
	if out.XPEarned != 75 || out.GoldEarned != 7 {
		t.Fatalf("xp/gold = %d/%d, want 75/7", out.XPEarned, out.GoldEarned)
	}
	if out.Protection != "full" {
		t.Fatalf("protection = %s, want full", out.Protection)
	}

	profile := h.profile(t)
	if !profile.Protection.Active || !profile.Protection.ExpiresAt.Equal(finishedAt.Add(24*time.Hour)) {
		t.Fatalf("protection window wrong: %+v", profile.Protection)
	}
	if profile.TotalMocks != 1 || profile.Habits.WeeklyMock != 1 {
		t.Fatalf("mock counters = %d/%d", profile.TotalMocks, profile.Habits.WeeklyMock)
	}
	if profile.FailureStreak != 0 || profile.ConsecutiveFailureDays != 0 {
		t.Fatalf("mock success must clear failure run: %d/%d", profile.FailureStreak, profile.ConsecutiveFailureDays)
	}
}

func TestSectionalMockMinimumTime(t *testing.T) {
	t.Parallel()
	h := newHarness(t, 0.9)
	h.seedProfile(t, nil)
	ctx := context.Background()

	if _, err := h.uc.StartMock(ctx, sessiondto.StartMockInput{MockType: "sectional", Subject: "english"}); err != nil {
		t.Fatalf("start mock: %v", err)
	}
	h.clock.now = h.clock.now.Add(10 * time.Minute)
	if _, err := h.uc.FinalizeMock(ctx, sessiondto.FinalizeMockInput{Score: 40}); !errors.Is(err, apperrors.ErrMinimumTimeNotMet) {
		t.Fatalf("expected minimum-time failure, got %v", err)
	}
	if h.profile(t).FailureStreak != 1 {
		t.Fatalf("failure streak = %d, want 1", h.profile(t).FailureStreak)
	}
}

func TestCancelRegistersFailure(t *testing.T) {
	t.Parallel()
	h := newHarness(t, 0.9)
	h.seedProfile(t, func(p *progressiondomain.Profile) { p.XP = 90 })
	ctx := context.Background()

	if _, err := h.uc.StartStudy(ctx, sessiondto.StartStudyInput{Subject: "quant", Phase: "learning"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	out, err := h.uc.Cancel(ctx)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if out.XPLost != 40 || out.FailureStreak != 1 {
		t.Fatalf("cancel penalty = %d xp / streak %d, want 40/1", out.XPLost, out.FailureStreak)
	}
	if h.profile(t).XP != 50 {
		t.Fatalf("xp = %d, want 50", h.profile(t).XP)
	}
	if _, err := h.uc.Active(ctx); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("cancelled session must be cleared, got %v", err)
	}
}

func TestAuditDrawDeterministicUnderSeededSource(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)}
	first := service.NewSessionService(clk, &fakeID{}, rng.Seeded(42))
	second := service.NewSessionService(clk, &fakeID{}, rng.Seeded(42))
	ctx := context.Background()
	for n := 0; n < 20; n++ {
		a, err := first.StartStudy(ctx, progressiondomain.SubjectQuant, "", progressiondomain.PhaseLearning)
		if err != nil {
			t.Fatalf("start a: %v", err)
		}
		b, err := second.StartStudy(ctx, progressiondomain.SubjectQuant, "", progressiondomain.PhaseLearning)
		if err != nil {
			t.Fatalf("start b: %v", err)
		}
		if a.AuditRequired != b.AuditRequired {
			t.Fatalf("draw %d diverged under identical seeds", n)
		}
	}
}
