package domain_test

import (
	"math"
	"testing"

	"ascend/internal/modules/progression/domain"
)

func TestRequiredXPMatchesCurveWithLowLevelClamp(t *testing.T) {
	t.Parallel()
	if got := domain.RequiredXP(1); got != 100 {
		t.Fatalf("level 1 must require 100, got %d", got)
	}
	if got := domain.RequiredXP(2); got != 100 {
		t.Fatalf("level 2 must require 100, got %d", got)
	}
	for level := 3; level <= 20; level++ {
		want := int(math.Floor(100 * math.Pow(2, float64(level-2))))
		if got := domain.RequiredXP(level); got != want {
			t.Fatalf("RequiredXP(%d) = %d, want %d", level, got, want)
		}
	}
}

func TestRankThresholds(t *testing.T) {
	t.Parallel()
	cases := []struct {
		level int
		want  domain.Rank
	}{
		{1, domain.RankE}, {3, domain.RankE},
		{4, domain.RankD}, {5, domain.RankD},
		{6, domain.RankC}, {7, domain.RankC},
		{8, domain.RankB}, {9, domain.RankB},
		{10, domain.RankA}, {11, domain.RankA},
		{12, domain.RankS}, {40, domain.RankS},
	}
	for _, c := range cases {
		if got := domain.RankFor(c.level); got != c.want {
			t.Fatalf("RankFor(%d) = %s, want %s", c.level, got, c.want)
		}
	}
}

func TestLevelBandLookups(t *testing.T) {
	t.Parallel()
	if m := domain.LevelMultiplier(1); m != 1.0 {
		t.Fatalf("multiplier at level 1 = %v", m)
	}
	if m := domain.LevelMultiplier(12); m != 1.8 {
		t.Fatalf("multiplier at level 12 = %v", m)
	}
	if c := domain.WeeklyCap(1); c != 800 {
		t.Fatalf("weekly cap at level 1 = %d", c)
	}
	if c := domain.WeeklyCap(9); c != 1800 {
		t.Fatalf("weekly cap at level 9 = %d", c)
	}
	if r := domain.RolloverCap(1); r != 50 {
		t.Fatalf("rollover cap at level 1 = %d", r)
	}
	if d := domain.DailyDecay(3); d != 0 {
		t.Fatalf("decay at level 3 = %d", d)
	}
	if d := domain.DailyDecay(12); d != 120 {
		t.Fatalf("decay at level 12 = %d", d)
	}
	if q := domain.QuestXP(10); q != 180 {
		t.Fatalf("quest xp at level 10 = %d", q)
	}
}

func TestXPFormulas(t *testing.T) {
	t.Parallel()
	// 60 minutes of learning at level 1: 1h · 20 · 1.0
	if xp := domain.StudyXP(60, domain.PhaseLearning, 1); xp != 20 {
		t.Fatalf("study xp = %d, want 20", xp)
	}
	// 90 minutes of mock-analysis at level 6: 1.5h · 25 · 1.25 = 46.875
	if xp := domain.StudyXP(90, domain.PhaseMockAnalysis, 6); xp != 46 {
		t.Fatalf("study xp = %d, want 46", xp)
	}
	if xp := domain.MockXP(domain.MockFull, 4); xp != 82 { // 75 · 1.1
		t.Fatalf("mock xp = %d, want 82", xp)
	}
	if g := domain.GoldFor(95, domain.EvidencePhoto); g != 9 {
		t.Fatalf("gold = %d, want 9", g)
	}
	if g := domain.GoldFor(95, domain.EvidenceAffirmation); g != 4 {
		t.Fatalf("affirmation gold = %d, want 4", g)
	}
}

func TestFailurePenaltyTiers(t *testing.T) {
	t.Parallel()
	if p := domain.FailurePenalty(1); p.XPLoss != 40 || p.RemoveProtection || p.LevelLoss != 0 {
		t.Fatalf("tier 1 = %+v", p)
	}
	if p := domain.FailurePenalty(2); p.XPLoss != 90 || !p.RemoveProtection {
		t.Fatalf("tier 2 = %+v", p)
	}
	if p := domain.FailurePenalty(3); p.XPLoss != 180 || p.LevelLoss != 1 || !p.RemoveProtection {
		t.Fatalf("tier 3 = %+v", p)
	}
	// Everything past the table reuses the last tier.
	for _, streak := range []int{4, 5, 17} {
		p := domain.FailurePenalty(streak)
		if p.XPLoss != 250 || !p.HalfLevelCadence || !p.RemoveProtection || p.LevelLoss != 0 {
			t.Fatalf("tier %d = %+v", streak, p)
		}
	}
}
