package domain_test

import (
	"fmt"
	"testing"
	"time"

	progressiondomain "ascend/internal/modules/progression/domain"
	"ascend/internal/modules/readiness/domain"
)

var anchor = time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)

func profileAtLevel(level int) progressiondomain.Profile {
	p := progressiondomain.NewProfile(anchor)
	p.Level = level
	return p
}

func TestHiddenBelowRankC(t *testing.T) {
	t.Parallel()
	p := profileAtLevel(5) // rank D
	result := domain.Calculate(&p, anchor)
	if result.Show {
		t.Fatalf("rank D must hide readiness")
	}
	if result.Reason != "too-early" {
		t.Fatalf("reason = %s, want too-early", result.Reason)
	}
}

func TestHiddenDuringFailureStreak(t *testing.T) {
	t.Parallel()
	p := profileAtLevel(8)
	p.FailureStreak = 1
	result := domain.Calculate(&p, anchor)
	if result.Show || result.Reason != "failure-streak" {
		t.Fatalf("got %+v, want hidden with failure-streak", result)
	}
}

func TestBaseAndStreakModifiers(t *testing.T) {
	t.Parallel()
	p := profileAtLevel(8) // rank B, base 55
	p.StudyStreak = 14     // +5 +5
	p.TotalMocks = 10      // +3
	result := domain.Calculate(&p, anchor)
	if !result.Show {
		t.Fatalf("rank B must show readiness")
	}
	if result.Base != 55 {
		t.Fatalf("base = %d, want 55", result.Base)
	}
	if result.Modifiers != 13 {
		t.Fatalf("modifiers = %d, want 13", result.Modifiers)
	}
	if result.Percentage != 68 {
		t.Fatalf("percentage = %d, want 68", result.Percentage)
	}
	if result.RangeLow != 63 || result.RangeHigh != 73 {
		t.Fatalf("range = %d-%d, want 63-73", result.RangeLow, result.RangeHigh)
	}
}

func TestConsistencyRequiresEnoughSessions(t *testing.T) {
	t.Parallel()
	p := profileAtLevel(6) // rank C, base 30

	// 15 sessions over 15 unique days: below the 16-session floor, no bonus.
	for day := 0; day < 15; day++ {
		p.AppendHistory(studyEntry(day))
	}
	result := domain.Calculate(&p, anchor)
	if result.Modifiers != 0 {
		t.Fatalf("modifiers = %d, want 0 below the session floor", result.Modifiers)
	}

	// 26 sessions over 26 unique days: ratio 26/28 ≈ 0.93, both bonuses.
	p = profileAtLevel(6)
	for day := 0; day < 26; day++ {
		p.AppendHistory(studyEntry(day))
	}
	result = domain.Calculate(&p, anchor)
	if result.Modifiers != 10 {
		t.Fatalf("modifiers = %d, want 10 at 0.93 consistency", result.Modifiers)
	}
}

func TestAffirmationAndWeakConfidencePenalties(t *testing.T) {
	t.Parallel()
	p := profileAtLevel(10) // rank A, base 75
	for n := 0; n < 6; n++ {
		entry := studyEntry(n)
		entry.EvidenceKind = progressiondomain.EvidenceAffirmation
		entry.Confidence = progressiondomain.ConfidenceWeak
		p.AppendHistory(entry)
	}
	result := domain.Calculate(&p, anchor)
	// Six affirmations in 14 days: −15. Six weak sessions: −5.
	if result.Modifiers != -20 {
		t.Fatalf("modifiers = %d, want -20", result.Modifiers)
	}
	if result.Percentage != 55 {
		t.Fatalf("percentage = %d, want 55", result.Percentage)
	}
}

func TestPercentageClampedToNinetyFive(t *testing.T) {
	t.Parallel()
	p := profileAtLevel(12) // rank S, base 90
	p.StudyStreak = 30
	p.TotalMocks = 50
	result := domain.Calculate(&p, anchor)
	if result.Percentage != 95 {
		t.Fatalf("percentage = %d, want clamp at 95", result.Percentage)
	}
	if result.RangeHigh != 95 {
		t.Fatalf("range high = %d, want clamp at 95", result.RangeHigh)
	}
}

func studyEntry(daysAgo int) progressiondomain.HistoryEntry {
	return progressiondomain.HistoryEntry{
		SessionID:   fmt.Sprintf("s-%d", daysAgo),
		Kind:        progressiondomain.KindStudy,
		Subject:     progressiondomain.SubjectQuant,
		Phase:       progressiondomain.PhaseLearning,
		DurationMin: 45,
		Confidence:  progressiondomain.ConfidenceModerate,
		CompletedAt: anchor.AddDate(0, 0, -daysAgo),
	}
}
