// Package domain estimates exam readiness from the trailing session record.
// The number is deliberately conservative and hidden entirely while the
// profile is too young or mid failure run, when it would only mislead.
package domain

import (
	"time"

	progressiondomain "ascend/internal/modules/progression/domain"
	"ascend/internal/platform/calendar"
)

const (
	consistencyWindowDays = 28
	recentWindowDays      = 14
	minSessionsForSignal  = 16
	maxPercentage         = 95
	rangeSpread           = 5
)

type Result struct {
	Show       bool
	Reason     string
	Percentage int
	RangeLow   int
	RangeHigh  int
	Base       int
	Modifiers  int
}

// Calculate scores readiness for the current profile state. Hidden results
// carry only a reason; shown results carry a clamped percentage and a
// plus-minus band.
func Calculate(p *progressiondomain.Profile, now time.Time) Result {
	rank := p.Rank()
	if rank == progressiondomain.RankE || rank == progressiondomain.RankD {
		return Result{Show: false, Reason: "too-early"}
	}
	if p.FailureStreak > 0 {
		return Result{Show: false, Reason: "failure-streak"}
	}

	base := progressiondomain.ReadinessBase(rank)
	modifiers := 0

	if p.StudyStreak >= 7 {
		modifiers += 5
	}
	if p.StudyStreak >= 14 {
		modifiers += 5
	}
	if p.StudyStreak >= 30 {
		modifiers += 5
	}

	if p.TotalMocks >= 10 {
		modifiers += 3
	}
	if p.TotalMocks >= 25 {
		modifiers += 5
	}
	if p.TotalMocks >= 50 {
		modifiers += 7
	}

	consistency := weeklyConsistency(p, now)
	if consistency >= 0.8 {
		modifiers += 5
	}
	if consistency >= 0.9 {
		modifiers += 5
	}

	affirmations := recentAffirmations(p, now)
	if affirmations >= 3 {
		modifiers -= 5
	}
	if affirmations >= 6 {
		modifiers -= 10
	}

	weak := weakConfidenceSessions(p, now)
	if weak >= 5 {
		modifiers -= 5
	}
	if weak >= 10 {
		modifiers -= 10
	}

	percentage := base + modifiers
	if percentage < 0 {
		percentage = 0
	}
	if percentage > maxPercentage {
		percentage = maxPercentage
	}

	low := percentage - rangeSpread
	if low < 0 {
		low = 0
	}
	high := percentage + rangeSpread
	if high > maxPercentage {
		high = maxPercentage
	}

	return Result{
		Show:       true,
		Percentage: percentage,
		RangeLow:   low,
		RangeHigh:  high,
		Base:       base,
		Modifiers:  modifiers,
	}
}

// weeklyConsistency is the share of the trailing four weeks with at least one
// study session. Too few sessions reads as zero signal, not perfect
// attendance.
func weeklyConsistency(p *progressiondomain.Profile, now time.Time) float64 {
	cutoff := now.AddDate(0, 0, -consistencyWindowDays)
	days := map[string]struct{}{}
	count := 0
	for _, entry := range p.SessionHistory {
		if entry.Kind != progressiondomain.KindStudy || entry.CompletedAt.Before(cutoff) {
			continue
		}
		count++
		days[calendar.DateKey(entry.CompletedAt)] = struct{}{}
	}
	if count < minSessionsForSignal {
		return 0
	}
	return float64(len(days)) / float64(consistencyWindowDays)
}

func recentAffirmations(p *progressiondomain.Profile, now time.Time) int {
	cutoff := now.AddDate(0, 0, -recentWindowDays)
	count := 0
	for _, entry := range p.SessionHistory {
		if entry.EvidenceKind == progressiondomain.EvidenceAffirmation && !entry.CompletedAt.Before(cutoff) {
			count++
		}
	}
	return count
}

func weakConfidenceSessions(p *progressiondomain.Profile, now time.Time) int {
	cutoff := now.AddDate(0, 0, -recentWindowDays)
	count := 0
	for _, entry := range p.SessionHistory {
		if entry.CompletedAt.Before(cutoff) {
			continue
		}
		if entry.Confidence == progressiondomain.ConfidenceVeryWeak || entry.Confidence == progressiondomain.ConfidenceWeak {
			count++
		}
	}
	return count
}
