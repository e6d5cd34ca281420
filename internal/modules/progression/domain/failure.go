package domain

import (
	"time"

	"ascend/internal/platform/calendar"
)

// RegisterFailure advances both failure counters and applies the penalty for
// the resulting streak tier. The 4+ tier loses a level only on even
// consecutive failure days, which halves the cadence of level loss.
func (p *Profile) RegisterFailure() Penalty {
	p.FailureStreak++
	p.ConsecutiveFailureDays++
	penalty := FailurePenalty(p.FailureStreak)
	p.RemoveXP(penalty.XPLoss)
	if penalty.RemoveProtection {
		p.ClearProtection()
	}
	switch {
	case penalty.LevelLoss > 0:
		p.LevelDown(penalty.LevelLoss)
	case penalty.HalfLevelCadence && p.ConsecutiveFailureDays%2 == 0:
		p.LevelDown(1)
	}
	return penalty
}

// ClearFailureRun resets both failure counters. Both study and mock
// finalization clear the run.
func (p *Profile) ClearFailureRun() {
	p.FailureStreak = 0
	p.ConsecutiveFailureDays = 0
}

// RecordStudyDay advances the study streak at most once per calendar day.
// A gap of exactly one day continues the streak; anything longer, or a first
// ever study, restarts it at 1.
func (p *Profile) RecordStudyDay(now time.Time) {
	today := calendar.DateKey(now)
	if p.LastStudyDate == today {
		return
	}
	yesterday := calendar.DateKey(now.AddDate(0, 0, -1))
	if p.LastStudyDate == yesterday {
		p.StudyStreak++
	} else {
		p.StudyStreak = 1
	}
	p.LastStudyDate = today
}

// GrantProtection arms the 24h decay shield. Full mocks record kind full,
// sectionals partial; the window is identical for both.
func (p *Profile) GrantProtection(kind ProtectionKind, now time.Time) {
	p.Protection = Protection{Active: true, Kind: kind, ExpiresAt: now.Add(ProtectionWindow)}
}

func (p *Profile) ClearProtection() {
	p.Protection = Protection{Kind: ProtectionNone}
}

// ProtectionLive reports whether an unexpired grant is active. Protection
// fully suppresses decay, it never reduces it.
func (p *Profile) ProtectionLive(now time.Time) bool {
	return p.Protection.Active && p.Protection.ExpiresAt.After(now)
}

// RecordMockSuccess updates mock bookkeeping and arms protection.
func (p *Profile) RecordMockSuccess(mockType MockType, now time.Time) {
	kind := ProtectionPartial
	if mockType == MockFull {
		kind = ProtectionFull
	}
	p.GrantProtection(kind, now)
	p.LastMockDate = now
	p.TotalMocks++
	p.ClearFailureRun()
}

// ConsumeGraceDay burns the once-per-month decay exemption. Only ranks B, A
// and S qualify; the allowance resets when the observed month changes.
func (p *Profile) ConsumeGraceDay(now time.Time) bool {
	switch p.Rank() {
	case RankB, RankA, RankS:
	default:
		return false
	}
	month := calendar.MonthKey(now)
	if p.GraceMonth != month {
		p.GraceDaysUsed = 0
		p.GraceMonth = month
	}
	if p.GraceDaysUsed >= 1 {
		return false
	}
	p.GraceDaysUsed++
	return true
}
