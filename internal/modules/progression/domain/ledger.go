package domain

import (
	"time"

	"ascend/internal/platform/calendar"
)

// AddXP admits an amount against the weekly cap and returns the XP actually
// credited. A full cap diverts the whole amount to rollover (bounded by the
// rollover cap, excess discarded) and credits nothing. The return value is
// the canonical "XP earned": skill totals and gold both derive from it.
func (p *Profile) AddXP(amount int) int {
	if amount <= 0 {
		return 0
	}
	weeklyCap := WeeklyCap(p.Level)
	if p.WeeklyXP >= weeklyCap {
		p.bankRollover(amount)
		return 0
	}
	credited := min(amount, weeklyCap-p.WeeklyXP)
	p.XP += credited
	p.WeeklyXP += credited
	if overflow := amount - credited; overflow > 0 {
		p.bankRollover(overflow)
	}
	p.normalizeLevel()
	return credited
}

func (p *Profile) bankRollover(amount int) {
	space := RolloverCap(p.Level) - p.WeeklyRollover
	if space <= 0 {
		return
	}
	p.WeeklyRollover += min(amount, space)
}

// normalizeLevel consumes XP into level-ups until xp < RequiredXP(level),
// handling multi-level jumps in one pass.
func (p *Profile) normalizeLevel() {
	for p.XP >= RequiredXP(p.Level) {
		p.XP -= RequiredXP(p.Level)
		p.Level++
	}
}

// RemoveXP clamps at zero and never touches level: a reached level is sticky
// unless an explicit level-loss penalty fires.
func (p *Profile) RemoveXP(amount int) {
	p.XP = max(0, p.XP-amount)
}

// LevelDown demotes by n levels (floor 1) and restarts the demoted level
// from zero progress.
func (p *Profile) LevelDown(n int) {
	p.Level = max(1, p.Level-n)
	p.XP = 0
}

// RollWeek seeds a new week's XP with the banked rollover once the canonical
// Monday key advances.
func (p *Profile) RollWeek(now time.Time) {
	week := calendar.WeekStart(now)
	if p.WeekStart == week {
		return
	}
	p.WeeklyXP = p.WeeklyRollover
	p.WeeklyRollover = 0
	p.WeekStart = week
}

// RollAffirmationWeek resets the affirmation allowance on week change. Kept
// separate from RollWeek because the evidence path checks it mid-week.
func (p *Profile) RollAffirmationWeek(now time.Time) {
	week := calendar.WeekStart(now)
	if p.AffirmationWeekStart == week {
		return
	}
	p.WeeklyAffirmations = 0
	p.AffirmationWeekStart = week
}

// CanUseAffirmation reports whether the weekly affirmation allowance still
// has room, rolling the affirmation week first.
func (p *Profile) CanUseAffirmation(now time.Time) bool {
	p.RollAffirmationWeek(now)
	return p.WeeklyAffirmations < MaxAffirmationsPerWeek
}
