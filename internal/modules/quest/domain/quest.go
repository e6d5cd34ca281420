// Package domain rolls and settles the daily quest. A quest binds to a
// calendar date; yesterday's quest can never be generated again or completed
// late.
package domain

import (
	"time"

	progressiondomain "ascend/internal/modules/progression/domain"
	"ascend/internal/platform/calendar"
	"ascend/internal/platform/rng"
)

// Generate rolls today's quest if none exists yet. Subject and phase are
// drawn uniformly. Returns true when a new quest was placed on the profile.
func Generate(p *progressiondomain.Profile, source rng.Source, now time.Time) bool {
	today := calendar.DateKey(now)
	if p.DailyQuest != nil && p.DailyQuest.Date == today {
		return false
	}
	subjects := progressiondomain.Subjects()
	phases := progressiondomain.Phases()
	p.DailyQuest = &progressiondomain.Quest{
		Date:    today,
		Subject: subjects[source.Intn(len(subjects))],
		Phase:   phases[source.Intn(len(phases))],
		XP:      progressiondomain.QuestXP(p.Level),
	}
	return true
}

// Complete settles the quest against a finalized study session. The bonus
// goes through the weekly ledger, so the credited amount may be less than the
// quest's face value. Mocks never complete quests.
func Complete(p *progressiondomain.Profile, entry progressiondomain.HistoryEntry, now time.Time) (int, bool) {
	quest := p.DailyQuest
	if quest == nil || quest.Completed {
		return 0, false
	}
	if quest.Date != calendar.DateKey(now) {
		return 0, false
	}
	if entry.Kind != progressiondomain.KindStudy {
		return 0, false
	}
	if entry.Subject != quest.Subject || entry.Phase != quest.Phase {
		return 0, false
	}
	quest.Completed = true
	credited := p.AddXP(quest.XP)
	return credited, true
}
