package domain

import "time"

// Session limits and reward constants.
const (
	MaxSessionMinutes       = 120
	MinStudyMinutes         = 20
	MinSectionalMockMinutes = 18
	MinFullMockMinutes      = 60

	MaxAffirmationsPerWeek = 3
	MinNotesChars          = 30
	MinAffirmationChars    = 50
	RandomEvidenceChance   = 0.125

	HistoryLimit     = 100
	GoldDivisor      = 10
	ProtectionWindow = 24 * time.Hour
	MockInactivity   = 7 * 24 * time.Hour

	EvidenceRetention = 90 * 24 * time.Hour
	ExportReminder    = 14 * 24 * time.Hour
)

// RequiredXP is the exponential level curve floor(100·2^(level-2)), clamped
// so levels 1 and 2 both require 100. The raw formula would put level 1 at 50.
func RequiredXP(level int) int {
	if level <= 2 {
		return 100
	}
	return 100 << (level - 2)
}

var rankThresholds = []struct {
	level int
	rank  Rank
}{
	{1, RankE},
	{4, RankD},
	{6, RankC},
	{8, RankB},
	{10, RankA},
	{12, RankS},
}

// RankFor returns the highest rank whose threshold does not exceed level.
func RankFor(level int) Rank {
	for i := len(rankThresholds) - 1; i >= 0; i-- {
		if level >= rankThresholds[i].level {
			return rankThresholds[i].rank
		}
	}
	return RankE
}

type levelBand struct {
	min, max int
}

func (b levelBand) contains(level int) bool {
	return level >= b.min && level <= b.max
}

var multiplierTable = []struct {
	band       levelBand
	multiplier float64
}{
	{levelBand{1, 3}, 1.0},
	{levelBand{4, 5}, 1.1},
	{levelBand{6, 7}, 1.25},
	{levelBand{8, 9}, 1.4},
	{levelBand{10, 11}, 1.6},
	{levelBand{12, 999}, 1.8},
}

func LevelMultiplier(level int) float64 {
	for _, row := range multiplierTable {
		if row.band.contains(level) {
			return row.multiplier
		}
	}
	return 1.0
}

var weeklyCapTable = []struct {
	band     levelBand
	cap      int
	rollover int
}{
	{levelBand{1, 3}, 800, 50},
	{levelBand{4, 5}, 1200, 75},
	{levelBand{6, 7}, 1500, 100},
	{levelBand{8, 9}, 1800, 120},
	{levelBand{10, 11}, 2100, 150},
	{levelBand{12, 999}, 2500, 200},
}

func WeeklyCap(level int) int {
	for _, row := range weeklyCapTable {
		if row.band.contains(level) {
			return row.cap
		}
	}
	return weeklyCapTable[0].cap
}

func RolloverCap(level int) int {
	for _, row := range weeklyCapTable {
		if row.band.contains(level) {
			return row.rollover
		}
	}
	return weeklyCapTable[0].rollover
}

var decayTable = []struct {
	band  levelBand
	decay int
}{
	{levelBand{1, 3}, 0},
	{levelBand{4, 5}, 15},
	{levelBand{6, 7}, 30},
	{levelBand{8, 9}, 50},
	{levelBand{10, 11}, 80},
	{levelBand{12, 999}, 120},
}

func DailyDecay(level int) int {
	for _, row := range decayTable {
		if row.band.contains(level) {
			return row.decay
		}
	}
	return 0
}

var questXPTable = []struct {
	band levelBand
	xp   int
}{
	{levelBand{1, 3}, 30},
	{levelBand{4, 5}, 50},
	{levelBand{6, 7}, 80},
	{levelBand{8, 9}, 120},
	{levelBand{10, 11}, 180},
	{levelBand{12, 999}, 250},
}

func QuestXP(level int) int {
	for _, row := range questXPTable {
		if row.band.contains(level) {
			return row.xp
		}
	}
	return questXPTable[0].xp
}

// StudyRate is the per-hour base XP rate for a study phase.
func StudyRate(phase Phase) int {
	switch phase {
	case PhaseLearning:
		return 20
	case PhaseRevision:
		return 15
	case PhaseMockAnalysis:
		return 25
	}
	return 15
}

func MockBaseXP(mockType MockType) int {
	if mockType == MockFull {
		return 75
	}
	return 30
}

// StudyXP is floor(hours · rate(phase) · multiplier(level)).
func StudyXP(minutes int, phase Phase, level int) int {
	return int(float64(minutes) / 60 * float64(StudyRate(phase)) * LevelMultiplier(level))
}

func MockXP(mockType MockType, level int) int {
	return int(float64(MockBaseXP(mockType)) * LevelMultiplier(level))
}

// GoldFor converts credited XP to gold, halved when the evidence was an
// affirmation. Photo and screenshot evidence incur no penalty.
func GoldFor(creditedXP int, evidence EvidenceKind) int {
	gold := creditedXP / GoldDivisor
	if evidence == EvidenceAffirmation {
		gold /= 2
	}
	return gold
}

// Penalty is one tier of the failure schedule. HalfLevelCadence marks the
// 4+ tier, which costs a level on every second consecutive failure day.
type Penalty struct {
	XPLoss           int
	LevelLoss        int
	HalfLevelCadence bool
	RemoveProtection bool
}

var penaltyTable = []Penalty{
	{XPLoss: 40},
	{XPLoss: 90, RemoveProtection: true},
	{XPLoss: 180, LevelLoss: 1, RemoveProtection: true},
	{XPLoss: 250, HalfLevelCadence: true, RemoveProtection: true},
}

func FailurePenalty(streak int) Penalty {
	if streak < 1 {
		streak = 1
	}
	if streak > len(penaltyTable) {
		streak = len(penaltyTable)
	}
	return penaltyTable[streak-1]
}

// ReadinessBase is the rank-anchored starting percentage for the readiness
// index.
func ReadinessBase(rank Rank) int {
	switch rank {
	case RankE:
		return 5
	case RankD:
		return 15
	case RankC:
		return 30
	case RankB:
		return 55
	case RankA:
		return 75
	case RankS:
		return 90
	}
	return 5
}
