// Package domain holds the progression ledger: the profile state, the XP and
// rank tables, weekly cap accounting, and the failure/protection policy.
package domain

import (
	"time"

	"ascend/internal/platform/calendar"
)

const SchemaVersion = 1

type Subject string

const (
	SubjectQuant     Subject = "quant"
	SubjectReasoning Subject = "reasoning"
	SubjectEnglish   Subject = "english"
	SubjectGK        Subject = "gk"
)

func Subjects() []Subject {
	return []Subject{SubjectQuant, SubjectReasoning, SubjectEnglish, SubjectGK}
}

func (s Subject) Valid() bool {
	switch s {
	case SubjectQuant, SubjectReasoning, SubjectEnglish, SubjectGK:
		return true
	}
	return false
}

type Phase string

const (
	PhaseLearning     Phase = "learning"
	PhaseRevision     Phase = "revision"
	PhaseMockAnalysis Phase = "mock-analysis"
)

func Phases() []Phase {
	return []Phase{PhaseLearning, PhaseRevision, PhaseMockAnalysis}
}

func (p Phase) Valid() bool {
	switch p {
	case PhaseLearning, PhaseRevision, PhaseMockAnalysis:
		return true
	}
	return false
}

type MockType string

const (
	MockSectional MockType = "sectional"
	MockFull      MockType = "full"
)

func (m MockType) Valid() bool {
	return m == MockSectional || m == MockFull
}

type SessionKind string

const (
	KindStudy SessionKind = "study"
	KindMock  SessionKind = "mock"
)

type EvidenceKind string

const (
	EvidencePhoto       EvidenceKind = "photo"
	EvidenceAffirmation EvidenceKind = "affirmation"
	EvidenceScreenshot  EvidenceKind = "screenshot"
)

type Confidence string

const (
	ConfidenceVeryWeak Confidence = "very-weak"
	ConfidenceWeak     Confidence = "weak"
	ConfidenceModerate Confidence = "moderate"
	ConfidenceStrong   Confidence = "strong"
)

func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceVeryWeak, ConfidenceWeak, ConfidenceModerate, ConfidenceStrong:
		return true
	}
	return false
}

type Rank string

const (
	RankE Rank = "E"
	RankD Rank = "D"
	RankC Rank = "C"
	RankB Rank = "B"
	RankA Rank = "A"
	RankS Rank = "S"
)

type ProtectionKind string

const (
	ProtectionNone    ProtectionKind = "none"
	ProtectionPartial ProtectionKind = "partial"
	ProtectionFull    ProtectionKind = "full"
)

// Protection is a time-boxed decay shield granted by mock finalization.
type Protection struct {
	Active    bool           `json:"active"`
	Kind      ProtectionKind `json:"kind"`
	ExpiresAt time.Time      `json:"expires_at,omitzero"`
}

type Awakening struct {
	Completed  bool   `json:"completed"`
	Vision     string `json:"vision,omitempty"`
	AntiVision string `json:"anti_vision,omitempty"`
}

type Habits struct {
	DailyStudy    int `json:"daily_study"`
	DailyRevision int `json:"daily_revision"`
	WeeklyMock    int `json:"weekly_mock"`
	FormulaReview int `json:"formula_review"`
}

// Quest is the daily randomized target. One per calendar date; a quest whose
// date is not today is expired, never retroactively completable.
type Quest struct {
	Date      string  `json:"date"`
	Subject   Subject `json:"subject"`
	Phase     Phase   `json:"phase"`
	XP        int     `json:"xp"`
	Completed bool    `json:"completed"`
}

type ClaimedReward struct {
	Name      string    `json:"name"`
	Cost      int       `json:"cost"`
	ClaimedAt time.Time `json:"claimed_at"`
}

// HistoryEntry is a finalized session as retained on the profile.
type HistoryEntry struct {
	SessionID      string       `json:"session_id"`
	Kind           SessionKind  `json:"kind"`
	Subject        Subject      `json:"subject"`
	Topic          string       `json:"topic,omitempty"`
	Source         string       `json:"source,omitempty"`
	Phase          Phase        `json:"phase,omitempty"`
	MockType       MockType     `json:"mock_type,omitempty"`
	DurationMin    int          `json:"duration_min"`
	EvidenceKind   EvidenceKind `json:"evidence_kind,omitempty"`
	EvidenceRef    string       `json:"evidence_ref,omitempty"`
	Notes          string       `json:"notes,omitempty"`
	Difficulty     string       `json:"difficulty,omitempty"`
	Mistakes       string       `json:"mistakes,omitempty"`
	RevisionNeeded bool         `json:"revision_needed,omitempty"`
	Confidence     Confidence   `json:"confidence,omitempty"`
	Score          int          `json:"score,omitempty"`
	TotalQuestions int          `json:"total_questions,omitempty"`
	Correct        int          `json:"correct,omitempty"`
	Analysis       string       `json:"analysis,omitempty"`
	XPEarned       int          `json:"xp_earned"`
	GoldEarned     int          `json:"gold_earned"`
	CompletedAt    time.Time    `json:"completed_at"`
}

// Profile is the singleton progression state. It is persisted as a whole
// after every mutating operation.
type Profile struct {
	Schema    int       `json:"schema"`
	StartDate time.Time `json:"start_date"`
	Awakening Awakening `json:"awakening"`

	Level int `json:"level"`
	XP    int `json:"xp"`
	Gold  int `json:"gold"`

	WeeklyXP       int    `json:"weekly_xp"`
	WeeklyRollover int    `json:"weekly_rollover"`
	WeekStart      string `json:"week_start"`

	StudyStreak            int    `json:"study_streak"`
	FailureStreak          int    `json:"failure_streak"`
	LastStudyDate          string `json:"last_study_date,omitempty"`
	ConsecutiveFailureDays int    `json:"consecutive_failure_days"`

	Protection Protection `json:"protection"`

	GraceDaysUsed int    `json:"grace_days_used"`
	GraceMonth    string `json:"grace_month,omitempty"`

	Skills map[Subject]int `json:"skills"`
	Habits Habits          `json:"habits"`

	SessionHistory []HistoryEntry `json:"session_history"`

	LastMockDate time.Time `json:"last_mock_date,omitzero"`
	TotalMocks   int       `json:"total_mocks"`

	DailyQuest *Quest `json:"daily_quest,omitempty"`

	WeeklyAffirmations   int    `json:"weekly_affirmations"`
	AffirmationWeekStart string `json:"affirmation_week_start"`

	ClaimedRewards []ClaimedReward `json:"claimed_rewards"`

	TotalStudyMinutes int `json:"total_study_minutes"`
	TotalSessions     int `json:"total_sessions"`
}

// NewProfile seeds a fresh profile at level 1 with the current week and month
// anchors set.
func NewProfile(now time.Time) Profile {
	skills := make(map[Subject]int, len(Subjects()))
	for _, s := range Subjects() {
		skills[s] = 0
	}
	return Profile{
		Schema:               SchemaVersion,
		StartDate:            now,
		Level:                1,
		WeekStart:            calendar.WeekStart(now),
		AffirmationWeekStart: calendar.WeekStart(now),
		GraceMonth:           calendar.MonthKey(now),
		Protection:           Protection{Kind: ProtectionNone},
		Skills:               skills,
	}
}

func (p *Profile) Rank() Rank {
	return RankFor(p.Level)
}

func (p *Profile) CompleteAwakening(vision, antiVision string) {
	p.Awakening = Awakening{Completed: true, Vision: vision, AntiVision: antiVision}
}

// AppendHistory prepends a finalized session and evicts beyond the retention
// cap.
func (p *Profile) AppendHistory(entry HistoryEntry) {
	p.SessionHistory = append([]HistoryEntry{entry}, p.SessionHistory...)
	if len(p.SessionHistory) > HistoryLimit {
		p.SessionHistory = p.SessionHistory[:HistoryLimit]
	}
}

// AddSkillXP accumulates credited XP on a subject total. Diverted or
// discarded XP never reaches skill progress.
func (p *Profile) AddSkillXP(subject Subject, credited int) {
	if p.Skills == nil {
		p.Skills = map[Subject]int{}
	}
	if !subject.Valid() {
		return
	}
	p.Skills[subject] += credited
}
