package dto

import "time"

type StartStudyInput struct {
	Subject string
	Topic   string
	Phase   string
}

type StartMockInput struct {
	MockType string
	Subject  string
	Source   string
}

type StartOutput struct {
	SessionID      string
	Kind           string
	StartedAt      time.Time
	MinimumMinutes int
	AuditRequired  bool
}

type ActiveOutput struct {
	SessionID      string
	Kind           string
	Subject        string
	Topic          string
	Source         string
	Phase          string
	MockType       string
	StartedAt      time.Time
	ElapsedSeconds int
	DurationMin    int
	MinimumMinutes int
	EvidenceKind   string
	AuditRequired  bool
}

type EvidenceOutput struct {
	SessionID string
	Kind      string
	ImageID   string
}

type FinalizeStudyInput struct {
	Notes          string
	Difficulty     string
	Mistakes       string
	RevisionNeeded bool
	Confidence     string
}

type FinalizeMockInput struct {
	Score          int
	TotalQuestions int
	Correct        int
	Analysis       string
}

type FinalizeOutput struct {
	SessionID      string
	DurationMin    int
	XPEarned       int
	GoldEarned     int
	Level          int
	Rank           string
	QuestCompleted bool
	QuestXP        int
	Protection     string
}

type CancelOutput struct {
	SessionID     string
	XPLost        int
	FailureStreak int
}

type UsageOutput struct {
	Count      int
	TotalBytes int64
}

type CleanupOutput struct {
	Deleted int
}
