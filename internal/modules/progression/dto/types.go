package dto

import "time"

type ProtectionOutput struct {
	Active    bool
	Kind      string
	ExpiresAt time.Time
}

type QuestOutput struct {
	Date      string
	Subject   string
	Phase     string
	XP        int
	Completed bool
}

type StatusOutput struct {
	AwakeningDone  bool
	Level          int
	Rank           string
	XP             int
	XPRequired     int
	Gold           int
	WeeklyXP       int
	WeeklyCap      int
	WeeklyRollover int
	RolloverCap    int
	StudyStreak    int
	FailureStreak  int
	Protection     ProtectionOutput
	GraceRemaining int
	Quest          *QuestOutput
}

type ReadinessOutput struct {
	Show       bool
	Reason     string
	Percentage int
	RangeLow   int
	RangeHigh  int
	Base       int
	Modifiers  int
}

type HistoryEntryOutput struct {
	SessionID   string
	Kind        string
	Subject     string
	Topic       string
	Source      string
	Phase       string
	MockType    string
	DurationMin int
	XPEarned    int
	GoldEarned  int
	CompletedAt time.Time
}

type ReportOutput struct {
	GeneratedAt       time.Time
	StartDate         time.Time
	DaysSinceStart    int
	Level             int
	Rank              string
	XP                int
	XPRequired        int
	Gold              int
	WeeklyXP          int
	WeeklyCap         int
	WeeklyRollover    int
	StudyStreak       int
	FailureStreak     int
	Protection        ProtectionOutput
	GraceRemaining    int
	TotalStudyMinutes int
	TotalStudyHours   float64
	TotalSessions     int
	TotalMocks        int
	Skills            map[string]int
	Readiness         ReadinessOutput
	History           []HistoryEntryOutput
}

type AwakenInput struct {
	Vision     string
	AntiVision string
}

type AwakenOutput struct {
	Completed bool
	StartDate time.Time
}
