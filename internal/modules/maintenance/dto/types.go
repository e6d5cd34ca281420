package dto

import "time"

type RunOutput struct {
	AlreadyRan        bool
	GraceUsed         bool
	DecayApplied      int
	ProtectionCleared bool
	WeekRolled        bool
	QuestRolled       bool
}

type ExportStatusOutput struct {
	Due        bool
	LastExport time.Time
}
