package domain

import (
	"time"

	progressiondomain "ascend/internal/modules/progression/domain"
)

// ActiveSession is the single in-flight session. It survives process exits
// via the active session file, so a timer started in one invocation can be
// finalized in another.
type ActiveSession struct {
	SessionID string                        `json:"session_id"`
	Kind      progressiondomain.SessionKind `json:"kind"`
	Subject   progressiondomain.Subject     `json:"subject"`
	Topic     string                        `json:"topic,omitempty"`
	Source    string                        `json:"source,omitempty"`
	Phase     progressiondomain.Phase       `json:"phase,omitempty"`
	MockType  progressiondomain.MockType    `json:"mock_type,omitempty"`
	StartedAt time.Time                     `json:"started_at"`

	EvidenceKind progressiondomain.EvidenceKind `json:"evidence_kind,omitempty"`
	EvidenceRef  string                         `json:"evidence_ref,omitempty"`

	// AuditRequired is drawn once at start. An audited session must produce
	// photo evidence; affirmations are refused.
	AuditRequired bool `json:"audit_required"`
}

// DurationMin is the creditable session length. Time past the cap earns
// nothing.
func (s ActiveSession) DurationMin(now time.Time) int {
	minutes := int(now.Sub(s.StartedAt).Minutes())
	if minutes < 0 {
		minutes = 0
	}
	if minutes > progressiondomain.MaxSessionMinutes {
		minutes = progressiondomain.MaxSessionMinutes
	}
	return minutes
}

// ElapsedSeconds is wall-clock elapsed time, uncapped. Display only.
func (s ActiveSession) ElapsedSeconds(now time.Time) int {
	seconds := int(now.Sub(s.StartedAt).Seconds())
	if seconds < 0 {
		return 0
	}
	return seconds
}

// MinimumMinutes is the floor below which finalizing counts as a failure.
func (s ActiveSession) MinimumMinutes() int {
	if s.Kind == progressiondomain.KindMock {
		if s.MockType == progressiondomain.MockFull {
			return progressiondomain.MinFullMockMinutes
		}
		return progressiondomain.MinSectionalMockMinutes
	}
	return progressiondomain.MinStudyMinutes
}

func (s ActiveSession) HasEvidence() bool {
	return s.EvidenceKind != ""
}

// StorageUsage summarizes the evidence blob store.
type StorageUsage struct {
	Count      int
	TotalBytes int64
}
