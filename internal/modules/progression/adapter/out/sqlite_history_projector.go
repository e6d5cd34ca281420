package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ascend/internal/modules/progression/domain"
	progressionout "ascend/internal/modules/progression/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteHistoryProjector struct {
	db *sql.DB
}

func NewSQLiteHistoryProjector(dbPath string) (progressionout.HistoryProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteHistoryProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteHistoryProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  session_id TEXT PRIMARY KEY,
  kind TEXT NOT NULL,
  subject TEXT NOT NULL,
  topic TEXT,
  source TEXT,
  phase TEXT,
  mock_type TEXT,
  duration_min INTEGER NOT NULL,
  evidence_kind TEXT,
  evidence_ref TEXT,
  confidence TEXT,
  score INTEGER,
  total_questions INTEGER,
  correct INTEGER,
  xp_earned INTEGER NOT NULL,
  gold_earned INTEGER NOT NULL,
  completed_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_completed_at ON sessions(completed_at);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("reset sessions: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryProjector) Record(ctx context.Context, entry domain.HistoryEntry) error {
	const stmt = `
INSERT INTO sessions (session_id, kind, subject, topic, source, phase, mock_type, duration_min, evidence_kind, evidence_ref, confidence, score, total_questions, correct, xp_earned, gold_earned, completed_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(session_id) DO NOTHING;
`
	_, err := s.db.ExecContext(ctx, stmt,
		entry.SessionID,
		string(entry.Kind),
		string(entry.Subject),
		entry.Topic,
		entry.Source,
		string(entry.Phase),
		string(entry.MockType),
		entry.DurationMin,
		string(entry.EvidenceKind),
		entry.EvidenceRef,
		string(entry.Confidence),
		entry.Score,
		entry.TotalQuestions,
		entry.Correct,
		entry.XPEarned,
		entry.GoldEarned,
		entry.CompletedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryProjector) Recent(ctx context.Context, since time.Time) ([]domain.HistoryEntry, error) {
	const query = `
SELECT session_id, kind, subject, topic, source, phase, mock_type, duration_min, evidence_kind, evidence_ref, confidence, score, total_questions, correct, xp_earned, gold_earned, completed_at
FROM sessions
WHERE completed_at >= ?
ORDER BY completed_at DESC;
`
	rows, err := s.db.QueryContext(ctx, query, since.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		var entry domain.HistoryEntry
		var kind, subject, phase, mockType, evidenceKind, confidence, completedAt string
		if err := rows.Scan(
			&entry.SessionID,
			&kind,
			&subject,
			&entry.Topic,
			&entry.Source,
			&phase,
			&mockType,
			&entry.DurationMin,
			&evidenceKind,
			&entry.EvidenceRef,
			&confidence,
			&entry.Score,
			&entry.TotalQuestions,
			&entry.Correct,
			&entry.XPEarned,
			&entry.GoldEarned,
			&completedAt,
		); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		entry.Kind = domain.SessionKind(kind)
		entry.Subject = domain.Subject(subject)
		entry.Phase = domain.Phase(phase)
		entry.MockType = domain.MockType(mockType)
		entry.EvidenceKind = domain.EvidenceKind(evidenceKind)
		entry.Confidence = domain.Confidence(confidence)
		parsed, err := time.Parse(time.RFC3339, completedAt)
		if err != nil {
			return nil, fmt.Errorf("parse completed_at: %w", err)
		}
		entry.CompletedAt = parsed
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return entries, nil
}
