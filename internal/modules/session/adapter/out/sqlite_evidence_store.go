package out

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ascend/internal/modules/session/domain"
	sessionout "ascend/internal/modules/session/port/out"
	"ascend/internal/platform/clock"
	apperrors "ascend/internal/platform/errors"

	_ "modernc.org/sqlite"
)

// SQLiteEvidenceStore keeps evidence blobs in the local database. Ninety-day
// retention is enforced by DeleteOlderThan, driven from storage cleanup.
type SQLiteEvidenceStore struct {
	db    *sql.DB
	clock clock.Clock
}

func NewSQLiteEvidenceStore(dbPath string, clk clock.Clock) (*SQLiteEvidenceStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteEvidenceStore{db: db, clock: clk}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

var _ sessionout.EvidenceStore = (*SQLiteEvidenceStore)(nil)

func (s *SQLiteEvidenceStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS evidence (
  image_id TEXT PRIMARY KEY,
  session_id TEXT NOT NULL,
  kind TEXT NOT NULL,
  blob BLOB NOT NULL,
  size_bytes INTEGER NOT NULL,
  stored_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_evidence_stored_at ON evidence(stored_at);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create evidence table: %w", err)
	}
	return nil
}

func (s *SQLiteEvidenceStore) Put(ctx context.Context, blob []byte, sessionID, kind string) (string, error) {
	if len(blob) == 0 {
		return "", fmt.Errorf("%w: empty evidence blob", apperrors.ErrInvalidInput)
	}
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate image id: %w", err)
	}
	imageID := hex.EncodeToString(buf)

	const stmt = `INSERT INTO evidence (image_id, session_id, kind, blob, size_bytes, stored_at) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, stmt, imageID, sessionID, kind, blob, len(blob), s.clock.Now().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("store evidence: %w", err)
	}
	return imageID, nil
}

func (s *SQLiteEvidenceStore) Get(ctx context.Context, imageID string) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx, `SELECT blob FROM evidence WHERE image_id = ?`, imageID).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load evidence: %w", err)
	}
	return blob, nil
}

func (s *SQLiteEvidenceStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM evidence WHERE stored_at < ?`, cutoff.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("delete old evidence: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted evidence: %w", err)
	}
	return int(deleted), nil
}

func (s *SQLiteEvidenceStore) Usage(ctx context.Context) (domain.StorageUsage, error) {
	usage := domain.StorageUsage{}
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(SUM(size_bytes), 0) FROM evidence`).Scan(&usage.Count, &usage.TotalBytes)
	if err != nil {
		return domain.StorageUsage{}, fmt.Errorf("evidence usage: %w", err)
	}
	return usage, nil
}
