// Package audit persists per-turn proof records to SQLite so a session can be
// re-checked after the fact. The proving core itself keeps no state across
// turns; this log sits outside it, keyed by session and turn number. Each
// record carries the proof bytes, a blake2b digest for quick integrity
// checks, the claimed feedback and the verification verdict.
package audit

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/blake2b"

	"github.com/pranavnt/zk-wordle/circuit"
)

const schema = `
CREATE TABLE IF NOT EXISTS turns (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id   TEXT    NOT NULL,
	turn         INTEGER NOT NULL,
	guess        TEXT    NOT NULL,
	presence     TEXT    NOT NULL,
	correctness  TEXT    NOT NULL,
	commitment   TEXT    NOT NULL,
	label        TEXT    NOT NULL,
	verified     INTEGER NOT NULL,
	proof_digest TEXT    NOT NULL,
	proof        BLOB    NOT NULL,
	created_at   TIMESTAMP NOT NULL,
	UNIQUE(session_id, turn)
);
CREATE INDEX IF NOT EXISTS idx_turns_session ON turns(session_id);
`

// Record is one audited turn.
type Record struct {
	SessionID   string
	Turn        int
	Guess       string
	Presence    string // five '0'/'1' characters
	Correctness string
	Commitment  string // fixed-width hex
	Label       string
	Verified    bool
	ProofDigest string // blake2b-256 of the proof bytes, hex
	Proof       []byte
	CreatedAt   time.Time
}

// Store is a SQLite-backed audit log.
type Store struct {
	db *sql.DB
}

// Open creates or opens the audit database at dsn, with WAL journaling and a
// busy timeout, and bootstraps the schema.
func Open(dsn string) (*Store, error) {
	if dir := filepath.Dir(dsn); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("bootstrap audit schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// RecordTurn appends one turn to the log. The proof digest is computed here so
// callers cannot record a digest that disagrees with the stored bytes.
func (s *Store) RecordTurn(ctx context.Context, sessionID string, turn int, st circuit.Statement, proof []byte, verified bool) error {
	digest := blake2b.Sum256(proof)
	commitment := circuit.FixedWidth(st.Commitment)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO turns (session_id, turn, guess, presence, correctness, commitment, label, verified, proof_digest, proof, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionID, turn, st.Guess.String(),
		bitString(st.Feedback.Presence), bitString(st.Feedback.Correctness),
		hex.EncodeToString(commitment[:]), st.Label,
		boolInt(verified), hex.EncodeToString(digest[:]), proof, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("record turn %d of session %s: %w", turn, sessionID, err)
	}
	return nil
}

// Turns returns all audited turns for a session, oldest first.
func (s *Store) Turns(ctx context.Context, sessionID string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, turn, guess, presence, correctness, commitment, label, verified, proof_digest, proof, created_at
		FROM turns WHERE session_id = ? ORDER BY turn ASC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query turns for session %s: %w", sessionID, err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var verified int
		if err := rows.Scan(&r.SessionID, &r.Turn, &r.Guess, &r.Presence, &r.Correctness,
			&r.Commitment, &r.Label, &verified, &r.ProofDigest, &r.Proof, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan turn row: %w", err)
		}
		r.Verified = verified != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

func bitString(bits [circuit.NumPositions]bool) string {
	b := make([]byte, len(bits))
	for i, set := range bits {
		if set {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
