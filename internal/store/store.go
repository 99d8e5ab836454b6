// Package store archives sessions, trial records, and selection decisions
// in SQLite. The in-memory history stays canonical for a live session; the
// archive is write-behind provenance.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/trial"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id    TEXT PRIMARY KEY,
	config_json   TEXT NOT NULL,
	created_at    TEXT NOT NULL,
	stop_reason   TEXT,
	completed_at  TEXT
);

CREATE TABLE IF NOT EXISTS trial_records (
	session_id    TEXT NOT NULL,
	trial_index   INTEGER NOT NULL,
	trial_id      TEXT NOT NULL,
	stimulus_json TEXT NOT NULL,
	choice        INTEGER NOT NULL,
	latency_ms    INTEGER NOT NULL,
	created_at    TEXT NOT NULL,
	PRIMARY KEY (session_id, trial_index),
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);

CREATE TABLE IF NOT EXISTS decision_log (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id     TEXT NOT NULL,
	trial_index    INTEGER NOT NULL,
	phase          TEXT NOT NULL,
	selection_mode TEXT,
	entropy        REAL,
	decision       TEXT NOT NULL,
	reason         TEXT,
	created_at     TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);
`

// #endregion schema

// #region store-struct
// Store manages the session archive in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion close

// #region create-session
// CreateSession registers a new live session with its configuration.
func (s *Store) CreateSession(sessionID, configJSON string) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (session_id, config_json, created_at) VALUES (?, ?, ?)`,
		sessionID, configJSON, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// #endregion create-session

// #region append-trial
// AppendTrial archives one trial record. Records are append-only: the
// (session, index) primary key rejects rewrites.
func (s *Store) AppendTrial(sessionID string, rec trial.TrialRecord) error {
	stimJSON, err := json.Marshal(rec.Stimulus)
	if err != nil {
		return fmt.Errorf("marshal stimulus: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO trial_records (session_id, trial_index, trial_id, stimulus_json, choice, latency_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sessionID, rec.Index, rec.TrialID, string(stimJSON),
		rec.Response.Choice, rec.Response.LatencyMs,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append trial %d: %w", rec.Index, err)
	}
	return nil
}

// #endregion append-trial

// #region complete-session
// CompleteSession marks a session finished with its termination reason.
func (s *Store) CompleteSession(sessionID, stopReason string) error {
	_, err := s.db.Exec(
		`UPDATE sessions SET stop_reason = ?, completed_at = ? WHERE session_id = ?`,
		stopReason, time.Now().UTC().Format(time.RFC3339Nano), sessionID,
	)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	return nil
}

// #endregion complete-session

// #region log-decision
// LogDecision writes a per-trial provenance entry.
func (s *Store) LogDecision(entry DecisionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	var entropy interface{}
	if !math.IsNaN(entry.Entropy) && !math.IsInf(entry.Entropy, 0) {
		entropy = entry.Entropy
	}
	_, err := s.db.Exec(
		`INSERT INTO decision_log (session_id, trial_index, phase, selection_mode, entropy, decision, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.SessionID,
		entry.TrialIndex,
		entry.Phase,
		nullIfEmpty(entry.SelectionMode),
		entropy,
		entry.Decision,
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// #endregion log-decision

// #region get-session
// GetSession reads one session row.
func (s *Store) GetSession(sessionID string) (SessionRow, error) {
	var row SessionRow
	var createdStr string
	var stopReason, completedStr sql.NullString

	err := s.db.QueryRow(
		`SELECT session_id, config_json, created_at, stop_reason, completed_at
		 FROM sessions WHERE session_id = ?`, sessionID,
	).Scan(&row.SessionID, &row.ConfigJSON, &createdStr, &stopReason, &completedStr)
	if err != nil {
		return SessionRow{}, fmt.Errorf("get session %s: %w", sessionID, err)
	}

	row.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	if stopReason.Valid {
		row.StopReason = stopReason.String
	}
	if completedStr.Valid {
		row.CompletedAt, _ = time.Parse(time.RFC3339Nano, completedStr.String)
	}
	return row, nil
}

// ListSessions returns the most recent sessions.
func (s *Store) ListSessions(limit int) ([]SessionRow, error) {
	rows, err := s.db.Query(
		`SELECT session_id, config_json, created_at, stop_reason, completed_at
		 FROM sessions ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRow
	for rows.Next() {
		var row SessionRow
		var createdStr string
		var stopReason, completedStr sql.NullString
		if err := rows.Scan(&row.SessionID, &row.ConfigJSON, &createdStr, &stopReason, &completedStr); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		row.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		if stopReason.Valid {
			row.StopReason = stopReason.String
		}
		if completedStr.Valid {
			row.CompletedAt, _ = time.Parse(time.RFC3339Nano, completedStr.String)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// #endregion get-session

// #region list-trials
// ListTrials returns a session's trial records in presentation order.
func (s *Store) ListTrials(sessionID string) ([]trial.TrialRecord, error) {
	rows, err := s.db.Query(
		`SELECT trial_index, trial_id, stimulus_json, choice, latency_ms, created_at
		 FROM trial_records WHERE session_id = ? ORDER BY trial_index ASC`, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list trials: %w", err)
	}
	defer rows.Close()

	var out []trial.TrialRecord
	for rows.Next() {
		var rec trial.TrialRecord
		var stimJSON, createdStr string
		if err := rows.Scan(&rec.Index, &rec.TrialID, &stimJSON, &rec.Response.Choice, &rec.Response.LatencyMs, &createdStr); err != nil {
			return nil, fmt.Errorf("scan trial: %w", err)
		}
		if err := json.Unmarshal([]byte(stimJSON), &rec.Stimulus); err != nil {
			return nil, fmt.Errorf("unmarshal stimulus: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// #endregion list-trials

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
