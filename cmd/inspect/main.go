package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/store"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/trial"
	_ "modernc.org/sqlite"
)

// #region main
func main() {
	dbPath := flag.String("db", "", "path to elicitation archive db")
	sessionID := flag.String("session", "", "show one session's trials and decisions")
	last := flag.Int("last", 20, "show N most recent sessions")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/elicit.db [--session id] [--last N] [--json]")
		os.Exit(2)
	}

	archive, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer archive.Close()

	if *sessionID != "" {
		err = runDetailMode(archive, *sessionID, *jsonOut)
	} else {
		err = runListMode(archive, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode
type sessionRow struct {
	SessionID  string `json:"session_id"`
	Trials     int    `json:"trials"`
	StopReason string `json:"stop_reason,omitempty"`
	CreatedAt  string `json:"created_at"`
}

func runListMode(archive *store.Store, last int, jsonOut bool) error {
	sessions, err := archive.ListSessions(last)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stderr, "no sessions found")
		return nil
	}

	rows := make([]sessionRow, len(sessions))
	for i, s := range sessions {
		count, err := countTrials(archive.DB(), s.SessionID)
		if err != nil {
			return err
		}
		rows[i] = sessionRow{
			SessionID:  s.SessionID,
			Trials:     count,
			StopReason: s.StopReason,
			CreatedAt:  s.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}
	fmt.Printf("%-38s  %6s  %-20s  %s\n", "Session", "Trials", "Reason", "Created")
	for _, r := range rows {
		reason := r.StopReason
		if reason == "" {
			reason = "(live)"
		}
		fmt.Printf("%-38s  %6d  %-20s  %s\n", r.SessionID, r.Trials, reason, r.CreatedAt)
	}
	return nil
}

func countTrials(db *sql.DB, sessionID string) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM trial_records WHERE session_id = ?`, sessionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count trials: %w", err)
	}
	return n, nil
}

// #endregion list-mode

// #region detail-mode
type trialRow struct {
	Index    int                        `json:"index"`
	Stimulus trial.StimulusParameterSet `json:"stimulus"`
	Choice   int                        `json:"choice"`
	Phase    string                     `json:"phase,omitempty"`
	Mode     string                     `json:"mode,omitempty"`
	Entropy  *float64                   `json:"entropy,omitempty"`
	Decision string                     `json:"decision,omitempty"`
}

func runDetailMode(archive *store.Store, sessionID string, jsonOut bool) error {
	sess, err := archive.GetSession(sessionID)
	if err != nil {
		return err
	}
	trials, err := archive.ListTrials(sessionID)
	if err != nil {
		return err
	}

	rows := make([]trialRow, len(trials))
	for i, t := range trials {
		rows[i] = trialRow{Index: t.Index, Stimulus: t.Stimulus, Choice: t.Response.Choice}
	}
	if err := attachDecisions(archive.DB(), sessionID, rows); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("Session %s  reason=%s  trials=%d\n\n", sess.SessionID, sess.StopReason, len(trials))
	fmt.Printf("%5s  %-8s  %-18s  %-9s  %-10s  %s\n", "Trial", "Choice", "Mode", "Phase", "Entropy", "Decision")
	for _, r := range rows {
		entropy := "-"
		if r.Entropy != nil {
			entropy = fmt.Sprintf("%.4f", *r.Entropy)
		}
		fmt.Printf("%5d  %-8d  %-18s  %-9s  %-10s  %s\n",
			r.Index, r.Choice, r.Mode, r.Phase, entropy, r.Decision)
	}
	return nil
}

func attachDecisions(db *sql.DB, sessionID string, rows []trialRow) error {
	dbRows, err := db.Query(
		`SELECT trial_index, phase, selection_mode, entropy, decision
		 FROM decision_log WHERE session_id = ? ORDER BY trial_index ASC`, sessionID,
	)
	if err != nil {
		return fmt.Errorf("query decisions: %w", err)
	}
	defer dbRows.Close()

	for dbRows.Next() {
		var idx int
		var phase, decision string
		var mode sql.NullString
		var entropy sql.NullFloat64
		if err := dbRows.Scan(&idx, &phase, &mode, &entropy, &decision); err != nil {
			return fmt.Errorf("scan decision: %w", err)
		}
		if idx < 0 || idx >= len(rows) {
			continue
		}
		rows[idx].Phase = phase
		rows[idx].Decision = decision
		if mode.Valid {
			rows[idx].Mode = mode.String
		}
		if entropy.Valid {
			v := entropy.Float64
			rows[idx].Entropy = &v
		}
	}
	return dbRows.Err()
}

// #endregion detail-mode

// #region output
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// #endregion output
