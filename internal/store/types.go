package store

import "time"

// #region session-row
// SessionRow is one archived session.
type SessionRow struct {
	SessionID   string
	ConfigJSON  string
	CreatedAt   time.Time
	StopReason  string // empty while the session is live
	CompletedAt time.Time
}

// #endregion session-row

// #region decision-entry
// DecisionEntry is one row of the per-trial decision log: how the stimulus
// was chosen and what the controller decided afterwards.
type DecisionEntry struct {
	SessionID     string
	TrialIndex    int
	Phase         string
	SelectionMode string
	Entropy       float64
	Decision      string // "continue" | stop reason
	Reason        string
	CreatedAt     time.Time
}

// #endregion decision-entry
