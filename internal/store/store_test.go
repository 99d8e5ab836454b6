package store

import (
	"database/sql"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/trial"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "elicit.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleTrial(idx int) trial.TrialRecord {
	return trial.TrialRecord{
		TrialID: "trial-" + string(rune('a'+idx)),
		Index:   idx,
		Stimulus: trial.StimulusParameterSet{
			trial.DimAmount1: 5, trial.DimCost1: 0,
			trial.DimAmount2: 10, trial.DimCost2: float64(idx * 10),
		},
		Response:  trial.ChoiceResponse{Choice: idx % 2, LatencyMs: 450},
		CreatedAt: time.Now().UTC(),
	}
}

func TestSessionLifecycleRoundTrip(t *testing.T) {
	s := tempStore(t)

	if err := s.CreateSession("sess-1", `{"max_trials":10}`); err != nil {
		t.Fatalf("create: %v", err)
	}

	live, err := s.GetSession("sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if live.StopReason != "" || !live.CompletedAt.IsZero() {
		t.Fatalf("live session should have no completion data: %+v", live)
	}

	for i := 0; i < 3; i++ {
		if err := s.AppendTrial("sess-1", sampleTrial(i)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	if err := s.CompleteSession("sess-1", "budget_exhausted"); err != nil {
		t.Fatalf("complete: %v", err)
	}

	done, err := s.GetSession("sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if done.StopReason != "budget_exhausted" || done.CompletedAt.IsZero() {
		t.Fatalf("completion not recorded: %+v", done)
	}
	if done.ConfigJSON != `{"max_trials":10}` {
		t.Fatalf("config lost: %q", done.ConfigJSON)
	}

	trials, err := s.ListTrials("sess-1")
	if err != nil {
		t.Fatalf("list trials: %v", err)
	}
	if len(trials) != 3 {
		t.Fatalf("expected 3 trials, got %d", len(trials))
	}
	for i, rec := range trials {
		if rec.Index != i {
			t.Fatalf("trial %d out of order: index %d", i, rec.Index)
		}
		if rec.Stimulus[trial.DimCost2] != float64(i*10) {
			t.Fatalf("trial %d stimulus corrupted: %v", i, rec.Stimulus)
		}
		if rec.Response.LatencyMs != 450 {
			t.Fatalf("trial %d latency lost: %d", i, rec.Response.LatencyMs)
		}
	}
}

func TestAppendTrialIsAppendOnly(t *testing.T) {
	s := tempStore(t)
	if err := s.CreateSession("sess-1", "{}"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.AppendTrial("sess-1", sampleTrial(0)); err != nil {
		t.Fatalf("append: %v", err)
	}
	// Same (session, index) again: the primary key rejects the rewrite.
	if err := s.AppendTrial("sess-1", sampleTrial(0)); err == nil {
		t.Fatal("expected duplicate trial_index to be rejected")
	}
}

func TestListSessionsMostRecentFirst(t *testing.T) {
	s := tempStore(t)
	for _, id := range []string{"first", "second"} {
		if err := s.CreateSession(id, "{}"); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	sessions, err := s.ListSessions(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].SessionID != "second" {
		t.Fatalf("expected newest first, got %s", sessions[0].SessionID)
	}

	limited, err := s.ListSessions(1)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limit ignored: got %d sessions", len(limited))
	}
}

func TestLogDecisionHandlesNonFiniteEntropy(t *testing.T) {
	s := tempStore(t)
	if err := s.CreateSession("sess-1", "{}"); err != nil {
		t.Fatalf("create: %v", err)
	}

	entries := []DecisionEntry{
		{SessionID: "sess-1", TrialIndex: 0, Phase: "burn_in", SelectionMode: "burn_in", Entropy: math.Inf(1), Decision: "continue"},
		{SessionID: "sess-1", TrialIndex: 1, Phase: "adaptive", SelectionMode: "adaptive", Entropy: 1.25, Decision: "low_entropy", Reason: "stopping rule fired after trial 1"},
	}
	for _, e := range entries {
		if err := s.LogDecision(e); err != nil {
			t.Fatalf("log: %v", err)
		}
	}

	rows, err := s.DB().Query(
		`SELECT entropy, decision FROM decision_log WHERE session_id = ? ORDER BY trial_index ASC`, "sess-1")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer rows.Close()

	var got []sql.NullFloat64
	var decisions []string
	for rows.Next() {
		var e sql.NullFloat64
		var d string
		if err := rows.Scan(&e, &d); err != nil {
			t.Fatalf("scan: %v", err)
		}
		got = append(got, e)
		decisions = append(decisions, d)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Valid {
		t.Fatalf("infinite entropy must store as NULL, got %v", got[0].Float64)
	}
	if !got[1].Valid || got[1].Float64 != 1.25 {
		t.Fatalf("finite entropy lost: %+v", got[1])
	}
	if decisions[1] != "low_entropy" {
		t.Fatalf("decision lost: %v", decisions)
	}
}
