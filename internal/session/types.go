package session

import (
	"errors"
	"fmt"

	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/belief"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/models"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/trial"
)

// #region stop-reason
// StopReason explains why a session ended. The hosting collaborator reacts
// differently per reason.
type StopReason string

const (
	StopBudgetExhausted   StopReason = "budget_exhausted"
	StopLowEntropy        StopReason = "low_entropy"
	StopStalledGain       StopReason = "stalled_gain"
	StopCancelled         StopReason = "cancelled"
	StopAbortedNoResponse StopReason = "aborted_no_response"
	// StopInternalError labels selector or responder infrastructure
	// failures; Run also returns the underlying error.
	StopInternalError StopReason = "internal_error"
)

// #endregion stop-reason

// #region errors
// ErrInvalidConfig fails session creation fast on a bad configuration.
var ErrInvalidConfig = errors.New("invalid session configuration")

// #endregion errors

// #region config
// Config is the experimenter-supplied session configuration.
type Config struct {
	SessionID string `json:"session_id" env:"SESSION_ID"`

	// BurnInTrialCount fixes how many initial trials use the coverage
	// schedule before adaptive selection starts.
	BurnInTrialCount int `json:"burn_in_trial_count" env:"BURN_IN_TRIAL_COUNT"`
	// MaxTrials is the hard trial budget.
	MaxTrials int `json:"max_trials" env:"MAX_TRIALS"`

	// EntropyStopThreshold ends the session once posterior entropy (nats)
	// drops below it. Ignored when DisableEntropyStop is set.
	EntropyStopThreshold float64 `json:"entropy_stop_threshold" env:"ENTROPY_STOP_THRESHOLD"`
	DisableEntropyStop   bool    `json:"disable_entropy_stop" env:"DISABLE_ENTROPY_STOP"`

	// StallWindow and StallThreshold end the session when the entropy
	// drop over the last StallWindow trials falls below the threshold.
	// StallWindow 0 disables the check.
	StallWindow    int     `json:"stall_window" env:"STALL_WINDOW"`
	StallThreshold float64 `json:"stall_threshold" env:"STALL_THRESHOLD"`

	ActiveModels []models.ModelID `json:"active_models"`
	SearchSpace  trial.SearchSpace `json:"search_space"`

	// FixedBurnIn optionally pins the first burn-in stimuli.
	FixedBurnIn []trial.StimulusParameterSet `json:"fixed_burn_in,omitempty"`

	// ResponseRetryLimit is how many times a non-response is retried
	// before the session aborts.
	ResponseRetryLimit int `json:"response_retry_limit" env:"RESPONSE_RETRY_LIMIT"`

	Seed uint64 `json:"seed" env:"SEED"`
}

// Validate fails fast on missing or contradictory settings.
func (c Config) Validate() error {
	if c.MaxTrials <= 0 {
		return fmt.Errorf("%w: max_trials must be positive, got %d", ErrInvalidConfig, c.MaxTrials)
	}
	if c.BurnInTrialCount < 0 {
		return fmt.Errorf("%w: burn_in_trial_count must be non-negative", ErrInvalidConfig)
	}
	if c.BurnInTrialCount > c.MaxTrials {
		return fmt.Errorf("%w: burn_in_trial_count %d exceeds max_trials %d",
			ErrInvalidConfig, c.BurnInTrialCount, c.MaxTrials)
	}
	// Differential entropy goes negative as the fit sharpens, so zero is
	// never a meaningful threshold; an enabled entropy stop must set one.
	if !c.DisableEntropyStop && c.EntropyStopThreshold == 0 {
		return fmt.Errorf("%w: entropy_stop_threshold required (or set disable_entropy_stop)", ErrInvalidConfig)
	}
	if c.StallWindow < 0 {
		return fmt.Errorf("%w: stall_window must be non-negative", ErrInvalidConfig)
	}
	if c.ResponseRetryLimit < 0 {
		return fmt.Errorf("%w: response_retry_limit must be non-negative", ErrInvalidConfig)
	}
	if len(c.ActiveModels) == 0 {
		return fmt.Errorf("%w: at least one active model required", ErrInvalidConfig)
	}
	if err := c.SearchSpace.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// #endregion config

// #region result
// Result is the session outcome: the full (possibly partial) history, the
// final belief, and why the session ended.
type Result struct {
	SessionID  string
	StopReason StopReason
	Trials     []trial.TrialRecord
	Belief     *belief.State
}

// EntropyHistory exposes the per-trial entropy series.
func (r Result) EntropyHistory() []float64 {
	if r.Belief == nil {
		return nil
	}
	return r.Belief.EntropyHistory
}

// #endregion result
