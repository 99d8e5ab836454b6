// Package session orchestrates the call-and-response elicitation loop and
// owns the stopping rule.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/belief"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/likelihood"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/models"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/participant"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/selector"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/store"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/surrogate"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/trial"
)

// #region controller
// Controller runs one participant session. Strictly sequential: the belief
// update completes before the next stimulus is requested.
type Controller struct {
	config    Config
	updater   *belief.Updater
	selector  *selector.Selector
	responder participant.Responder
	archive   *store.Store // nil keeps the session fully in-memory
}

// NewController validates the configuration and wires one surrogate per
// active model. Fails fast with ErrInvalidConfig.
func NewController(config Config, bank *models.Bank, responder participant.Responder, archive *store.Store) (*Controller, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.SessionID == "" {
		config.SessionID = uuid.New().String()
	}

	eval := likelihood.NewEvaluator(likelihood.DefaultConfig())
	surrogates := make(map[models.ModelID]surrogate.Surrogate, len(config.ActiveModels))
	for i, id := range config.ActiveModels {
		m, err := bank.Get(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		cfg := surrogate.DefaultLaplaceConfig()
		cfg.Seed = config.Seed + uint64(i)
		surrogates[id] = surrogate.NewLaplace(m, eval, cfg)
	}

	sel, err := selector.NewSelector(config.SearchSpace, surrogates, selector.Config{
		Seed:          config.Seed,
		FixedSchedule: config.FixedBurnIn,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &Controller{
		config:    config,
		updater:   belief.NewUpdater(config.ActiveModels, surrogates, config.BurnInTrialCount),
		selector:  sel,
		responder: responder,
		archive:   archive,
	}, nil
}

// #endregion controller

// #region run
// Run drives the session to termination. Cancellation is honored between
// trials only; the partial history is always returned, never discarded.
func (c *Controller) Run(ctx context.Context) (Result, error) {
	state := c.updater.NewState()
	history := make([]trial.TrialRecord, 0, c.config.MaxTrials)

	if c.archive != nil {
		configJSON, _ := json.Marshal(c.config)
		if err := c.archive.CreateSession(c.config.SessionID, string(configJSON)); err != nil {
			return Result{}, fmt.Errorf("archive session: %w", err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return c.finish(state, history, StopCancelled), nil
		default:
		}

		stim, mode, err := c.selector.Next(state, history)
		if err != nil {
			return c.finish(state, history, StopInternalError), fmt.Errorf("select stimulus: %w", err)
		}

		resp, err := c.respondWithRetry(ctx, stim)
		if err != nil {
			if errors.Is(err, participant.ErrNoResponse) {
				log.Printf("[SESSION] %s: aborting after %d no-response retries",
					c.config.SessionID, c.config.ResponseRetryLimit)
				return c.finish(state, history, StopAbortedNoResponse), nil
			}
			if ctx.Err() != nil {
				return c.finish(state, history, StopCancelled), nil
			}
			return c.finish(state, history, StopInternalError), fmt.Errorf("await response: %w", err)
		}

		rec := trial.TrialRecord{
			TrialID:   uuid.New().String(),
			Index:     len(history),
			Stimulus:  stim.Clone(),
			Response:  resp,
			CreatedAt: time.Now().UTC(),
		}
		history = append(history, rec)
		if c.archive != nil {
			if err := c.archive.AppendTrial(c.config.SessionID, rec); err != nil {
				log.Printf("[SESSION] archive trial %d failed: %v", rec.Index, err)
			}
		}

		if err := c.updater.Observe(state, history); err != nil {
			// Record retained; the selector will fall back to coverage.
			log.Printf("[SESSION] %s: belief update degraded: %v", c.config.SessionID, err)
		}

		reason, stopped := c.shouldStop(state, len(history))
		c.logDecision(state, rec.Index, string(mode), reason, stopped)

		if stopped {
			if reason != StopCancelled && reason != StopAbortedNoResponse {
				c.updater.MarkConverged(state)
			}
			return c.finish(state, history, reason), nil
		}
	}
}

// #endregion run

// #region retry
// respondWithRetry re-presents the same stimulus on non-response up to the
// configured retry limit.
func (c *Controller) respondWithRetry(ctx context.Context, stim trial.StimulusParameterSet) (trial.ChoiceResponse, error) {
	attempts := c.config.ResponseRetryLimit + 1
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		resp, err := c.responder.Respond(ctx, stim)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !errors.Is(err, participant.ErrNoResponse) || ctx.Err() != nil {
			return trial.ChoiceResponse{}, err
		}
		log.Printf("[SESSION] %s: no response (attempt %d/%d)", c.config.SessionID, attempt+1, attempts)
	}
	return trial.ChoiceResponse{}, lastErr
}

// #endregion retry

// #region stopping-rule
// shouldStop applies the three termination conditions in priority order:
// budget, absolute entropy threshold, stalled entropy gain. Early-stop
// checks apply only after burn-in.
func (c *Controller) shouldStop(state *belief.State, trialCount int) (StopReason, bool) {
	if trialCount >= c.config.MaxTrials {
		return StopBudgetExhausted, true
	}
	if trialCount < c.config.BurnInTrialCount {
		return "", false
	}

	entropy := state.Entropy()
	if !c.config.DisableEntropyStop && isFinite(entropy) && entropy < c.config.EntropyStopThreshold {
		return StopLowEntropy, true
	}

	if w := c.config.StallWindow; w > 0 && len(state.EntropyHistory) > w {
		n := len(state.EntropyHistory)
		before := state.EntropyHistory[n-1-w]
		after := state.EntropyHistory[n-1]
		if isFinite(before) && isFinite(after) && before-after < c.config.StallThreshold {
			return StopStalledGain, true
		}
	}

	return "", false
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// #endregion stopping-rule

// #region finish
// finish assembles the result and completes the archive row. The trial
// history is returned as-is for every termination path.
func (c *Controller) finish(state *belief.State, history []trial.TrialRecord, reason StopReason) Result {
	if c.archive != nil {
		if err := c.archive.CompleteSession(c.config.SessionID, string(reason)); err != nil {
			log.Printf("[SESSION] complete session failed: %v", err)
		}
	}
	log.Printf("[SESSION] %s: finished after %d trials, reason=%s entropy=%.4f",
		c.config.SessionID, len(history), reason, state.Entropy())
	return Result{
		SessionID:  c.config.SessionID,
		StopReason: reason,
		Trials:     history,
		Belief:     state,
	}
}

// logDecision writes the per-trial provenance entry when an archive is
// attached.
func (c *Controller) logDecision(state *belief.State, index int, mode string, reason StopReason, stopped bool) {
	if c.archive == nil {
		return
	}
	decision := "continue"
	reasonText := ""
	if stopped {
		decision = string(reason)
		reasonText = fmt.Sprintf("stopping rule fired after trial %d", index)
	}
	err := c.archive.LogDecision(store.DecisionEntry{
		SessionID:     c.config.SessionID,
		TrialIndex:    index,
		Phase:         string(state.Phase),
		SelectionMode: mode,
		Entropy:       state.Entropy(),
		Decision:      decision,
		Reason:        reasonText,
	})
	if err != nil {
		log.Printf("[SESSION] log decision failed: %v", err)
	}
}

// #endregion finish
