// Package belief maintains the posterior belief over model parameters,
// delegating the numerical fit to a surrogate backend per active model.
package belief

import (
	"fmt"
	"log"
	"math"

	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/models"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/surrogate"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/trial"
)

// #region updater
// Updater translates trial history into surrogate refits and keeps the
// belief's entropy series and model weights current.
type Updater struct {
	order       []models.ModelID
	surrogates  map[models.ModelID]surrogate.Surrogate
	burnInCount int
}

// NewUpdater wires one surrogate per active model. Order fixes iteration
// and reporting order.
func NewUpdater(order []models.ModelID, surrogates map[models.ModelID]surrogate.Surrogate, burnInCount int) *Updater {
	return &Updater{
		order:       order,
		surrogates:  surrogates,
		burnInCount: burnInCount,
	}
}

// NewState creates the initial belief for a session.
func (u *Updater) NewState() *State {
	posteriors := make(map[models.ModelID]*ModelPosterior, len(u.order))
	for _, id := range u.order {
		posteriors[id] = &ModelPosterior{ModelID: id}
	}
	return &State{
		Phase:      PhaseUninitialized,
		Posteriors: posteriors,
	}
}

// #endregion updater

// #region observe
// Observe ingests the newest trial record (history includes it) and refits
// every active model. A failed refit keeps that model's previous posterior;
// the observation itself is never lost. Returns an error wrapping
// surrogate.ErrOptimizerFailure only when every refit failed this round.
func (u *Updater) Observe(state *State, history []trial.TrialRecord) error {
	state.TrialCount = len(history)
	u.advancePhase(state)

	aics := make(map[models.ModelID]float64, len(u.order))
	failures := 0
	for _, id := range u.order {
		post := state.Posteriors[id]
		fit, err := u.surrogates[id].Fit(history)
		if err != nil {
			failures++
			log.Printf("[BELIEF] refit %s failed (keeping previous): %v", id, err)
		} else {
			post.Fit = fit
			post.Fitted = true
		}
		if post.Fitted {
			aics[id] = post.Fit.AIC
		} else {
			aics[id] = math.Inf(1)
		}
	}

	u.reweigh(state, aics)
	state.EntropyHistory = append(state.EntropyHistory, u.weightedEntropy(state))

	if failures == len(u.order) {
		return fmt.Errorf("%w: all %d model refits failed at trial %d",
			surrogate.ErrOptimizerFailure, len(u.order), len(history))
	}
	return nil
}

// MarkConverged is called by the session controller when its stopping rule
// fires. Terminal: no further phase transitions.
func (u *Updater) MarkConverged(state *State) {
	state.Phase = PhaseConverged
}

// #endregion observe

// #region phase-machine
// advancePhase walks uninitialized -> burn_in -> adaptive. Converged is
// only entered via MarkConverged.
func (u *Updater) advancePhase(state *State) {
	if state.Phase == PhaseConverged {
		return
	}
	if state.Phase == PhaseUninitialized {
		state.Phase = PhaseBurnIn
	}
	if state.Phase == PhaseBurnIn && state.TrialCount >= u.burnInCount {
		state.Phase = PhaseAdaptive
	}
}

// #endregion phase-machine

// #region weights
// reweigh recomputes Akaike weights across active models.
func (u *Updater) reweigh(state *State, aics map[models.ModelID]float64) {
	weights := models.AkaikeWeights(aics)
	for _, id := range u.order {
		if weights == nil {
			state.Posteriors[id].Weight = 0
			continue
		}
		state.Posteriors[id].Weight = weights[id]
	}
}

// weightedEntropy is the weight-averaged entropy over fitted posteriors,
// +Inf when none are fitted.
func (u *Updater) weightedEntropy(state *State) float64 {
	var sum, total float64
	for _, id := range u.order {
		p := state.Posteriors[id]
		if !p.Fitted || p.Weight <= 0 {
			continue
		}
		sum += p.Weight * p.Fit.Entropy
		total += p.Weight
	}
	if total == 0 {
		return math.Inf(1)
	}
	return sum / total
}

// #endregion weights
