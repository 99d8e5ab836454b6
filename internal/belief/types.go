package belief

import (
	"math"

	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/models"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/surrogate"
)

// #region phase
// Phase is the belief lifecycle state.
type Phase string

const (
	PhaseUninitialized Phase = "uninitialized"
	PhaseBurnIn        Phase = "burn_in"
	PhaseAdaptive      Phase = "adaptive"
	PhaseConverged     Phase = "converged"
)

// #endregion phase

// #region model-posterior
// ModelPosterior is the tagged per-model entry of the belief: the latest
// successful fit plus the model's posterior weight among active models.
type ModelPosterior struct {
	ModelID models.ModelID
	Fit     surrogate.FitResult
	Weight  float64
	// Fitted is false until the model's first successful fit; the Fit
	// field is meaningless before that.
	Fitted bool
}

// #endregion model-posterior

// #region state
// State is the session's belief over active model parameters. Owned by the
// Updater: the selector and controller read it but never mutate it.
type State struct {
	Phase      Phase
	Posteriors map[models.ModelID]*ModelPosterior
	// EntropyHistory records the weighted posterior entropy after each
	// observation; +Inf stands in while no model has a usable fit.
	EntropyHistory []float64
	TrialCount     int
}

// Entropy returns the current weighted posterior entropy in nats,
// +Inf when no model has been fitted yet.
func (s *State) Entropy() float64 {
	if len(s.EntropyHistory) == 0 {
		return math.Inf(1)
	}
	return s.EntropyHistory[len(s.EntropyHistory)-1]
}

// Best returns the highest-weight fitted posterior, or nil when none exists.
func (s *State) Best() *ModelPosterior {
	var best *ModelPosterior
	for _, p := range s.Posteriors {
		if !p.Fitted {
			continue
		}
		if best == nil || p.Weight > best.Weight {
			best = p
		}
	}
	return best
}

// #endregion state
