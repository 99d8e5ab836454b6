// Package selector proposes the next stimulus: fixed coverage during
// burn-in, information-gain optimization once the belief is adaptive.
package selector

import (
	"fmt"
	"log"

	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/belief"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/models"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/surrogate"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/trial"
)

// #region mode
// Mode records how a stimulus was chosen, for provenance logging.
type Mode string

const (
	ModeBurnIn           Mode = "burn_in"
	ModeAdaptive         Mode = "adaptive"
	ModeFallbackCoverage Mode = "fallback_coverage"
)

// #endregion mode

// #region config
// Config holds selection settings.
type Config struct {
	// Seed offsets the coverage schedule. Burn-in selection depends only
	// on Seed and trial index, never on belief state.
	Seed uint64
	// FixedSchedule, when non-empty, overrides the generated coverage
	// schedule for the first len(FixedSchedule) burn-in trials.
	FixedSchedule []trial.StimulusParameterSet
}

// #endregion config

// #region selector
// Selector owns stimulus proposal for one session.
type Selector struct {
	space      trial.SearchSpace
	surrogates map[models.ModelID]surrogate.Surrogate
	config     Config
}

// NewSelector creates a selector over the given search space. surrogates
// is shared with the belief updater; the selector only calls SuggestNext.
func NewSelector(space trial.SearchSpace, surrogates map[models.ModelID]surrogate.Surrogate, config Config) (*Selector, error) {
	if err := space.Validate(); err != nil {
		return nil, fmt.Errorf("selector: %w", err)
	}
	return &Selector{space: space, surrogates: surrogates, config: config}, nil
}

// Next proposes the next stimulus given the current belief and history.
// The returned stimulus is always inside the configured bounds.
func (s *Selector) Next(state *belief.State, history []trial.TrialRecord) (trial.StimulusParameterSet, Mode, error) {
	if state.Phase == belief.PhaseUninitialized || state.Phase == belief.PhaseBurnIn {
		return s.coverage(len(history)), ModeBurnIn, nil
	}

	best := state.Best()
	if best == nil {
		log.Printf("[SELECT] no fitted posterior, falling back to coverage")
		return s.coverage(len(history)), ModeFallbackCoverage, nil
	}

	sur, ok := s.surrogates[best.ModelID]
	if !ok {
		return nil, "", fmt.Errorf("selector: no surrogate for model %q", best.ModelID)
	}
	stim, err := sur.SuggestNext(s.space, history)
	if err != nil {
		log.Printf("[SELECT] suggest failed for %s, falling back to coverage: %v", best.ModelID, err)
		return s.coverage(len(history)), ModeFallbackCoverage, nil
	}
	return s.space.Clamp(stim), ModeAdaptive, nil
}

// #endregion selector

// #region coverage
// haltonBases are the per-dimension radical-inverse bases; dimensions past
// the eighth wrap around, acceptable for the stimulus spaces in use.
var haltonBases = []int{2, 3, 5, 7, 11, 13, 17, 19}

// coverage returns the i-th point of the deterministic low-discrepancy
// schedule over the search space. Honors the fixed schedule first.
func (s *Selector) coverage(i int) trial.StimulusParameterSet {
	if i < len(s.config.FixedSchedule) {
		return s.space.Clamp(s.config.FixedSchedule[i])
	}

	idx := i + 1 + int(s.config.Seed%4096)
	stim := make(trial.StimulusParameterSet, len(s.space.Dims))
	for j, d := range s.space.Dims {
		frac := radicalInverse(idx, haltonBases[j%len(haltonBases)])
		stim[d.Name] = d.Min + frac*(d.Max-d.Min)
	}
	return stim
}

// radicalInverse computes the base-b van der Corput radical inverse of n,
// a value in [0,1) that stratifies successive indices across the range.
func radicalInverse(n, base int) float64 {
	inv := 1.0 / float64(base)
	var result float64
	f := inv
	for n > 0 {
		result += float64(n%base) * f
		n /= base
		f *= inv
	}
	return result
}

// #endregion coverage
