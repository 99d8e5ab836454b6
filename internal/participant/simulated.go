package participant

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/models"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/trial"
)

// #region simulated
// Simulated is a synthetic participant that samples choices from a
// generating model with known true parameters. Used by cmd/simulate and
// the test suite.
type Simulated struct {
	model  models.Model
	params []float64
	rng    *rand.Rand
}

// NewSimulated creates a simulated participant. Responses are
// deterministic given the seed.
func NewSimulated(model models.Model, trueParams []float64, seed uint64) *Simulated {
	return &Simulated{
		model:  model,
		params: trueParams,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Respond samples a Bernoulli choice from the generating model's
// probability of selecting the variable option.
func (s *Simulated) Respond(_ context.Context, stim trial.StimulusParameterSet) (trial.ChoiceResponse, error) {
	p, err := s.model.ChoiceProbability(stim, s.params)
	if err != nil {
		return trial.ChoiceResponse{}, fmt.Errorf("simulated respond: %w", err)
	}
	choice := 0
	if s.rng.Float64() < p {
		choice = 1
	}
	return trial.ChoiceResponse{Choice: choice}, nil
}

// #endregion simulated
