// Package likelihood evaluates choice log-likelihoods over trial history.
package likelihood

import (
	"fmt"
	"math"

	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/models"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/trial"
)

// #region config
// DefaultClampEpsilon bounds predicted probabilities away from 0 and 1
// before taking logs, so a saturated prediction contributes a large but
// finite penalty instead of -Inf.
const DefaultClampEpsilon = 1e-10

// Config holds likelihood evaluation settings.
type Config struct {
	ClampEpsilon float64
}

// DefaultConfig returns the standard clamping configuration.
func DefaultConfig() Config {
	return Config{ClampEpsilon: DefaultClampEpsilon}
}

// #endregion config

// #region evaluator
// Evaluator computes Bernoulli log-likelihoods. Stateless and safe to share.
type Evaluator struct {
	config Config
}

// NewEvaluator creates an evaluator with the given configuration.
func NewEvaluator(config Config) *Evaluator {
	if config.ClampEpsilon <= 0 || config.ClampEpsilon >= 0.5 {
		config.ClampEpsilon = DefaultClampEpsilon
	}
	return &Evaluator{config: config}
}

// LogLikelihood sums, over the history, log(p) for variable-option choices
// and log(1-p) otherwise, under the model at the given parameters.
// The result is always <= 0 and finite.
func (e *Evaluator) LogLikelihood(history []trial.TrialRecord, model models.Model, params []float64) (float64, error) {
	eps := e.config.ClampEpsilon
	var ll float64
	for _, rec := range history {
		p, err := model.ChoiceProbability(rec.Stimulus, params)
		if err != nil {
			return 0, fmt.Errorf("trial %d: %w", rec.Index, err)
		}
		if p < eps {
			p = eps
		}
		if p > 1-eps {
			p = 1 - eps
		}
		if rec.Response.ChoseVariable() {
			ll += math.Log(p)
		} else {
			ll += math.Log(1 - p)
		}
	}
	return ll, nil
}

// NegLogLikelihood is the optimizer objective: -LogLikelihood. Parameter
// errors are reported as +Inf so a minimizer backs away from them.
func (e *Evaluator) NegLogLikelihood(history []trial.TrialRecord, model models.Model, params []float64) float64 {
	ll, err := e.LogLikelihood(history, model, params)
	if err != nil {
		return math.Inf(1)
	}
	return -ll
}

// #endregion evaluator
