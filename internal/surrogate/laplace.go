package surrogate

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/likelihood"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/models"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/trial"
)

// #region config
// LaplaceConfig tunes the fit and the acquisition sweep.
type LaplaceConfig struct {
	// Candidates is the number of random in-bounds stimuli scored per
	// SuggestNext call.
	Candidates int
	// TieTolerance treats candidates within this acquisition margin of the
	// best as ties, resolved by distance from presented stimuli.
	TieTolerance float64
	// Seed drives the candidate generator. Suggestions are deterministic
	// given seed and history length.
	Seed uint64
}

// DefaultLaplaceConfig returns the standard acquisition settings.
func DefaultLaplaceConfig() LaplaceConfig {
	return LaplaceConfig{
		Candidates:   128,
		TieTolerance: 1e-3,
		Seed:         1,
	}
}

// boundPenaltyWeight scales the quadratic penalty applied to log-parameters
// outside their declared bounds during the fit.
const boundPenaltyWeight = 1e3

// #endregion config

// #region laplace
// Laplace is the reference surrogate backend: BFGS maximum-likelihood fit
// over log-transformed parameters with an inverse-Hessian (Laplace)
// posterior approximation. The log transform keeps all parameters positive;
// a quadratic penalty keeps the search inside the declared bounds.
type Laplace struct {
	model  models.Model
	eval   *likelihood.Evaluator
	config LaplaceConfig

	fitted bool
	logMLE []float64
	cov    *mat.SymDense
	last   FitResult
}

// NewLaplace creates a surrogate for one model.
func NewLaplace(model models.Model, eval *likelihood.Evaluator, config LaplaceConfig) *Laplace {
	if config.Candidates <= 0 {
		config.Candidates = DefaultLaplaceConfig().Candidates
	}
	if config.TieTolerance <= 0 {
		config.TieTolerance = DefaultLaplaceConfig().TieTolerance
	}
	return &Laplace{model: model, eval: eval, config: config}
}

// #endregion laplace

// #region fit
// Fit refits the model to the full history by BFGS on the negative
// log-likelihood in log-parameter space, then builds the Laplace posterior
// from the numerical Hessian at the optimum.
func (l *Laplace) Fit(history []trial.TrialRecord) (FitResult, error) {
	if len(history) == 0 {
		return FitResult{}, fmt.Errorf("%w: empty trial history", ErrOptimizerFailure)
	}

	spec := l.model.Spec()
	n := spec.NumParams()

	lo := make([]float64, n)
	hi := make([]float64, n)
	for i, b := range spec.ParamBounds {
		lo[i] = math.Log(b[0])
		hi[i] = math.Log(b[1])
	}

	// Bounded objective over log-parameters: outside the declared bounds the
	// likelihood is evaluated at the clamped point plus a quadratic penalty.
	// The line search therefore never reaches exp-overflow territory and an
	// unidentified parameter settles at its bound instead of diverging.
	obj := func(x []float64) float64 {
		params := make([]float64, n)
		var penalty float64
		for i, v := range x {
			if v < lo[i] {
				d := lo[i] - v
				penalty += boundPenaltyWeight * d * d
				v = lo[i]
			} else if v > hi[i] {
				d := v - hi[i]
				penalty += boundPenaltyWeight * d * d
				v = hi[i]
			}
			params[i] = math.Exp(v)
		}
		return l.eval.NegLogLikelihood(history, l.model, params) + penalty
	}

	// Start at the geometric midpoint of each parameter's bounds.
	x0 := make([]float64, n)
	for i := range x0 {
		x0[i] = 0.5 * (lo[i] + hi[i])
	}

	problem := optimize.Problem{
		Func: obj,
		Grad: func(grad, x []float64) {
			fd.Gradient(grad, obj, x, nil)
		},
	}

	// A stalled line search still reports the best point found; keep it and
	// let the finiteness and curvature checks below decide.
	result, err := optimize.Minimize(problem, x0, nil, &optimize.BFGS{})
	if err != nil && !errors.Is(err, optimize.ErrLinesearcherFailure) {
		return FitResult{}, fmt.Errorf("%w: minimize: %v", ErrOptimizerFailure, err)
	}

	// Clamp the optimum into the declared bounds before reporting.
	logMLE := make([]float64, n)
	copy(logMLE, result.X)
	for i := range logMLE {
		if logMLE[i] < lo[i] {
			logMLE[i] = lo[i]
		}
		if logMLE[i] > hi[i] {
			logMLE[i] = hi[i]
		}
	}

	// Report the unpenalized likelihood at the clamped optimum.
	nll := l.eval.NegLogLikelihood(history, l.model, expAll(logMLE))
	if math.IsNaN(nll) || math.IsInf(nll, 0) {
		return FitResult{}, fmt.Errorf("%w: non-finite objective at optimum", ErrOptimizerFailure)
	}

	hess := mat.NewSymDense(n, nil)
	fd.Hessian(hess, obj, logMLE, nil)
	var chol mat.Cholesky
	if ok := chol.Factorize(hess); !ok {
		return FitResult{}, fmt.Errorf("%w: singular hessian", ErrOptimizerFailure)
	}
	cov := mat.NewSymDense(n, nil)
	if err := chol.InverseTo(cov); err != nil {
		return FitResult{}, fmt.Errorf("%w: invert hessian: %v", ErrOptimizerFailure, err)
	}

	stdErrs := make([]float64, n)
	for i := range stdErrs {
		stdErrs[i] = math.Sqrt(cov.At(i, i))
	}

	// Gaussian differential entropy of the Laplace posterior:
	// k/2*(1+ln 2pi) + ln|cov|/2. ln|cov| = -ln|hessian|.
	logDetCov := -chol.LogDet()
	entropy := 0.5*float64(n)*(1+math.Log(2*math.Pi)) + 0.5*logDetCov

	fit := FitResult{
		ModelID: spec.ID,
		Params:  expAll(logMLE),
		StdErrs: stdErrs,
		Entropy: entropy,
		NLL:     nll,
		AIC:     2*float64(n) + 2*nll,
	}

	l.fitted = true
	l.logMLE = logMLE
	l.cov = cov
	l.last = fit
	return fit, nil
}

// #endregion fit

// #region predict
// Predict evaluates the choice probability at the point estimate and its
// delta-method standard deviation through the log-parameter covariance.
func (l *Laplace) Predict(stim trial.StimulusParameterSet) (Prediction, error) {
	if !l.fitted {
		return Prediction{}, ErrNotFitted
	}

	mean, err := l.model.ChoiceProbability(stim, expAll(l.logMLE))
	if err != nil {
		return Prediction{}, fmt.Errorf("predict at MLE: %w", err)
	}

	probAt := func(x []float64) float64 {
		p, perr := l.model.ChoiceProbability(stim, expAll(x))
		if perr != nil {
			return mean
		}
		return p
	}
	grad := fd.Gradient(nil, probAt, l.logMLE, nil)

	// variance = grad^T * cov * grad
	n := len(grad)
	var variance float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			variance += grad[i] * l.cov.At(i, j) * grad[j]
		}
	}
	if variance < 0 {
		variance = 0
	}

	return Prediction{Mean: mean, Uncertainty: math.Sqrt(variance)}, nil
}

// #endregion predict

// #region suggest-next
// SuggestNext sweeps random in-bounds candidates and returns the one
// maximizing uncertainty-weighted proximity to the indifference point
// (predicted probability 0.5). Ties within TieTolerance resolve to the
// candidate farthest from previously presented stimuli.
func (l *Laplace) SuggestNext(space trial.SearchSpace, history []trial.TrialRecord) (trial.StimulusParameterSet, error) {
	if !l.fitted {
		return nil, ErrNotFitted
	}
	if err := space.Validate(); err != nil {
		return nil, fmt.Errorf("suggest next: %w", err)
	}

	rng := rand.New(rand.NewPCG(l.config.Seed, uint64(len(history))))

	type scored struct {
		stim trial.StimulusParameterSet
		acq  float64
	}
	candidates := make([]scored, 0, l.config.Candidates)
	for i := 0; i < l.config.Candidates; i++ {
		stim := make(trial.StimulusParameterSet, len(space.Dims))
		for _, d := range space.Dims {
			stim[d.Name] = d.Min + rng.Float64()*(d.Max-d.Min)
		}
		pred, err := l.Predict(stim)
		if err != nil {
			continue
		}
		// Information gain about the indifference point: highest where
		// the prediction sits near 0.5 and the surrogate is unsure.
		acq := pred.Uncertainty * (1 - 2*math.Abs(pred.Mean-0.5))
		candidates = append(candidates, scored{stim: stim, acq: acq})
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no scorable candidates", ErrOptimizerFailure)
	}

	best := candidates[0].acq
	for _, c := range candidates[1:] {
		if c.acq > best {
			best = c.acq
		}
	}

	// Coverage tie-break: among statistically indistinguishable candidates,
	// prefer the one with the greatest minimum distance to history.
	var chosen trial.StimulusParameterSet
	bestDist := math.Inf(-1)
	for _, c := range candidates {
		if best-c.acq > l.config.TieTolerance {
			continue
		}
		d := space.MinDistanceTo(c.stim, history)
		if d > bestDist {
			bestDist = d
			chosen = c.stim
		}
	}

	return space.Clamp(chosen), nil
}

// #endregion suggest-next

// #region helpers
// expAll exponentiates a log-parameter vector into natural space.
func expAll(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Exp(v)
	}
	return out
}

// #endregion helpers
