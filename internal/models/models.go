package models

import (
	"fmt"
	"math"

	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/trial"
)

// #region choice-rule
// logistic is the numerically stable standard logistic function.
func logistic(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// choiceProbability applies the two-option logit rule: the probability of
// choosing option 2 given subjective values sv1, sv2 and consistency beta.
func choiceProbability(sv1, sv2, beta float64) (float64, error) {
	p := logistic(beta * (sv2 - sv1))
	if math.IsNaN(p) {
		return 0, fmt.Errorf("%w: sv1=%v sv2=%v beta=%v", ErrDegenerateValue, sv1, sv2, beta)
	}
	return p, nil
}

// dims extracts the named dimensions, failing on any absence.
func dims(stim trial.StimulusParameterSet, names ...trial.Dimension) ([]float64, error) {
	out := make([]float64, len(names))
	for i, n := range names {
		v, ok := stim[n]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingDimension, n)
		}
		out[i] = v
	}
	return out, nil
}

// #endregion choice-rule

// #region hyperbolic
// Hyperbolic is the single-parameter hyperbolic temporal discounting model:
// sv = m / (1 + k*cost).
type Hyperbolic struct{}

func (Hyperbolic) ID() ModelID { return ModelHyperbolic }

func (Hyperbolic) Spec() ModelSpec {
	return ModelSpec{
		ID:          ModelHyperbolic,
		ParamNames:  []string{"k", "beta"},
		ParamBounds: [][2]float64{{1e-4, 10}, {1e-3, 100}},
		Dimensions:  []trial.Dimension{trial.DimAmount1, trial.DimCost1, trial.DimAmount2, trial.DimCost2},
	}
}

func (m Hyperbolic) ChoiceProbability(stim trial.StimulusParameterSet, params []float64) (float64, error) {
	if len(params) != 2 {
		return 0, fmt.Errorf("%w: hyperbolic wants 2, got %d", ErrParamCount, len(params))
	}
	d, err := dims(stim, trial.DimAmount1, trial.DimCost1, trial.DimAmount2, trial.DimCost2)
	if err != nil {
		return 0, err
	}
	k, beta := params[0], params[1]
	sv1 := d[0] / (1 + k*d[1])
	sv2 := d[2] / (1 + k*d[3])
	return choiceProbability(sv1, sv2, beta)
}

// #endregion hyperbolic

// #region green-myerson
// GreenMyerson is the probability-discounting model with odds-against
// scaling k and sensitivity s: sv = m / (1 + k*(1-p)/p)^s.
type GreenMyerson struct{}

func (GreenMyerson) ID() ModelID { return ModelGreenMyerson }

func (GreenMyerson) Spec() ModelSpec {
	return ModelSpec{
		ID:          ModelGreenMyerson,
		ParamNames:  []string{"k", "s", "beta"},
		ParamBounds: [][2]float64{{1e-4, 100}, {1e-2, 10}, {1e-3, 100}},
		Dimensions:  []trial.Dimension{trial.DimAmount1, trial.DimProb1, trial.DimAmount2, trial.DimProb2},
	}
}

// probDiscounted handles the p→0 and p→1 limits explicitly so boundary
// stimuli saturate instead of dividing by zero.
func probDiscounted(m, p, k, s float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return m
	}
	odds := (1 - p) / p
	return m / math.Pow(1+k*odds, s)
}

func (m GreenMyerson) ChoiceProbability(stim trial.StimulusParameterSet, params []float64) (float64, error) {
	if len(params) != 3 {
		return 0, fmt.Errorf("%w: green_myerson wants 3, got %d", ErrParamCount, len(params))
	}
	d, err := dims(stim, trial.DimAmount1, trial.DimProb1, trial.DimAmount2, trial.DimProb2)
	if err != nil {
		return 0, err
	}
	k, s, beta := params[0], params[1], params[2]
	sv1 := probDiscounted(d[0], d[1], k, s)
	sv2 := probDiscounted(d[2], d[3], k, s)
	return choiceProbability(sv1, sv2, beta)
}

// #endregion green-myerson

// #region sigmoidal-effort
// SigmoidalEffort discounts by a normalized sigmoid in effort cost, with
// slope k and inflection p. At zero cost the subjective value equals the
// raw amount (the normalization pins sv(0) = m).
type SigmoidalEffort struct{}

func (SigmoidalEffort) ID() ModelID { return ModelSigmoidalEffort }

func (SigmoidalEffort) Spec() ModelSpec {
	return ModelSpec{
		ID:          ModelSigmoidalEffort,
		ParamNames:  []string{"k", "p", "beta"},
		ParamBounds: [][2]float64{{1e-3, 10}, {1e-2, 100}, {1e-3, 100}},
		Dimensions:  []trial.Dimension{trial.DimAmount1, trial.DimCost1, trial.DimAmount2, trial.DimCost2},
	}
}

func sigmoidDiscounted(m, cost, k, p float64) float64 {
	sigCost := logistic(k * (cost - p))
	sigZero := logistic(-k * p)
	norm := 1 + math.Exp(-k*p)
	return m * (1 - (sigCost-sigZero)*norm)
}

func (m SigmoidalEffort) ChoiceProbability(stim trial.StimulusParameterSet, params []float64) (float64, error) {
	if len(params) != 3 {
		return 0, fmt.Errorf("%w: sigmoidal_effort wants 3, got %d", ErrParamCount, len(params))
	}
	d, err := dims(stim, trial.DimAmount1, trial.DimCost1, trial.DimAmount2, trial.DimCost2)
	if err != nil {
		return 0, err
	}
	k, p, beta := params[0], params[1], params[2]
	sv1 := sigmoidDiscounted(d[0], d[1], k, p)
	sv2 := sigmoidDiscounted(d[2], d[3], k, p)
	return choiceProbability(sv1, sv2, beta)
}

// #endregion sigmoidal-effort

// #region power-effort
// PowerEffort is the two-parameter power effort-discounting model:
// sv = m - k*cost^p.
type PowerEffort struct{}

func (PowerEffort) ID() ModelID { return ModelPowerEffort }

func (PowerEffort) Spec() ModelSpec {
	return ModelSpec{
		ID:          ModelPowerEffort,
		ParamNames:  []string{"k", "p", "beta"},
		ParamBounds: [][2]float64{{1e-3, 10}, {1e-1, 4}, {1e-3, 100}},
		Dimensions:  []trial.Dimension{trial.DimAmount1, trial.DimCost1, trial.DimAmount2, trial.DimCost2},
	}
}

func (m PowerEffort) ChoiceProbability(stim trial.StimulusParameterSet, params []float64) (float64, error) {
	if len(params) != 3 {
		return 0, fmt.Errorf("%w: power_effort wants 3, got %d", ErrParamCount, len(params))
	}
	d, err := dims(stim, trial.DimAmount1, trial.DimCost1, trial.DimAmount2, trial.DimCost2)
	if err != nil {
		return 0, err
	}
	k, p, beta := params[0], params[1], params[2]
	sv1 := d[0] - k*math.Pow(d[1], p)
	sv2 := d[2] - k*math.Pow(d[3], p)
	return choiceProbability(sv1, sv2, beta)
}

// #endregion power-effort

// #region prospect
// Prospect is the prospect-theory loss/risk model. Option 1 is a certain
// amount; option 2 is a two-outcome gamble paying gain_2 with prob_2 and
// loss_2 otherwise. pt(x) = x^rho for gains, -lambda*(-x)^rho for losses.
type Prospect struct{}

func (Prospect) ID() ModelID { return ModelProspect }

func (Prospect) Spec() ModelSpec {
	return ModelSpec{
		ID:          ModelProspect,
		ParamNames:  []string{"lambda", "rho", "beta"},
		ParamBounds: [][2]float64{{1e-1, 10}, {1e-1, 2}, {1e-3, 100}},
		Dimensions:  []trial.Dimension{trial.DimAmount1, trial.DimGain2, trial.DimLoss2, trial.DimProb2},
	}
}

func prospectValue(x, lambda, rho float64) float64 {
	if x >= 0 {
		return math.Pow(x, rho)
	}
	return -lambda * math.Pow(-x, rho)
}

func (m Prospect) ChoiceProbability(stim trial.StimulusParameterSet, params []float64) (float64, error) {
	if len(params) != 3 {
		return 0, fmt.Errorf("%w: prospect wants 3, got %d", ErrParamCount, len(params))
	}
	d, err := dims(stim, trial.DimAmount1, trial.DimGain2, trial.DimLoss2, trial.DimProb2)
	if err != nil {
		return 0, err
	}
	lambda, rho, beta := params[0], params[1], params[2]
	pWin := d[3]
	if pWin < 0 {
		pWin = 0
	}
	if pWin > 1 {
		pWin = 1
	}
	sv1 := prospectValue(d[0], lambda, rho)
	sv2 := pWin*prospectValue(d[1], lambda, rho) + (1-pWin)*prospectValue(d[2], lambda, rho)
	return choiceProbability(sv1, sv2, beta)
}

// #endregion prospect
