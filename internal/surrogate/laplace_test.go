package surrogate

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/likelihood"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/models"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/trial"
)

func recoverySpace() trial.SearchSpace {
	return trial.SearchSpace{Dims: []trial.DimensionBound{
		{Name: trial.DimAmount1, Min: 1, Max: 10},
		{Name: trial.DimCost1, Min: 0, Max: 5},
		{Name: trial.DimAmount2, Min: 5, Max: 50},
		{Name: trial.DimCost2, Min: 0, Max: 60},
	}}
}

// syntheticHistory samples Bernoulli responses from a hyperbolic responder
// with the given true parameters over a sweep of delay costs.
func syntheticHistory(t *testing.T, n int, trueK, trueBeta float64) []trial.TrialRecord {
	t.Helper()
	rng := rand.New(rand.NewPCG(7, 7))
	model := models.Hyperbolic{}

	history := make([]trial.TrialRecord, 0, n)
	for i := 0; i < n; i++ {
		stim := trial.StimulusParameterSet{
			trial.DimAmount1: 5,
			trial.DimCost1:   0,
			trial.DimAmount2: 10,
			trial.DimCost2:   rng.Float64() * 60,
		}
		p, err := model.ChoiceProbability(stim, []float64{trueK, trueBeta})
		if err != nil {
			t.Fatalf("trial %d: %v", i, err)
		}
		choice := 0
		if rng.Float64() < p {
			choice = 1
		}
		history = append(history, trial.TrialRecord{
			Index:    i,
			Stimulus: stim,
			Response: trial.ChoiceResponse{Choice: choice},
		})
	}
	return history
}

func newTestLaplace() *Laplace {
	return NewLaplace(models.Hyperbolic{}, likelihood.NewEvaluator(likelihood.DefaultConfig()), DefaultLaplaceConfig())
}

func TestFitRecoversHyperbolicParams(t *testing.T) {
	trueK, trueBeta := 0.05, 1.5
	history := syntheticHistory(t, 200, trueK, trueBeta)

	l := newTestLaplace()
	fit, err := l.Fit(history)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}

	if fit.ModelID != models.ModelHyperbolic {
		t.Fatalf("unexpected model ID %s", fit.ModelID)
	}
	if len(fit.Params) != 2 || len(fit.StdErrs) != 2 {
		t.Fatalf("unexpected shapes: params=%v stderrs=%v", fit.Params, fit.StdErrs)
	}

	// 200 noisy Bernoulli trials: accept recovery within a factor of 4.
	if r := fit.Params[0] / trueK; r < 0.25 || r > 4 {
		t.Fatalf("k estimate %v too far from true %v", fit.Params[0], trueK)
	}
	if r := fit.Params[1] / trueBeta; r < 0.2 || r > 5 {
		t.Fatalf("beta estimate %v too far from true %v", fit.Params[1], trueBeta)
	}

	for i, se := range fit.StdErrs {
		if se <= 0 || math.IsNaN(se) || math.IsInf(se, 0) {
			t.Fatalf("stderr %d not positive finite: %v", i, se)
		}
	}
	if math.IsNaN(fit.Entropy) || math.IsInf(fit.Entropy, 0) {
		t.Fatalf("entropy not finite: %v", fit.Entropy)
	}
	if fit.NLL < 0 {
		t.Fatalf("negative NLL %v", fit.NLL)
	}
	if want := 2*2.0 + 2*fit.NLL; math.Abs(fit.AIC-want) > 1e-9 {
		t.Fatalf("AIC %v inconsistent with NLL %v", fit.AIC, fit.NLL)
	}
}

func TestEntropyShrinksWithMoreData(t *testing.T) {
	small := syntheticHistory(t, 40, 0.05, 1.5)
	large := syntheticHistory(t, 320, 0.05, 1.5)

	fitSmall, err := newTestLaplace().Fit(small)
	if err != nil {
		t.Fatalf("fit small: %v", err)
	}
	fitLarge, err := newTestLaplace().Fit(large)
	if err != nil {
		t.Fatalf("fit large: %v", err)
	}
	if fitLarge.Entropy >= fitSmall.Entropy {
		t.Fatalf("expected entropy to shrink with data: %v >= %v", fitLarge.Entropy, fitSmall.Entropy)
	}
}

func TestFitHandlesPerfectlyConsistentResponses(t *testing.T) {
	// A responder who never errs leaves beta unidentified upward: the
	// likelihood keeps improving as beta grows. The bounded objective must
	// settle at the declared bound with finite results instead of walking
	// the line search into overflow.
	var history []trial.TrialRecord
	for i := 0; i < 40; i++ {
		cost2 := float64((i * 7) % 61)
		choice := 0
		if cost2 < 20 { // indifference point for k=0.05
			choice = 1
		}
		history = append(history, trial.TrialRecord{
			Index: i,
			Stimulus: trial.StimulusParameterSet{
				trial.DimAmount1: 5, trial.DimCost1: 0,
				trial.DimAmount2: 10, trial.DimCost2: cost2,
			},
			Response: trial.ChoiceResponse{Choice: choice},
		})
	}

	fit, err := newTestLaplace().Fit(history)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	spec := models.Hyperbolic{}.Spec()
	for i, b := range spec.ParamBounds {
		if fit.Params[i] < b[0] || fit.Params[i] > b[1] {
			t.Fatalf("param %s=%v escaped bounds [%v,%v]",
				spec.ParamNames[i], fit.Params[i], b[0], b[1])
		}
	}
	if math.IsNaN(fit.Entropy) || math.IsInf(fit.Entropy, 0) {
		t.Fatalf("entropy not finite: %v", fit.Entropy)
	}
	if fit.NLL < 0 || math.IsInf(fit.NLL, 0) {
		t.Fatalf("bad NLL %v", fit.NLL)
	}
}

func TestFitEmptyHistory(t *testing.T) {
	if _, err := newTestLaplace().Fit(nil); !errors.Is(err, ErrOptimizerFailure) {
		t.Fatalf("expected ErrOptimizerFailure, got %v", err)
	}
}

func TestPredictBeforeFit(t *testing.T) {
	l := newTestLaplace()
	if _, err := l.Predict(trial.StimulusParameterSet{}); !errors.Is(err, ErrNotFitted) {
		t.Fatalf("expected ErrNotFitted, got %v", err)
	}
	if _, err := l.SuggestNext(recoverySpace(), nil); !errors.Is(err, ErrNotFitted) {
		t.Fatalf("expected ErrNotFitted, got %v", err)
	}
}

func TestPredictReturnsProbabilityAndSpread(t *testing.T) {
	history := syntheticHistory(t, 200, 0.05, 1.5)
	l := newTestLaplace()
	if _, err := l.Fit(history); err != nil {
		t.Fatalf("fit: %v", err)
	}

	pred, err := l.Predict(trial.StimulusParameterSet{
		trial.DimAmount1: 5, trial.DimCost1: 0,
		trial.DimAmount2: 10, trial.DimCost2: 20,
	})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if pred.Mean < 0 || pred.Mean > 1 {
		t.Fatalf("mean %v out of [0,1]", pred.Mean)
	}
	if pred.Uncertainty < 0 || math.IsNaN(pred.Uncertainty) {
		t.Fatalf("bad uncertainty %v", pred.Uncertainty)
	}
}

func TestSuggestNextStaysInBoundsAndIsDeterministic(t *testing.T) {
	history := syntheticHistory(t, 120, 0.05, 1.5)
	space := recoverySpace()

	l := newTestLaplace()
	if _, err := l.Fit(history); err != nil {
		t.Fatalf("fit: %v", err)
	}

	first, err := l.SuggestNext(space, history)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if !space.Contains(first) {
		t.Fatalf("suggestion out of bounds: %v", first)
	}
	for _, d := range space.Dims {
		if _, ok := first[d.Name]; !ok {
			t.Fatalf("suggestion missing dimension %s", d.Name)
		}
	}

	second, err := l.SuggestNext(space, history)
	if err != nil {
		t.Fatalf("suggest again: %v", err)
	}
	for _, d := range space.Dims {
		if first[d.Name] != second[d.Name] {
			t.Fatalf("suggestions differ on %s: %v vs %v", d.Name, first[d.Name], second[d.Name])
		}
	}
}
