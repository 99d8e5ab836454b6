// Package surrogate fits posterior surrogates over model parameters and
// proposes the next stimulus. The interface is deliberately narrow so any
// Bayesian-optimization backend can stand behind it.
package surrogate

import (
	"errors"

	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/models"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/trial"
)

// #region errors
var (
	// ErrOptimizerFailure signals the backend could not produce a usable
	// fit or suggestion (singular Hessian, non-convergence). Callers fall
	// back to coverage selection rather than aborting the session.
	ErrOptimizerFailure = errors.New("optimizer failure")

	// ErrNotFitted signals Predict/SuggestNext before a successful Fit.
	ErrNotFitted = errors.New("surrogate not fitted")
)

// #endregion errors

// #region fit-result
// FitResult summarizes one maximum-likelihood fit with its local posterior
// approximation.
type FitResult struct {
	ModelID models.ModelID
	// Params is the natural-space point estimate, ordered per ModelSpec.
	Params []float64
	// StdErrs are standard errors of the log-parameters (the fit space).
	StdErrs []float64
	// Entropy is the Gaussian differential entropy of the Laplace
	// posterior, in nats. Lower means more certain.
	Entropy float64
	NLL     float64
	AIC     float64
}

// #endregion fit-result

// #region prediction
// Prediction is the surrogate's estimate at a candidate stimulus.
type Prediction struct {
	// Mean is the predicted probability of choosing the variable option.
	Mean float64
	// Uncertainty is the delta-method standard deviation of Mean.
	Uncertainty float64
}

// #endregion prediction

// #region interface
// Surrogate is the black-box posterior/suggestion contract.
type Surrogate interface {
	// Fit consumes the full trial history and refits the posterior.
	Fit(history []trial.TrialRecord) (FitResult, error)
	// Predict evaluates outcome mean and uncertainty at a stimulus.
	Predict(stim trial.StimulusParameterSet) (Prediction, error)
	// SuggestNext returns the in-bounds stimulus maximizing expected
	// information gain about the indifference point.
	SuggestNext(space trial.SearchSpace, history []trial.TrialRecord) (trial.StimulusParameterSet, error)
}

// #endregion interface
