package models

import (
	"errors"

	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/trial"
)

// #region model-id
// ModelID identifies a subjective-value model family.
type ModelID string

const (
	ModelHyperbolic      ModelID = "hyperbolic"
	ModelGreenMyerson    ModelID = "green_myerson"
	ModelSigmoidalEffort ModelID = "sigmoidal_effort"
	ModelPowerEffort     ModelID = "power_effort"
	ModelProspect        ModelID = "prospect"
)

// #endregion model-id

// #region model-spec
// ModelSpec describes a model's parameter space and stimulus requirements.
// Parameter order in Params/Bounds matches ParamNames; the choice-consistency
// parameter beta is always last. All parameters are strictly positive and are
// fitted in log space.
type ModelSpec struct {
	ID         ModelID
	ParamNames []string
	// ParamBounds holds [min, max] per parameter, same order as ParamNames.
	ParamBounds [][2]float64
	// Dimensions lists the stimulus dimensions the model reads.
	Dimensions []trial.Dimension
}

// NumParams returns the parameter dimensionality.
func (s ModelSpec) NumParams() int {
	return len(s.ParamNames)
}

// #endregion model-spec

// #region model-interface
// Model maps a stimulus and a candidate parameter set to the probability of
// choosing the variable (delayed / risky / effortful) option.
type Model interface {
	ID() ModelID
	Spec() ModelSpec
	// ChoiceProbability returns a value in [0,1]. Boundary stimuli saturate
	// to exactly 0 or 1; a NaN-producing input returns an error instead of
	// propagating.
	ChoiceProbability(stim trial.StimulusParameterSet, params []float64) (float64, error)
}

// #endregion model-interface

// #region errors
var (
	ErrUnknownModel     = errors.New("unknown model")
	ErrParamCount       = errors.New("wrong parameter count")
	ErrMissingDimension = errors.New("stimulus missing required dimension")
	ErrDegenerateValue  = errors.New("degenerate subjective value")
)

// #endregion errors
