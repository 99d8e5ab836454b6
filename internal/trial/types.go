package trial

import "time"

// #region dimension
// Dimension names a single numeric axis of a stimulus (e.g. "amount_2").
type Dimension string

// Canonical two-option stimulus dimensions. Option 1 is the standard
// (smaller-sooner / certain / low-effort) option, option 2 the variable one.
const (
	DimAmount1 Dimension = "amount_1"
	DimCost1   Dimension = "cost_1"
	DimAmount2 Dimension = "amount_2"
	DimCost2   Dimension = "cost_2"
	DimProb1   Dimension = "prob_1"
	DimProb2   Dimension = "prob_2"
	DimGain2   Dimension = "gain_2"
	DimLoss2   Dimension = "loss_2"
)

// #endregion dimension

// #region stimulus
// StimulusParameterSet maps stimulus dimensions to numeric values.
// Treated as immutable once presented; use Clone before handing off.
type StimulusParameterSet map[Dimension]float64

// Clone returns an independent copy of the stimulus.
func (s StimulusParameterSet) Clone() StimulusParameterSet {
	out := make(StimulusParameterSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// #endregion stimulus

// #region choice-response
// ChoiceResponse records a participant's answer to one stimulus.
// Choice is 0 for the standard option, 1 for the variable option.
// Ordinal responses above 1 are preserved but treated as 1 by the
// binary likelihood.
type ChoiceResponse struct {
	Choice    int
	LatencyMs int64
}

// ChoseVariable reports whether the variable option was selected.
func (r ChoiceResponse) ChoseVariable() bool {
	return r.Choice >= 1
}

// #endregion choice-response

// #region trial-record
// TrialRecord pairs one presented stimulus with its response.
// Records are append-only; a session's history is the ordered sequence.
type TrialRecord struct {
	TrialID   string
	Index     int
	Stimulus  StimulusParameterSet
	Response  ChoiceResponse
	CreatedAt time.Time
}

// #endregion trial-record
