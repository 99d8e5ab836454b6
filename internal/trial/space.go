package trial

import (
	"fmt"
	"math"
)

// #region bounds
// DimensionBound is the inclusive search range for one stimulus dimension.
type DimensionBound struct {
	Name Dimension `json:"name"`
	Min  float64   `json:"min"`
	Max  float64   `json:"max"`
}

// SearchSpace is the ordered set of dimension bounds for a session.
// Order is fixed at configuration time and shared by every stimulus.
type SearchSpace struct {
	Dims []DimensionBound `json:"dims"`
}

// #endregion bounds

// #region validate
// Validate checks the space for missing, duplicate, or inverted bounds.
func (sp SearchSpace) Validate() error {
	if len(sp.Dims) == 0 {
		return fmt.Errorf("search space has no dimensions")
	}
	seen := make(map[Dimension]bool, len(sp.Dims))
	for _, d := range sp.Dims {
		if d.Name == "" {
			return fmt.Errorf("search space has an unnamed dimension")
		}
		if seen[d.Name] {
			return fmt.Errorf("duplicate dimension %q", d.Name)
		}
		seen[d.Name] = true
		if !(d.Min < d.Max) {
			return fmt.Errorf("dimension %q: min %v must be below max %v", d.Name, d.Min, d.Max)
		}
	}
	return nil
}

// #endregion validate

// #region contains-clamp
// Contains reports whether every dimension of the stimulus is inside bounds.
// Dimensions absent from the stimulus count as out of bounds.
func (sp SearchSpace) Contains(s StimulusParameterSet) bool {
	for _, d := range sp.Dims {
		v, ok := s[d.Name]
		if !ok || v < d.Min || v > d.Max {
			return false
		}
	}
	return true
}

// Clamp returns a copy of the stimulus with every dimension forced into
// its configured range. Missing dimensions are set to the range midpoint.
func (sp SearchSpace) Clamp(s StimulusParameterSet) StimulusParameterSet {
	out := make(StimulusParameterSet, len(sp.Dims))
	for _, d := range sp.Dims {
		v, ok := s[d.Name]
		if !ok {
			v = (d.Min + d.Max) / 2
		}
		if v < d.Min {
			v = d.Min
		}
		if v > d.Max {
			v = d.Max
		}
		out[d.Name] = v
	}
	return out
}

// #endregion contains-clamp

// #region distance
// NormalizedDistance computes Euclidean distance between two stimuli after
// scaling each dimension to [0,1] by its configured range.
func (sp SearchSpace) NormalizedDistance(a, b StimulusParameterSet) float64 {
	var sum float64
	for _, d := range sp.Dims {
		span := d.Max - d.Min
		if span <= 0 {
			continue
		}
		diff := (a[d.Name] - b[d.Name]) / span
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

// MinDistanceTo returns the smallest normalized distance from s to any
// stimulus in the history. Returns +Inf for an empty history.
func (sp SearchSpace) MinDistanceTo(s StimulusParameterSet, history []TrialRecord) float64 {
	min := math.Inf(1)
	for _, rec := range history {
		if d := sp.NormalizedDistance(s, rec.Stimulus); d < min {
			min = d
		}
	}
	return min
}

// #endregion distance
