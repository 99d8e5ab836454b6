package trial

import (
	"math"
	"testing"
)

func testSpace() SearchSpace {
	return SearchSpace{Dims: []DimensionBound{
		{Name: DimAmount1, Min: 0, Max: 10},
		{Name: DimCost1, Min: 1, Max: 10},
		{Name: DimAmount2, Min: 10, Max: 100},
		{Name: DimCost2, Min: 11, Max: 100},
	}}
}

func TestValidateAcceptsWellFormedSpace(t *testing.T) {
	if err := testSpace().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsBadSpaces(t *testing.T) {
	cases := []struct {
		name  string
		space SearchSpace
	}{
		{"empty", SearchSpace{}},
		{"unnamed", SearchSpace{Dims: []DimensionBound{{Min: 0, Max: 1}}}},
		{"inverted", SearchSpace{Dims: []DimensionBound{{Name: "x", Min: 5, Max: 1}}}},
		{"degenerate", SearchSpace{Dims: []DimensionBound{{Name: "x", Min: 2, Max: 2}}}},
		{"duplicate", SearchSpace{Dims: []DimensionBound{
			{Name: "x", Min: 0, Max: 1},
			{Name: "x", Min: 0, Max: 2},
		}}},
	}
	for _, tc := range cases {
		if err := tc.space.Validate(); err == nil {
			t.Fatalf("%s: expected error, got nil", tc.name)
		}
	}
}

func TestContainsAndClamp(t *testing.T) {
	sp := testSpace()

	inside := StimulusParameterSet{DimAmount1: 5, DimCost1: 2, DimAmount2: 50, DimCost2: 40}
	if !sp.Contains(inside) {
		t.Fatal("expected stimulus inside bounds")
	}

	outside := StimulusParameterSet{DimAmount1: -3, DimCost1: 2, DimAmount2: 500, DimCost2: 40}
	if sp.Contains(outside) {
		t.Fatal("expected stimulus outside bounds")
	}

	clamped := sp.Clamp(outside)
	if !sp.Contains(clamped) {
		t.Fatalf("clamped stimulus still out of bounds: %v", clamped)
	}
	if clamped[DimAmount1] != 0 || clamped[DimAmount2] != 100 {
		t.Fatalf("unexpected clamp result: %v", clamped)
	}

	// Missing dimensions land at the range midpoint.
	partial := sp.Clamp(StimulusParameterSet{DimAmount1: 5})
	if partial[DimCost1] != 5.5 {
		t.Fatalf("expected midpoint 5.5 for missing cost_1, got %v", partial[DimCost1])
	}
}

func TestNormalizedDistance(t *testing.T) {
	sp := testSpace()
	a := StimulusParameterSet{DimAmount1: 0, DimCost1: 1, DimAmount2: 10, DimCost2: 11}
	b := StimulusParameterSet{DimAmount1: 10, DimCost1: 10, DimAmount2: 100, DimCost2: 100}

	got := sp.NormalizedDistance(a, b)
	if math.Abs(got-2.0) > 1e-9 {
		t.Fatalf("expected corner-to-corner distance 2, got %v", got)
	}
	if sp.NormalizedDistance(a, a) != 0 {
		t.Fatal("expected zero self-distance")
	}
}

func TestMinDistanceTo(t *testing.T) {
	sp := testSpace()
	s := StimulusParameterSet{DimAmount1: 5, DimCost1: 5, DimAmount2: 50, DimCost2: 50}

	if d := sp.MinDistanceTo(s, nil); !math.IsInf(d, 1) {
		t.Fatalf("expected +Inf for empty history, got %v", d)
	}

	history := []TrialRecord{
		{Stimulus: StimulusParameterSet{DimAmount1: 5, DimCost1: 5, DimAmount2: 50, DimCost2: 50}},
		{Stimulus: StimulusParameterSet{DimAmount1: 0, DimCost1: 1, DimAmount2: 10, DimCost2: 11}},
	}
	if d := sp.MinDistanceTo(s, history); d != 0 {
		t.Fatalf("expected zero distance to identical stimulus, got %v", d)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := StimulusParameterSet{DimAmount1: 1}
	cp := orig.Clone()
	cp[DimAmount1] = 99
	if orig[DimAmount1] != 1 {
		t.Fatal("clone mutated the original")
	}
}
