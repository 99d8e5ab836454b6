package participant

import (
	"context"
	"testing"

	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/models"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/trial"
)

func discountStim(cost2 float64) trial.StimulusParameterSet {
	return trial.StimulusParameterSet{
		trial.DimAmount1: 5, trial.DimCost1: 0,
		trial.DimAmount2: 10, trial.DimCost2: cost2,
	}
}

func TestSimulatedIsDeterministicPerSeed(t *testing.T) {
	a := NewSimulated(models.Hyperbolic{}, []float64{0.05, 2}, 11)
	b := NewSimulated(models.Hyperbolic{}, []float64{0.05, 2}, 11)

	for i := 0; i < 30; i++ {
		stim := discountStim(float64(i * 2))
		respA, err := a.Respond(context.Background(), stim)
		if err != nil {
			t.Fatalf("trial %d: %v", i, err)
		}
		respB, err := b.Respond(context.Background(), stim)
		if err != nil {
			t.Fatalf("trial %d: %v", i, err)
		}
		if respA.Choice != respB.Choice {
			t.Fatalf("trial %d: same seed diverged: %d vs %d", i, respA.Choice, respB.Choice)
		}
	}
}

func TestSimulatedFollowsSaturatedProbabilities(t *testing.T) {
	// A near-deterministic responder (huge beta) always takes the dominant
	// option.
	s := NewSimulated(models.Hyperbolic{}, []float64{0.05, 100}, 3)

	for i := 0; i < 20; i++ {
		resp, err := s.Respond(context.Background(), discountStim(0))
		if err != nil {
			t.Fatalf("trial %d: %v", i, err)
		}
		if resp.Choice != 1 {
			t.Fatalf("trial %d: expected the dominant option, got %d", i, resp.Choice)
		}
	}
	for i := 0; i < 20; i++ {
		resp, err := s.Respond(context.Background(), discountStim(1000))
		if err != nil {
			t.Fatalf("trial %d: %v", i, err)
		}
		if resp.Choice != 0 {
			t.Fatalf("trial %d: expected the immediate option, got %d", i, resp.Choice)
		}
	}
}

func TestSimulatedPropagatesModelErrors(t *testing.T) {
	s := NewSimulated(models.Hyperbolic{}, []float64{0.05}, 1)
	if _, err := s.Respond(context.Background(), discountStim(5)); err == nil {
		t.Fatal("expected parameter-count error")
	}
}
