package models

import (
	"fmt"
	"math"
)

// #region bank
// Bank is the read-only registry of available models. Safe to share across
// sessions: every model is stateless.
type Bank struct {
	byID map[ModelID]Model
	ids  []ModelID
}

// DefaultBank returns a bank containing every built-in model.
func DefaultBank() *Bank {
	b := &Bank{byID: make(map[ModelID]Model)}
	for _, m := range []Model{
		Hyperbolic{},
		GreenMyerson{},
		SigmoidalEffort{},
		PowerEffort{},
		Prospect{},
	} {
		b.byID[m.ID()] = m
		b.ids = append(b.ids, m.ID())
	}
	return b
}

// Get looks up a model by ID.
func (b *Bank) Get(id ModelID) (Model, error) {
	m, ok := b.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, id)
	}
	return m, nil
}

// IDs lists the registered model IDs in registration order.
func (b *Bank) IDs() []ModelID {
	out := make([]ModelID, len(b.ids))
	copy(out, b.ids)
	return out
}

// #endregion bank

// #region akaike-weights
// AkaikeWeights converts per-model AIC values into posterior model weights:
// w_i = exp(-(AIC_i - min AIC)/2), normalized to sum to 1. Non-finite AICs
// (failed fits) get zero weight. Returns nil when no model has a finite AIC.
func AkaikeWeights(aics map[ModelID]float64) map[ModelID]float64 {
	minAIC := math.Inf(1)
	for _, a := range aics {
		if !math.IsNaN(a) && !math.IsInf(a, 0) && a < minAIC {
			minAIC = a
		}
	}
	if math.IsInf(minAIC, 1) {
		return nil
	}

	weights := make(map[ModelID]float64, len(aics))
	var total float64
	for id, a := range aics {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			weights[id] = 0
			continue
		}
		w := math.Exp(-(a - minAIC) / 2)
		weights[id] = w
		total += w
	}
	for id := range weights {
		weights[id] /= total
	}
	return weights
}

// #endregion akaike-weights
