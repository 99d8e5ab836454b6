// Package participant defines the responder boundary: anything that can
// turn a presented stimulus into a choice response.
package participant

import (
	"context"
	"errors"

	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/trial"
)

// #region responder
// Responder presents one stimulus and returns the participant's choice.
// Implementations block until a response arrives or the context ends.
type Responder interface {
	Respond(ctx context.Context, stim trial.StimulusParameterSet) (trial.ChoiceResponse, error)
}

// ErrNoResponse signals the participant did not answer (timeout or
// explicit skip). The session controller applies its retry-or-abort policy.
var ErrNoResponse = errors.New("no response from participant")

// #endregion responder
