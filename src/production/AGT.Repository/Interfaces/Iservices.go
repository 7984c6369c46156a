package interfaces

import (
	"context"

	agtmodels "gitlab.com/unnchai/agro.backend/src/production/AGT.Models"
)

// Predictor computes a scalar flammability score from a reading.
type Predictor interface {
	PredictFlammability(data agtmodels.SensorData) (float64, error)
}

// ChatCompleter sends a single user message to the chat-completion model and
// returns the model's markdown reply.
type ChatCompleter interface {
	Complete(ctx context.Context, message string) (string, error)
}

// Pinger reports reachability of a backing service.
type Pinger interface {
	Ping(ctx context.Context) error
}
