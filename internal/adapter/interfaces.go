// Package adapter provides the outbound HTTP clients for the two remote
// analysis services: the zero-shot classification API and the generative
// summary/tone API.
//
// The primary abstractions are [Classifier] and [Generator], which decouple
// the service layer from the remote protocols. Both implementations are built
// on resty and map transport-level and status-level failures to the sentinel
// values defined in errors.go, so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrServiceWarmingUp] for a 503
// from the classifier, [ErrAuthenticationFailed] for a rejected credential).
package adapter

import (
	"context"

	"github.com/akhetov/hybrid-analyzer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Classifier assigns one of the candidate labels to a piece of text.
type Classifier interface {
	// Classify submits text to the remote zero-shot model with the given
	// candidate labels and returns the top prediction. A single attempt per
	// call: retry policy is the caller's concern. Returns one of the package
	// sentinel errors (wrapped) on failure.
	Classify(ctx context.Context, text string, candidateLabels []string) (models.ClassificationResult, error)
}

// Generator produces a summary and a tone for already-classified text.
type Generator interface {
	// Generate asks the remote model to summarise text, steering the prompt
	// with the previously predicted category. When the model replies in an
	// unexpected shape, a degraded result is produced locally instead of
	// failing; only an empty reply is a hard error ([ErrEmptyResponse]).
	Generate(ctx context.Context, text string, category string) (models.GenerationResult, error)
}
