package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/akhetov/hybrid-analyzer/internal/config"
	"github.com/akhetov/hybrid-analyzer/internal/logger"
	"github.com/akhetov/hybrid-analyzer/internal/utils"
	"github.com/akhetov/hybrid-analyzer/models"
)

// classificationRequest is the wire format of the zero-shot inference API.
type classificationRequest struct {
	Inputs     string                   `json:"inputs"`
	Parameters classificationParameters `json:"parameters"`
}

type classificationParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

// classificationResponse covers both reply shapes the inference API is known
// to produce: the parallel-array form {labels:[],scores:[]} and the
// single-prediction form {label,score}.
type classificationResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`

	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type zeroShotClassifier struct {
	client   *utils.HTTPClient
	modelURL string
	logger   *logger.Logger
}

// NewZeroShotClassifier constructs a [Classifier] backed by a Hugging Face
// style zero-shot inference endpoint. The model identifier from cfg is
// appended to the base URL, and the API token is attached as a bearer
// credential on every request.
func NewZeroShotClassifier(cfg config.Classifier, logger *logger.Logger) Classifier {
	client := utils.NewHTTPClient()
	client.
		SetBaseURL(strings.TrimRight(cfg.APIURL, "/")).
		SetTimeout(cfg.RequestTimeout).
		SetAuthToken(cfg.APIToken)

	return &zeroShotClassifier{
		client:   client,
		modelURL: "/" + strings.Trim(cfg.Model, "/"),
		logger:   logger,
	}
}

// Classify implements [Classifier]. It POSTs the text and candidate labels
// to the model endpoint and normalises the reply into a
// [models.ClassificationResult] holding the top prediction.
//
// Status mapping:
//   - 503 → [ErrServiceWarmingUp] (model still loading on the remote side).
//   - 401 → [ErrAuthenticationFailed].
//   - other non-200 → [ErrUpstream] with status and body preserved.
//
// The call is made exactly once; no retries.
func (c *zeroShotClassifier) Classify(ctx context.Context, text string, candidateLabels []string) (models.ClassificationResult, error) {
	log := logger.FromContext(ctx)

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(classificationRequest{
			Inputs:     text,
			Parameters: classificationParameters{CandidateLabels: candidateLabels},
		}).
		Post(c.modelURL)
	if err != nil {
		log.Err(err).
			Str("func", "*zeroShotClassifier.Classify").
			Msg("classification request failed")
		return models.ClassificationResult{}, classifyTransportError(err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusServiceUnavailable:
		return models.ClassificationResult{}, ErrServiceWarmingUp
	case http.StatusUnauthorized:
		return models.ClassificationResult{}, ErrAuthenticationFailed
	default:
		log.Error().
			Str("func", "*zeroShotClassifier.Classify").
			Int("status", resp.StatusCode()).
			Str("body", strings.TrimSpace(string(resp.Body()))).
			Msg("classification service returned unexpected status")
		return models.ClassificationResult{}, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	result, err := decodeClassification(resp.Body())
	if err != nil {
		log.Err(err).
			Str("func", "*zeroShotClassifier.Classify").
			Str("body", strings.TrimSpace(string(resp.Body()))).
			Msg("failed to decode classification response")
		return models.ClassificationResult{}, err
	}

	log.Debug().
		Str("category", result.Category).
		Float64("score", result.Score).
		Msg("classification complete")

	return result, nil
}

// decodeClassification extracts the top prediction from the response body.
// The inference API sometimes wraps the object in a one-element JSON array;
// both the wrapped and the bare form are accepted.
func decodeClassification(body []byte) (models.ClassificationResult, error) {
	var parsed classificationResponse

	if err := json.Unmarshal(body, &parsed); err != nil {
		var wrapped []classificationResponse
		if arrErr := json.Unmarshal(body, &wrapped); arrErr != nil || len(wrapped) == 0 {
			return models.ClassificationResult{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		parsed = wrapped[0]
	}

	switch {
	case len(parsed.Labels) > 0 && len(parsed.Scores) > 0:
		return models.ClassificationResult{Category: parsed.Labels[0], Score: parsed.Scores[0]}, nil
	case parsed.Label != "":
		return models.ClassificationResult{Category: parsed.Label, Score: parsed.Score}, nil
	default:
		return models.ClassificationResult{}, fmt.Errorf("%w: no labels in body", ErrMalformedResponse)
	}
}
