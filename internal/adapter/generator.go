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

// analysisPromptTemplate steers the model towards a machine-parsable reply.
// The two markers are what extractSummaryAndTone looks for.
const analysisPromptTemplate = `You are an expert text analyst. Analyze the following text that has been categorized as "%s".

Your task:
1. Provide a concise summary (2-3 sentences, max 150 words)
2. Detect the overall tone: positive, neutral, or negative

Text to analyze:
%s

Respond in this exact format:
SUMMARY: [your summary here]
TONE: [positive/neutral/negative]

Be precise and follow the format exactly.`

// fallbackSummaryLength caps the degraded summary built from a reply that
// did not follow the requested format.
const fallbackSummaryLength = 500

// generateContentRequest is the wire format of the generateContent endpoint.
type generateContentRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

type geminiGenerator struct {
	client *utils.HTTPClient
	model  string
	logger *logger.Logger
}

// NewGeminiGenerator constructs a [Generator] backed by a Gemini-style
// generateContent endpoint. The API key is attached as the x-goog-api-key
// header on every request.
func NewGeminiGenerator(cfg config.Generator, logger *logger.Logger) Generator {
	client := utils.NewHTTPClient()
	client.
		SetBaseURL(strings.TrimRight(cfg.APIURL, "/")).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("x-goog-api-key", cfg.APIKey)

	return &geminiGenerator{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}
}

// Generate implements [Generator]. It prompts the model with the text and
// its predicted category, then parses the reply for the SUMMARY and TONE
// markers.
//
// When either marker cannot be extracted the client degrades instead of
// failing: the summary becomes the first [fallbackSummaryLength] characters
// of the raw reply and the tone comes from [DetectTone] over the raw reply.
// Only an entirely empty reply is a hard failure ([ErrEmptyResponse]).
func (g *geminiGenerator) Generate(ctx context.Context, text string, category string) (models.GenerationResult, error) {
	log := logger.FromContext(ctx)

	prompt := fmt.Sprintf(analysisPromptTemplate, category, text)

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(generateContentRequest{
			Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
		}).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", g.model))
	if err != nil {
		log.Err(err).
			Str("func", "*geminiGenerator.Generate").
			Msg("generation request failed")
		return models.GenerationResult{}, classifyTransportError(err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusUnauthorized, http.StatusForbidden:
		return models.GenerationResult{}, ErrAuthenticationFailed
	default:
		log.Error().
			Str("func", "*geminiGenerator.Generate").
			Int("status", resp.StatusCode()).
			Str("body", strings.TrimSpace(string(resp.Body()))).
			Msg("generation service returned unexpected status")
		return models.GenerationResult{}, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		log.Err(err).
			Str("func", "*geminiGenerator.Generate").
			Str("body", strings.TrimSpace(string(resp.Body()))).
			Msg("failed to decode generation response")
		return models.GenerationResult{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	reply := strings.TrimSpace(replyText(parsed))
	if reply == "" {
		return models.GenerationResult{}, ErrEmptyResponse
	}

	summary, tone, ok := extractSummaryAndTone(reply)
	if !ok {
		log.Warn().
			Str("func", "*geminiGenerator.Generate").
			Msg("model reply did not follow the requested format, using fallback")
		summary = utils.TruncateRunes(reply, fallbackSummaryLength)
		tone = DetectTone(reply)
	}

	log.Debug().
		Str("tone", string(tone)).
		Msg("generation complete")

	return models.GenerationResult{Summary: summary, Tone: tone}, nil
}

// replyText concatenates the text parts of the first candidate.
func replyText(resp generateContentResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}

	return b.String()
}

// extractSummaryAndTone parses a reply of the form
//
//	SUMMARY: <text, possibly spanning lines>
//	TONE: <positive|neutral|negative>
//
// Marker matching is case-insensitive and the markers may appear in either
// order. Returns ok=false when either field cannot be recovered, which
// triggers the caller's degraded path.
func extractSummaryAndTone(reply string) (string, models.Tone, bool) {
	upper := strings.ToUpper(reply)

	summaryIdx := strings.Index(upper, "SUMMARY:")
	toneIdx := strings.Index(upper, "TONE:")
	if summaryIdx < 0 || toneIdx < 0 {
		return "", "", false
	}

	summaryStart := summaryIdx + len("SUMMARY:")
	summaryEnd := len(reply)
	if toneIdx > summaryIdx {
		summaryEnd = toneIdx
	}
	summary := strings.TrimSpace(reply[summaryStart:summaryEnd])

	toneValue := reply[toneIdx+len("TONE:"):]
	if end := strings.IndexByte(toneValue, '\n'); end >= 0 {
		toneValue = toneValue[:end]
	}

	tone, ok := matchTone(toneValue)
	if summary == "" || !ok {
		return "", "", false
	}

	return summary, tone, true
}

// matchTone finds the first tone literal mentioned in the value, tolerating
// decoration around it (brackets, trailing punctuation, mixed case).
func matchTone(value string) (models.Tone, bool) {
	lower := strings.ToLower(value)
	for _, tone := range []models.Tone{models.TonePositive, models.ToneNeutral, models.ToneNegative} {
		if strings.Contains(lower, string(tone)) {
			return tone, true
		}
	}

	return "", false
}
