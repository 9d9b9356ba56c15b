package models

import "time"

// Tone is the coarse sentiment classification of a piece of text.
type Tone string

// Allowed tone values. The generation client and the keyword fallback never
// produce anything outside this set.
const (
	TonePositive Tone = "positive"
	ToneNeutral  Tone = "neutral"
	ToneNegative Tone = "negative"
)

// Valid reports whether t is one of the three allowed tone literals.
func (t Tone) Valid() bool {
	return t == TonePositive || t == ToneNeutral || t == ToneNegative
}

// ClassificationResult is the normalized outcome of a single zero-shot
// classification call: the best-matching candidate label and its confidence.
// Produced once per request; immutable afterwards.
type ClassificationResult struct {
	// Category is the winning candidate label.
	Category string `json:"category"`

	// Score is the classifier's confidence for Category, in [0, 1].
	Score float64 `json:"score"`
}

// GenerationResult is the parsed outcome of a single text-generation call.
// Produced once per request; immutable afterwards.
type GenerationResult struct {
	// Summary is a short human-readable summary of the analyzed text.
	Summary string `json:"summary"`

	// Tone is the detected sentiment of the analyzed text.
	Tone Tone `json:"tone"`
}

// AnalysisResult merges the classification and generation outcomes into the
// final value returned to the caller. It has no identity of its own: it only
// exists as a transient response value and as the shape persisted to the
// analysis log together with the originating user.
type AnalysisResult struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
	Summary  string  `json:"summary"`
	Tone     Tone    `json:"tone"`
}

// AnalysisLog is a persisted record of one completed analysis. InputText is
// stored truncated; the full request body is never kept.
type AnalysisLog struct {
	// LogID is the server-assigned identifier of the record.
	LogID int64 `json:"id"`

	// UserID identifies the account that requested the analysis.
	UserID int64 `json:"-"`

	// InputText is a truncated copy of the analyzed text.
	InputText string `json:"input_text"`

	// Category and ConfidenceScore mirror the classification outcome.
	Category        string  `json:"category"`
	ConfidenceScore float64 `json:"score"`

	// Summary and Tone mirror the generation outcome.
	Summary string `json:"summary"`
	Tone    Tone   `json:"tone"`

	// CreatedAt is the timestamp when the record was written.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the AnalysisLog model.
func (l AnalysisLog) TableName() string {
	return "analysis_logs"
}
