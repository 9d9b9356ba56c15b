package adapter

import (
	"strings"

	"github.com/akhetov/hybrid-analyzer/models"
)

// Keyword lists driving the degraded tone detection. Matching is
// case-insensitive substring containment.
var (
	positiveKeywords = []string{
		"good", "great", "excellent", "positive", "success", "improve",
		"benefit", "optimistic", "growth", "strong", "high", "gains", "profit",
	}
	negativeKeywords = []string{
		"bad", "poor", "negative", "fail", "problem", "issue", "concern",
		"decline", "loss", "weak", "crisis", "risk",
	}
)

// DetectTone estimates the tone of text by counting occurrences of known
// positive and negative keywords. The majority side wins; a tie, including
// no matches at all, yields [models.ToneNeutral].
//
// This is the fallback used when the generation service does not return a
// parsable tone. It is deliberately crude and never fails.
func DetectTone(text string) models.Tone {
	lower := strings.ToLower(text)

	var positive, negative int
	for _, word := range positiveKeywords {
		if strings.Contains(lower, word) {
			positive++
		}
	}
	for _, word := range negativeKeywords {
		if strings.Contains(lower, word) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return models.TonePositive
	case negative > positive:
		return models.ToneNegative
	default:
		return models.ToneNeutral
	}
}
