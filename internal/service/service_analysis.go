package service

import (
	"context"
	"fmt"

	"github.com/akhetov/hybrid-analyzer/internal/adapter"
	"github.com/akhetov/hybrid-analyzer/internal/logger"
	"github.com/akhetov/hybrid-analyzer/internal/store"
	"github.com/akhetov/hybrid-analyzer/models"
)

// defaultCandidateLabels is the label set used when the caller supplies none.
var defaultCandidateLabels = []string{
	"technology", "politics", "sports", "entertainment",
	"business", "health", "science",
}

// historyLimit caps the number of records returned by History.
const historyLimit = 50

// analysisService is the concrete implementation of AnalysisService. It
// orchestrates the two remote stages and records every completed analysis
// through the log repository.
type analysisService struct {
	classifier    adapter.Classifier
	generator     adapter.Generator
	logRepository store.AnalysisLogRepository
	logger        *logger.Logger
}

// NewAnalysisService constructs an AnalysisService wired to the two remote
// clients and the analysis log repository.
func NewAnalysisService(classifier adapter.Classifier, generator adapter.Generator, logRepository store.AnalysisLogRepository, logger *logger.Logger) AnalysisService {
	return &analysisService{
		classifier:    classifier,
		generator:     generator,
		logRepository: logRepository,
		logger:        logger,
	}
}

// Analyze runs the two-stage pipeline: classification first, then generation
// steered by the predicted category. The stages are strictly sequential
// because generation depends on the classification outcome. The first failure
// aborts the pipeline and propagates to the caller unchanged; there are no
// partial results.
//
// When labels is empty, defaultCandidateLabels is used instead.
//
// A completed analysis is persisted through the log repository. A failed
// write is logged but never surfaced: the caller already holds a fully valid
// result at that point.
func (s *analysisService) Analyze(ctx context.Context, userID int64, text string, labels []string) (models.AnalysisResult, error) {
	log := logger.FromContext(ctx)

	if len(labels) == 0 {
		labels = defaultCandidateLabels
	}

	classification, err := s.classifier.Classify(ctx, text, labels)
	if err != nil {
		log.Err(err).Msg("classification stage failed")
		return models.AnalysisResult{}, fmt.Errorf("classification stage failed: %w", err)
	}

	generation, err := s.generator.Generate(ctx, text, classification.Category)
	if err != nil {
		log.Err(err).
			Str("category", classification.Category).
			Msg("generation stage failed")
		return models.AnalysisResult{}, fmt.Errorf("generation stage failed: %w", err)
	}

	result := models.AnalysisResult{
		Category: classification.Category,
		Score:    classification.Score,
		Summary:  generation.Summary,
		Tone:     generation.Tone,
	}

	if _, saveErr := s.logRepository.SaveAnalysis(ctx, models.AnalysisLog{
		UserID:          userID,
		InputText:       text,
		Category:        result.Category,
		ConfidenceScore: result.Score,
		Summary:         result.Summary,
		Tone:            result.Tone,
	}); saveErr != nil {
		// the analysis itself succeeded, so the caller still gets the result
		log.Err(saveErr).
			Int64("user_id", userID).
			Msg("failed to persist analysis log")
	}

	return result, nil
}

// History returns the most recent analyses of the given user, newest first,
// capped at historyLimit records.
func (s *analysisService) History(ctx context.Context, userID int64) ([]models.AnalysisLog, error) {
	log := logger.FromContext(ctx)

	analyses, err := s.logRepository.FindAnalysesByUser(ctx, userID, historyLimit)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("failed to load analysis history")
		return nil, fmt.Errorf("failed to load analysis history: %w", err)
	}

	return analyses, nil
}
