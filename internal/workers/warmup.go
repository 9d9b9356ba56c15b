package workers

import (
	"context"
	"errors"
	"time"

	"github.com/akhetov/hybrid-analyzer/internal/adapter"
	"github.com/akhetov/hybrid-analyzer/internal/logger"
	"github.com/rs/zerolog"
)

// warmupText is the probe sent to the classification service. Its content is
// irrelevant; the request exists only to trigger model loading upstream.
const warmupText = "Service startup probe to trigger model loading before real traffic arrives."

var warmupLabels = []string{"technology", "business"}

// classifierWarmup fires probe classifications at startup so the first real
// request does not pay the model cold-start penalty. The shared inference
// backend unloads idle models and answers 503 while reloading them.
type classifierWarmup struct {
	classifier adapter.Classifier

	attempts       int
	delay          time.Duration
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewClassifierWarmup(classifier adapter.Classifier, logger *logger.Logger) Worker {
	return &classifierWarmup{
		classifier:     classifier,
		attempts:       5,
		delay:          15 * time.Second,
		requestTimeout: 30 * time.Second,
		logger:         logger,
	}
}

func (w *classifierWarmup) Run() {
	log := w.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("worker", "classifier-warmup")
	})

	for attempt := 1; attempt <= w.attempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), w.requestTimeout)
		_, err := w.classifier.Classify(ctx, warmupText, warmupLabels)
		cancel()

		if err == nil {
			log.Info().Int("attempt", attempt).Msg("classification model is warm")
			return
		}

		if !errors.Is(err, adapter.ErrServiceWarmingUp) && !errors.Is(err, adapter.ErrTimeout) {
			// Not a cold-start symptom. Real traffic will surface the
			// problem with better context, so stop probing.
			log.Warn().Err(err).Int("attempt", attempt).Msg("warmup probe failed")
			return
		}

		log.Info().Int("attempt", attempt).Msg("classification model still loading")
		time.Sleep(w.delay)
	}

	log.Warn().Int("attempts", w.attempts).Msg("classification model did not warm up in time")
}
