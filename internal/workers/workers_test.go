package workers

import (
	"errors"
	"testing"
	"time"

	"github.com/akhetov/hybrid-analyzer/internal/adapter"
	"github.com/akhetov/hybrid-analyzer/internal/logger"
	"github.com/akhetov/hybrid-analyzer/internal/mock"
	"github.com/akhetov/hybrid-analyzer/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type countingWorker struct {
	runs int
}

func (w *countingWorker) Run() { w.runs++ }

func TestWorkers_RunsAllWorkers(t *testing.T) {
	first := &countingWorker{}
	second := &countingWorker{}

	NewWorkers(first, second).Run()

	assert.Equal(t, 1, first.runs)
	assert.Equal(t, 1, second.runs)
}

func TestWorkers_EmptyIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		NewWorkers().Run()
	})
}

func newWarmupWorker(classifier adapter.Classifier, attempts int) *classifierWarmup {
	return &classifierWarmup{
		classifier:     classifier,
		attempts:       attempts,
		delay:          time.Millisecond,
		requestTimeout: time.Second,
		logger:         logger.Nop(),
	}
}

func TestClassifierWarmup_WarmOnFirstProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	classifier := mock.NewMockClassifier(ctrl)

	classifier.EXPECT().
		Classify(gomock.Any(), warmupText, warmupLabels).
		Return(models.ClassificationResult{Category: "technology", Score: 0.9}, nil).
		Times(1)

	newWarmupWorker(classifier, 5).Run()
}

func TestClassifierWarmup_RetriesWhileWarmingUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	classifier := mock.NewMockClassifier(ctrl)

	gomock.InOrder(
		classifier.EXPECT().
			Classify(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.ClassificationResult{}, adapter.ErrServiceWarmingUp),
		classifier.EXPECT().
			Classify(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.ClassificationResult{}, adapter.ErrServiceWarmingUp),
		classifier.EXPECT().
			Classify(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.ClassificationResult{Category: "technology", Score: 0.9}, nil),
	)

	newWarmupWorker(classifier, 5).Run()
}

func TestClassifierWarmup_StopsOnUnexpectedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	classifier := mock.NewMockClassifier(ctrl)

	classifier.EXPECT().
		Classify(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.ClassificationResult{}, errors.New("invalid credentials")).
		Times(1)

	newWarmupWorker(classifier, 5).Run()
}

func TestClassifierWarmup_GivesUpAfterAllAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	classifier := mock.NewMockClassifier(ctrl)

	classifier.EXPECT().
		Classify(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.ClassificationResult{}, adapter.ErrServiceWarmingUp).
		Times(3)

	newWarmupWorker(classifier, 3).Run()
}
