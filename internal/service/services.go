package service

import (
	"github.com/akhetov/hybrid-analyzer/internal/adapter"
	"github.com/akhetov/hybrid-analyzer/internal/config"
	"github.com/akhetov/hybrid-analyzer/internal/logger"
	"github.com/akhetov/hybrid-analyzer/internal/store"
)

type Services struct {
	AuthService     AuthService
	AnalysisService AnalysisService
}

func NewServices(repositories *store.Repositories, classifier adapter.Classifier, generator adapter.Generator, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(repositories.UserRepository, cfg.App, logger),
		AnalysisService: NewAnalysisService(classifier, generator, repositories.AnalysisLogRepository, logger),
	}
}
