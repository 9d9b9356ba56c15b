package http

import (
	"github.com/akhetov/hybrid-analyzer/internal/config"
	"github.com/akhetov/hybrid-analyzer/internal/logger"
	"github.com/akhetov/hybrid-analyzer/internal/service"
	"github.com/akhetov/hybrid-analyzer/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	corsAllowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		validator:          validators.NewRequestValidator(),
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		logger:             logger,
	}
}
