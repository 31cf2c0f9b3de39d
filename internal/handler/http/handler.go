package http

import (
	"github.com/MKhiriev/go-microblog/internal/config"
	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/internal/service"
)

type Handler struct {
	services *service.Services

	// allowedOrigin is the only origin granted cross-origin access.
	allowedOrigin string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		allowedOrigin: cfg.AllowedOrigin,
		logger:        logger,
	}
}
