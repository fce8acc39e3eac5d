package http

import (
	"github.com/MKhiriev/go-depth-capture/internal/config"
	"github.com/MKhiriev/go-depth-capture/internal/logger"
	"github.com/MKhiriev/go-depth-capture/internal/service"
)

type Handler struct {
	services       *service.Services
	maxUploadBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	maxUploadBytes := cfg.MaxUploadBytes
	if maxUploadBytes <= 0 {
		maxUploadBytes = config.DefaultMaxUploadBytes
	}

	logger.Info().Int64("max_upload_bytes", maxUploadBytes).Msg("http handler created")
	return &Handler{
		services:       services,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}
