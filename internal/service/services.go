package service

import "github.com/MKhiriev/go-depth-capture/internal/logger"

// Services groups the services used by the depth stub server.
type Services struct {
	DepthService DepthService
}

func NewServices(logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	return &Services{
		DepthService: NewDepthService(logger),
	}
}
