package store

import (
	"github.com/MKhiriev/go-depth-capture/internal/config"
	"github.com/MKhiriev/go-depth-capture/internal/logger"
)

// ClientStorages groups the client-side storages handed to the service layer.
type ClientStorages struct {
	// ResultStorage saves depth maps into the configured output directory.
	ResultStorage ResultStorage
}

// NewClientStorages initialises the client storage layer from cfg.
func NewClientStorages(cfg config.Storage, logger *logger.Logger) *ClientStorages {
	logger.Info().Str("output_dir", cfg.OutputDir).Msg("creating new storages...")

	return &ClientStorages{
		ResultStorage: NewFileResultStorage(cfg.OutputDir, logger),
	}
}
