package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-depth-capture/internal/logger"
	"github.com/MKhiriev/go-depth-capture/internal/store"
)

type resultService struct {
	controller BatchController
	storage    store.ResultStorage
	logger     *logger.Logger
}

// NewResultService creates a [ResultService] saving the result currently
// held by controller into storage.
func NewResultService(controller BatchController, storage store.ResultStorage, logger *logger.Logger) ResultService {
	return &resultService{
		controller: controller,
		storage:    storage,
		logger:     logger,
	}
}

// SaveLatest implements [ResultService].
func (s *resultService) SaveLatest(ctx context.Context) (string, error) {
	snap := s.controller.Snapshot()
	if snap.Result == nil {
		return "", ErrNoResult
	}

	path, err := s.storage.Save(ctx, *snap.Result)
	if err != nil {
		return "", fmt.Errorf("save result: %w", err)
	}

	s.logger.Info().Str("path", path).Msg("depth map saved")
	return path, nil
}
