// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-depth-capture/internal/logger"
	"github.com/MKhiriev/go-depth-capture/internal/utils"
	"github.com/MKhiriev/go-depth-capture/models"
	"github.com/disintegration/imaging"
)

// resultFilePrefix and resultFileExt form names like "depth_<uuid>.png".
const (
	resultFilePrefix = "depth_"
	resultFileExt    = ".png"
)

// fileResultStorage is the default implementation of [ResultStorage]. It
// encodes every result as PNG regardless of the format the server replied
// with, so a saved depth map is lossless from the moment it is stored.
type fileResultStorage struct {
	dir    string
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewFileResultStorage constructs a [ResultStorage] writing into dir. The
// directory is created on first save.
func NewFileResultStorage(dir string, logger *logger.Logger) ResultStorage {
	if dir == "" {
		dir = "."
	}
	return &fileResultStorage{
		dir:    dir,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// Save implements [ResultStorage].
func (s *fileResultStorage) Save(ctx context.Context, result models.ResultImage) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if result.Image == nil {
		return "", ErrEmptyResult
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPreparingOutputDir, err)
	}

	path, err := filepath.Abs(filepath.Join(s.dir, resultFilePrefix+s.ids.Generate()+resultFileExt))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingResult, err)
	}

	if err = imaging.Save(result.Image, path); err != nil {
		s.logger.Err(err).Str("path", path).Msg("saving result image failed")
		return "", fmt.Errorf("%w: %w", ErrWritingResult, err)
	}

	s.logger.Info().
		Str("path", path).
		Int("width", result.Width()).
		Int("height", result.Height()).
		Msg("result image saved")
	return path, nil
}
