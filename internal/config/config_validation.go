// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Camera source names accepted by [Camera.Source].
const (
	CameraSourceSynthetic = "synthetic"
	CameraSourceDirectory = "directory"
)

func (cfg *ClientConfig) validate() error {
	endpoint, err := url.Parse(strings.TrimSpace(cfg.Adapter.Endpoint))
	if err != nil || (endpoint.Scheme != "http" && endpoint.Scheme != "https") || endpoint.Host == "" {
		return fmt.Errorf("%w: endpoint %q", ErrInvalidAdapterConfigs, cfg.Adapter.Endpoint)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	switch cfg.Camera.Source {
	case CameraSourceSynthetic:
		if cfg.Camera.Width <= 0 || cfg.Camera.Height <= 0 {
			return fmt.Errorf("%w: frame size %dx%d", ErrInvalidCameraConfigs, cfg.Camera.Width, cfg.Camera.Height)
		}
		if cfg.Camera.Quality < 1 || cfg.Camera.Quality > 100 {
			return fmt.Errorf("%w: quality %d", ErrInvalidCameraConfigs, cfg.Camera.Quality)
		}
	case CameraSourceDirectory:
		if strings.TrimSpace(cfg.Camera.Dir) == "" {
			return fmt.Errorf("%w: directory source needs a directory", ErrInvalidCameraConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalidCameraConfigs, cfg.Camera.Source)
	}

	if strings.TrimSpace(cfg.Storage.OutputDir) == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.MaxUploadBytes <= 0 {
		return ErrInvalidServerConfigs
	}
	return nil
}
