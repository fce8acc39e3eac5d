// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings such as logging.
	App App `envPrefix:"APP_"`

	// Adapter holds the upload endpoint and outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Camera selects and tunes the capture session source.
	Camera Camera `envPrefix:"CAMERA_"`

	// Storage holds where saved depth maps are written.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen settings for the local depth stub server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the terminal client writes its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the outbound upload settings.
type Adapter struct {
	// Endpoint is the absolute URL the batch is POSTed to
	// (e.g. "http://localhost:8080/api/depth").
	// Env: ADAPTER_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// RequestTimeout bounds a single upload round trip. Expiry is reported
	// as an invalid response.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Camera selects the capture session implementation.
type Camera struct {
	// Source is "synthetic" or "directory".
	// Env: CAMERA_SOURCE
	Source string `env:"SOURCE"`

	// Dir is the directory replayed by the "directory" source.
	// Env: CAMERA_DIR
	Dir string `env:"DIR"`

	// Width and Height size frames rendered by the "synthetic" source.
	// Env: CAMERA_WIDTH, CAMERA_HEIGHT
	Width  int `env:"WIDTH"`
	Height int `env:"HEIGHT"`

	// Quality is the JPEG quality (1..100) of synthetic frames.
	// Env: CAMERA_QUALITY
	Quality int `env:"QUALITY"`
}

// Storage holds result persistence settings.
type Storage struct {
	// OutputDir is the directory saved depth maps are written to.
	// Env: STORAGE_OUTPUT_DIR
	OutputDir string `env:"OUTPUT_DIR"`
}

// Server holds network and timeout settings for the stub server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading and writing a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadBytes caps the multipart body size accepted by the stub.
	// Env: SERVER_MAX_UPLOAD_BYTES
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES"`
}

// Default values applied before any other source.
const (
	DefaultEndpoint       = "http://localhost:8080/api/depth"
	DefaultRequestTimeout = 30 * time.Second
	DefaultCameraSource   = "synthetic"
	DefaultCameraWidth    = 640
	DefaultCameraHeight   = 480
	DefaultCameraQuality  = 85
	DefaultOutputDir      = "."
	DefaultServerAddress  = "localhost:8080"
	DefaultMaxUploadBytes = 64 << 20
	DefaultLogLevel       = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: DefaultLogLevel},
		Adapter: Adapter{
			Endpoint:       DefaultEndpoint,
			RequestTimeout: DefaultRequestTimeout,
		},
		Camera: Camera{
			Source:  DefaultCameraSource,
			Width:   DefaultCameraWidth,
			Height:  DefaultCameraHeight,
			Quality: DefaultCameraQuality,
		},
		Storage: Storage{OutputDir: DefaultOutputDir},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxUploadBytes: DefaultMaxUploadBytes,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources in
// the following priority order (last source wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
