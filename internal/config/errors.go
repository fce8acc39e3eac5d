package config

import "errors"

// Validation errors returned when a configuration view is incomplete or
// invalid.
var (
	// ErrInvalidAdapterConfigs indicates a missing or non-http(s) endpoint, or
	// a non-positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidCameraConfigs indicates an unknown source, a directory source
	// without a directory, or out-of-range frame settings.
	ErrInvalidCameraConfigs = errors.New("invalid camera configuration")
	// ErrInvalidStorageConfigs indicates an empty output directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address, timeout, or
	// body limit for the stub server.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
