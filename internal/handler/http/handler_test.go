package http

import (
	"bytes"
	"testing"

	"github.com/MKhiriev/go-depth-capture/internal/config"
	"github.com/MKhiriev/go-depth-capture/internal/logger"
	"github.com/MKhiriev/go-depth-capture/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBufferLogger returns a logger writing JSON lines into buf.
func newBufferLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf)}
}

func TestNewHandler_DefaultUploadLimit(t *testing.T) {
	h := NewHandler(service.NewServices(logger.Nop()), config.Server{}, logger.Nop())
	require.NotNil(t, h)
	assert.Equal(t, int64(config.DefaultMaxUploadBytes), h.maxUploadBytes)
}

func TestNewHandler_CustomUploadLimit(t *testing.T) {
	h := NewHandler(nil, config.Server{MaxUploadBytes: 1024}, logger.Nop())
	assert.Equal(t, int64(1024), h.maxUploadBytes)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: ErrMalformedMultipart, want: 400},
		{err: ErrNoImageParts, want: 400},
		{err: ErrBodyTooLarge, want: 413},
		{err: service.ErrUndecodableFrame, want: 400},
		{err: service.ErrTooManyFramesProvided, want: 400},
		{err: assert.AnError, want: 500},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
