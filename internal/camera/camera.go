package camera

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-depth-capture/internal/config"
	"github.com/MKhiriev/go-depth-capture/internal/logger"
)

// New builds the capture session selected by cfg.Source.
func New(cfg config.Camera, log *logger.Logger) (CaptureSession, error) {
	switch cfg.Source {
	case config.CameraSourceSynthetic, "":
		log.Info().Int("width", cfg.Width).Int("height", cfg.Height).Msg("using synthetic capture source")
		return NewSyntheticSession(cfg.Width, cfg.Height, cfg.Quality), nil
	case config.CameraSourceDirectory:
		session, err := NewDirectorySession(cfg.Dir)
		if err != nil {
			return nil, fmt.Errorf("open directory source %q: %w", cfg.Dir, err)
		}
		log.Info().Str("dir", cfg.Dir).Int("frames", len(session.files)).Msg("using directory capture source")
		return session, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}

// lifecycle tracks the paused and closed flags shared by every source.
type lifecycle struct {
	mu     sync.Mutex
	paused bool
	closed bool
}

func (l *lifecycle) Pause() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paused = true
}

func (l *lifecycle) Resume() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paused = false
}

func (l *lifecycle) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	return nil
}

// Paused reports whether the session is currently paused.
func (l *lifecycle) Paused() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.paused
}

// checkLocked must be called with mu held.
func (l *lifecycle) checkLocked() error {
	if l.closed {
		return ErrSessionClosed
	}
	if l.paused {
		return ErrSessionPaused
	}
	return nil
}
