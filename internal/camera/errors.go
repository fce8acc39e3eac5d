package camera

import "errors"

var (
	ErrSessionPaused = errors.New("capture session is paused")
	ErrSessionClosed = errors.New("capture session is closed")
	ErrNoFrames      = errors.New("no jpeg frames available")
	ErrUnknownSource = errors.New("unknown capture source")

	// ErrPermissionDenied is returned when the frame source refuses access.
	ErrPermissionDenied = errors.New("camera permission denied")
)
