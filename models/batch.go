// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BatchCapacity is the fixed number of photos collected before an upload.
const BatchCapacity = 5

// BatchState is the tag of the capture-batch state machine.
type BatchState int

const (
	// StateIdle means the buffer is empty and the capture session is live.
	StateIdle BatchState = iota
	// StateCapturing means the buffer holds 1..4 images and the session is live.
	StateCapturing
	// StateFull means the buffer holds exactly [BatchCapacity] images and the
	// session is paused.
	StateFull
	// StateSending means an upload is in flight; the session stays paused.
	StateSending
	// StateResulted means the last upload returned a decoded image.
	StateResulted
	// StateFailed means the last upload failed. The buffer is preserved so the
	// batch can be sent again.
	StateFailed
)

var batchStateNames = map[BatchState]string{
	StateIdle:      "idle",
	StateCapturing: "capturing",
	StateFull:      "full",
	StateSending:   "sending",
	StateResulted:  "resulted",
	StateFailed:    "failed",
}

// String returns the lower-case tag of the state.
func (s BatchState) String() string {
	if name, ok := batchStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// SessionLive reports whether the capture session is expected to be running
// in this state.
func (s BatchState) SessionLive() bool {
	return s == StateIdle || s == StateCapturing
}

// BatchSnapshot is the read-only view of the batch controller published to UI
// collaborators. It is a value copy; mutating it has no effect on the
// controller.
type BatchSnapshot struct {
	// State is the current state tag.
	State BatchState
	// Count is the number of buffered images, 0..BatchCapacity.
	Count int
	// Result is set only in [StateResulted].
	Result *ResultImage
	// Err holds the upload error in [StateFailed], or the last capture error
	// while capturing. Nil otherwise.
	Err error
	// SessionPaused mirrors whether the controller has paused the camera.
	SessionPaused bool
}
