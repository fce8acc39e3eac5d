// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-depth-capture/internal/adapter"
	"github.com/MKhiriev/go-depth-capture/internal/camera"
	"github.com/MKhiriev/go-depth-capture/internal/codec"
	"github.com/MKhiriev/go-depth-capture/internal/logger"
	"github.com/MKhiriev/go-depth-capture/internal/validators"
	"github.com/MKhiriev/go-depth-capture/models"
)

// maxBoundaryAttempts bounds how many fresh boundaries are tried when one
// happens to occur inside the image bytes.
const maxBoundaryAttempts = 3

type batchController struct {
	session   camera.CaptureSession
	uploader  adapter.UploadClient
	endpoint  string
	validator validators.Validator
	logger    *logger.Logger

	newBoundary func() string
	now         func() time.Time

	mu        sync.Mutex
	buffer    *ImageBuffer
	state     models.BatchState
	result    *models.ResultImage
	err       error
	paused    bool
	capturing bool
	// uploading outlives Reset: it is cleared only when the upload returns.
	uploading bool
	// epoch is bumped by Reset; blocking calls compare it on completion.
	epoch uint64

	subscribers map[uint64]chan models.BatchSnapshot
	nextSubID   uint64
}

// NewBatchController creates a controller in the idle state that captures from
// session and uploads full batches to endpoint through uploader.
func NewBatchController(session camera.CaptureSession, uploader adapter.UploadClient, endpoint string, logger *logger.Logger) BatchController {
	return &batchController{
		session:     session,
		uploader:    uploader,
		endpoint:    endpoint,
		validator:   validators.NewImageValidator(0),
		logger:      logger,
		newBoundary: codec.NewBoundary,
		now:         time.Now,
		buffer:      NewImageBuffer(),
		state:       models.StateIdle,
		subscribers: make(map[uint64]chan models.BatchSnapshot),
	}
}

// Capture implements [BatchController].
func (c *batchController) Capture(ctx context.Context) error {
	c.mu.Lock()
	switch {
	case c.buffer.Full():
		c.mu.Unlock()
		return ErrBatchFull
	case !c.state.SessionLive():
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("%w: capture in %s", ErrInvalidState, state)
	case c.capturing:
		c.mu.Unlock()
		return ErrCaptureInProgress
	}
	c.capturing = true
	epoch := c.epoch
	c.mu.Unlock()

	data, err := c.session.RequestPhoto(ctx)
	photo := models.CapturedImage{Data: data, CapturedAt: c.now()}
	if err == nil {
		err = c.validator.Validate(ctx, photo)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if epoch != c.epoch {
		c.logger.Debug().Msg("capture completed after reset, dropping photo")
		return ErrDiscarded
	}
	c.capturing = false

	if err != nil {
		c.err = fmt.Errorf("%w: %w", ErrCaptureFailed, err)
		c.logger.Err(err).Int("count", c.buffer.Len()).Msg("capture failed")
		c.publishLocked()
		return c.err
	}

	if err = c.buffer.Append(photo); err != nil {
		return err
	}
	c.err = nil
	c.state = models.StateCapturing
	if c.buffer.Full() {
		c.state = models.StateFull
		c.pauseLocked()
	}

	c.logger.Debug().
		Int("count", c.buffer.Len()).
		Int("size", len(data)).
		Str("state", c.state.String()).
		Msg("photo captured")
	c.publishLocked()
	return nil
}

// RemoveLast implements [BatchController].
func (c *batchController) RemoveLast() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == models.StateSending {
		return ErrAlreadySending
	}
	if _, ok := c.buffer.RemoveLast(); !ok {
		return nil
	}

	c.result = nil
	c.err = nil
	c.resumeLocked()
	c.state = models.StateCapturing
	if c.buffer.Len() == 0 {
		c.state = models.StateIdle
	}

	c.logger.Debug().Int("count", c.buffer.Len()).Str("state", c.state.String()).Msg("last photo removed")
	c.publishLocked()
	return nil
}

// Reset implements [BatchController].
func (c *batchController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	c.buffer.Clear()
	c.capturing = false
	c.result = nil
	c.err = nil
	c.resumeLocked()
	c.state = models.StateIdle

	c.logger.Debug().Uint64("epoch", c.epoch).Msg("batch reset")
	c.publishLocked()
}

// Send implements [BatchController].
func (c *batchController) Send(ctx context.Context) error {
	c.mu.Lock()
	if c.state == models.StateSending || c.uploading {
		c.mu.Unlock()
		return ErrAlreadySending
	}
	if c.buffer.Len() != models.BatchCapacity {
		count := c.buffer.Len()
		c.mu.Unlock()
		return fmt.Errorf("%w: %d of %d images", ErrBatchIncomplete, count, models.BatchCapacity)
	}
	images := c.buffer.Images()
	epoch := c.epoch
	c.uploading = true
	c.state = models.StateSending
	c.result = nil
	c.err = nil
	c.publishLocked()
	c.mu.Unlock()

	c.logger.Info().Str("endpoint", c.endpoint).Msg("sending batch")
	result, err := c.upload(ctx, images)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.uploading = false
	if epoch != c.epoch {
		c.logger.Debug().Msg("upload completed after reset, dropping outcome")
		return ErrDiscarded
	}

	if err != nil {
		c.state = models.StateFailed
		c.err = err
		c.logger.Err(err).Msg("batch upload failed")
		c.publishLocked()
		return err
	}

	c.state = models.StateResulted
	c.result = &result
	c.logger.Info().
		Str("format", result.Format).
		Int("width", result.Width()).
		Int("height", result.Height()).
		Msg("batch upload succeeded")
	c.publishLocked()
	return nil
}

func (c *batchController) upload(ctx context.Context, images []models.CapturedImage) (models.ResultImage, error) {
	var (
		req models.UploadRequest
		err error
	)
	for range maxBoundaryAttempts {
		req, err = codec.BuildRequest(images, c.newBoundary())
		if !errors.Is(err, codec.ErrBoundaryCollision) {
			break
		}
	}
	if err != nil {
		return models.ResultImage{}, fmt.Errorf("encode batch: %w", err)
	}
	if err = c.validator.Validate(ctx, req); err != nil {
		return models.ResultImage{}, fmt.Errorf("encode batch: %w", err)
	}

	body, err := codec.EncodeRequest(req)
	if err != nil {
		return models.ResultImage{}, fmt.Errorf("encode batch: %w", err)
	}

	return c.uploader.Send(ctx, c.endpoint, body, req.Boundary)
}

// Snapshot implements [BatchController].
func (c *batchController) Snapshot() models.BatchSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Subscribe implements [BatchController].
func (c *batchController) Subscribe() (<-chan models.BatchSnapshot, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSubID
	c.nextSubID++
	ch := make(chan models.BatchSnapshot, 1)
	ch <- c.snapshotLocked()
	c.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if sub, ok := c.subscribers[id]; ok {
				delete(c.subscribers, id)
				close(sub)
			}
		})
	}
}

// Close implements [BatchController].
func (c *batchController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, ch := range c.subscribers {
		delete(c.subscribers, id)
		close(ch)
	}
}

func (c *batchController) snapshotLocked() models.BatchSnapshot {
	return models.BatchSnapshot{
		State:         c.state,
		Count:         c.buffer.Len(),
		Result:        c.result,
		Err:           c.err,
		SessionPaused: c.paused,
	}
}

// publishLocked replaces any unread snapshot so subscribers never block the
// controller.
func (c *batchController) publishLocked() {
	snap := c.snapshotLocked()
	for _, ch := range c.subscribers {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

func (c *batchController) pauseLocked() {
	if c.paused {
		return
	}
	c.session.Pause()
	c.paused = true
}

func (c *batchController) resumeLocked() {
	if !c.paused {
		return
	}
	c.session.Resume()
	c.paused = false
}
