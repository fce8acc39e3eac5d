// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-depth-capture/internal/adapter"
	"github.com/MKhiriev/go-depth-capture/internal/camera"
	"github.com/MKhiriev/go-depth-capture/internal/codec"
	"github.com/MKhiriev/go-depth-capture/internal/logger"
	"github.com/MKhiriev/go-depth-capture/internal/mock"
	"github.com/MKhiriev/go-depth-capture/internal/validators"
	"github.com/MKhiriev/go-depth-capture/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testEndpoint = "http://depth.test/api/depth"
	testBoundary = "test-boundary"
)

var batchSizes = []int{10, 20, 30, 40, 50}

// newTestController returns the concrete controller with deterministic
// boundary and clock, plus its mocked collaborators.
func newTestController(t *testing.T, ctrl *gomock.Controller) (*batchController, *mock.MockCaptureSession, *mock.MockUploadClient) {
	t.Helper()
	session := mock.NewMockCaptureSession(ctrl)
	uploader := mock.NewMockUploadClient(ctrl)

	c := NewBatchController(session, uploader, testEndpoint, logger.Nop()).(*batchController)
	c.newBoundary = func() string { return testBoundary }
	c.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return c, session, uploader
}

// photo returns size bytes that start with a JPEG marker.
func photo(size int) []byte {
	data := bytes.Repeat([]byte{byte(size)}, size)
	copy(data, []byte{0xFF, 0xD8, 0xFF})
	return data
}

// fill captures one photo per size, expecting the session to pause when the
// batch becomes full.
func fill(t *testing.T, c *batchController, session *mock.MockCaptureSession, sizes ...int) {
	t.Helper()
	for _, size := range sizes {
		session.EXPECT().RequestPhoto(gomock.Any()).Return(photo(size), nil)
	}
	if c.buffer.Len()+len(sizes) == models.BatchCapacity {
		session.EXPECT().Pause()
	}
	for _, size := range sizes {
		require.NoError(t, c.Capture(context.Background()), "capture of %d bytes", size)
	}
}

func testResult() models.ResultImage {
	return models.ResultImage{
		Image:  image.NewGray(image.Rect(0, 0, 4, 3)),
		Raw:    []byte("raw"),
		Format: "jpeg",
	}
}

// ── Capture ──────────────────────────────────────────────────────────────────

func TestBatchController_Capture_FiveImagesBecomeFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, session, _ := newTestController(t, ctrl)
	assert.Equal(t, models.StateIdle, c.Snapshot().State)

	for i, size := range batchSizes[:4] {
		fill(t, c, session, size)
		snap := c.Snapshot()
		assert.Equal(t, models.StateCapturing, snap.State)
		assert.Equal(t, i+1, snap.Count)
		assert.False(t, snap.SessionPaused)
	}

	fill(t, c, session, batchSizes[4])
	snap := c.Snapshot()
	assert.Equal(t, models.StateFull, snap.State)
	assert.Equal(t, 5, snap.Count)
	assert.True(t, snap.SessionPaused)

	images := c.buffer.Images()
	for i, size := range batchSizes {
		assert.Len(t, images[i].Data, size)
	}
}

func TestBatchController_Capture_AtCapacityFailsUntilRemoveLast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, session, _ := newTestController(t, ctrl)
	fill(t, c, session, batchSizes...)

	// no RequestPhoto expected
	assert.ErrorIs(t, c.Capture(context.Background()), ErrBatchFull)
	assert.ErrorIs(t, c.Capture(context.Background()), ErrBatchFull)
	assert.Equal(t, 5, c.Snapshot().Count)

	session.EXPECT().Resume()
	require.NoError(t, c.RemoveLast())

	fill(t, c, session, 60)
	assert.Equal(t, models.StateFull, c.Snapshot().State)
}

func TestBatchController_Capture_FailureIsSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, session, _ := newTestController(t, ctrl)
	fill(t, c, session, 10, 20)

	cause := camera.ErrSessionPaused
	session.EXPECT().RequestPhoto(gomock.Any()).Return(nil, cause)

	err := c.Capture(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCaptureFailed)
	assert.ErrorIs(t, err, cause)

	snap := c.Snapshot()
	assert.Equal(t, models.StateCapturing, snap.State)
	assert.Equal(t, 2, snap.Count)
	assert.ErrorIs(t, snap.Err, ErrCaptureFailed)

	fill(t, c, session, 30)
	snap = c.Snapshot()
	assert.Equal(t, 3, snap.Count)
	assert.NoError(t, snap.Err)
}

func TestBatchController_Capture_RejectsNonJPEG(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, session, _ := newTestController(t, ctrl)
	session.EXPECT().RequestPhoto(gomock.Any()).Return([]byte("\x89PNG\r\n\x1a\n"), nil)

	err := c.Capture(context.Background())
	assert.ErrorIs(t, err, ErrCaptureFailed)
	assert.ErrorIs(t, err, validators.ErrNotJPEG)
	assert.Equal(t, 0, c.Snapshot().Count)
	assert.Equal(t, models.StateIdle, c.Snapshot().State)
}

func TestBatchController_Capture_InProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, session, _ := newTestController(t, ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	session.EXPECT().RequestPhoto(gomock.Any()).DoAndReturn(func(context.Context) ([]byte, error) {
		close(started)
		<-release
		return photo(10), nil
	})

	done := make(chan error, 1)
	go func() { done <- c.Capture(context.Background()) }()
	<-started

	assert.ErrorIs(t, c.Capture(context.Background()), ErrCaptureInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, c.Snapshot().Count)
}

func TestBatchController_Capture_DiscardedByReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, session, _ := newTestController(t, ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	session.EXPECT().RequestPhoto(gomock.Any()).DoAndReturn(func(context.Context) ([]byte, error) {
		close(started)
		<-release
		return photo(10), nil
	})

	done := make(chan error, 1)
	go func() { done <- c.Capture(context.Background()) }()
	<-started

	c.Reset()
	close(release)

	assert.ErrorIs(t, <-done, ErrDiscarded)
	snap := c.Snapshot()
	assert.Equal(t, models.StateIdle, snap.State)
	assert.Equal(t, 0, snap.Count)

	// a fresh capture is allowed right away
	fill(t, c, session, 20)
	assert.Equal(t, 1, c.Snapshot().Count)
}

// ── RemoveLast ───────────────────────────────────────────────────────────────

func TestBatchController_RemoveLast_EmptyIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, _ := newTestController(t, ctrl)

	require.NoError(t, c.RemoveLast())
	snap := c.Snapshot()
	assert.Equal(t, models.StateIdle, snap.State)
	assert.Equal(t, 0, snap.Count)
}

func TestBatchController_RemoveLast_FromFullResumesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, session, _ := newTestController(t, ctrl)
	fill(t, c, session, batchSizes...)

	session.EXPECT().Resume()
	require.NoError(t, c.RemoveLast())

	snap := c.Snapshot()
	assert.Equal(t, models.StateCapturing, snap.State)
	assert.Equal(t, 4, snap.Count)
	assert.False(t, snap.SessionPaused)

	images := c.buffer.Images()
	assert.Len(t, images[3].Data, 40)
}

func TestBatchController_RemoveLast_DownToIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, session, _ := newTestController(t, ctrl)
	fill(t, c, session, 10, 20)

	require.NoError(t, c.RemoveLast())
	assert.Equal(t, models.StateCapturing, c.Snapshot().State)
	require.NoError(t, c.RemoveLast())
	assert.Equal(t, models.StateIdle, c.Snapshot().State)
	require.NoError(t, c.RemoveLast())
	assert.Equal(t, 0, c.Snapshot().Count)
}

func TestBatchController_RemoveLast_FromResultedClearsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, session, uploader := newTestController(t, ctrl)
	fill(t, c, session, batchSizes...)
	uploader.EXPECT().Send(gomock.Any(), testEndpoint, gomock.Any(), testBoundary).Return(testResult(), nil)
	require.NoError(t, c.Send(context.Background()))

	session.EXPECT().Resume()
	require.NoError(t, c.RemoveLast())

	snap := c.Snapshot()
	assert.Equal(t, models.StateCapturing, snap.State)
	assert.Equal(t, 4, snap.Count)
	assert.Nil(t, snap.Result)
}

// ── Send ─────────────────────────────────────────────────────────────────────

func TestBatchController_Send_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, session, uploader := newTestController(t, ctrl)
	fill(t, c, session, batchSizes...)

	want, err := codec.Encode(c.buffer.Images(), testBoundary)
	require.NoError(t, err)

	uploader.EXPECT().
		Send(gomock.Any(), testEndpoint, gomock.Any(), testBoundary).
		DoAndReturn(func(_ context.Context, _ string, body []byte, _ string) (models.ResultImage, error) {
			assert.Equal(t, want, body)
			assert.Equal(t, models.StateSending, c.Snapshot().State)
			return testResult(), nil
		})

	require.NoError(t, c.Send(context.Background()))

	snap := c.Snapshot()
	assert.Equal(t, models.StateResulted, snap.State)
	require.NotNil(t, snap.Result)
	assert.Equal(t, 4, snap.Result.Width())
	assert.Equal(t, 5, snap.Count)
	assert.NoError(t, snap.Err)
}

func TestBatchController_Send_FailureKeepsBatchAndRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, session, uploader := newTestController(t, ctrl)
	fill(t, c, session, batchSizes...)

	uploadErr := fmt.Errorf("%w: status 500", adapter.ErrInvalidResponse)
	uploader.EXPECT().Send(gomock.Any(), testEndpoint, gomock.Any(), testBoundary).Return(models.ResultImage{}, uploadErr)

	err := c.Send(context.Background())
	assert.ErrorIs(t, err, adapter.ErrInvalidResponse)

	snap := c.Snapshot()
	assert.Equal(t, models.StateFailed, snap.State)
	assert.Equal(t, 5, snap.Count)
	assert.ErrorIs(t, snap.Err, adapter.ErrInvalidResponse)
	assert.Nil(t, snap.Result)

	uploader.EXPECT().Send(gomock.Any(), testEndpoint, gomock.Any(), testBoundary).Return(testResult(), nil)
	require.NoError(t, c.Send(context.Background()))
	assert.Equal(t, models.StateResulted, c.Snapshot().State)
}

func TestBatchController_Send_IncompleteMakesNoNetworkCall(t *testing.T) {
	for n := 0; n < models.BatchCapacity; n++ {
		t.Run(fmt.Sprintf("%d images", n), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// uploader has no expectations: any Send call fails the test
			c, session, _ := newTestController(t, ctrl)
			fill(t, c, session, batchSizes[:n]...)

			err := c.Send(context.Background())
			assert.ErrorIs(t, err, ErrBatchIncomplete)
			assert.Equal(t, n, c.Snapshot().Count)
		})
	}
}

func TestBatchController_Send_WhileSending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, session, uploader := newTestController(t, ctrl)
	fill(t, c, session, batchSizes...)

	started := make(chan struct{})
	release := make(chan struct{})
	uploader.EXPECT().
		Send(gomock.Any(), testEndpoint, gomock.Any(), testBoundary).
		DoAndReturn(func(context.Context, string, []byte, string) (models.ResultImage, error) {
			close(started)
			<-release
			return testResult(), nil
		})

	done := make(chan error, 1)
	go func() { done <- c.Send(context.Background()) }()
	<-started

	assert.ErrorIs(t, c.Send(context.Background()), ErrAlreadySending)
	assert.ErrorIs(t, c.RemoveLast(), ErrAlreadySending)
	assert.ErrorIs(t, c.Capture(context.Background()), ErrBatchFull)
	assert.Equal(t, models.StateSending, c.Snapshot().State)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, models.StateResulted, c.Snapshot().State)
}

func TestBatchController_Send_DiscardedByReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, session, uploader := newTestController(t, ctrl)
	fill(t, c, session, batchSizes...)

	started := make(chan struct{})
	release := make(chan struct{})
	uploader.EXPECT().
		Send(gomock.Any(), testEndpoint, gomock.Any(), testBoundary).
		DoAndReturn(func(context.Context, string, []byte, string) (models.ResultImage, error) {
			close(started)
			<-release
			return testResult(), nil
		})

	done := make(chan error, 1)
	go func() { done <- c.Send(context.Background()) }()
	<-started

	session.EXPECT().Resume()
	c.Reset()
	close(release)

	assert.ErrorIs(t, <-done, ErrDiscarded)
	snap := c.Snapshot()
	assert.Equal(t, models.StateIdle, snap.State)
	assert.Nil(t, snap.Result)
	assert.Equal(t, 0, snap.Count)
}

func TestBatchController_Send_SingleUploadAcrossReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, session, uploader := newTestController(t, ctrl)
	fill(t, c, session, batchSizes...)

	var (
		mu       sync.Mutex
		inFlight int
		peak     int
	)
	enter := func() {
		mu.Lock()
		defer mu.Unlock()
		inFlight++
		peak = max(peak, inFlight)
	}
	leave := func() {
		mu.Lock()
		defer mu.Unlock()
		inFlight--
	}

	started := make(chan struct{})
	release := make(chan struct{})
	uploader.EXPECT().
		Send(gomock.Any(), testEndpoint, gomock.Any(), testBoundary).
		DoAndReturn(func(context.Context, string, []byte, string) (models.ResultImage, error) {
			enter()
			defer leave()
			close(started)
			<-release
			return testResult(), nil
		})

	done := make(chan error, 1)
	go func() { done <- c.Send(context.Background()) }()
	<-started

	session.EXPECT().Resume()
	c.Reset()
	fill(t, c, session, batchSizes...)
	assert.Equal(t, models.StateFull, c.Snapshot().State)

	// the first upload still owns the transport
	assert.ErrorIs(t, c.Send(context.Background()), ErrAlreadySending)
	assert.Equal(t, models.StateFull, c.Snapshot().State)

	close(release)
	assert.ErrorIs(t, <-done, ErrDiscarded)
	assert.Equal(t, models.StateFull, c.Snapshot().State)

	uploader.EXPECT().
		Send(gomock.Any(), testEndpoint, gomock.Any(), testBoundary).
		DoAndReturn(func(context.Context, string, []byte, string) (models.ResultImage, error) {
			enter()
			defer leave()
			return testResult(), nil
		})
	require.NoError(t, c.Send(context.Background()))
	assert.Equal(t, models.StateResulted, c.Snapshot().State)
	assert.Equal(t, 1, peak)
}

func TestBatchController_Send_RetriesBoundaryCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, session, uploader := newTestController(t, ctrl)
	boundaries := []string{"clash", "fresh"}
	c.newBoundary = func() string {
		b := boundaries[0]
		boundaries = boundaries[1:]
		return b
	}

	session.EXPECT().RequestPhoto(gomock.Any()).Return(append(photo(3), "xx--clashxx"...), nil)
	session.EXPECT().RequestPhoto(gomock.Any()).Return(photo(10), nil).Times(4)
	session.EXPECT().Pause()
	for range models.BatchCapacity {
		require.NoError(t, c.Capture(context.Background()))
	}

	uploader.EXPECT().Send(gomock.Any(), testEndpoint, gomock.Any(), "fresh").Return(testResult(), nil)
	require.NoError(t, c.Send(context.Background()))
}

// ── Reset ────────────────────────────────────────────────────────────────────

func TestBatchController_Reset_FromEveryState(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T, c *batchController, session *mock.MockCaptureSession, uploader *mock.MockUploadClient)
	}{
		{
			name:    "idle",
			prepare: func(*testing.T, *batchController, *mock.MockCaptureSession, *mock.MockUploadClient) {},
		},
		{
			name: "capturing",
			prepare: func(t *testing.T, c *batchController, session *mock.MockCaptureSession, _ *mock.MockUploadClient) {
				fill(t, c, session, 10, 20, 30)
			},
		},
		{
			name: "full",
			prepare: func(t *testing.T, c *batchController, session *mock.MockCaptureSession, _ *mock.MockUploadClient) {
				fill(t, c, session, batchSizes...)
				session.EXPECT().Resume()
			},
		},
		{
			name: "resulted",
			prepare: func(t *testing.T, c *batchController, session *mock.MockCaptureSession, uploader *mock.MockUploadClient) {
				fill(t, c, session, batchSizes...)
				uploader.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(testResult(), nil)
				require.NoError(t, c.Send(context.Background()))
				session.EXPECT().Resume()
			},
		},
		{
			name: "failed",
			prepare: func(t *testing.T, c *batchController, session *mock.MockCaptureSession, uploader *mock.MockUploadClient) {
				fill(t, c, session, batchSizes...)
				uploader.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.ResultImage{}, adapter.ErrInvalidData)
				require.Error(t, c.Send(context.Background()))
				session.EXPECT().Resume()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			c, session, uploader := newTestController(t, ctrl)
			tt.prepare(t, c, session, uploader)

			c.Reset()

			snap := c.Snapshot()
			assert.Equal(t, models.StateIdle, snap.State)
			assert.Equal(t, 0, snap.Count)
			assert.Nil(t, snap.Result)
			assert.NoError(t, snap.Err)
			assert.False(t, snap.SessionPaused)
		})
	}
}

// ── Subscribe ────────────────────────────────────────────────────────────────

func TestBatchController_Subscribe_ReceivesSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, session, _ := newTestController(t, ctrl)
	updates, unsubscribe := c.Subscribe()
	defer unsubscribe()

	initial := <-updates
	assert.Equal(t, models.StateIdle, initial.State)

	fill(t, c, session, 10)
	snap := <-updates
	assert.Equal(t, models.StateCapturing, snap.State)
	assert.Equal(t, 1, snap.Count)
}

func TestBatchController_Subscribe_NewestWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, session, _ := newTestController(t, ctrl)
	updates, unsubscribe := c.Subscribe()
	defer unsubscribe()

	fill(t, c, session, 10, 20, 30)

	snap := <-updates
	assert.Equal(t, 3, snap.Count)
	select {
	case extra := <-updates:
		t.Fatalf("unexpected queued snapshot: %+v", extra)
	default:
	}
}

func TestBatchController_Subscribe_UnsubscribeAndClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, _ := newTestController(t, ctrl)

	first, unsubscribe := c.Subscribe()
	second, _ := c.Subscribe()
	<-first
	<-second

	unsubscribe()
	unsubscribe()
	_, ok := <-first
	assert.False(t, ok)

	c.Close()
	_, ok = <-second
	assert.False(t, ok)

	// publishing without subscribers must not panic
	assert.NotPanics(t, c.Reset)
}

// ── Concurrency ──────────────────────────────────────────────────────────────

func TestBatchController_ConcurrentCommandsKeepInvariant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, session, _ := newTestController(t, ctrl)
	session.EXPECT().RequestPhoto(gomock.Any()).Return(photo(8), nil).AnyTimes()
	session.EXPECT().Pause().AnyTimes()
	session.EXPECT().Resume().AnyTimes()

	updates, unsubscribe := c.Subscribe()
	defer unsubscribe()

	var wg sync.WaitGroup
	for worker := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				switch (worker + i) % 4 {
				case 0, 1:
					err := c.Capture(context.Background())
					if err != nil && !errors.Is(err, ErrBatchFull) && !errors.Is(err, ErrCaptureInProgress) && !errors.Is(err, ErrDiscarded) {
						t.Errorf("unexpected capture error: %v", err)
					}
				case 2:
					_ = c.RemoveLast()
				case 3:
					if i%10 == 0 {
						c.Reset()
					}
				}
			}
		}()
	}

	stop := make(chan struct{})
	observed := make(chan struct{})
	go func() {
		defer close(observed)
		for {
			select {
			case snap := <-updates:
				if snap.Count < 0 || snap.Count > models.BatchCapacity {
					t.Errorf("count out of range: %d", snap.Count)
				}
			case <-stop:
				return
			}
		}
	}()

	wg.Wait()
	close(stop)
	<-observed

	snap := c.Snapshot()
	assert.GreaterOrEqual(t, snap.Count, 0)
	assert.LessOrEqual(t, snap.Count, models.BatchCapacity)
	assert.Equal(t, snap.Count == models.BatchCapacity, snap.State == models.StateFull)
}
