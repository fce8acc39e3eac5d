// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/MKhiriev/go-depth-capture/internal/logger"
	"github.com/MKhiriev/go-depth-capture/models"
	"github.com/disintegration/imaging"
)

const (
	// MaxDepthFrames is the largest batch Estimate accepts.
	MaxDepthFrames = models.BatchCapacity

	depthJPEGQuality = 90
)

type depthService struct {
	logger *logger.Logger
}

// NewDepthService returns a [DepthService] computing the per-pixel mean
// absolute difference of every frame against the first one. A single frame
// yields its own grayscale rendition.
func NewDepthService(logger *logger.Logger) DepthService {
	return &depthService{logger: logger}
}

// Estimate implements [DepthService].
func (s *depthService) Estimate(ctx context.Context, frames [][]byte) ([]byte, error) {
	if len(frames) == 0 {
		return nil, ErrNoFramesProvided
	}
	if len(frames) > MaxDepthFrames {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyFramesProvided, len(frames), MaxDepthFrames)
	}

	grays := make([]*image.NRGBA, 0, len(frames))
	for i, frame := range frames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		img, err := imaging.Decode(bytes.NewReader(frame), imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("%w: image%d: %w", ErrUndecodableFrame, i+1, err)
		}

		gray := imaging.Grayscale(img)
		if i > 0 {
			base := grays[0].Bounds()
			if gray.Bounds().Dx() != base.Dx() || gray.Bounds().Dy() != base.Dy() {
				gray = imaging.Resize(gray, base.Dx(), base.Dy(), imaging.Linear)
			}
		}
		grays = append(grays, gray)
	}

	out := grays[0]
	if len(grays) > 1 {
		out = disparity(grays)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.JPEG, imaging.JPEGQuality(depthJPEGQuality)); err != nil {
		return nil, fmt.Errorf("encode depth preview: %w", err)
	}

	s.logger.Debug().
		Int("frames", len(frames)).
		Int("width", out.Bounds().Dx()).
		Int("height", out.Bounds().Dy()).
		Int("size", buf.Len()).
		Msg("depth preview computed")
	return buf.Bytes(), nil
}

// disparity averages |frame - first| over all frames after the first and
// stretches the result to the full 0..255 range. All images share the
// bounds of grays[0]; grayscale images carry the same value in R, G and B.
func disparity(grays []*image.NRGBA) *image.NRGBA {
	base := grays[0]
	w, h := base.Bounds().Dx(), base.Bounds().Dy()
	sums := make([]int, w*h)
	peak := 0

	for y := range h {
		for x := range w {
			i := y*base.Stride + x*4
			ref := int(base.Pix[i])
			sum := 0
			for _, g := range grays[1:] {
				sum += abs(int(g.Pix[y*g.Stride+x*4]) - ref)
			}
			sums[y*w+x] = sum
			peak = max(peak, sum)
		}
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for p, sum := range sums {
		v := uint8(0)
		if peak > 0 {
			v = uint8(sum * 255 / peak)
		}
		i := p * 4
		out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = v, v, v, 0xff
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
