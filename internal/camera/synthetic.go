package camera

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// SyntheticSession renders test frames: a diagonal gradient that drifts with
// every frame, stamped with the frame number.
type SyntheticSession struct {
	lifecycle

	width   int
	height  int
	quality int
	frame   int
}

// NewSyntheticSession returns a live session rendering width×height JPEG
// frames at the given quality. Out-of-range values are clamped.
func NewSyntheticSession(width, height, quality int) *SyntheticSession {
	if width <= 0 {
		width = 640
	}
	if height <= 0 {
		height = 480
	}
	if quality < 1 || quality > 100 {
		quality = 85
	}
	return &SyntheticSession{width: width, height: height, quality: quality}
}

// RequestPhoto implements [CaptureSession].
func (s *SyntheticSession) RequestPhoto(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if err := s.checkLocked(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.frame++
	frame := s.frame
	s.mu.Unlock()

	img := s.render(frame)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(s.quality)); err != nil {
		return nil, fmt.Errorf("encode synthetic frame %d: %w", frame, err)
	}
	return buf.Bytes(), nil
}

func (s *SyntheticSession) render(frame int) *image.NRGBA {
	shift := frame * 16
	img := imaging.New(s.width, s.height, color.Black)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			v := uint8((x + y + shift) % 256)
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: 255 - v, B: uint8((x * 3) % 256), A: 255})
		}
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(10, 20),
	}
	d.DrawString(fmt.Sprintf("frame %d", frame))

	return img
}
