package camera

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// DirectorySession replays JPEG files from a directory in name order and
// starts over after the last one.
type DirectorySession struct {
	lifecycle

	files []string
	next  int
}

// NewDirectorySession lists *.jpg / *.jpeg files in dir. A directory without
// such files fails with [ErrNoFrames].
func NewDirectorySession(dir string) (*DirectorySession, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read frames directory: %w", permissionError(err))
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".jpg", ".jpeg":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	if len(files) == 0 {
		return nil, ErrNoFrames
	}

	return &DirectorySession{files: files}, nil
}

// RequestPhoto implements [CaptureSession]. Files whose content is not JPEG
// are skipped; if no file in a full cycle is JPEG, [ErrNoFrames] is returned.
func (s *DirectorySession) RequestPhoto(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkLocked(); err != nil {
		return nil, err
	}

	for range s.files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := s.files[s.next]
		s.next = (s.next + 1) % len(s.files)

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read frame %s: %w", filepath.Base(path), permissionError(err))
		}
		if http.DetectContentType(data) == "image/jpeg" {
			return data, nil
		}
	}

	return nil, ErrNoFrames
}

// permissionError tags access refusals with [ErrPermissionDenied].
func permissionError(err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}
	return err
}
