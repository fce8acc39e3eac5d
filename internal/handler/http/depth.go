// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-depth-capture/internal/app"
	"github.com/MKhiriev/go-depth-capture/internal/logger"
	"github.com/MKhiriev/go-depth-capture/internal/service"
	"github.com/MKhiriev/go-depth-capture/internal/utils"
)

const (
	imagePartPrefix  = "image"
	depthContentType = "image/jpeg"
)

// estimateDepth reads the "image1".."imageN" parts of a multipart upload in
// index order and answers with the JPEG preview computed from them.
func (h *Handler) estimateDepth(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	frames, err := readFrames(r)
	if err != nil {
		log.Err(err).Msg("rejecting depth upload")
		writeError(w, err)
		return
	}

	preview, err := h.services.DepthService.Estimate(r.Context(), frames)
	if err != nil {
		log.Err(err).Int("frames", len(frames)).Msg("depth estimation failed")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteImage(w, depthContentType, preview); err != nil {
		log.Err(err).Msg("writing depth preview")
	}
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, map[string]string{"status": app.MsgStatusOK}, http.StatusOK)
}

func readFrames(r *http.Request) ([][]byte, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMultipart, err)
	}

	byIndex := make(map[int][]byte)
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, classifyReadError(err)
		}

		index, ok := frameIndex(part.FormName())
		if !ok {
			_ = part.Close()
			continue
		}
		if _, dup := byIndex[index]; dup {
			return nil, fmt.Errorf("%w: duplicate part %q", ErrMalformedMultipart, part.FormName())
		}
		if len(byIndex) == service.MaxDepthFrames {
			return nil, fmt.Errorf("%w: more than %d image parts", service.ErrTooManyFramesProvided, service.MaxDepthFrames)
		}

		data, err := io.ReadAll(part)
		if err != nil {
			return nil, classifyReadError(err)
		}
		byIndex[index] = data
	}

	if len(byIndex) == 0 {
		return nil, ErrNoImageParts
	}

	indexes := make([]int, 0, len(byIndex))
	for index := range byIndex {
		indexes = append(indexes, index)
	}
	slices.Sort(indexes)

	frames := make([][]byte, 0, len(indexes))
	for _, index := range indexes {
		frames = append(frames, byIndex[index])
	}
	return frames, nil
}

// frameIndex parses "image{i}" with i >= 1.
func frameIndex(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, imagePartPrefix)
	if !ok {
		return 0, false
	}
	index, err := strconv.Atoi(rest)
	if err != nil || index < 1 {
		return 0, false
	}
	return index, true
}

func classifyReadError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) || strings.Contains(err.Error(), "request body too large") {
		return fmt.Errorf("%w: %w", ErrBodyTooLarge, err)
	}
	return fmt.Errorf("%w: %w", ErrMalformedMultipart, err)
}
