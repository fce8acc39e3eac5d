package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-depth-capture/internal/config"
	"github.com/MKhiriev/go-depth-capture/internal/logger"
	"github.com/MKhiriev/go-depth-capture/internal/utils"
	"github.com/MKhiriev/go-depth-capture/models"
	"github.com/disintegration/imaging"

	// webp depth maps are decoded through the image registry
	_ "golang.org/x/image/webp"
)

type httpUploadClient struct {
	client *utils.HTTPClient
	now    func() time.Time

	logger *logger.Logger
}

// NewHTTPUploadClient constructs the resty-backed [UploadClient]. The request
// timeout comes from adapterCfg.RequestTimeout; a non-positive value falls
// back to [config.DefaultRequestTimeout].
func NewHTTPUploadClient(adapterCfg config.Adapter, logger *logger.Logger) UploadClient {
	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	return &httpUploadClient{
		client: utils.NewHTTPClient(timeout),
		now:    time.Now,
		logger: logger,
	}
}

// Send implements [UploadClient].
func (h *httpUploadClient) Send(ctx context.Context, endpointURL string, body []byte, boundary string) (models.ResultImage, error) {
	endpoint, err := parseEndpoint(endpointURL)
	if err != nil {
		return models.ResultImage{}, err
	}

	start := h.now()
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "multipart/form-data; boundary="+boundary).
		SetBody(body).
		Post(endpoint)
	if err != nil {
		h.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("upload transport failed")
		return models.ResultImage{}, fmt.Errorf("%w: upload request: %w", ErrInvalidResponse, err)
	}

	h.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode()).
		Int("request_size", len(body)).
		Int("response_size", len(resp.Body())).
		Dur("duration", h.now().Sub(start)).
		Msg("upload finished")

	if err = mapHTTPError(resp); err != nil {
		return models.ResultImage{}, err
	}

	return h.decode(resp.Body())
}

func (h *httpUploadClient) decode(raw []byte) (models.ResultImage, error) {
	if len(raw) == 0 {
		return models.ResultImage{}, fmt.Errorf("%w: empty body", ErrInvalidData)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return models.ResultImage{}, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return models.ResultImage{}, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	return models.ResultImage{
		Image:      img,
		Raw:        raw,
		Format:     format,
		ReceivedAt: h.now(),
	}, nil
}

func parseEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty endpoint", ErrInvalidURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return "", errors.Join(ErrInvalidURL, fmt.Errorf("endpoint %q has no host", raw))
	}

	return u.String(), nil
}
