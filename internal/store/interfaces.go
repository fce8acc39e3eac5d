// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists computed depth maps on the local filesystem.
//
// The capture batch itself is never persisted; it lives in memory inside the
// batch controller. Only the decoded result of a successful upload can be
// saved on demand.
package store

import (
	"context"

	"github.com/MKhiriev/go-depth-capture/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/result_storage_mock.go -package=mock

// ResultStorage writes decoded result images to durable storage.
type ResultStorage interface {
	// Save writes result under a unique name and returns the absolute path
	// of the written file.
	Save(ctx context.Context, result models.ResultImage) (string, error)
}
