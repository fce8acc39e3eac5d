package service

import (
	"github.com/MKhiriev/go-depth-capture/internal/adapter"
	"github.com/MKhiriev/go-depth-capture/internal/camera"
	"github.com/MKhiriev/go-depth-capture/internal/config"
	"github.com/MKhiriev/go-depth-capture/internal/logger"
	"github.com/MKhiriev/go-depth-capture/internal/store"
)

// ClientServices groups the services used by the capture client UI.
type ClientServices struct {
	BatchController BatchController
	ResultService   ResultService
}

// NewClientServices wires the batch controller to the capture session and
// upload client, and the result service to the client storages.
func NewClientServices(
	session camera.CaptureSession,
	uploader adapter.UploadClient,
	storages *store.ClientStorages,
	adapterCfg config.Adapter,
	logger *logger.Logger,
) *ClientServices {
	controller := NewBatchController(session, uploader, adapterCfg.Endpoint, logger)

	return &ClientServices{
		BatchController: controller,
		ResultService:   NewResultService(controller, storages.ResultStorage, logger),
	}
}
