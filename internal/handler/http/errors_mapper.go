package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-depth-capture/internal/app"
	"github.com/MKhiriev/go-depth-capture/internal/service"
	"github.com/MKhiriev/go-depth-capture/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrMalformedMultipart: http.StatusBadRequest,
	ErrNoImageParts:       http.StatusBadRequest,
	ErrBodyTooLarge:       http.StatusRequestEntityTooLarge,

	service.ErrNoFramesProvided:      http.StatusBadRequest,
	service.ErrTooManyFramesProvided: http.StatusBadRequest,
	service.ErrUndecodableFrame:      http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Server-side failures
// are reported with a generic message.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		err = errors.New(app.MsgInternalServerError)
	}
	utils.WriteError(w, err, status)
}
