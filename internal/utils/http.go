package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// ErrorBody is the JSON document written by [WriteError].
type ErrorBody struct {
	Error string `json:"error"`
}

// WriteJSON serializes data to JSON and writes it with statusCode and an
// "application/json" content type. If marshaling fails it responds with 500
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes err as an [ErrorBody] with statusCode.
func WriteError(w http.ResponseWriter, err error, statusCode int) {
	msg := http.StatusText(statusCode)
	if err != nil {
		msg = err.Error()
	}
	_, _ = WriteJSON(w, ErrorBody{Error: msg}, statusCode)
}

// WriteImage writes an encoded image body with status 200.
func WriteImage(w http.ResponseWriter, contentType string, data []byte) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	return w.Write(data)
}
