package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

// WriteJSON encodes data and writes it with the given status. When data
// cannot be encoded nothing but a bare 500 reaches the client, so a
// handler never leaks a half-written body.
//
// Example usage:
//
//	utils.WriteJSON(w, blogs, http.StatusOK)
//	utils.WriteJSON(w, models.ErrorResponse{Error: "unknown endpoint"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding response body: %w", err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// WriteText writes s as a plain UTF-8 body.
func WriteText(w http.ResponseWriter, s string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentTypeText)
	w.WriteHeader(statusCode)

	return w.Write([]byte(s))
}

// NoContent answers 204 without a body or content type.
func NoContent(w http.ResponseWriter) {
	w.Header().Del("Content-Type")
	w.WriteHeader(http.StatusNoContent)
}
