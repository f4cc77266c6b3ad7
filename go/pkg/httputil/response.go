// Package httputil provides shared HTTP response helpers and middleware for the mini server.
package httputil

import (
	"encoding/json"
	"net/http"
)

// Content types written by the helpers.
const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"
)

// JSONResponse writes a JSON response with the given status code.
func JSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RawJSONResponse writes already-encoded JSON bytes as they are.
func RawJSONResponse(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	w.Write(body)
}

// TextResponse writes a plain-text response.
func TextResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", ContentTypeText)
	w.WriteHeader(status)
	w.Write([]byte(message))
}

// ErrorResponse writes a JSON error response.
func ErrorResponse(w http.ResponseWriter, status int, message string) {
	JSONResponse(w, status, map[string]string{"error": message})
}
