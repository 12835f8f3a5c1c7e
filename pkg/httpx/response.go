package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// ErrorResponse is the error body shape for every endpoint: a single
// human-readable detail string.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// WriteError writes a JSON error response with the given status and detail.
func WriteError(w http.ResponseWriter, code int, detail string) {
	WriteJSON(w, code, ErrorResponse{Detail: detail})
}
