// Package respond provides shared JSON response utilities for API handlers.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/amalbasheer/Game-analytics/internal/dashboard"
)

// ErrorResponse is the standard error shape for all API errors.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Detail  string `json:"detail,omitempty"`
	} `json:"error"`
}

// PageResponse is the standard shape for dashboard section responses: the
// tabular data plus whatever banners the render produced. Failures degrade
// to an empty table with warning/error banners rather than an error status.
type PageResponse struct {
	Data    dashboard.Table    `json:"data"`
	Banners []dashboard.Banner `json:"banners"`
}

// WritePage sends a section result with its banners.
func WritePage(w http.ResponseWriter, t dashboard.Table, banners []dashboard.Banner) {
	if banners == nil {
		banners = []dashboard.Banner{}
	}
	WriteJSONObject(w, http.StatusOK, PageResponse{Data: t, Banners: banners})
}

// WriteError sends a structured JSON error response.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// WriteJSONObject marshals a Go value to JSON and writes it.
func WriteJSONObject(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
