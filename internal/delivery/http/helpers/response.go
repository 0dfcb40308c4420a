package helpers

import (
	"encoding/json"
	"net/http"
)

// APIResponse is the standardized envelope for all JSON API responses.
// On success: Success is true and Data is set. On error: Success is false,
// Data is an empty list, and Message carries the reason.
// swagger:model APIResponse
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
	Meta    any    `json:"meta,omitempty"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode,
// and encodes a successful APIResponse with the given data.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, APIResponse{Success: true, Data: data})
}

// WriteJSONMessage writes a successful APIResponse carrying a message and an
// empty data list.
func WriteJSONMessage(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, APIResponse{Success: true, Data: []any{}, Message: message})
}

// WriteJSONPage writes a successful APIResponse with data plus pagination meta.
func WriteJSONPage(w http.ResponseWriter, statusCode int, data any, meta PaginationMeta) {
	writeJSON(w, statusCode, APIResponse{Success: true, Data: data, Meta: meta})
}

// WriteJSONError writes a failed APIResponse with an empty data list and the
// given message.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, APIResponse{Success: false, Data: []any{}, Message: message})
}

func writeJSON(w http.ResponseWriter, statusCode int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}
