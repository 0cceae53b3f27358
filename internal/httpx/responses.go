package httpx

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// JSON writes v as the response body. Success bodies are written as is,
// not wrapped in an envelope.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, statusCode int, code, message string) {
	JSON(w, statusCode, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

func ValidationFailed(w http.ResponseWriter, details []ErrorDetail) {
	JSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
		Code:    "validation_failed",
		Message: "Invalid request body",
		Details: details,
	}})
}
