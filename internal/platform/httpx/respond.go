// Package httpx provides HTTP request/response utilities around the API's
// response envelope.
package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response body: payload, human-readable message and
// a success flag. Data is omitted on errors.
type Envelope struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// JSON sends a raw JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// OK sends a success envelope with the given payload and message.
func OK(w http.ResponseWriter, status int, data any, message string) {
	JSON(w, status, Envelope{Data: data, Message: message, Success: true})
}

// Fail sends a failure envelope with the given message.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Message: message, Success: false})
}

// DecodeJSON decodes a JSON request body into the target struct.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
