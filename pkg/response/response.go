// Package response writes the uniform JSON envelope used by every endpoint:
// {"success":true, ...payload} on success, {"success":false,"error":msg}
// on failure.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/foodmart/pkg/apperrors"
)

// M is a response payload merged into the success envelope at the top level.
type M map[string]interface{}

func write(w http.ResponseWriter, status int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// OK sends a 200 success envelope with the payload fields at the top level.
func OK(w http.ResponseWriter, payload M) {
	JSON(w, http.StatusOK, payload)
}

// JSON sends a success envelope with an explicit status code.
func JSON(w http.ResponseWriter, status int, payload M) {
	body := map[string]interface{}{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	write(w, status, body)
}

// Fail sends an error envelope with the given status and message.
func Fail(w http.ResponseWriter, status int, message string) {
	write(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// Error maps a domain error to its envelope. Anything that is not an
// apperrors.Error becomes the generic 500.
func Error(w http.ResponseWriter, err error) {
	if appErr := apperrors.From(err); appErr != nil {
		Fail(w, appErr.Status, appErr.Message)
		return
	}
	internal := apperrors.Internal()
	Fail(w, internal.Status, internal.Message)
}

// Unauthorized sends the fixed 401 envelope used by protected routes.
func Unauthorized(w http.ResponseWriter) {
	Fail(w, http.StatusUnauthorized, "Unauthorized")
}
