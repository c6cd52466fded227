// Package bind decodes an HTTP request body into a struct.
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/foodmart/config"
)

// ErrEmptyBody is returned when the request carries no body at all.
// The login endpoint reports it separately from malformed JSON.
var ErrEmptyBody = errors.New("request body is empty")

// ErrInvalidJSON is returned when the body is present but not valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON in request body")

// maxBodyBytes returns the configured request body size limit (default 4 MB).
func maxBodyBytes() int64 {
	n, err := strconv.ParseInt(config.Get("MAX_BODY_BYTES", "4194304"), 10, 64)
	if err != nil || n <= 0 {
		return 4 << 20 // 4 MB
	}
	return n
}

// JSON decodes r.Body as JSON into dest.
// The body is capped at MAX_BODY_BYTES to prevent memory exhaustion.
// Returns ErrEmptyBody for an absent/blank body and ErrInvalidJSON for
// anything that does not parse.
func JSON(r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes())

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return ErrInvalidJSON
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return ErrEmptyBody
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return ErrInvalidJSON
	}

	return nil
}
