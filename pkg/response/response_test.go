package response_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/foodmart/pkg/apperrors"
	"github.com/shashiranjanraj/foodmart/pkg/response"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestOKMergesPayloadIntoEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	response.OK(rec, response.M{"message": "hi", "count": 3})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "hi", body["message"])
	assert.Equal(t, float64(3), body["count"])
}

func TestFail(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Fail(rec, 404, "Route /nope not found")

	assert.Equal(t, 404, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Route /nope not found", body["error"])
}

func TestErrorMapsDomainErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Error(rec, apperrors.Conflict("User with this email already exists"))

	assert.Equal(t, 409, rec.Code)
	assert.Equal(t, "User with this email already exists", decode(t, rec)["error"])
}

func TestErrorHidesUnknownErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Error(rec, errors.New("connection reset by peer"))

	assert.Equal(t, 500, rec.Code)
	assert.Equal(t, "Internal server error", decode(t, rec)["error"])
}

func TestUnauthorized(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Unauthorized(rec)

	assert.Equal(t, 401, rec.Code)
	assert.Equal(t, "Unauthorized", decode(t, rec)["error"])
}
