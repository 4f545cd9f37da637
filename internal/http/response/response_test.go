package response

import (
	"encoding/json/v2"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/giftwiseapp/giftwise-server/internal/errors"
	"github.com/giftwiseapp/giftwise-server/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONWritesPayloadAsIs(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusOK, map[string]any{"cached": false}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["cached"])
}

func TestErrorBodyShape(t *testing.T) {
	rec := httptest.NewRecorder()

	BadRequest(rec, "profileId is required", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "profileId is required", body.Error)
}

func TestHandleErrorDomainCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", errors.InvalidInput("neither description nor profile id"), http.StatusBadRequest},
		{"not found", errors.NotFound("profile not found"), http.StatusNotFound},
		{"inference down", errors.InferenceUnavailable("model call failed", nil), http.StatusInternalServerError},
		{"malformed output", errors.MalformedModelOutput("bad payload", nil), http.StatusInternalServerError},
		{"catalog down", errors.CatalogUnavailable("query failed", nil), http.StatusInternalServerError},
		{"store not found", store.ErrNotFound, http.StatusNotFound},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestHandleErrorDoesNotLeakCause(t *testing.T) {
	rec := httptest.NewRecorder()

	cause := fmt.Errorf("dial tcp 10.0.0.5:443: connect: connection refused")
	HandleError(rec, errors.InferenceUnavailable("inference call failed", cause), nil)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "inference call failed", body.Error)
	assert.NotContains(t, body.Error, "10.0.0.5")
}
