package apigw

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventgram/photoshare/internal/model"
)

func TestOKEnvelope(t *testing.T) {
	resp := OK(http.StatusOK, map[string]string{"photoId": "p1"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])

	var env model.Envelope
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &env))
	assert.True(t, env.Success)
	assert.Nil(t, env.Error)
}

func TestErrorEnvelope(t *testing.T) {
	resp := Error(http.StatusBadRequest, model.ErrMissingImage, "image is required", nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var env model.Envelope
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &env))
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "MISSING_IMAGE", env.Error.Code)
}

func TestErrorEnvelopeDetails(t *testing.T) {
	resp := Error(http.StatusBadRequest, model.ErrMissingRequiredItems,
		"required checklist items missing", []string{"consent"})

	var env model.Envelope
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &env))
	require.NotNil(t, env.Error)
	assert.Equal(t, []interface{}{"consent"}, env.Error.Details)
}

func TestPreflight(t *testing.T) {
	resp := Preflight()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "GET,POST,PATCH,DELETE,OPTIONS", resp.Headers["Access-Control-Allow-Methods"])
	assert.Empty(t, resp.Body)
}

func TestMethodNotAllowed(t *testing.T) {
	resp := MethodNotAllowed("PUT")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	var env model.Envelope
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &env))
	assert.Equal(t, "METHOD_NOT_ALLOWED", env.Error.Code)
}
