package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSON(w, http.StatusCreated, map[string]any{"mood": "calm", "energy": 7})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "calm", body["mood"])
	assert.Equal(t, float64(7), body["energy"])
}

func TestWriteJSON_NilBody(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSON(w, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestWriteJSONAs_ContentType(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSONAs(w, "application/problem+json", http.StatusBadRequest, struct {
		Title string `json:"title"`
	}{Title: "Bad Request"})

	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"title":"Bad Request"}`, w.Body.String())
}
