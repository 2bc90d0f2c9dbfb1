package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcdraw/qcdraw/pkg/pipeline"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	return NewHandler(pipeline.NewRunner(nil, nil, nil), nil)
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, newTestHandler(t), http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["version"])
}

func TestRenderTypFormat(t *testing.T) {
	body := `{
		"circuit": {"operations": [
			{"op": "Hadamard", "Qubit": 0},
			{"op": "CNOT", "Control": 0, "Target": 1}
		]},
		"options": {"format": "typ"}
	}`
	rec := doRequest(t, newTestHandler(t), http.MethodPost, "/v1/render", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Body.String(), "quantum-circuit(")
	assert.Contains(t, rec.Body.String(), "$ H $")
}

func TestRenderMalformedJSON(t *testing.T) {
	rec := doRequest(t, newTestHandler(t), http.MethodPost, "/v1/render", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRenderMissingCircuit(t *testing.T) {
	rec := doRequest(t, newTestHandler(t), http.MethodPost, "/v1/render", `{"options": {}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_INPUT", resp.Code)
	assert.NotEmpty(t, resp.Error)
}

func TestRenderUnknownOperation(t *testing.T) {
	body := `{"circuit": {"operations": [{"op": "FluxCapacitor", "Qubit": 0}]}}`
	rec := doRequest(t, newTestHandler(t), http.MethodPost, "/v1/render", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "UNSUPPORTED_OPERATION", resp.Code)
}

func TestRenderEmptyCircuit(t *testing.T) {
	body := `{"circuit": {"operations": []}, "options": {"format": "typ"}}`
	rec := doRequest(t, newTestHandler(t), http.MethodPost, "/v1/render", body)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "EMPTY_PAGE", resp.Code)
}

func TestRenderInvalidOptions(t *testing.T) {
	body := `{"circuit": {"operations": [{"op": "Hadamard", "Qubit": 0}]}, "options": {"format": "pdf"}}`
	rec := doRequest(t, newTestHandler(t), http.MethodPost, "/v1/render", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
