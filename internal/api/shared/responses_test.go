package shared_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deanw-dev/accounts-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()

	shared.RespondWithJSON(rec, req, http.StatusCreated, map[string]string{"message": "ok"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"ok"}`, rec.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	t.Run("without trace ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
		rec := httptest.NewRecorder()

		shared.RespondWithError(rec, req, http.StatusNotFound, "User not found")

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp shared.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "User not found", resp.Error)
		assert.Empty(t, resp.TraceID)
	})

	t.Run("with trace ID from context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
		req = req.WithContext(shared.SetTraceID(req.Context()))
		rec := httptest.NewRecorder()

		shared.RespondWithError(rec, req, http.StatusBadRequest, "Invalid CPF format")

		var resp shared.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid CPF format", resp.Error)
		assert.Len(t, resp.TraceID, shared.TraceIDLength*2)
	})
}

func TestTraceIDRoundTrip(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, shared.GetTraceID(req.Context()))

	ctx := shared.SetTraceID(req.Context())
	traceID := shared.GetTraceID(ctx)
	assert.Len(t, traceID, shared.TraceIDLength*2)

	// A second call produces a fresh ID.
	other := shared.GetTraceID(shared.SetTraceID(req.Context()))
	assert.NotEqual(t, traceID, other)
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/users", jsonBody(`{"name":"Dean Winchester"}`))
		var p payload
		require.NoError(t, shared.DecodeJSON(req, &p))
		assert.Equal(t, "Dean Winchester", p.Name)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/users", jsonBody(`{broken`))
		var p payload
		assert.Error(t, shared.DecodeJSON(req, &p))
	})
}
