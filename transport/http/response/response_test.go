package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impressions/shared/failure"
	"impressions/transport/http/response"
)

func TestWithSavedID(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithSavedID(rec, http.StatusCreated, "abc")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"id":"abc"}}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "failure keeps message", err: failure.NotFound("inquiry not found"), wantCode: http.StatusNotFound, wantMsg: "inquiry not found"},
		{name: "authentication failure", err: failure.AuthenticationFailure, wantCode: http.StatusUnauthorized, wantMsg: "invalid username or password"},
		{name: "plain error is masked", err: errors.New("pq: connection refused"), wantCode: http.StatusInternalServerError, wantMsg: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantMsg, body["error"])
		})
	}
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "REQUEST LIMIT EXCEEDED")
}
