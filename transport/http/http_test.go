package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTP_Health(t *testing.T) {
	tests := []struct {
		name       string
		state      ServerState
		wantStatus int
	}{
		{name: "ready", state: ServerStateReady, wantStatus: http.StatusOK},
		{name: "grace period", state: ServerStateInGracePeriod, wantStatus: http.StatusServiceUnavailable},
		{name: "cleanup period", state: ServerStateInCleanupPeriod, wantStatus: http.StatusServiceUnavailable},
		{name: "not started", state: 0, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HTTP{}
			h.setState(tt.state)

			rec := httptest.NewRecorder()
			h.health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.state, h.State())
		})
	}
}
