package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRejectWhileDraining(t *testing.T) {
	h := &HTTP{}
	next := h.rejectWhileDraining(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name  string
		state ServerState
		path  string
		want  int
	}{
		{name: "ready health", state: ServerStateReady, path: "/health", want: http.StatusOK},
		{name: "grace health", state: ServerStateInGracePeriod, path: "/health", want: http.StatusServiceUnavailable},
		{name: "grace traffic", state: ServerStateInGracePeriod, path: "/api/bookings", want: http.StatusOK},
		{name: "cleanup traffic", state: ServerStateInCleanupPeriod, path: "/api/bookings", want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h.state.Store(int32(tt.state))

			rec := httptest.NewRecorder()
			next.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
