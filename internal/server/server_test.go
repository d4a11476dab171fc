package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/pinvent/internal/config"
	"github.com/MKhiriev/pinvent/internal/handler"
	pinventhttp "github.com/MKhiriev/pinvent/internal/handler/http"
	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers() *handler.Handlers {
	return &handler.Handlers{
		HTTP: pinventhttp.NewHandler(&service.Services{}, nil, pinventhttp.Settings{}, logger.Nop()),
	}
}

func TestNewServer_HTTP(t *testing.T) {
	s, err := NewServer(newTestHandlers(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(newTestHandlers(), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_NoHandler(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewHTTPServer_ServesRouter(t *testing.T) {
	srv := newHTTPServer(newTestHandlers().HTTP.Init(), config.Server{HTTPAddress: ":8080"}, logger.Nop())
	rec := httptest.NewRecorder()

	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, ":8080", srv.server.Addr)
	assert.Equal(t, readHeaderTimeout, srv.server.ReadHeaderTimeout)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestRun_StopsWhenContextDone verifies that run shuts the server down and
// returns once its parent context is cancelled.
func TestRun_StopsWhenContextDone(t *testing.T) {
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancellation")
	}
}

func TestRun_NoServer(t *testing.T) {
	s := &server{logger: logger.Nop()}

	require.ErrorIs(t, s.run(context.Background()), errNoServerToRun)
}
