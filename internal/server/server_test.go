package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/handler"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/metrics"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()

	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultService(ctrl)
	vault.EXPECT().Fee(gomock.Any()).Return(models.Amount(0), nil).AnyTimes()

	handlers, err := handler.NewHandlers(&service.Services{VaultService: vault}, metrics.New(), cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}

	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())

	require.NoError(t, err)
	s := srv.(*server)
	assert.NotNil(t, s.httpServer)
	assert.NotNil(t, s.gRPCServer)
}

func TestNewServer_NoServers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.Run(context.Background()), errNoServersToRun)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_ListenFailure(t *testing.T) {
	cfg := config.Server{GRPCAddress: "127.0.0.1:-1"}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.Error(t, srv.Run(ctx))
}
