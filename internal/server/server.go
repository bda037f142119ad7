package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/handler"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const shutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer creates a server for every handler present in handlers.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	errCh := make(chan error, 2)

	if s.httpServer != nil {
		go func() { errCh <- s.httpServer.RunServer() }()
	}
	if s.gRPCServer != nil {
		go func() { errCh <- s.gRPCServer.RunServer(ctx) }()
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
		if runErr != nil {
			s.logger.Error().Err(runErr).Msg("server stopped unexpectedly")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}

func (s *server) Shutdown(ctx context.Context) error {
	var err error

	// finish HTTP server
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(ctx)
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown(ctx)
	}

	return err
}
