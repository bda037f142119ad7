package server

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	myGRPC "github.com/MKhiriev/go-pass-vault/internal/handler/grpc"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler
	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer(grpc.UnaryInterceptor(handler.LoggingInterceptor))
	handler.Register(srv)

	return &grpcServer{
		handler: handler,
		server:  srv,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

// RunServer listens on the configured address, probes the vault for the
// health status and serves until the server is stopped.
func (g *grpcServer) RunServer(ctx context.Context) error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC server Listen: %w", err)
	}

	st := g.handler.UpdateStatus(ctx)
	g.logger.Info().Str("address", g.address).Str("health", st.String()).Msg("gRPC server listening")

	if err = g.server.Serve(lis); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// Shutdown reports NOT_SERVING and stops the server, waiting for pending
// calls unless ctx expires first.
func (g *grpcServer) Shutdown(ctx context.Context) {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.server.Stop()
	}
}
