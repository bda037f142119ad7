// Package grpc implements the gRPC transport of the vault server. It serves
// the standard health checking protocol; the serving status follows the
// readiness of the vault state store.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// VaultServiceName is the health service name reported for the vault.
const VaultServiceName = "vault.Vault"

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Every service starts as NOT_SERVING
// until [Handler.UpdateStatus] probes the vault.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the handler's services to srv.
func (h *Handler) Register(srv *grpc.Server) {
	healthpb.RegisterHealthServer(srv, h.health)
}

// UpdateStatus reads the vault fee as a readiness probe and sets the health
// status accordingly.
func (h *Handler) UpdateStatus(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	st := healthpb.HealthCheckResponse_SERVING
	if _, err := h.services.VaultService.Fee(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("vault is not ready")
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(st)
	return st
}

// Shutdown marks every service NOT_SERVING and rejects later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(st healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", st)
	h.health.SetServingStatus(VaultServiceName, st)
}

// LoggingInterceptor writes one log entry per unary call.
func (h *Handler) LoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	event := h.logger.Debug()
	if err != nil {
		event = h.logger.Warn().Err(err)
	}
	event.
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
