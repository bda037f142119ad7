package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/metrics"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Handler is the root HTTP transport handler. It holds the service layer,
// the metrics registry served on /metrics, and the per-caller limiter.
type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	limiter  *callerLimiter
	validate *validator.Validate
	cfg      config.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. m may be nil, in which case /metrics
// is not served and rate limiting is not counted.
func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  m,
		limiter:  newCallerLimiter(cfg.RateLimit, cfg.RateBurst),
		validate: validator.New(),
		cfg:      cfg,
		logger:   logger,
	}
}

// decodeJSON reads the request body into dst and runs the struct
// validation tags on it.
func (h *Handler) decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	if err := h.validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidArgument, err)
	}
	return nil
}

// callerFromRequest returns the caller stored by the auth middleware.
func callerFromRequest(r *http.Request) (models.Address, error) {
	caller, ok := utils.GetCallerFromContext(r.Context())
	if !ok {
		return models.NullAddress, ErrNoCallerInContext
	}
	return caller, nil
}
