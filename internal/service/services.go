package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/events"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/metrics"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type Services struct {
	VaultService   VaultService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices initializes the vault state on first start and wires the
// services used by the transport layer.
func NewServices(ctx context.Context, storages *store.Storages, publisher events.Publisher, m *metrics.Metrics, cfg config.StructuredConfig, log *logger.Logger) (*Services, error) {
	administrator, err := models.ParseAddress(cfg.App.Administrator)
	if err != nil {
		return nil, fmt.Errorf("error parsing administrator address: %w", err)
	}

	settings, err := storages.StateStore.Init(ctx, administrator, cfg.App.InitialFee)
	if err != nil {
		return nil, fmt.Errorf("error initializing vault state: %w", err)
	}
	if !settings.Owner.Equals(administrator) {
		log.Info().
			Str("owner", models.FormatAddress(settings.Owner)).
			Msg("vault keeps its persisted administrator")
	}

	appInfoService, err := NewAppInfoService(cfg.App, log)
	if err != nil {
		return nil, err
	}

	vault := NewVaultService(storages.StateStore, VaultConfig{
		TrialPeriod:       cfg.App.TrialPeriod,
		PaidPeriod:        cfg.App.PaidPeriod,
		ResubscribePolicy: models.ResubscribePolicy(cfg.App.ResubscribePolicy),
	}, SystemClock(), publisher, log, WithPublishFailureHook(m.EventsPublishFailures.Inc))

	return &Services{
		VaultService:   NewVaultMetricsService(m).Wrap(vault),
		AuthService:    NewAuthService(cfg.App, log),
		AppInfoService: appInfoService,
	}, nil
}
