package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/metrics"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			TokenSignKey:      "key",
			TokenIssuer:       "issuer",
			TokenDuration:     time.Hour,
			Version:           "1.2.3",
			Administrator:     models.FormatAddress(admin),
			InitialFee:        42,
			TrialPeriod:       testTrialPeriod,
			PaidPeriod:        testPaidPeriod,
			ResubscribePolicy: string(models.ResubscribeReject),
		},
	}
}

func TestNewServices_InitializesVault(t *testing.T) {
	ctx := context.Background()
	storages := &store.Storages{StateStore: store.NewMemoryStateStore()}

	services, err := NewServices(ctx, storages, &recordingPublisher{}, metrics.New(), testConfig(), logger.Nop())
	require.NoError(t, err)

	ownership, err := services.VaultService.Ownership(ctx)
	require.NoError(t, err)
	assert.Equal(t, admin, ownership.Owner)

	fee, err := services.VaultService.Fee(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Amount(42), fee)

	assert.Equal(t, "1.2.3", services.AppInfoService.GetAppVersion(ctx))
	assert.NotNil(t, services.AuthService)
}

func TestNewServices_KeepsPersistedOwner(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStateStore()
	_, err := st.Init(ctx, alice, 1)
	require.NoError(t, err)

	services, err := NewServices(ctx, &store.Storages{StateStore: st}, &recordingPublisher{}, metrics.New(), testConfig(), logger.Nop())
	require.NoError(t, err)

	ownership, err := services.VaultService.Ownership(ctx)
	require.NoError(t, err)
	assert.Equal(t, alice, ownership.Owner)
}

func TestNewServices_InvalidConfig(t *testing.T) {
	ctx := context.Background()

	cfg := testConfig()
	cfg.App.Administrator = "not-an-address"
	_, err := NewServices(ctx, &store.Storages{StateStore: store.NewMemoryStateStore()}, &recordingPublisher{}, metrics.New(), cfg, logger.Nop())
	require.ErrorIs(t, err, models.ErrMalformedAddress)

	cfg = testConfig()
	cfg.App.Version = ""
	_, err = NewServices(ctx, &store.Storages{StateStore: store.NewMemoryStateStore()}, &recordingPublisher{}, metrics.New(), cfg, logger.Nop())
	require.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
