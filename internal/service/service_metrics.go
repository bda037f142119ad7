package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/metrics"
	"github.com/MKhiriev/go-pass-vault/models"
)

const outcomeOK = "ok"

// VaultMetricsService counts every vault call by outcome, observes its
// latency and logs failures with the request-scoped logger.
type VaultMetricsService struct {
	inner   VaultService
	metrics *metrics.Metrics
}

func NewVaultMetricsService(m *metrics.Metrics) VaultServiceWrapper {
	return &VaultMetricsService{metrics: m}
}

func (s *VaultMetricsService) Wrap(inner VaultService) VaultService {
	s.inner = inner
	return s
}

func (s *VaultMetricsService) observe(ctx context.Context, operation string, started time.Time, err error) {
	outcome := outcomeOK
	if err != nil {
		kind := KindOf(err)
		outcome = string(kind)

		log := logger.FromContext(ctx)
		event := log.Warn()
		if kind == KindInternal {
			event = log.Error()
		}
		event.Err(err).Str("operation", operation).Str("kind", outcome).Msg("vault operation failed")
	}

	s.metrics.OperationsTotal.WithLabelValues(operation, outcome).Inc()
	s.metrics.OperationDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

func (s *VaultMetricsService) Ownership(ctx context.Context) (models.Ownership, error) {
	started := time.Now()
	ownership, err := s.inner.Ownership(ctx)
	s.observe(ctx, "ownership", started, err)
	return ownership, err
}

func (s *VaultMetricsService) RequestOwnershipTransfer(ctx context.Context, caller, newOwner models.Address) error {
	started := time.Now()
	err := s.inner.RequestOwnershipTransfer(ctx, caller, newOwner)
	s.observe(ctx, "request_ownership_transfer", started, err)
	return err
}

func (s *VaultMetricsService) AcceptOwnership(ctx context.Context, caller models.Address) error {
	started := time.Now()
	err := s.inner.AcceptOwnership(ctx, caller)
	s.observe(ctx, "accept_ownership", started, err)
	return err
}

func (s *VaultMetricsService) RenounceOwnership(ctx context.Context, caller models.Address) error {
	started := time.Now()
	err := s.inner.RenounceOwnership(ctx, caller)
	s.observe(ctx, "renounce_ownership", started, err)
	return err
}

func (s *VaultMetricsService) Fee(ctx context.Context) (models.Amount, error) {
	started := time.Now()
	fee, err := s.inner.Fee(ctx)
	s.observe(ctx, "fee", started, err)
	return fee, err
}

func (s *VaultMetricsService) ChangeFee(ctx context.Context, caller models.Address, fee models.Amount) error {
	started := time.Now()
	err := s.inner.ChangeFee(ctx, caller, fee)
	s.observe(ctx, "change_fee", started, err)
	return err
}

func (s *VaultMetricsService) FeePool(ctx context.Context, caller models.Address) (models.Amount, error) {
	started := time.Now()
	pool, err := s.inner.FeePool(ctx, caller)
	s.observe(ctx, "fee_pool", started, err)
	return pool, err
}

func (s *VaultMetricsService) Subscribe(ctx context.Context, caller models.Address, payment models.Amount) (models.Subscription, error) {
	started := time.Now()
	sub, err := s.inner.Subscribe(ctx, caller, payment)
	s.observe(ctx, "subscribe", started, err)
	return sub, err
}

func (s *VaultMetricsService) IsSubscribed(ctx context.Context, caller models.Address) (bool, error) {
	started := time.Now()
	ok, err := s.inner.IsSubscribed(ctx, caller)
	s.observe(ctx, "is_subscribed", started, err)
	return ok, err
}

func (s *VaultMetricsService) Subscription(ctx context.Context, caller models.Address) (models.Subscription, error) {
	started := time.Now()
	sub, err := s.inner.Subscription(ctx, caller)
	s.observe(ctx, "subscription", started, err)
	return sub, err
}

func (s *VaultMetricsService) StoreOrUpdate(ctx context.Context, caller models.Address, id models.RecordID, record models.Record) (models.RecordID, error) {
	started := time.Now()
	stored, err := s.inner.StoreOrUpdate(ctx, caller, id, record)
	s.observe(ctx, "store_or_update", started, err)
	return stored, err
}

func (s *VaultMetricsService) GetStoredPasswords(ctx context.Context, caller models.Address, pageIndex uint64, limit int) ([]models.StoredRecord, error) {
	started := time.Now()
	page, err := s.inner.GetStoredPasswords(ctx, caller, pageIndex, limit)
	s.observe(ctx, "get_stored_passwords", started, err)
	return page, err
}

func (s *VaultMetricsService) RemoveData(ctx context.Context, caller models.Address, id models.RecordID) error {
	started := time.Now()
	err := s.inner.RemoveData(ctx, caller, id)
	s.observe(ctx, "remove_data", started, err)
	return err
}

func (s *VaultMetricsService) Events(ctx context.Context, caller models.Address, fromSeq int64, limit int) ([]models.Event, error) {
	started := time.Now()
	list, err := s.inner.Events(ctx, caller, fromSeq, limit)
	s.observe(ctx, "events", started, err)
	return list, err
}
