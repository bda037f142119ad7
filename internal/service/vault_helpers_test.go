package service

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	testFee         models.Amount = 100
	testTrialPeriod               = 72 * time.Hour
	testPaidPeriod                = 720 * time.Hour
)

var (
	admin = models.Address{0xad, 0x01}
	alice = models.Address{0xa1, 0x02}
	bob   = models.Address{0xb0, 0x03}
	carol = models.Address{0xc0, 0x04}

	errInjected = errors.New("injected failure")
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.Event
	err    error
	// yield hands the scheduler to other goroutines before recording.
	yield bool
}

func (p *recordingPublisher) Publish(_ context.Context, events ...models.Event) error {
	if p.yield {
		runtime.Gosched()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) seqs() []int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	seqs := make([]int64, 0, len(p.events))
	for _, e := range p.events {
		seqs = append(seqs, e.Seq)
	}
	return seqs
}

func (p *recordingPublisher) kinds() []models.EventKind {
	p.mu.Lock()
	defer p.mu.Unlock()
	kinds := make([]models.EventKind, 0, len(p.events))
	for _, e := range p.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

// faultyStore fails the chosen transaction step after delegating the rest to
// a working store.
type faultyStore struct {
	store.StateStore
	failAppendEvent bool
	failInsert      bool
}

func (s *faultyStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx store.StateTx) error) error {
	return s.StateStore.RunInTx(ctx, func(ctx context.Context, tx store.StateTx) error {
		return fn(ctx, &faultyTx{StateTx: tx, store: s})
	})
}

type faultyTx struct {
	store.StateTx
	store *faultyStore
}

func (tx *faultyTx) AppendEvent(ctx context.Context, event models.Event) (models.Event, error) {
	if tx.store.failAppendEvent {
		return models.Event{}, errInjected
	}
	return tx.StateTx.AppendEvent(ctx, event)
}

func (tx *faultyTx) InsertRecord(ctx context.Context, caller models.Address, seq uint64, record models.StoredRecord, now time.Time) error {
	if tx.store.failInsert {
		return errInjected
	}
	return tx.StateTx.InsertRecord(ctx, caller, seq, record, now)
}

// ─────────────────────────────────────────────
// Builders
// ─────────────────────────────────────────────

type testVault struct {
	*vaultService
	state     store.StateStore
	clock     *fakeClock
	publisher *recordingPublisher
}

func newTestVault(t *testing.T, policy models.ResubscribePolicy) *testVault {
	t.Helper()
	return newTestVaultOn(t, store.NewMemoryStateStore(), policy)
}

func newTestVaultOn(t *testing.T, st store.StateStore, policy models.ResubscribePolicy) *testVault {
	t.Helper()

	_, err := st.Init(context.Background(), admin, testFee)
	require.NoError(t, err)

	clock := newFakeClock()
	publisher := &recordingPublisher{}
	v := newVaultService(st, VaultConfig{
		TrialPeriod:       testTrialPeriod,
		PaidPeriod:        testPaidPeriod,
		ResubscribePolicy: policy,
	}, clock, publisher, logger.Nop())

	return &testVault{vaultService: v, state: st, clock: clock, publisher: publisher}
}

func hexRecord(name, value string) models.Record {
	return models.Record{
		Name:        []byte(name),
		Description: []byte("description of " + name),
		Value:       []byte(value),
	}
}

// subscribeTrial grants caller the free trial.
func (v *testVault) subscribeTrial(t *testing.T, caller models.Address) {
	t.Helper()
	_, err := v.Subscribe(context.Background(), caller, 0)
	require.NoError(t, err)
}

func (v *testVault) mustStore(t *testing.T, caller models.Address, record models.Record) models.RecordID {
	t.Helper()
	id, err := v.StoreOrUpdate(context.Background(), caller, models.ZeroRecordID, record)
	require.NoError(t, err)
	return id
}
