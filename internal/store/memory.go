package store

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

type memoryRecord struct {
	record    models.Record
	seq       uint64
	createdAt time.Time
	updatedAt time.Time
}

type memoryNamespace struct {
	counter uint64
	order   []models.RecordID
	records map[models.RecordID]memoryRecord
}

func newMemoryNamespace() *memoryNamespace {
	return &memoryNamespace{records: map[models.RecordID]memoryRecord{}}
}

func (n *memoryNamespace) clone() *memoryNamespace {
	return &memoryNamespace{
		counter: n.counter,
		order:   slices.Clone(n.order),
		records: maps.Clone(n.records),
	}
}

type memoryState struct {
	settings      *models.VaultSettings
	subscriptions map[models.Address]models.Subscription
	namespaces    map[models.Address]*memoryNamespace
	events        []models.Event
}

// memoryStateStore keeps the vault state in process memory. Transactions
// work on copy-on-write overlays that replace the committed state only when
// the transaction function succeeds.
type memoryStateStore struct {
	mu    sync.Mutex
	state memoryState
}

// NewMemoryStateStore returns an empty in-memory [StateStore].
func NewMemoryStateStore() StateStore {
	return &memoryStateStore{
		state: memoryState{
			subscriptions: map[models.Address]models.Subscription{},
			namespaces:    map[models.Address]*memoryNamespace{},
		},
	}
}

func (s *memoryStateStore) Init(_ context.Context, owner models.Address, fee models.Amount) (models.VaultSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.settings == nil {
		s.state.settings = &models.VaultSettings{
			Ownership: models.Ownership{Owner: owner},
			Fee:       fee,
		}
	}

	return *s.state.settings, nil
}

func (s *memoryStateStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx StateTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &memoryTx{
		base:          &s.state,
		subscriptions: map[models.Address]models.Subscription{},
		namespaces:    map[models.Address]*memoryNamespace{},
		events:        s.state.events[:len(s.state.events):len(s.state.events)],
	}
	if s.state.settings != nil {
		settings := *s.state.settings
		tx.settings = &settings
	}

	if err := fn(ctx, tx); err != nil {
		return err
	}

	tx.commit()
	return nil
}

func (s *memoryStateStore) Ping(context.Context) error {
	return nil
}

func (s *memoryStateStore) Close() error {
	return nil
}

type memoryTx struct {
	base *memoryState

	settings      *models.VaultSettings
	subscriptions map[models.Address]models.Subscription
	namespaces    map[models.Address]*memoryNamespace
	events        []models.Event
}

func (tx *memoryTx) commit() {
	tx.base.settings = tx.settings
	for caller, sub := range tx.subscriptions {
		tx.base.subscriptions[caller] = sub
	}
	for caller, ns := range tx.namespaces {
		tx.base.namespaces[caller] = ns
	}
	tx.base.events = tx.events
}

func (tx *memoryTx) Settings(context.Context) (models.VaultSettings, error) {
	if tx.settings == nil {
		return models.VaultSettings{}, ErrNotInitialized
	}
	return *tx.settings, nil
}

func (tx *memoryTx) SaveSettings(_ context.Context, settings models.VaultSettings) error {
	if tx.settings == nil {
		return ErrNotInitialized
	}
	tx.settings = &settings
	return nil
}

func (tx *memoryTx) Subscription(_ context.Context, caller models.Address) (models.Subscription, error) {
	if sub, ok := tx.subscriptions[caller]; ok {
		return sub, nil
	}
	if sub, ok := tx.base.subscriptions[caller]; ok {
		return sub, nil
	}
	return models.Subscription{Caller: caller}, nil
}

func (tx *memoryTx) SaveSubscription(_ context.Context, sub models.Subscription) error {
	tx.subscriptions[sub.Caller] = sub
	return nil
}

// namespace returns the caller's namespace for reading. When write is set the
// namespace is cloned into the transaction overlay first.
func (tx *memoryTx) namespace(caller models.Address, write bool) *memoryNamespace {
	if ns, ok := tx.namespaces[caller]; ok {
		return ns
	}

	ns, ok := tx.base.namespaces[caller]
	if !write {
		return ns
	}

	if ok {
		ns = ns.clone()
	} else {
		ns = newMemoryNamespace()
	}
	tx.namespaces[caller] = ns
	return ns
}

func (tx *memoryTx) NextRecordSeq(_ context.Context, caller models.Address) (uint64, error) {
	ns := tx.namespace(caller, true)
	ns.counter++
	return ns.counter, nil
}

func (tx *memoryTx) RecordExists(_ context.Context, caller models.Address, id models.RecordID) (bool, error) {
	ns := tx.namespace(caller, false)
	if ns == nil {
		return false, nil
	}
	_, ok := ns.records[id]
	return ok, nil
}

func (tx *memoryTx) InsertRecord(_ context.Context, caller models.Address, seq uint64, record models.StoredRecord, now time.Time) error {
	ns := tx.namespace(caller, true)
	if _, ok := ns.records[record.ID]; ok {
		return ErrRecordAlreadyExists
	}

	ns.records[record.ID] = memoryRecord{
		record:    record.Record.Clone(),
		seq:       seq,
		createdAt: now,
		updatedAt: now,
	}
	ns.order = append(ns.order, record.ID)
	return nil
}

func (tx *memoryTx) UpdateRecord(_ context.Context, caller models.Address, record models.StoredRecord, now time.Time) error {
	ns := tx.namespace(caller, true)
	stored, ok := ns.records[record.ID]
	if !ok {
		return ErrRecordNotFound
	}

	stored.record = record.Record.Clone()
	stored.updatedAt = now
	ns.records[record.ID] = stored
	return nil
}

func (tx *memoryTx) DeleteRecord(_ context.Context, caller models.Address, id models.RecordID) error {
	ns := tx.namespace(caller, true)
	if _, ok := ns.records[id]; !ok {
		return ErrRecordNotFound
	}

	delete(ns.records, id)
	ns.order = slices.DeleteFunc(ns.order, func(other models.RecordID) bool {
		return other.Equals(id)
	})
	return nil
}

func (tx *memoryTx) ListRecords(_ context.Context, caller models.Address, offset, limit uint64) ([]models.StoredRecord, error) {
	ns := tx.namespace(caller, false)
	if ns == nil {
		return []models.StoredRecord{}, nil
	}

	total := uint64(len(ns.order))
	if offset >= total {
		return []models.StoredRecord{}, nil
	}
	end := total
	if limit < total-offset {
		end = offset + limit
	}

	page := make([]models.StoredRecord, 0, end-offset)
	for _, id := range ns.order[offset:end] {
		page = append(page, models.StoredRecord{ID: id, Record: ns.records[id].record.Clone()})
	}
	return page, nil
}

func (tx *memoryTx) AppendEvent(_ context.Context, event models.Event) (models.Event, error) {
	event.Seq = int64(len(tx.events)) + 1
	event.Details = maps.Clone(event.Details)
	tx.events = append(tx.events, event)
	return event, nil
}

func (tx *memoryTx) ListEvents(_ context.Context, fromSeq int64, limit uint64) ([]models.Event, error) {
	if fromSeq < 1 {
		fromSeq = 1
	}

	events := make([]models.Event, 0)
	for i := fromSeq - 1; i < int64(len(tx.events)) && uint64(len(events)) < limit; i++ {
		event := tx.events[i]
		event.Details = maps.Clone(event.Details)
		events = append(events, event)
	}
	return events, nil
}
