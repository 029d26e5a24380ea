package stores

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/Luffyt01/HemoLink-sub000/domain"
)

// Store holds exactly one nullable record in memory and mirrors every
// write to durable storage under a fixed key. The in-memory value is
// authoritative for the current session; persistence is best-effort, and a
// failed mirror write is swallowed (logged at Warn) rather than surfaced.
//
// The persisted document is an envelope of the form {"<field>": record},
// with a JSON null while the store is empty.
type Store[T any] struct {
	mu      sync.RWMutex
	key     string
	field   string
	storage domain.Storage
	log     *zap.Logger
	record  *T
}

// NewStore creates an empty store persisting under key with the given
// envelope field name.
func NewStore[T any](key, field string, storage domain.Storage, log *zap.Logger) *Store[T] {
	return &Store[T]{
		key:     key,
		field:   field,
		storage: storage,
		log:     log,
	}
}

// Set replaces the held record wholesale and mirrors it to storage. No
// validation is performed; that is the caller's responsibility.
func (s *Store[T]) Set(ctx context.Context, record *T) {
	s.mu.Lock()
	s.record = record
	s.mu.Unlock()
	s.persist(ctx)
}

// Update applies a shallow mutation to the current record and persists the
// result. It is a no-op when no record is held.
func (s *Store[T]) Update(ctx context.Context, apply func(record *T)) {
	s.mu.Lock()
	if s.record == nil {
		s.mu.Unlock()
		return
	}
	apply(s.record)
	s.mu.Unlock()
	s.persist(ctx)
}

// Clear drops the held record and persists the cleared state. Safe to call
// when the store never held a record.
func (s *Store[T]) Clear(ctx context.Context) {
	s.mu.Lock()
	s.record = nil
	s.mu.Unlock()
	s.persist(ctx)
}

// Get returns the current in-memory record, or nil when the store is
// empty. Reads are immediately consistent with the last Set/Update/Clear.
func (s *Store[T]) Get() *T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record
}

// Rehydrate loads the persisted envelope back into memory. A missing key
// leaves the store empty without error.
func (s *Store[T]) Rehydrate(ctx context.Context) error {
	data, err := s.storage.Read(ctx, s.key)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	envelope := map[string]*T{}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	s.mu.Lock()
	s.record = envelope[s.field]
	s.mu.Unlock()
	return nil
}

func (s *Store[T]) persist(ctx context.Context) {
	s.mu.RLock()
	envelope := map[string]*T{s.field: s.record}
	s.mu.RUnlock()

	data, err := json.Marshal(envelope)
	if err != nil {
		s.log.Warn("store: marshal failed", zap.String("key", s.key), zap.Error(err))
		return
	}
	if err := s.storage.Write(ctx, s.key, data); err != nil {
		// In-memory value stays authoritative; rehydration after a restart
		// may not reflect this write.
		s.log.Warn("store: mirror write failed", zap.String("key", s.key), zap.Error(err))
	}
}
