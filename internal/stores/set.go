package stores

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Luffyt01/HemoLink-sub000/domain"
)

// Storage keys, one per persisted store. In the browser these were the
// localStorage keys; here they are namespaced per browser session.
const (
	AuthStorageKey     = "auth-storage"
	DonorStorageKey    = "user-storage"
	HospitalStorageKey = "hospital-storage"
)

// Set bundles the three persisted stores belonging to one browser session
// together with their hydration gate.
type Set struct {
	Auth     *Store[domain.Session]
	Donor    *Store[domain.DonorProfile]
	Hospital *Store[domain.HospitalProfile]

	gate *Gate
	log  *zap.Logger
}

// NewSet creates the store triple for the given session namespace. An
// empty namespace uses the bare storage keys.
func NewSet(namespace string, storage domain.Storage, log *zap.Logger, fallback time.Duration) *Set {
	key := func(base string) string {
		if namespace == "" {
			return base
		}
		return base + ":" + namespace
	}
	return &Set{
		Auth:     NewStore[domain.Session](key(AuthStorageKey), "session", storage, log),
		Donor:    NewStore[domain.DonorProfile](key(DonorStorageKey), "userProfile", storage, log),
		Hospital: NewStore[domain.HospitalProfile](key(HospitalStorageKey), "hospitalProfile", storage, log),
		gate:     NewGate(fallback),
		log:      log,
	}
}

// Gate exposes the hydration gate guarding this set.
func (s *Set) Gate() *Gate { return s.gate }

// Rehydrate loads all three stores from durable storage and opens the
// gate. Rehydration failures leave the affected store empty; the gate
// still opens so the UI is never wedged behind a broken storage backend.
func (s *Set) Rehydrate(ctx context.Context) {
	defer s.gate.Complete()
	for key, rehydrate := range map[string]func(context.Context) error{
		AuthStorageKey:     s.Auth.Rehydrate,
		DonorStorageKey:    s.Donor.Rehydrate,
		HospitalStorageKey: s.Hospital.Rehydrate,
	} {
		if err := rehydrate(ctx); err != nil {
			s.log.Warn("store: rehydration failed", zap.String("key", key), zap.Error(err))
		}
	}
}

// ClearAll empties every store. Used on logout and account deletion so no
// stale profile data survives into the next user's session on this device.
func (s *Set) ClearAll(ctx context.Context) {
	s.Auth.Clear(ctx)
	s.Donor.Clear(ctx)
	s.Hospital.Clear(ctx)
}

// Manager hands out the Set for each browser session, rehydrating it in
// the background on first access.
type Manager struct {
	mu       sync.Mutex
	storage  domain.Storage
	log      *zap.Logger
	fallback time.Duration
	sets     map[string]*Set
}

// NewManager creates a store manager over the given storage layer.
func NewManager(storage domain.Storage, log *zap.Logger, fallback time.Duration) *Manager {
	return &Manager{
		storage:  storage,
		log:      log,
		fallback: fallback,
		sets:     make(map[string]*Set),
	}
}

// ForSession returns the store set for sessionID, creating and
// rehydrating it on first access. The gate's fallback timer is armed at
// the same time; callers wait on the gate before reading.
func (m *Manager) ForSession(sessionID string) *Set {
	m.mu.Lock()
	set, ok := m.sets[sessionID]
	if !ok {
		set = NewSet(sessionID, m.storage, m.log, m.fallback)
		m.sets[sessionID] = set
		set.Gate().Arm()
		go set.Rehydrate(context.Background())
	}
	m.mu.Unlock()
	return set
}

// Drop forgets the cached set for sessionID. Storage keys are cleared by
// the caller via ClearAll before dropping.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	delete(m.sets, sessionID)
	m.mu.Unlock()
}
