package stores

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Luffyt01/HemoLink-sub000/domain"
	"github.com/Luffyt01/HemoLink-sub000/internal/mocks"
)

func TestSet_NamespacedKeys(t *testing.T) {
	storage := &mocks.MockStorage{}
	set := NewSet("sess1", storage, zap.NewNop(), time.Second)
	ctx := context.Background()

	set.Auth.Set(ctx, testSession("tok_1"))

	if _, err := storage.Read(ctx, "auth-storage:sess1"); err != nil {
		t.Errorf("expected namespaced key auth-storage:sess1: %v", err)
	}
	if _, err := storage.Read(ctx, "auth-storage"); err == nil {
		t.Error("bare key must not be written for a namespaced set")
	}
}

func TestSet_BareKeysWithoutNamespace(t *testing.T) {
	storage := &mocks.MockStorage{}
	set := NewSet("", storage, zap.NewNop(), time.Second)
	ctx := context.Background()

	set.Donor.Set(ctx, &domain.DonorProfile{ID: "d1", Name: "Pat"})

	if _, err := storage.Read(ctx, "user-storage"); err != nil {
		t.Errorf("expected bare user-storage key: %v", err)
	}
}

func TestSet_RehydrateOpensGate(t *testing.T) {
	storage := &mocks.MockStorage{}
	set := NewSet("sess1", storage, zap.NewNop(), time.Hour)

	set.Rehydrate(context.Background())
	if !set.Gate().Ready() {
		t.Error("expected gate open after rehydration")
	}
}

func TestSet_RehydrateFailureStillOpensGate(t *testing.T) {
	storage := &mocks.MockStorage{
		ReadFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, errors.New("redis down")
		},
	}
	set := NewSet("sess1", storage, zap.NewNop(), time.Hour)

	set.Rehydrate(context.Background())
	if !set.Gate().Ready() {
		t.Error("gate must open even when rehydration fails")
	}
	if set.Auth.Get() != nil {
		t.Error("failed rehydration must leave the store empty")
	}
}

func TestSet_ClearAll(t *testing.T) {
	storage := &mocks.MockStorage{}
	set := NewSet("sess1", storage, zap.NewNop(), time.Second)
	ctx := context.Background()

	set.Auth.Set(ctx, testSession("tok_1"))
	set.Donor.Set(ctx, &domain.DonorProfile{ID: "d1"})
	set.Hospital.Set(ctx, &domain.HospitalProfile{ID: "h1"})

	set.ClearAll(ctx)

	if set.Auth.Get() != nil || set.Donor.Get() != nil || set.Hospital.Get() != nil {
		t.Error("expected every store empty after ClearAll")
	}
}

func TestManager_ForSessionCachesAndDrops(t *testing.T) {
	storage := &mocks.MockStorage{}
	m := NewManager(storage, zap.NewNop(), 50*time.Millisecond)

	a := m.ForSession("sess1")
	b := m.ForSession("sess1")
	if a != b {
		t.Error("expected the same set for repeated access")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := a.Gate().Wait(ctx); err != nil {
		t.Fatalf("expected first access to arm and open the gate: %v", err)
	}

	m.Drop("sess1")
	if m.ForSession("sess1") == a {
		t.Error("expected a fresh set after Drop")
	}
}
