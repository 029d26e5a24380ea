package mocks

import (
	"context"
	"sync"

	"github.com/Luffyt01/HemoLink-sub000/domain"
)

// MockStorage implements domain.Storage for testing. Without overrides it
// behaves as an in-memory store; set the Func fields to inject failures.
type MockStorage struct {
	ReadFunc   func(ctx context.Context, key string) ([]byte, error)
	WriteFunc  func(ctx context.Context, key string, value []byte) error
	DeleteFunc func(ctx context.Context, key string) error

	mu   sync.Mutex
	data map[string][]byte
}

func (m *MockStorage) Read(ctx context.Context, key string) ([]byte, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return value, nil
}

func (m *MockStorage) Write(ctx context.Context, key string, value []byte) error {
	if m.WriteFunc != nil {
		return m.WriteFunc(ctx, key, value)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key] = value
	return nil
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
