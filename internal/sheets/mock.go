package sheets

import (
	"context"
	"sync"

	"github.com/freshmart/grocery-bot/internal/model"
)

// MockSource is a mock implementation of service.CatalogSource for testing.
type MockSource struct {
	LoadCatalogFunc func(ctx context.Context) (*model.Catalog, error)
	LoadCallCount   int
	mu              sync.Mutex
}

// LoadCatalog implements service.CatalogSource.
func (m *MockSource) LoadCatalog(ctx context.Context) (*model.Catalog, error) {
	m.mu.Lock()
	m.LoadCallCount++
	m.mu.Unlock()

	if m.LoadCatalogFunc != nil {
		return m.LoadCatalogFunc(ctx)
	}
	return &model.Catalog{}, nil
}

// MockSink is a mock implementation of service.OrderSink for testing.
type MockSink struct {
	PersistOrderFunc func(ctx context.Context, order *model.Order) error
	Orders           []*model.Order
	PersistCallCount int
	mu               sync.Mutex
}

// PersistOrder implements service.OrderSink.
func (m *MockSink) PersistOrder(ctx context.Context, order *model.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PersistCallCount++

	var err error
	if m.PersistOrderFunc != nil {
		err = m.PersistOrderFunc(ctx, order)
	}
	if err == nil {
		m.Orders = append(m.Orders, order)
	}
	return err
}

// LastOrder returns the most recently persisted order, or nil.
func (m *MockSink) LastOrder() *model.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Orders) == 0 {
		return nil
	}
	return m.Orders[len(m.Orders)-1]
}

// MockNotifier is a mock implementation of service.Notifier for testing.
type MockNotifier struct {
	NotifyFunc func(ctx context.Context, recipientID, text string) error
	Messages   []string
	Recipients []string
	mu         sync.Mutex
}

// Notify implements service.Notifier.
func (m *MockNotifier) Notify(ctx context.Context, recipientID, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Recipients = append(m.Recipients, recipientID)
	m.Messages = append(m.Messages, text)

	if m.NotifyFunc != nil {
		return m.NotifyFunc(ctx, recipientID, text)
	}
	return nil
}
