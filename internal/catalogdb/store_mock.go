package catalogdb

import (
	"context"

	"github.com/langradar/langradar/internal/contract"
	"github.com/langradar/langradar/schema"
	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of CatalogStore for testing.
type MockStore struct {
	mock.Mock
}

var _ contract.CatalogStore = &MockStore{} // Compile-time check

// Load implements the CatalogSource interface.
func (m *MockStore) Load(ctx context.Context) ([]schema.Language, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]schema.Language)
	return entries, args.Error(1)
}

// Describe implements the CatalogSource interface.
func (m *MockStore) Describe() string {
	return m.Called().String(0)
}

// Import implements the CatalogStore interface.
func (m *MockStore) Import(ctx context.Context, entries []schema.Language) error {
	return m.Called(ctx, entries).Error(0)
}

// GetStatus implements the CatalogStore interface.
func (m *MockStore) GetStatus(ctx context.Context) (schema.CatalogStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(schema.CatalogStatus), args.Error(1)
}

// Close implements the CatalogStore interface.
func (m *MockStore) Close() error {
	return m.Called().Error(0)
}
