package testutil

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"train-autofill/internal/core/domain"
)

// MockTrainNameClient is a mock of TrainNameClient.
type MockTrainNameClient struct {
	mock.Mock
}

func (m *MockTrainNameClient) LookupTrainName(ctx context.Context, trainNumber string) (*domain.TrainLookup, error) {
	args := m.Called(ctx, trainNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainLookup), args.Error(1)
}

// MemoryField is an in-memory Field.
type MemoryField struct {
	mu    sync.Mutex
	value string
}

func NewMemoryField(value string) *MemoryField {
	return &MemoryField{value: value}
}

func (f *MemoryField) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

func (f *MemoryField) SetValue(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = value
}
