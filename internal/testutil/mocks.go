package testutil

import (
	"wortquiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockStatsRepository is a mock for StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Load() (*domain.Stats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}

func (m *MockStatsRepository) Save(stats *domain.Stats) error {
	args := m.Called(stats)
	return args.Error(0)
}

func (m *MockStatsRepository) Clear() (*domain.Stats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}
