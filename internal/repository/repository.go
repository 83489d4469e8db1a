package repository

import (
	"wortquiz/internal/domain"
)

// StatsRepository persists the statistics record under a fixed key.
// Load must return a zeroed record, not an error, when nothing was stored yet.
type StatsRepository interface {
	Load() (*domain.Stats, error)
	Save(stats *domain.Stats) error
	Clear() (*domain.Stats, error)
}
