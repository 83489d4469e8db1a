package testutil

import (
	"fmt"

	"wortquiz/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestItem creates a test vocabulary item
func NewTestItem(id, german, english string, tier domain.Tier) domain.VocabItem {
	return domain.VocabItem{
		ID:      id,
		German:  german,
		English: english,
		Tier:    tier,
	}
}

// NewTestVocab creates n distinct medium-tier test items
func NewTestVocab(n int) []domain.VocabItem {
	items := make([]domain.VocabItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, domain.VocabItem{
			ID:      fmt.Sprintf("w%d", i),
			German:  fmt.Sprintf("wort%d", i),
			English: fmt.Sprintf("word%d", i),
			Tier:    domain.TierMedium,
		})
	}
	return items
}

// PassthroughRepo is a StatsRepository stub that accepts everything and
// remembers the last saved record
type PassthroughRepo struct {
	Saved     *domain.Stats
	SaveCalls int
}

func (r *PassthroughRepo) Load() (*domain.Stats, error) {
	return domain.NewStats(), nil
}

func (r *PassthroughRepo) Save(stats *domain.Stats) error {
	r.Saved = stats
	r.SaveCalls++
	return nil
}

func (r *PassthroughRepo) Clear() (*domain.Stats, error) {
	r.Saved = nil
	return domain.NewStats(), nil
}
