package service

import (
	"sync"
	"time"

	"wortquiz/internal/domain"
	"wortquiz/internal/repository"

	"go.uber.org/zap"
)

// StatsService owns the in-memory statistics record and its persistence.
// Storage failures are logged and tolerated: the session keeps running on the
// in-memory record whether or not the write succeeded.
type StatsService struct {
	repo   repository.StatsRepository
	logger *zap.Logger
	now    func() time.Time

	mu    sync.Mutex
	stats *domain.Stats
}

// NewStatsService creates a stats service with a fresh record.
// Call Load to pick up the persisted record.
func NewStatsService(repo repository.StatsRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		stats:  domain.NewStats(),
	}
}

// Load reads the persisted record, degrading to a zeroed one on failure
func (s *StatsService) Load() {
	stats, err := s.repo.Load()
	if err != nil {
		s.logger.Warn("Failed to load stats, starting fresh", zap.Error(err))
		stats = domain.NewStats()
	}
	stats.Normalize()

	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()
}

// Record registers one answer for a word and persists the updated record
func (s *StatsService) Record(wordID string, correct bool) {
	s.mu.Lock()
	s.stats.Record(wordID, correct, s.now())
	snapshot := s.copyLocked()
	s.mu.Unlock()

	if err := s.repo.Save(snapshot); err != nil {
		s.logger.Warn("Failed to persist stats",
			zap.String("word_id", wordID),
			zap.Error(err),
		)
	}
}

// Reset wipes the persisted record and the in-memory one
func (s *StatsService) Reset() {
	stats, err := s.repo.Clear()
	if err != nil {
		s.logger.Warn("Failed to clear persisted stats", zap.Error(err))
		stats = domain.NewStats()
	}
	stats.Normalize()

	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()
}

// FailedIDs returns the ids of all words with at least one wrong answer
func (s *StatsService) FailedIDs() map[string]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.FailedIDs()
}

// Summary returns aggregate correct count, attempt count and accuracy
func (s *StatsService) Summary() (correct, attempts int, accuracy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.Correct, s.stats.Attempts, s.stats.Accuracy()
}

// WordSummary returns the recorded stat for one word, nil when never attempted
func (s *StatsService) WordSummary(wordID string) *domain.WordStat {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws, ok := s.stats.Words[wordID]
	if !ok {
		return nil
	}
	c := *ws
	return &c
}

// copyLocked deep-copies the record so Save never races with later mutations
func (s *StatsService) copyLocked() *domain.Stats {
	c := &domain.Stats{
		Correct:     s.stats.Correct,
		Attempts:    s.stats.Attempts,
		LastSession: s.stats.LastSession,
		Words:       make(map[string]*domain.WordStat, len(s.stats.Words)),
	}
	for id, ws := range s.stats.Words {
		w := *ws
		c.Words[id] = &w
	}
	return c
}
