package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStats_Record(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		answers          []bool
		expectedCorrect  int
		expectedAttempts int
		expectedFailed   bool
	}{
		{
			name:             "single correct answer",
			answers:          []bool{true},
			expectedCorrect:  1,
			expectedAttempts: 1,
			expectedFailed:   false,
		},
		{
			name:             "wrong then correct marks word as failed",
			answers:          []bool{false, true},
			expectedCorrect:  1,
			expectedAttempts: 2,
			expectedFailed:   true,
		},
		{
			name:             "all wrong",
			answers:          []bool{false, false, false},
			expectedCorrect:  0,
			expectedAttempts: 3,
			expectedFailed:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := NewStats()

			for _, correct := range tt.answers {
				stats.Record("w1", correct, now)
			}

			assert.Equal(t, tt.expectedCorrect, stats.Correct)
			assert.Equal(t, tt.expectedAttempts, stats.Attempts)
			assert.Equal(t, now, stats.LastSession)

			ws := stats.Words["w1"]
			assert.NotNil(t, ws)
			assert.Equal(t, tt.expectedCorrect, ws.Correct)
			assert.Equal(t, tt.expectedAttempts, ws.Attempts)
			assert.Equal(t, tt.expectedFailed, ws.Failed())
		})
	}
}

func TestStats_FailedIDs(t *testing.T) {
	now := time.Now()
	stats := NewStats()

	stats.Record("clean", true, now)
	stats.Record("failed-once", false, now)
	stats.Record("failed-once", true, now)
	stats.Record("always-wrong", false, now)

	failed := stats.FailedIDs()

	assert.Len(t, failed, 2)
	assert.Contains(t, failed, "failed-once")
	assert.Contains(t, failed, "always-wrong")
	assert.NotContains(t, failed, "clean")
}

func TestStats_Accuracy(t *testing.T) {
	stats := NewStats()
	assert.Equal(t, 0.0, stats.Accuracy())

	now := time.Now()
	stats.Record("w1", true, now)
	stats.Record("w1", false, now)
	stats.Record("w2", true, now)
	stats.Record("w2", true, now)

	assert.InDelta(t, 0.75, stats.Accuracy(), 1e-9)
}

func TestStats_Normalize(t *testing.T) {
	// older persisted records may not carry the per-word map
	stats := &Stats{Correct: 3, Attempts: 5}
	stats.Normalize()

	assert.NotNil(t, stats.Words)
	assert.Equal(t, 3, stats.Correct)
	assert.Equal(t, 5, stats.Attempts)
}
