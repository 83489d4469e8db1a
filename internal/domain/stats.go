package domain

import "time"

// WordStat tracks attempts for a single word
type WordStat struct {
	Attempts    int       `json:"attempts"`
	Correct     int       `json:"correct"`
	LastAttempt time.Time `json:"lastAttempt"`
}

// Failed reports whether the word has at least one recorded wrong answer
func (w WordStat) Failed() bool {
	return w.Attempts > w.Correct
}

// Stats is the persisted statistics record
type Stats struct {
	Correct     int                  `json:"correct"`
	Attempts    int                  `json:"attempts"`
	LastSession time.Time            `json:"lastSession"`
	Words       map[string]*WordStat `json:"words"`
}

// NewStats returns a zeroed statistics record
func NewStats() *Stats {
	return &Stats{Words: make(map[string]*WordStat)}
}

// Normalize defaults fields that older persisted records may lack
func (s *Stats) Normalize() {
	if s.Words == nil {
		s.Words = make(map[string]*WordStat)
	}
}

// Record registers one answer for the given word
func (s *Stats) Record(wordID string, correct bool, now time.Time) {
	s.Attempts++
	if correct {
		s.Correct++
	}
	s.LastSession = now

	ws, ok := s.Words[wordID]
	if !ok {
		ws = &WordStat{}
		s.Words[wordID] = ws
	}
	ws.Attempts++
	if correct {
		ws.Correct++
	}
	ws.LastAttempt = now
}

// FailedIDs returns the ids of all words with at least one wrong answer
func (s *Stats) FailedIDs() map[string]struct{} {
	failed := make(map[string]struct{})
	for id, ws := range s.Words {
		if ws.Failed() {
			failed[id] = struct{}{}
		}
	}
	return failed
}

// Accuracy returns the aggregate share of correct answers, 0 when nothing was attempted
func (s *Stats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}
