package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"wortquiz/internal/domain"
)

// statsKey is the fixed identifier the stats record is stored under
const statsKey = "wortquiz.stats"

// StatsRepo implements repository.StatsRepository on PostgreSQL.
// The whole record lives in one JSONB row keyed by statsKey and is replaced
// atomically on every save.
type StatsRepo struct {
	db *sql.DB
}

// NewStatsRepo creates a new stats repository
func NewStatsRepo(db *sql.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// Load reads the persisted record, returning a zeroed one when nothing was
// stored yet. Records written by older versions without the per-word map are
// defaulted.
func (r *StatsRepo) Load() (*domain.Stats, error) {
	query := `
		SELECT payload
		FROM stats
		WHERE key = $1
	`
	var payload []byte
	err := r.db.QueryRow(query, statsKey).Scan(&payload)

	if err == sql.ErrNoRows {
		return domain.NewStats(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	var stats domain.Stats
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode stats payload: %w", err)
	}
	stats.Normalize()
	return &stats, nil
}

// Save replaces the persisted record
func (r *StatsRepo) Save(stats *domain.Stats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}

	query := `
		INSERT INTO stats (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`
	if _, err := r.db.Exec(query, statsKey, payload); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

// Clear removes the persisted record and returns a zeroed one
func (r *StatsRepo) Clear() (*domain.Stats, error) {
	query := `
		DELETE FROM stats
		WHERE key = $1
	`
	if _, err := r.db.Exec(query, statsKey); err != nil {
		return nil, fmt.Errorf("failed to clear stats: %w", err)
	}
	return domain.NewStats(), nil
}
