package vocab

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wortquiz/internal/domain"

	"github.com/google/uuid"
)

// Load reads a vocabulary list from a JSON, CSV or XLSX file based on the
// file extension
func Load(path string) ([]domain.VocabItem, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadJSON(path)
	case ".csv":
		return ImportCSV(path)
	case ".xlsx":
		return ImportXLSX(path, "")
	default:
		return nil, fmt.Errorf("unsupported vocabulary file format: %s", path)
	}
}

type jsonItem struct {
	ID         string   `json:"id"`
	German     string   `json:"german"`
	English    string   `json:"english"`
	Difficulty string   `json:"difficulty"`
	Tags       []string `json:"tags"`
}

func loadJSON(path string) ([]domain.VocabItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	var raw []jsonItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode vocabulary file: %w", err)
	}

	items := make([]domain.VocabItem, 0, len(raw))
	for i, r := range raw {
		german := strings.TrimSpace(r.German)
		english := strings.TrimSpace(r.English)
		if german == "" || english == "" {
			return nil, fmt.Errorf("vocabulary entry %d: german and english terms are required", i)
		}

		tier, err := normalizeTier(r.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("vocabulary entry %d (%s): %w", i, german, err)
		}

		id := strings.TrimSpace(r.ID)
		if id == "" {
			id = uuid.NewString()
		}

		items = append(items, domain.VocabItem{
			ID:      id,
			German:  german,
			English: english,
			Tier:    tier,
			Tags:    cleanTags(r.Tags),
		})
	}
	return items, nil
}

// normalizeTier maps a difficulty string to a known tier, defaulting blank
// values to medium
func normalizeTier(s string) (domain.Tier, error) {
	tier := domain.Tier(strings.ToLower(strings.TrimSpace(s)))
	if tier == "" {
		return domain.TierMedium, nil
	}
	if !tier.Valid() {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return tier, nil
}

func cleanTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
