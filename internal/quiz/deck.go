package quiz

import (
	"math/rand"

	"wortquiz/internal/domain"
)

// Filter selects the working subset of the vocabulary.
// An empty selector or SelectorAll passes everything, SelectorFailed passes
// only words in the failed set, any other value is matched against the tier.
func Filter(items []domain.VocabItem, sel domain.Selector, failed map[string]struct{}) []domain.VocabItem {
	var out []domain.VocabItem
	for _, item := range items {
		switch sel {
		case "", domain.SelectorAll:
			out = append(out, item)
		case domain.SelectorFailed:
			if _, ok := failed[item.ID]; ok {
				out = append(out, item)
			}
		default:
			if item.Tier == domain.Tier(sel) {
				out = append(out, item)
			}
		}
	}
	return out
}

// Shuffle returns a uniformly shuffled copy of items
func Shuffle(items []domain.VocabItem, rng *rand.Rand) []domain.VocabItem {
	out := make([]domain.VocabItem, len(items))
	copy(out, items)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
