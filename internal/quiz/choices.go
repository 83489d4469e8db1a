package quiz

import (
	"math/rand"

	"wortquiz/internal/domain"
)

// Option is one multiple-choice answer shown to the learner
type Option struct {
	Text    string
	Correct bool
}

const distractorCount = 3

// Choices builds the choice set for the current word: the correct answer term
// plus up to three distractors drawn without replacement from the rest of the
// working set, in random order. Small decks yield fewer options.
func Choices(working []domain.VocabItem, current domain.VocabItem, mode domain.Mode, rng *rand.Rand) []Option {
	others := make([]domain.VocabItem, 0, len(working))
	for _, item := range working {
		if item.ID != current.ID {
			others = append(others, item)
		}
	}

	n := distractorCount
	if len(others) < n {
		n = len(others)
	}

	opts := make([]Option, 0, n+1)
	opts = append(opts, Option{Text: current.Answer(mode), Correct: true})
	for _, i := range rng.Perm(len(others))[:n] {
		opts = append(opts, Option{Text: others[i].Answer(mode)})
	}

	rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return opts
}
