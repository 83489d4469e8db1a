package domain

// Tier is the difficulty tier of a vocabulary item
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// Valid reports whether t is one of the known tiers
func (t Tier) Valid() bool {
	switch t {
	case TierEasy, TierMedium, TierHard:
		return true
	}
	return false
}

// Mode is the translation direction of the quiz
type Mode string

const (
	// ModeGermanEnglish prompts with the German term, expects the English one
	ModeGermanEnglish Mode = "de-en"
	// ModeEnglishGerman prompts with the English term, expects the German one
	ModeEnglishGerman Mode = "en-de"
)

// Flip returns the opposite translation direction
func (m Mode) Flip() Mode {
	if m == ModeEnglishGerman {
		return ModeGermanEnglish
	}
	return ModeEnglishGerman
}

// Selector picks the working subset of the vocabulary
type Selector string

const (
	SelectorAll    Selector = "all"
	SelectorFailed Selector = "failed"
)

// VocabItem represents one German/English word pair
type VocabItem struct {
	ID      string
	German  string
	English string
	Tier    Tier
	Tags    []string
}

// Prompt returns the term shown to the learner under the given mode
func (v VocabItem) Prompt(m Mode) string {
	if m == ModeEnglishGerman {
		return v.English
	}
	return v.German
}

// Answer returns the term the learner is expected to produce under the given mode
func (v VocabItem) Answer(m Mode) string {
	if m == ModeEnglishGerman {
		return v.German
	}
	return v.English
}
