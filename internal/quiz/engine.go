package quiz

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"wortquiz/internal/domain"
	"wortquiz/internal/service"

	"go.uber.org/zap"
)

// State is the progression state of the quiz
type State int

const (
	// StateIdle means no word is loaded (empty working set)
	StateIdle State = iota
	// StatePresenting means a word is shown and not yet answered
	StatePresenting
	// StateAnswered means feedback is shown and the advance is pending
	StateAnswered
)

// Verdict is the outcome of the last answer
type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictCorrect
	VerdictWrong
)

// DefaultAdvanceDelay is how long feedback stays visible before the next word
const DefaultAdvanceDelay = 2500 * time.Millisecond

// Snapshot is an atomic read of everything the presentation surface renders
type Snapshot struct {
	State    State
	Mode     domain.Mode
	Selector domain.Selector

	Word    *domain.VocabItem
	Choices []Option

	HasAnswered bool
	LastResult  Verdict
	Input       string

	Position int
	DeckSize int

	HelpVisible   bool
	MenuOpen      bool
	StatsExpanded bool

	Correct  int
	Attempts int
	Accuracy float64
}

// Options configures an Engine
type Options struct {
	// Rand is the randomness source for shuffling and distractor sampling;
	// defaults to a time-seeded source
	Rand *rand.Rand
	// AdvanceDelay is how long feedback stays visible; defaults to
	// DefaultAdvanceDelay
	AdvanceDelay time.Duration
	// OnAdvance is called after a timer-driven advance so the surface can
	// render the next question
	OnAdvance func(Snapshot)
}

// Engine is the quiz progression state machine. It owns the current word, its
// choice set and the answer state, and coordinates the answer, feedback,
// advance cycle. All transitions commit atomically under one mutex; the
// displayed word and choices are frozen from answer acceptance until the next
// advance.
type Engine struct {
	stats  *service.StatsService
	logger *zap.Logger
	rng    *rand.Rand
	delay  time.Duration
	notify func(Snapshot)

	mu       sync.Mutex
	vocab    []domain.VocabItem
	mode     domain.Mode
	selector domain.Selector

	deck  []domain.VocabItem
	index int

	state    State
	word     *domain.VocabItem
	choices  []Option
	answered bool
	last     Verdict
	input    string

	helpVisible   bool
	menuOpen      bool
	statsExpanded bool

	// gen invalidates pending advance timers across state-resetting actions
	gen   uint64
	timer *time.Timer
}

// NewEngine creates an engine over the given vocabulary. The session starts
// in Idle; call Initialize to begin presenting words.
func NewEngine(vocab []domain.VocabItem, stats *service.StatsService, logger *zap.Logger, opts Options) *Engine {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	delay := opts.AdvanceDelay
	if delay == 0 {
		delay = DefaultAdvanceDelay
	}
	return &Engine{
		stats:    stats,
		logger:   logger,
		rng:      rng,
		delay:    delay,
		notify:   opts.OnAdvance,
		vocab:    vocab,
		mode:     domain.ModeGermanEnglish,
		selector: domain.SelectorAll,
		state:    StateIdle,
	}
}

// SetNotify registers the callback invoked after a timer-driven advance
func (e *Engine) SetNotify(fn func(Snapshot)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notify = fn
}

// Initialize filters and shuffles the vocabulary under the given selector and
// presents the first word of the resulting deck
func (e *Engine) Initialize(sel domain.Selector) {
	failed := e.stats.FailedIDs()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.resetPendingLocked()
	e.selector = sel
	e.deck = Shuffle(Filter(e.vocab, sel, failed), e.rng)
	e.index = 0
	e.clearAnswerLocked()
	e.helpVisible = false
	e.presentLocked()

	e.logger.Debug("Session initialized",
		zap.String("selector", string(sel)),
		zap.Int("deck_size", len(e.deck)),
	)
}

// SetMode flips the translation direction. The displayed word stays the same;
// its choices are rebuilt under the new mode unless feedback is on screen, in
// which case the pending advance picks the new mode up.
func (e *Engine) SetMode(m domain.Mode) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.mode = m
	if e.state == StatePresenting && e.word != nil {
		e.choices = Choices(e.deck, *e.word, e.mode, e.rng)
	}
}

// SetDifficulty starts a fresh session over the subset matched by the selector
func (e *Engine) SetDifficulty(sel domain.Selector) {
	e.Initialize(sel)
}

// SubmitChoice accepts a multiple-choice answer by option index.
// Ignored while feedback is on screen or when no word is loaded.
func (e *Engine) SubmitChoice(i int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StatePresenting || i < 0 || i >= len(e.choices) {
		return
	}
	e.acceptLocked(e.choices[i].Correct)
}

// SubmitText accepts a typed answer. Blank input and double submissions are
// ignored. Correctness is a trimmed, case-insensitive exact match against the
// expected term under the current mode.
func (e *Engine) SubmitText(raw string) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StatePresenting || e.word == nil {
		return
	}
	e.input = text
	e.acceptLocked(strings.EqualFold(text, e.word.Answer(e.mode)))
}

// Advance moves to the next word immediately, cancelling any pending timer
func (e *Engine) Advance() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.advanceLocked()
}

// RestartQuiz goes back to position 0 of the existing deck without
// reshuffling or refiltering
func (e *Engine) RestartQuiz() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.resetPendingLocked()
	e.index = 0
	e.clearAnswerLocked()
	e.helpVisible = false
	e.presentLocked()
}

// ResetStats wipes the persisted statistics record. The deck and the current
// position are untouched.
func (e *Engine) ResetStats() {
	e.stats.Reset()
}

// ToggleHelp flips the help panel flag
func (e *Engine) ToggleHelp() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.helpVisible = !e.helpVisible
}

// ToggleMenu flips the menu flag
func (e *Engine) ToggleMenu() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.menuOpen = !e.menuOpen
}

// ToggleStatsPanel flips the stats panel flag
func (e *Engine) ToggleStatsPanel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.statsExpanded = !e.statsExpanded
}

// Snapshot returns an atomic copy of the visible state
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// acceptLocked commits an answer: stats update, verdict, frozen display,
// deferred advance
func (e *Engine) acceptLocked(correct bool) {
	e.answered = true
	if correct {
		e.last = VerdictCorrect
	} else {
		e.last = VerdictWrong
	}
	e.state = StateAnswered

	e.stats.Record(e.word.ID, correct)

	gen := e.gen
	e.timer = time.AfterFunc(e.delay, func() {
		e.timedAdvance(gen)
	})
}

// timedAdvance applies the deferred advance unless a state-resetting action
// has bumped the generation since it was scheduled
func (e *Engine) timedAdvance(gen uint64) {
	e.mu.Lock()
	if gen != e.gen || e.state != StateAnswered {
		e.mu.Unlock()
		return
	}
	e.advanceLocked()
	snap := e.snapshotLocked()
	notify := e.notify
	e.mu.Unlock()

	if notify != nil {
		notify(snap)
	}
}

func (e *Engine) advanceLocked() {
	e.resetPendingLocked()
	if len(e.deck) == 0 {
		e.clearAnswerLocked()
		e.presentLocked()
		return
	}
	e.index = (e.index + 1) % len(e.deck)
	e.clearAnswerLocked()
	e.presentLocked()
}

// presentLocked freezes deck[index] as the displayed word and rebuilds its
// choices, or drops to Idle when the deck is empty
func (e *Engine) presentLocked() {
	if len(e.deck) == 0 {
		e.word = nil
		e.choices = nil
		e.state = StateIdle
		return
	}
	w := e.deck[e.index]
	e.word = &w
	e.choices = Choices(e.deck, w, e.mode, e.rng)
	e.state = StatePresenting
}

func (e *Engine) clearAnswerLocked() {
	e.answered = false
	e.last = VerdictNone
	e.input = ""
}

// resetPendingLocked invalidates any outstanding advance timer
func (e *Engine) resetPendingLocked() {
	e.gen++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func (e *Engine) snapshotLocked() Snapshot {
	correct, attempts, accuracy := e.stats.Summary()

	snap := Snapshot{
		State:         e.state,
		Mode:          e.mode,
		Selector:      e.selector,
		HasAnswered:   e.answered,
		LastResult:    e.last,
		Input:         e.input,
		Position:      e.index,
		DeckSize:      len(e.deck),
		HelpVisible:   e.helpVisible,
		MenuOpen:      e.menuOpen,
		StatsExpanded: e.statsExpanded,
		Correct:       correct,
		Attempts:      attempts,
		Accuracy:      accuracy,
	}
	if e.word != nil {
		w := *e.word
		snap.Word = &w
	}
	if e.choices != nil {
		snap.Choices = make([]Option, len(e.choices))
		copy(snap.Choices, e.choices)
	}
	return snap
}
