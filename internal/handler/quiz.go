package handler

import (
	"fmt"
	"strconv"
	"strings"

	"wortquiz/internal/domain"
	"wortquiz/internal/quiz"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Button templates for dynamically built buttons
var (
	btnAnswer = tele.Btn{Unique: "answer"}
	btnDiff   = tele.Btn{Unique: "diff"}
)

// difficultyChoices maps button labels to selectors, in display order
var difficultyChoices = []struct {
	Label    string
	Selector domain.Selector
}{
	{"🔀 All words", domain.SelectorAll},
	{"🟢 Easy", domain.Selector(domain.TierEasy)},
	{"🟡 Medium", domain.Selector(domain.TierMedium)},
	{"🔴 Hard", domain.Selector(domain.TierHard)},
	{"❗ Failed words", domain.SelectorFailed},
}

// handleStartQuiz starts a session over the currently selected subset
func (h *Handler) handleStartQuiz(c tele.Context) error {
	h.rememberChat(c.Chat())

	h.engine.Initialize(h.engine.Snapshot().Selector)
	snap := h.engine.Snapshot()

	h.logger.Info("Quiz started",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("selector", string(snap.Selector)),
		zap.Int("deck_size", snap.DeckSize),
	)

	return h.sendQuizState(c, snap)
}

// handleAnswer accepts a multiple-choice answer by button index
func (h *Handler) handleAnswer(c tele.Context) error {
	h.rememberChat(c.Chat())

	idx, err := strconv.Atoi(cleanCallbackData(c.Data()))
	if err != nil {
		h.logger.Warn("Malformed answer callback", zap.String("data", c.Data()))
		return c.Respond()
	}

	h.engine.SubmitChoice(idx)
	snap := h.engine.Snapshot()

	if !snap.HasAnswered {
		// Double tap or stale button; the engine ignored it
		return c.Respond()
	}

	if err := c.Edit(formatFeedback(snap)); err != nil {
		h.logger.Debug("Failed to edit question message", zap.Error(err))
		return c.Send(formatFeedback(snap))
	}
	return c.Respond()
}

// handleText treats any plain message as a typed answer
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())
	if strings.HasPrefix(text, "/") {
		return nil
	}

	h.rememberChat(c.Chat())

	h.engine.SubmitText(text)
	snap := h.engine.Snapshot()

	if snap.HasAnswered && snap.Input == text {
		return c.Send(formatFeedback(snap))
	}

	if snap.State == quiz.StateIdle {
		return c.Send("No quiz is running. Use /start to open the menu.", mainMenuMarkup())
	}

	// Submission was ignored (blank input or feedback still on screen)
	return nil
}

// handleToggleMode flips the translation direction
func (h *Handler) handleToggleMode(c tele.Context) error {
	h.engine.SetMode(h.engine.Snapshot().Mode.Flip())
	snap := h.engine.Snapshot()

	if snap.State == quiz.StatePresenting {
		h.rememberChat(c.Chat())
		if err := c.Edit(formatQuestion(snap), answersMarkup(snap)); err != nil {
			h.logger.Debug("Failed to edit question after mode switch", zap.Error(err))
			return c.Send(formatQuestion(snap), answersMarkup(snap))
		}
		return c.Respond()
	}

	if err := c.Edit(modeLine(snap), mainMenuMarkup()); err != nil {
		return c.Send(modeLine(snap), mainMenuMarkup())
	}
	return c.Respond()
}

// handleDifficultyMenu shows the difficulty picker
func (h *Handler) handleDifficultyMenu(c tele.Context) error {
	if !h.engine.Snapshot().MenuOpen {
		h.engine.ToggleMenu()
	}

	menu := &tele.ReplyMarkup{}
	var rows []tele.Row
	for _, choice := range difficultyChoices {
		rows = append(rows, menu.Row(menu.Data(choice.Label, btnDiff.Unique, string(choice.Selector))))
	}
	rows = append(rows, menu.Row(btnMainMenu))
	menu.Inline(rows...)

	if err := c.Edit("🎚 Pick the words to practice:", menu); err != nil {
		return c.Send("🎚 Pick the words to practice:", menu)
	}
	return c.Respond()
}

// handleDifficultyPick starts a fresh session over the picked subset
func (h *Handler) handleDifficultyPick(c tele.Context) error {
	h.rememberChat(c.Chat())

	if h.engine.Snapshot().MenuOpen {
		h.engine.ToggleMenu()
	}

	sel := domain.Selector(cleanCallbackData(c.Data()))
	h.engine.SetDifficulty(sel)
	snap := h.engine.Snapshot()

	h.logger.Info("Difficulty changed",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("selector", string(sel)),
		zap.Int("deck_size", snap.DeckSize),
	)

	return h.sendQuizState(c, snap)
}

// handleRestart goes back to the top of the current deck
func (h *Handler) handleRestart(c tele.Context) error {
	h.rememberChat(c.Chat())

	h.engine.RestartQuiz()
	return h.sendQuizState(c, h.engine.Snapshot())
}

// handleStatsPanel shows the statistics panel
func (h *Handler) handleStatsPanel(c tele.Context) error {
	h.engine.ToggleStatsPanel()
	snap := h.engine.Snapshot()

	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnResetStats),
		menu.Row(btnMainMenu),
	)

	if err := c.Edit(formatStats(snap), menu); err != nil {
		return c.Send(formatStats(snap), menu)
	}
	return c.Respond()
}

// handleResetStats wipes the statistics record
func (h *Handler) handleResetStats(c tele.Context) error {
	h.engine.ResetStats()

	h.logger.Info("Statistics reset", zap.Int64("user_id", c.Sender().ID))

	if err := c.Edit("🗑 Statistics cleared.", mainMenuMarkup()); err != nil {
		return c.Send("🗑 Statistics cleared.", mainMenuMarkup())
	}
	return c.Respond()
}

// handleHelp shows the help panel
func (h *Handler) handleHelp(c tele.Context) error {
	h.engine.ToggleHelp()

	text := "ℹ️ How it works\n\n" +
		"▶️ Start quiz shows a word; answer by tapping a choice or typing " +
		"the translation (case does not matter).\n" +
		"After each answer the result stays on screen for a moment, then " +
		"the next word appears automatically.\n\n" +
		"🎚 Difficulty filters the deck by tier, or practices only words " +
		"you have answered wrong before.\n" +
		"🔄 Switch direction flips between DE → EN and EN → DE.\n" +
		"The deck loops until you restart or pick another subset."

	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnMainMenu))

	if err := c.Edit(text, menu); err != nil {
		return c.Send(text, menu)
	}
	return c.Respond()
}

// sendQuizState renders the engine state after a session-changing action
func (h *Handler) sendQuizState(c tele.Context, snap quiz.Snapshot) error {
	if snap.State == quiz.StateIdle {
		text := "🤷 No words match the current selection.\n\n" + selectorLine(snap)
		if err := c.Edit(text, quizMenuMarkup()); err != nil {
			return c.Send(text, quizMenuMarkup())
		}
		return c.Respond()
	}

	if err := c.Edit(formatQuestion(snap), answersMarkup(snap)); err != nil {
		h.logger.Debug("Failed to edit quiz message, sending new", zap.Error(err))
		return c.Send(formatQuestion(snap), answersMarkup(snap))
	}
	return c.Respond()
}

// formatQuestion renders the presented word
func formatQuestion(snap quiz.Snapshot) string {
	return fmt.Sprintf("Word %d of %d  ·  %s\n\n❓ %s\n\nTap a choice or type the translation.",
		snap.Position+1, snap.DeckSize, modeArrow(snap.Mode), snap.Word.Prompt(snap.Mode))
}

// formatFeedback renders the verdict while the display is frozen
func formatFeedback(snap quiz.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "❓ %s\n\n", snap.Word.Prompt(snap.Mode))

	if snap.LastResult == quiz.VerdictCorrect {
		b.WriteString("✅ Correct!")
	} else {
		fmt.Fprintf(&b, "❌ Wrong. The answer is: %s", snap.Word.Answer(snap.Mode))
	}

	fmt.Fprintf(&b, "\n\n📊 %d/%d (%.0f%%)", snap.Correct, snap.Attempts, snap.Accuracy*100)
	b.WriteString("\n⏳ Next word coming up…")
	return b.String()
}

// formatStats renders the statistics panel
func formatStats(snap quiz.Snapshot) string {
	var b strings.Builder
	b.WriteString("📊 Statistics\n\n")
	fmt.Fprintf(&b, "Correct answers: %d\n", snap.Correct)
	fmt.Fprintf(&b, "Total attempts: %d\n", snap.Attempts)
	fmt.Fprintf(&b, "Accuracy: %.0f%%\n\n", snap.Accuracy*100)
	fmt.Fprintf(&b, "%s\n%s", modeLine(snap), selectorLine(snap))
	if snap.DeckSize > 0 {
		fmt.Fprintf(&b, "\nDeck: %d words, position %d", snap.DeckSize, snap.Position+1)
	}
	return b.String()
}

// answersMarkup builds one button per choice
func answersMarkup(snap quiz.Snapshot) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	var rows []tele.Row
	for i, opt := range snap.Choices {
		rows = append(rows, menu.Row(menu.Data(opt.Text, btnAnswer.Unique, strconv.Itoa(i))))
	}
	rows = append(rows, menu.Row(btnToggleMode, btnRestart))
	rows = append(rows, menu.Row(btnMainMenu))
	menu.Inline(rows...)
	return menu
}

func modeArrow(m domain.Mode) string {
	if m == domain.ModeEnglishGerman {
		return "🇬🇧 → 🇩🇪"
	}
	return "🇩🇪 → 🇬🇧"
}

func modeLine(snap quiz.Snapshot) string {
	return "Direction: " + modeArrow(snap.Mode)
}

func selectorLine(snap quiz.Snapshot) string {
	for _, choice := range difficultyChoices {
		if choice.Selector == snap.Selector {
			return "Subset: " + choice.Label
		}
	}
	return "Subset: " + string(snap.Selector)
}
