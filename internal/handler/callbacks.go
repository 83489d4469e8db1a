package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// splitCallback separates a "unique|payload" callback string
func splitCallback(data string) (unique, payload string) {
	unique, payload, _ = strings.Cut(data, "|")
	return unique, payload
}

// handleCallback catches callbacks that did not match a registered button,
// which some clients produce by replaying old keyboards
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	unique, _ := splitCallback(cleanCallbackData(callback.Data))

	switch unique {
	case btnStartQuiz.Unique:
		return h.handleStartQuiz(c)
	case btnToggleMode.Unique:
		return h.handleToggleMode(c)
	case btnDifficulty.Unique:
		return h.handleDifficultyMenu(c)
	case btnRestart.Unique:
		return h.handleRestart(c)
	case btnStatsPanel.Unique:
		return h.handleStatsPanel(c)
	case btnResetStats.Unique:
		return h.handleResetStats(c)
	case btnHelp.Unique:
		return h.handleHelp(c)
	case btnMainMenu.Unique:
		return h.handleStart(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", callback.Data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)
	return c.Respond()
}
