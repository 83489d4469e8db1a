package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart shows the main menu, or the password prompt for strangers
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	if !h.authService.IsAuthorized(userID) {
		return c.Send("Willkommen! This trainer is password protected. Send the password to continue.")
	}

	h.logger.Info("Main menu opened", zap.Int64("user_id", userID))

	text := "🏠 Wortquiz\n\n" +
		"German ↔ English vocabulary trainer.\n" +
		"Answer by tapping a choice or by typing the translation.\n\n" +
		modeLine(h.engine.Snapshot())

	// Works both as a command reply and as a callback edit
	if c.Callback() != nil {
		if err := c.Edit(text, mainMenuMarkup()); err != nil {
			h.logger.Debug("Failed to edit menu message, sending new", zap.Error(err))
			return c.Send(text, mainMenuMarkup())
		}
		return c.Respond()
	}
	return c.Send(text, mainMenuMarkup())
}
