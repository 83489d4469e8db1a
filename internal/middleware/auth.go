package middleware

import (
	"wortquiz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AuthMiddleware gates every update behind the shared password.
// /start passes through so newcomers see the prompt; the first message
// matching the password authorizes the sender.
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if authService.IsAuthorized(userID) || c.Text() == "/start" {
				return next(c)
			}

			// Ignore button taps from strangers
			if c.Callback() != nil {
				return c.Respond()
			}

			if authService.CheckPassword(c.Text()) {
				authService.Authorize(userID)
				logger.Info("User authorized", zap.Int64("user_id", userID))
				return c.Send("Access granted. Use /start to open the menu.")
			}

			return c.Send("This trainer is password protected. Send the password to continue.")
		}
	}
}
