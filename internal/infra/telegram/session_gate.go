// internal/infra/telegram/session_gate.go
package telegram

import (
	"context"
	"errors"

	"pinkguard_bot/internal/app"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const loginRequiredText = "Please log in first: /login <email> <password>"

// RequireSession lets the update through only when the sender has an open session.
func RequireSession(ctx context.Context, sessions *app.SessionService, baseLogger *logrus.Entry) telebot.MiddlewareFunc {
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) error {
			_, err := sessions.Current(ctx, c.Sender().ID)
			if err == nil {
				return next(c)
			}

			text := loginRequiredText
			if !errors.Is(err, app.ErrNotLoggedIn) {
				baseLogger.WithError(err).WithField("sender_id", c.Sender().ID).Error("Failed to check session")
				text = "Could not check your session. Please try again later."
			}
			if c.Callback() != nil {
				return c.Respond(&telebot.CallbackResponse{Text: text, ShowAlert: true})
			}
			return c.Send(text)
		}
	}
}
