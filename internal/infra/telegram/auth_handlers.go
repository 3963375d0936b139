// internal/infra/telegram/auth_handlers.go
package telegram

import (
	"context"
	"errors"

	"pinkguard_bot/internal/app"
	"pinkguard_bot/internal/infra/auth"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RegisterAuthHandlers registers /login and /logout.
func RegisterAuthHandlers(ctx context.Context, b *telebot.Bot, sessions *app.SessionService, baseLogger *logrus.Entry) {
	b.Handle("/login", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "/login",
			"sender_id": c.Sender().ID,
		})
		handlerLogger.Info("Command received")

		// The message carries a password; do not leave it in the chat.
		if err := c.Delete(); err != nil {
			handlerLogger.WithError(err).Warn("Could not delete login message")
		}

		args := c.Args()
		var email, password string
		if len(args) > 0 {
			email = args[0]
		}
		if len(args) > 1 {
			password = args[1]
		}

		err := sessions.Login(ctx, c.Sender().ID, email, password)
		return c.Send(loginReply(err, handlerLogger))
	})

	b.Handle("/logout", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "/logout",
			"sender_id": c.Sender().ID,
		})
		if err := sessions.Logout(ctx, c.Sender().ID); err != nil {
			handlerLogger.WithError(err).Error("Failed to log out")
			return c.Send("Could not log you out. Please try again later.")
		}
		handlerLogger.Info("Logged out")
		return c.Send("You have been logged out. Use /login <email> <password> to sign in again.")
	})
}

// loginReply maps the login outcome to what the user sees.
func loginReply(err error, logger *logrus.Entry) string {
	var rejected *auth.RejectedError
	switch {
	case err == nil:
		return "Welcome! Use /period to open your tracker, /symptoms for a symptom check or /nutrition for food tips."
	case errors.Is(err, app.ErrMissingCredentials):
		return "Please fill all fields: /login <email> <password>"
	case errors.As(err, &rejected):
		return rejected.Message
	case errors.Is(err, auth.ErrUnreachable):
		logger.WithError(err).Warn("Auth backend unreachable")
		return "Backend not reachable."
	default:
		logger.WithError(err).Error("Login failed")
		return "Something went wrong while logging in. Please try again later."
	}
}
