// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pinkguard_bot/internal/app"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func RegisterBotCommands(
	ctx context.Context,
	b *telebot.Bot,
	sessions *app.SessionService,
	baseLogger *logrus.Entry,
) {
	startHelpLogger := baseLogger.WithField("handler_group", "start_help")

	b.Handle("/start", func(c telebot.Context) error {
		senderID := c.Sender().ID
		logCtx := startHelpLogger.WithField("command", "/start").WithField("sender_id", senderID)
		logCtx.Info("Processing /start command")

		email, err := sessions.Current(ctx, senderID)
		switch {
		case err == nil:
			logCtx.Info("User has an open session")
			return c.Send(fmt.Sprintf("Welcome back, %s! Use /period to open your tracker or /help for all commands.", email))
		case errors.Is(err, app.ErrNotLoggedIn):
			logCtx.Info("User has no session")
			return c.Send("Hi! I help you track your cycle and check symptoms. Please log in with /login <email> <password>.")
		default:
			logCtx.WithError(err).Error("Error checking session for /start command")
			return c.Send("Could not check your session. Please try again later.")
		}
	})

	b.Handle("/help", func(c telebot.Context) error {
		startHelpLogger.WithField("command", "/help").WithField("sender_id", c.Sender().ID).Info("Processing /help command")
		return c.Send(HelpText())
	})
}

// HelpText lists the available commands.
func HelpText() string {
	var helpText strings.Builder
	helpText.WriteString("Available commands:\n\n")
	helpText.WriteString("/login <email> <password> - sign in\n")
	helpText.WriteString("/logout - sign out\n")
	helpText.WriteString("/period - show your cycle tracker\n")
	helpText.WriteString("/add [YYYY-MM-DD] - record the first day of a period\n")
	helpText.WriteString("/symptoms [breast|pcos|iron] - symptom checklist\n")
	helpText.WriteString("/nutrition [breast|pcos|iron] - food recommendations\n")
	helpText.WriteString("/help - show this message")
	return helpText.String()
}
