// internal/infra/telegram/tracker_handlers.go
package telegram

import (
	"context"
	"errors"
	"strings"

	"pinkguard_bot/internal/app"
	"pinkguard_bot/internal/domain/cycle"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const askDateText = "Send the first day of your period as YYYY-MM-DD."

// RegisterTrackerHandlers wires the cycle tracker: /period shows it, /add
// records a start date either from its argument or from the next message.
func RegisterTrackerHandlers(
	ctx context.Context,
	b *telebot.Bot,
	tracker *app.TrackerService,
	inputs *app.DateInputs,
	gate telebot.MiddlewareFunc,
	baseLogger *logrus.Entry,
) {
	showTracker := func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "/period",
			"sender_id": c.Sender().ID,
		})
		if err := tracker.OnActivate(ctx, c.Sender().ID, NewChatPresenter(c, inputs)); err != nil {
			handlerLogger.WithError(err).Error("Failed to show tracker")
			return c.Send("Could not load your tracker. Please try again later.")
		}
		return nil
	}
	b.Handle("/period", showTracker, gate)
	b.Handle("/history", showTracker, gate)

	b.Handle("/add", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "/add",
			"sender_id": c.Sender().ID,
		})
		handlerLogger.Info("Command received")

		raw, prompt := resolveAddInput(inputs, c.Sender().ID, c.Message().Payload)
		if prompt {
			return c.Send(askDateText, &telebot.ReplyMarkup{ForceReply: true})
		}
		return addDate(ctx, c, tracker, inputs, raw, handlerLogger)
	}, gate)

	b.Handle(telebot.OnText, func(c telebot.Context) error {
		if !inputs.Awaiting(c.Sender().ID) {
			return c.Send("I did not understand that. Use /help to see what I can do.")
		}
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "date_input",
			"sender_id": c.Sender().ID,
		})
		return addDate(ctx, c, tracker, inputs, c.Text(), handlerLogger)
	}, gate)
}

// resolveAddInput decides what /add does with its payload. A bare /add opens
// the date input; a second bare /add while it is open submits the empty input.
func resolveAddInput(inputs *app.DateInputs, chatID int64, payload string) (raw string, prompt bool) {
	raw = strings.TrimSpace(payload)
	if raw == "" && !inputs.Awaiting(chatID) {
		inputs.Await(chatID)
		return "", true
	}
	return raw, false
}

func addDate(ctx context.Context, c telebot.Context, tracker *app.TrackerService, inputs *app.DateInputs, raw string, logger *logrus.Entry) error {
	err := tracker.OnAddDate(ctx, c.Sender().ID, raw, NewChatPresenter(c, inputs))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, app.ErrMissingInput):
		return c.Send("Please select a date")
	case errors.Is(err, cycle.ErrInvalidDate):
		logger.WithField("input", raw).Info("Rejected date input")
		return c.Send("That is not a valid date. " + askDateText)
	default:
		logger.WithError(err).Error("Failed to add cycle start")
		return c.Send("Could not save the date. Please try again later.")
	}
}
