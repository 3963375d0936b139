// internal/infra/telegram/presenter.go
package telegram

import (
	"context"
	"fmt"
	"strings"

	"pinkguard_bot/internal/app"

	"gopkg.in/telebot.v3"
)

const noPredictionPlaceholder = "—"

// ChatPresenter renders the tracker into the chat the update came from.
type ChatPresenter struct {
	c      telebot.Context
	inputs *app.DateInputs
}

func NewChatPresenter(c telebot.Context, inputs *app.DateInputs) *ChatPresenter {
	return &ChatPresenter{c: c, inputs: inputs}
}

func (p *ChatPresenter) Render(_ context.Context, view app.TrackerView) error {
	return p.c.Send(FormatTrackerView(view))
}

func (p *ChatPresenter) ClearInput(context.Context) error {
	p.inputs.Clear(p.c.Sender().ID)
	return nil
}

// FormatTrackerView draws the average, the prediction and, when there is
// any, the history most recent first.
func FormatTrackerView(view app.TrackerView) string {
	next := noPredictionPlaceholder
	if view.HasPrediction {
		next = view.PredictedNextDate.Display()
	}

	var b strings.Builder
	b.WriteString("🌸 Period Tracker\n\n")
	b.WriteString(fmt.Sprintf("Average cycle: %d days\n", view.AverageCycleLengthDays))
	b.WriteString(fmt.Sprintf("Next period: %s\n", next))

	if view.HistoryVisible {
		b.WriteString("\nHistory:\n")
		for _, d := range view.History {
			b.WriteString(fmt.Sprintf("🌸 %s\n", d.Display()))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

var _ app.HistoryPresenter = (*ChatPresenter)(nil)
