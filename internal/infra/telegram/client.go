// internal/infra/telegram/client.go
package telegram

import (
	"fmt"

	"gopkg.in/telebot.v3"
)

// TelebotAdapter sends scheduled messages, such as cycle reminders, through the bot.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage delivers text to a private chat outside of an update handler.
func (tba *TelebotAdapter) SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	recipient := &telebot.User{ID: recipientChatID} // Users talk to the bot in private chats
	if _, err := tba.bot.Send(recipient, text, options); err != nil {
		return fmt.Errorf("failed to send message to chat %d: %w", recipientChatID, err)
	}
	return nil
}
