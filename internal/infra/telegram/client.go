// internal/infra/telegram/client.go
package telegram

import (
	"gopkg.in/telebot.v3"

	domainTelegram "homework_notification_bot/internal/domain/telegram"
)

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage sends a text message to the specified recipient. A failure from
// the bot API is wrapped in a DeliveryError so callers can tell transport
// failures apart from every other error kind.
func (tba *TelebotAdapter) SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	recipient := &telebot.User{ID: recipientChatID} // The tracked student is a direct user chat
	if _, err := tba.bot.Send(recipient, text, options); err != nil {
		return &domainTelegram.DeliveryError{Err: err}
	}
	return nil
}
