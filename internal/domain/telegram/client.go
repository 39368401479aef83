package telegram

import "gopkg.in/telebot.v3"

// Client defines an interface for sending messages via a Telegram bot.
// This helps in decoupling the application logic from the specific bot library.
type Client interface {
	SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error
}

// DeliveryError marks a failure inside the Telegram transport itself. The
// watcher logs these but never reports them back over the same transport.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return "telegram delivery failed: " + e.Err.Error()
}

func (e *DeliveryError) Unwrap() error { return e.Err }
