package notify

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramAlerter mirrors high-priority alerts into a staff chat.
// Optional: the dispatcher works without one.
type TelegramAlerter struct {
	BotAPI *tgbotapi.BotAPI
	ChatID int64
}

// NewTelegramAlerter authorizes the bot and targets the given chat.
func NewTelegramAlerter(token string, chatID int64) (*TelegramAlerter, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("Staff alert bot authorized on account %s", bot.Self.UserName)

	return &TelegramAlerter{BotAPI: bot, ChatID: chatID}, nil
}

func (a *TelegramAlerter) Alert(text string) error {
	msg := tgbotapi.NewMessage(a.ChatID, text)
	_, err := a.BotAPI.Send(msg)
	return err
}
