package telegram

import (
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotAPI is the part of the Telegram Bot API client the listener relies on.
// *tgbotapi.BotAPI satisfies it.
type BotAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// NewBot authenticates with token and returns a ready client.
// The client calls getMe once to verify the token.
//
// Parameters:
//   - token: bot token issued by BotFather
//   - debug: log every API request and response
//   - client: HTTP client for API calls; nil selects http.DefaultClient
func NewBot(token string, debug bool, client *http.Client) (*tgbotapi.BotAPI, error) {
	if client == nil {
		client = http.DefaultClient
	}

	bot, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("connect telegram bot api: %w", err)
	}
	bot.Debug = debug

	return bot, nil
}
