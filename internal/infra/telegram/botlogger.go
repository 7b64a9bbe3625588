package telegram

import (
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// slogBotLogger routes the Bot API client's own log lines to slog.
// The client uses Println for polling errors and Printf for the request and
// response dumps enabled by Debug, so the former log at warn level.
type slogBotLogger struct {
	logger *slog.Logger
}

func (l slogBotLogger) Println(v ...interface{}) {
	l.logger.Warn(strings.TrimSuffix(fmt.Sprintln(v...), "\n"), slog.String("component", "tgbotapi"))
}

func (l slogBotLogger) Printf(format string, v ...interface{}) {
	l.logger.Debug(strings.TrimSuffix(fmt.Sprintf(format, v...), "\n"), slog.String("component", "tgbotapi"))
}

// UseLogger makes the Bot API client log through logger.
// The client library keeps a single package-level logger.
func UseLogger(logger *slog.Logger) {
	_ = tgbotapi.SetLogger(slogBotLogger{logger: logger})
}
