// Package config loads the credentials the bot cannot start without.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Required environment variable names.
const (
	EnvTelegramBotToken = "TELEGRAM_BOT_TOKEN"
	EnvNotionToken      = "NOTION_TOKEN"
	EnvNotionDatabaseID = "NOTION_DATABASE_ID"
)

// Credentials holds the secrets and identifiers read once at startup.
// None of them has a default.
type Credentials struct {
	// TelegramBotToken authenticates the bot against the Telegram Bot API.
	TelegramBotToken string

	// NotionToken is the internal integration token for the Notion API.
	NotionToken string

	// NotionDatabaseID is the destination database for captured entries.
	NotionDatabaseID string
}

// MissingCredentialsError lists every required variable that was unset or blank.
type MissingCredentialsError struct {
	Keys []string
}

func (e *MissingCredentialsError) Error() string {
	return fmt.Sprintf("missing required environment variables: %s", strings.Join(e.Keys, ", "))
}

// LoadCredentials reads the required credentials from the environment.
//
// Blank values count as missing. All missing keys are reported together so an
// operator can fix the deployment in one pass.
//
// Returns:
//   - *Credentials: populated credentials on success
//   - error: *MissingCredentialsError if any key is absent
func LoadCredentials() (*Credentials, error) {
	var missing []string
	read := func(key string) string {
		value := strings.TrimSpace(os.Getenv(key))
		if value == "" {
			missing = append(missing, key)
		}
		return value
	}

	creds := &Credentials{
		TelegramBotToken: read(EnvTelegramBotToken),
		NotionToken:      read(EnvNotionToken),
		NotionDatabaseID: read(EnvNotionDatabaseID),
	}

	if len(missing) > 0 {
		return nil, &MissingCredentialsError{Keys: missing}
	}

	return creds, nil
}
