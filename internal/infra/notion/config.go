package notion

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	pkgconfig "notion-inbox/internal/pkg/config"
)

// Default property names of the destination database.
const (
	DefaultTitleProperty    = "Title"
	DefaultCategoryProperty = "Category"
	DefaultContentProperty  = "Content"
)

// Config contains everything the entry repository needs to reach one database.
type Config struct {
	// Token is the Notion internal integration token.
	Token string

	// DatabaseID is the destination database for every entry.
	DatabaseID string

	// TitleProperty is the name of the title-type column.
	TitleProperty string

	// CategoryProperty is the name of the single-select column.
	CategoryProperty string

	// ContentProperty is the name of the rich-text column.
	ContentProperty string

	// HTTPClient overrides the transport used for API calls.
	// A nil value selects a client without timeout.
	HTTPClient *http.Client
}

// Validate reports configuration that would make every write fail.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Token) == "" {
		errs = append(errs, errors.New("notion token is required"))
	}
	if strings.TrimSpace(c.DatabaseID) == "" {
		errs = append(errs, errors.New("notion database id is required"))
	}
	if c.TitleProperty == "" || c.CategoryProperty == "" || c.ContentProperty == "" {
		errs = append(errs, errors.New("notion property names must not be empty"))
	}
	return errors.Join(errs...)
}

// ConfigFromEnv builds a Config for the given credentials and reads the
// optional property names from NOTION_TITLE_PROPERTY, NOTION_CATEGORY_PROPERTY
// and NOTION_CONTENT_PROPERTY. Blank overrides fall back to the defaults with a
// warning.
func ConfigFromEnv(logger *slog.Logger, token, databaseID string) Config {
	property := func(envKey, def string) string {
		result := pkgconfig.LoadEnvWithFallback(envKey, def, pkgconfig.ValidateNotBlank)
		for _, warning := range result.Warnings {
			logger.Warn(warning, slog.String("field", envKey))
		}
		return result.Value
	}

	return Config{
		Token:            token,
		DatabaseID:       databaseID,
		TitleProperty:    property("NOTION_TITLE_PROPERTY", DefaultTitleProperty),
		CategoryProperty: property("NOTION_CATEGORY_PROPERTY", DefaultCategoryProperty),
		ContentProperty:  property("NOTION_CONTENT_PROPERTY", DefaultContentProperty),
	}
}
