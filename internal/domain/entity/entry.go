package entity

import (
	"fmt"
	"strings"
)

// EntryDelimiter separates the three fields of an inbound message.
// There is no escape sequence: a field containing the delimiter makes the
// message unparseable.
const EntryDelimiter = "|"

// entryFieldCount is the exact number of segments a message must split into.
const entryFieldCount = 3

// Entry is the three-field record extracted from a single chat message.
// It is created per message and discarded once the remote write completes.
type Entry struct {
	// Title becomes the title property of the stored page.
	Title string
	// Category is used verbatim as a single-select option name.
	Category string
	// Content is stored as rich text. Usually a URL, never validated as one.
	Content string
}

// ParseEntry parses text in the "Title | Category | Content" format.
//
// The text is split on EntryDelimiter and must yield exactly three segments.
// Each segment is trimmed of surrounding whitespace and must not be empty.
// On failure no Entry is returned and the error satisfies
// errors.Is(err, ErrInvalidFormat).
//
// Example:
//
//	entry, err := ParseEntry("Learn Go | video coding | https://example.com/go")
//	// entry.Title == "Learn Go", entry.Category == "video coding"
func ParseEntry(text string) (*Entry, error) {
	parts := strings.Split(text, EntryDelimiter)
	if len(parts) != entryFieldCount {
		return nil, fmt.Errorf("%w: expected %d segments, got %d", ErrInvalidFormat, entryFieldCount, len(parts))
	}

	fields := [entryFieldCount]string{"title", "category", "content"}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return nil, &ValidationError{Field: fields[i], Message: "must not be empty"}
		}
	}

	return &Entry{
		Title:    parts[0],
		Category: parts[1],
		Content:  parts[2],
	}, nil
}
