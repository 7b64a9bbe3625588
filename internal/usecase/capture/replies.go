package capture

import "fmt"

// Fixed reply texts sent back to the chat.
const (
	ReplyInvalidFormat = "❌ Invalid format. Please use:\n" +
		"Title | Category | Content\n\n" +
		"Example: Learn Go | video coding | https://example.com/go"

	ReplyFailed = "❌ Failed to save to Notion. Please try again later."
)

// savedReply confirms a stored entry by echoing its title and category.
func savedReply(title, category string) string {
	return fmt.Sprintf("✅ Saved to Notion:\nTitle: %s\nCategory: %s", title, category)
}
