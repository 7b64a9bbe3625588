// Package notion stores captured entries as pages in a Notion database.
package notion

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"

	"notion-inbox/internal/domain/entity"
	"notion-inbox/internal/repository"
)

// singleAttempt disables the client's 429 retry loop. The client counts the
// first request against this budget.
const singleAttempt = 1

// EntryRepo implements repository.EntryRepository on top of the pages API.
type EntryRepo struct {
	pages  notionapi.PageService
	config Config
}

// NewEntryRepo creates an EntryRepo bound to config.DatabaseID.
//
// The underlying client issues exactly one request per Save. There is no
// timeout unless config.HTTPClient carries one.
//
// Returns:
//   - *EntryRepo: ready to use repository
//   - error: invalid configuration
func NewEntryRepo(config Config) (*EntryRepo, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid notion configuration: %w", err)
	}

	opts := []notionapi.ClientOption{notionapi.WithRetry(singleAttempt)}
	if config.HTTPClient != nil {
		opts = append(opts, notionapi.WithHTTPClient(config.HTTPClient))
	}
	client := notionapi.NewClient(notionapi.Token(config.Token), opts...)

	return &EntryRepo{pages: client.Page, config: config}, nil
}

var _ repository.EntryRepository = (*EntryRepo)(nil)

// Save creates one page for the entry.
//
// Cancellation of ctx after the call is issued does not abort it: the write
// either completes or fails on its own.
func (r *EntryRepo) Save(ctx context.Context, entry *entity.Entry) error {
	if entry == nil {
		return &repository.PersistenceError{Kind: repository.FailureValidation, Err: fmt.Errorf("nil entry")}
	}

	_, err := r.pages.Create(context.WithoutCancel(ctx), r.buildPageRequest(entry))
	if err != nil {
		return &repository.PersistenceError{Kind: classify(err), Err: fmt.Errorf("create page: %w", err)}
	}
	return nil
}

// buildPageRequest maps the entry onto the three configured columns.
// Category is sent verbatim; Notion decides whether the option is created.
func (r *EntryRepo) buildPageRequest(entry *entity.Entry) *notionapi.PageCreateRequest {
	return &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(r.config.DatabaseID),
		},
		Properties: notionapi.Properties{
			r.config.TitleProperty: notionapi.TitleProperty{
				Title: richText(entry.Title),
			},
			r.config.CategoryProperty: notionapi.SelectProperty{
				Select: notionapi.Option{Name: entry.Category},
			},
			r.config.ContentProperty: notionapi.RichTextProperty{
				RichText: richText(entry.Content),
			},
		},
	}
}

func richText(s string) []notionapi.RichText {
	return []notionapi.RichText{{Text: &notionapi.Text{Content: s}}}
}
