package notion

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"
)

// Narrow views over the Notion SDK services, so tests can stand in for them.
type pageGetter interface {
	Get(ctx context.Context, id notionapi.PageID) (*notionapi.Page, error)
}

type userGetter interface {
	Get(ctx context.Context, id notionapi.UserID) (*notionapi.User, error)
}

type blockChildLister interface {
	GetChildren(ctx context.Context, id notionapi.BlockID, pagination *notionapi.Pagination) (*notionapi.GetChildrenResponse, error)
}

// Client is a read-only view of the Notion API: one page by id, the page
// creator's user record, and the page body rendered as Markdown.
type Client struct {
	pages  pageGetter
	users  userGetter
	blocks blockChildLister
}

// NewClient authenticates against the Notion API with an integration token.
func NewClient(token string) *Client {
	c := notionapi.NewClient(notionapi.Token(token))
	return &Client{pages: c.Page, users: c.User, blocks: c.Block}
}

func (c *Client) GetPage(ctx context.Context, pageID string) (*notionapi.Page, error) {
	page, err := c.pages.Get(ctx, notionapi.PageID(pageID))
	if err != nil {
		return nil, fmt.Errorf("retrieving notion page %s: %w", pageID, err)
	}
	return page, nil
}

func (c *Client) GetUser(ctx context.Context, userID string) (*notionapi.User, error) {
	user, err := c.users.Get(ctx, notionapi.UserID(userID))
	if err != nil {
		return nil, fmt.Errorf("retrieving notion user %s: %w", userID, err)
	}
	return user, nil
}

// PageToMarkdown fetches all top-level blocks of the page, following
// pagination cursors, and renders them as one Markdown string.
func (c *Client) PageToMarkdown(ctx context.Context, pageID string) (string, error) {
	var blocks []notionapi.Block
	pagination := &notionapi.Pagination{PageSize: 100}

	for {
		resp, err := c.blocks.GetChildren(ctx, notionapi.BlockID(pageID), pagination)
		if err != nil {
			return "", fmt.Errorf("listing blocks of notion page %s: %w", pageID, err)
		}
		blocks = append(blocks, resp.Results...)

		if !resp.HasMore {
			break
		}
		pagination.StartCursor = notionapi.Cursor(resp.NextCursor)
	}

	return RenderMarkdown(blocks), nil
}
