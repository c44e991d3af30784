package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jomei/notionapi"

	"github.com/andylilfs0217/andylilfs-blog-backend/errs"
	"github.com/andylilfs0217/andylilfs-blog-backend/models"
	"github.com/andylilfs0217/andylilfs-blog-backend/notion"
)

// Page property names the importer reads from a Notion page.
const (
	titleProperty    = "Title"
	subtitleProperty = "Subtitle"
)

type SecretSource interface {
	GetSecretString(ctx context.Context, name string) (string, error)
}

type PageSource interface {
	GetPage(ctx context.Context, pageID string) (*notionapi.Page, error)
	GetUser(ctx context.Context, userID string) (*notionapi.User, error)
	PageToMarkdown(ctx context.Context, pageID string) (string, error)
}

type PostStore interface {
	Find(ctx context.Context, id string) (*models.BlogPost, error)
	Put(ctx context.Context, post models.BlogPost) error
}

// NotionImporter turns one Notion page into a stored blog post. The Notion
// credential is fetched from the secret store on every run; the client is
// built per run from that credential.
type NotionImporter struct {
	secrets    SecretSource
	store      PostStore
	secretName string
	newClient  func(token string) PageSource
}

func NewNotionImporter(secrets SecretSource, store PostStore, secretName string) *NotionImporter {
	return &NotionImporter{
		secrets:    secrets,
		store:      store,
		secretName: secretName,
		newClient: func(token string) PageSource {
			return notion.NewClient(token)
		},
	}
}

// Import fetches the page with the given id and upserts it as a blog post
// keyed by the page id, so importing the same page twice yields one record.
// A record that already exists keeps its original createdAt.
func (s *NotionImporter) Import(ctx context.Context, pageID string) (*models.BlogPost, error) {
	token, err := s.notionToken(ctx)
	if err != nil {
		return nil, err
	}
	client := s.newClient(token)

	page, err := client.GetPage(ctx, pageID)
	if err != nil {
		return nil, err
	}

	user, err := client.GetUser(ctx, page.CreatedBy.ID.String())
	if err != nil {
		return nil, err
	}

	content, err := client.PageToMarkdown(ctx, pageID)
	if err != nil {
		return nil, err
	}

	author := models.Author{Name: "Unknown", Picture: user.AvatarURL}
	if user.Name != "" {
		author.Name = user.Name
	}

	input := models.ExistingPostInput{
		ID:         pageID,
		Title:      notion.PlainText(titleRuns(page)),
		Content:    content,
		Author:     author,
		CoverImage: notion.ImageURL(page.Cover),
		Subtitle:   notion.PlainText(richTextRuns(page, subtitleProperty)),
	}

	existing, err := s.store.Find(ctx, pageID)
	switch {
	case err == nil:
		input.CreatedAt = existing.CreatedAt
	case !errs.IsNotFound(err):
		return nil, err
	}

	post := models.ReconstructBlogPost(input)
	if err := s.store.Put(ctx, post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *NotionImporter) notionToken(ctx context.Context) (string, error) {
	raw, err := s.secrets.GetSecretString(ctx, s.secretName)
	if err != nil {
		return "", err
	}

	var payload struct {
		NotionSecret string `json:"notion_secret"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return "", fmt.Errorf("parsing secret %s: %w", s.secretName, err)
	}
	if payload.NotionSecret == "" {
		return "", fmt.Errorf("secret %s has no notion_secret field", s.secretName)
	}
	return payload.NotionSecret, nil
}

func titleRuns(page *notionapi.Page) []notionapi.RichText {
	switch prop := page.Properties[titleProperty].(type) {
	case *notionapi.TitleProperty:
		return prop.Title
	case nil:
		return nil
	default:
		return nil
	}
}

func richTextRuns(page *notionapi.Page, name string) []notionapi.RichText {
	switch prop := page.Properties[name].(type) {
	case *notionapi.RichTextProperty:
		return prop.RichText
	case nil:
		return nil
	default:
		return nil
	}
}
