package models

import (
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// TimestampFormat is a fixed-width ISO-8601 layout. Fixed width keeps
// lexicographic comparison of two timestamps equivalent to chronological
// comparison, which the list ordering relies on.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// Now returns the current UTC time in the record timestamp format.
func Now() string {
	return time.Now().UTC().Format(TimestampFormat)
}

// Author is the canonical author shape. Early records stored the author as a
// plain string; both decoders below normalize that legacy shape into
// {Name: s} so nothing downstream has to branch on it.
type Author struct {
	Name    string `json:"name" dynamodbav:"name"`
	Picture string `json:"picture" dynamodbav:"picture"`
}

func (a *Author) UnmarshalJSON(data []byte) error {
	var legacy string
	if err := json.Unmarshal(data, &legacy); err == nil {
		a.Name = legacy
		a.Picture = ""
		return nil
	}

	var current struct {
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.Unmarshal(data, &current); err != nil {
		return err
	}
	a.Name = current.Name
	a.Picture = current.Picture
	return nil
}

func (a *Author) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		a.Name = v.Value
		a.Picture = ""
		return nil
	case *types.AttributeValueMemberNULL:
		*a = Author{}
		return nil
	default:
		var current struct {
			Name    string `dynamodbav:"name"`
			Picture string `dynamodbav:"picture"`
		}
		if err := attributevalue.Unmarshal(av, &current); err != nil {
			return err
		}
		a.Name = current.Name
		a.Picture = current.Picture
		return nil
	}
}

// BlogPost represents one blog post as stored in the backing table
type BlogPost struct {
	ID         string `json:"id" dynamodbav:"id"`
	Title      string `json:"title" dynamodbav:"title"`
	Content    string `json:"content" dynamodbav:"content"`
	Author     Author `json:"author" dynamodbav:"author"`
	CoverImage string `json:"coverImage" dynamodbav:"coverImage"`
	Subtitle   string `json:"subtitle" dynamodbav:"subtitle"`
	CreatedAt  string `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt  string `json:"updatedAt" dynamodbav:"updatedAt"`
}

// NewPostInput carries the caller-supplied fields for a brand new post.
// Field content is not validated; empty title or content is accepted.
type NewPostInput struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Author     Author `json:"author"`
	CoverImage string `json:"coverImage"`
	Subtitle   string `json:"subtitle"`
}

// NewBlogPost builds a post with a generated id and current timestamps.
func NewBlogPost(input NewPostInput) BlogPost {
	now := Now()
	return BlogPost{
		ID:         uuid.NewString(),
		Title:      input.Title,
		Content:    input.Content,
		Author:     input.Author,
		CoverImage: input.CoverImage,
		Subtitle:   input.Subtitle,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ExistingPostInput carries the fields of a post keyed by a known external
// identifier, with optional timestamp overrides.
type ExistingPostInput struct {
	ID         string
	Title      string
	Content    string
	Author     Author
	CoverImage string
	Subtitle   string
	CreatedAt  string
	UpdatedAt  string
}

// ReconstructBlogPost builds a post from a known source, such as an imported
// document. A blank ID still gets a generated one; blank timestamps default
// to the current time.
func ReconstructBlogPost(input ExistingPostInput) BlogPost {
	post := BlogPost{
		ID:         input.ID,
		Title:      input.Title,
		Content:    input.Content,
		Author:     input.Author,
		CoverImage: input.CoverImage,
		Subtitle:   input.Subtitle,
		CreatedAt:  input.CreatedAt,
		UpdatedAt:  input.UpdatedAt,
	}
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	now := Now()
	if post.CreatedAt == "" {
		post.CreatedAt = now
	}
	if post.UpdatedAt == "" {
		post.UpdatedAt = now
	}
	return post
}
