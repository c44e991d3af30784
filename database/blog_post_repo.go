package database

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/andylilfs0217/andylilfs-blog-backend/errs"
	"github.com/andylilfs0217/andylilfs-blog-backend/models"
)

type BlogPostRepo struct {
	client    DynamoAPI
	tableName string
}

func NewBlogPostRepo(client DynamoAPI, tableName string) *BlogPostRepo {
	return &BlogPostRepo{client: client, tableName: tableName}
}

// UpdatePostInput carries the fields an update may replace. Nil fields are
// left untouched on the stored record.
type UpdatePostInput struct {
	Title      *string        `json:"title"`
	Content    *string        `json:"content"`
	Author     *models.Author `json:"author"`
	CoverImage *string        `json:"coverImage"`
	Subtitle   *string        `json:"subtitle"`
}

// Put writes the post unconditionally, overwriting any record with the same id.
func (r *BlogPostRepo) Put(ctx context.Context, post models.BlogPost) error {
	item, err := attributevalue.MarshalMap(post)
	if err != nil {
		return fmt.Errorf("marshaling blog post %s: %w", post.ID, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("putting blog post %s: %w", post.ID, err)
	}
	return nil
}

// Find returns the post with the given id, or errs.ErrNotFound if the table
// has no such record. Not-found is a valid outcome, not a transport failure.
func (r *BlogPostRepo) Find(ctx context.Context, id string) (*models.BlogPost, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       postKey(id),
	})
	if err != nil {
		return nil, fmt.Errorf("getting blog post %s: %w", id, err)
	}
	if len(out.Item) == 0 {
		return nil, fmt.Errorf("blog post %s: %w", id, errs.ErrNotFound)
	}

	var post models.BlogPost
	if err := attributevalue.UnmarshalMap(out.Item, &post); err != nil {
		return nil, fmt.Errorf("unmarshaling blog post %s: %w", id, err)
	}
	return &post, nil
}

// Update reads the current record, merges the supplied fields over it and
// writes the result back with a refreshed updatedAt. The read and the write
// are separate calls, so two concurrent updates to the same id race and the
// later write wins. Updating an id that does not exist creates the record,
// mirroring the unconditional write semantics of Put.
func (r *BlogPostRepo) Update(ctx context.Context, id string, input UpdatePostInput) (*models.BlogPost, error) {
	current, err := r.Find(ctx, id)
	if err != nil && !errs.IsNotFound(err) {
		return nil, err
	}
	if current == nil {
		current = &models.BlogPost{ID: id}
	}

	if input.Title != nil {
		current.Title = *input.Title
	}
	if input.Content != nil {
		current.Content = *input.Content
	}
	if input.Author != nil {
		current.Author = *input.Author
	}
	if input.CoverImage != nil {
		current.CoverImage = *input.CoverImage
	}
	if input.Subtitle != nil {
		current.Subtitle = *input.Subtitle
	}
	current.UpdatedAt = models.Now()

	names := map[string]string{
		"#title":      "title",
		"#content":    "content",
		"#author":     "author",
		"#coverImage": "coverImage",
		"#subtitle":   "subtitle",
		"#createdAt":  "createdAt",
		"#updatedAt":  "updatedAt",
	}
	authorAttr, err := attributevalue.Marshal(current.Author)
	if err != nil {
		return nil, fmt.Errorf("marshaling author for blog post %s: %w", id, err)
	}
	values := map[string]types.AttributeValue{
		":title":      &types.AttributeValueMemberS{Value: current.Title},
		":content":    &types.AttributeValueMemberS{Value: current.Content},
		":author":     authorAttr,
		":coverImage": &types.AttributeValueMemberS{Value: current.CoverImage},
		":subtitle":   &types.AttributeValueMemberS{Value: current.Subtitle},
		":createdAt":  &types.AttributeValueMemberS{Value: current.CreatedAt},
		":updatedAt":  &types.AttributeValueMemberS{Value: current.UpdatedAt},
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key:       postKey(id),
		UpdateExpression: aws.String("SET #title = :title, #content = :content, #author = :author, " +
			"#coverImage = :coverImage, #subtitle = :subtitle, #createdAt = :createdAt, #updatedAt = :updatedAt"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, fmt.Errorf("updating blog post %s: %w", id, err)
	}

	var updated models.BlogPost
	if err := attributevalue.UnmarshalMap(out.Attributes, &updated); err != nil {
		return nil, fmt.Errorf("unmarshaling updated blog post %s: %w", id, err)
	}
	return &updated, nil
}

// Delete removes the record unconditionally. Deleting an absent id succeeds.
func (r *BlogPostRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       postKey(id),
	})
	if err != nil {
		return fmt.Errorf("deleting blog post %s: %w", id, err)
	}
	return nil
}

// FindAll scans the whole table, following pagination cursors. Ordering is
// whatever the store delivers; callers sort.
func (r *BlogPostRepo) FindAll(ctx context.Context) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scanning blog posts: %w", err)
		}

		var page []models.BlogPost
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshaling blog posts: %w", err)
		}
		posts = append(posts, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return posts, nil
}

func postKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}
