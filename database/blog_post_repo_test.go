package database

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andylilfs0217/andylilfs-blog-backend/errs"
	"github.com/andylilfs0217/andylilfs-blog-backend/models"
)

// stubDynamo records inputs and plays back canned outputs. UpdateItem echoes
// the expression values back as ALL_NEW attributes, like the real service.
type stubDynamo struct {
	putInput    *dynamodb.PutItemInput
	getInput    *dynamodb.GetItemInput
	updateInput *dynamodb.UpdateItemInput
	deleteInput *dynamodb.DeleteItemInput
	scanCalls   int

	getOutput   *dynamodb.GetItemOutput
	scanOutputs []*dynamodb.ScanOutput
	err         error
}

func (s *stubDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	s.putInput = params
	return &dynamodb.PutItemOutput{}, s.err
}

func (s *stubDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	s.getInput = params
	if s.err != nil {
		return nil, s.err
	}
	if s.getOutput == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return s.getOutput, nil
}

func (s *stubDynamo) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	s.updateInput = params
	if s.err != nil {
		return nil, s.err
	}

	attrs := map[string]types.AttributeValue{}
	for k, v := range params.Key {
		attrs[k] = v
	}
	for placeholder, value := range params.ExpressionAttributeValues {
		attrs[strings.TrimPrefix(placeholder, ":")] = value
	}
	return &dynamodb.UpdateItemOutput{Attributes: attrs}, nil
}

func (s *stubDynamo) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	s.deleteInput = params
	return &dynamodb.DeleteItemOutput{}, s.err
}

func (s *stubDynamo) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := s.scanOutputs[s.scanCalls]
	s.scanCalls++
	return out, nil
}

func itemForPost(t *testing.T, post models.BlogPost) map[string]types.AttributeValue {
	t.Helper()
	return map[string]types.AttributeValue{
		"id":      &types.AttributeValueMemberS{Value: post.ID},
		"title":   &types.AttributeValueMemberS{Value: post.Title},
		"content": &types.AttributeValueMemberS{Value: post.Content},
		"author": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"name":    &types.AttributeValueMemberS{Value: post.Author.Name},
			"picture": &types.AttributeValueMemberS{Value: post.Author.Picture},
		}},
		"coverImage": &types.AttributeValueMemberS{Value: post.CoverImage},
		"subtitle":   &types.AttributeValueMemberS{Value: post.Subtitle},
		"createdAt":  &types.AttributeValueMemberS{Value: post.CreatedAt},
		"updatedAt":  &types.AttributeValueMemberS{Value: post.UpdatedAt},
	}
}

func TestPutMarshalsRecord(t *testing.T) {
	stub := &stubDynamo{}
	repo := NewBlogPostRepo(stub, "blog-posts")

	post := models.NewBlogPost(models.NewPostInput{Title: "A", Content: "B", Author: models.Author{Name: "C"}})
	require.NoError(t, repo.Put(context.Background(), post))

	require.NotNil(t, stub.putInput)
	assert.Equal(t, "blog-posts", aws.ToString(stub.putInput.TableName))

	id, ok := stub.putInput.Item["id"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, post.ID, id.Value)
}

func TestFindReturnsRecord(t *testing.T) {
	stored := models.BlogPost{
		ID: "p1", Title: "A", Content: "B",
		Author:    models.Author{Name: "C"},
		CreatedAt: "2023-01-01T00:00:00.000Z",
		UpdatedAt: "2023-01-01T00:00:00.000Z",
	}
	stub := &stubDynamo{getOutput: &dynamodb.GetItemOutput{Item: itemForPost(t, stored)}}
	repo := NewBlogPostRepo(stub, "blog-posts")

	post, err := repo.Find(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, stored, *post)
}

func TestFindNormalizesLegacyAuthor(t *testing.T) {
	item := itemForPost(t, models.BlogPost{ID: "p1"})
	item["author"] = &types.AttributeValueMemberS{Value: "Andy"}
	stub := &stubDynamo{getOutput: &dynamodb.GetItemOutput{Item: item}}
	repo := NewBlogPostRepo(stub, "blog-posts")

	post, err := repo.Find(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, models.Author{Name: "Andy"}, post.Author)
}

func TestFindNotFound(t *testing.T) {
	stub := &stubDynamo{}
	repo := NewBlogPostRepo(stub, "blog-posts")

	_, err := repo.Find(context.Background(), "missing")
	assert.True(t, errs.IsNotFound(err))
}

func TestFindPropagatesTransportFailure(t *testing.T) {
	stub := &stubDynamo{err: errors.New("connection reset")}
	repo := NewBlogPostRepo(stub, "blog-posts")

	_, err := repo.Find(context.Background(), "p1")
	require.Error(t, err)
	assert.False(t, errs.IsNotFound(err))
}

func TestUpdateMergesPartialFields(t *testing.T) {
	stored := models.BlogPost{
		ID: "p1", Title: "A", Content: "B",
		Author:    models.Author{Name: "C"},
		CreatedAt: "2023-01-01T00:00:00.000Z",
		UpdatedAt: "2023-01-01T00:00:00.000Z",
	}
	stub := &stubDynamo{getOutput: &dynamodb.GetItemOutput{Item: itemForPost(t, stored)}}
	repo := NewBlogPostRepo(stub, "blog-posts")

	newTitle := "A2"
	updated, err := repo.Update(context.Background(), "p1", UpdatePostInput{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "p1", updated.ID)
	assert.Equal(t, "A2", updated.Title)
	assert.Equal(t, "B", updated.Content, "fields not in the payload stay untouched")
	assert.Equal(t, "C", updated.Author.Name)
	assert.Equal(t, stored.CreatedAt, updated.CreatedAt)
	assert.Greater(t, updated.UpdatedAt, stored.UpdatedAt)

	require.NotNil(t, stub.updateInput)
	assert.Equal(t, types.ReturnValueAllNew, stub.updateInput.ReturnValues)
}

func TestUpdateMissingRecordCreatesIt(t *testing.T) {
	stub := &stubDynamo{}
	repo := NewBlogPostRepo(stub, "blog-posts")

	newTitle := "fresh"
	updated, err := repo.Update(context.Background(), "ghost", UpdatePostInput{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "ghost", updated.ID)
	assert.Equal(t, "fresh", updated.Title)
	assert.Empty(t, updated.Content)
}

func TestDelete(t *testing.T) {
	stub := &stubDynamo{}
	repo := NewBlogPostRepo(stub, "blog-posts")

	require.NoError(t, repo.Delete(context.Background(), "p1"))

	require.NotNil(t, stub.deleteInput)
	key, ok := stub.deleteInput.Key["id"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "p1", key.Value)
}

func TestFindAllFollowsPagination(t *testing.T) {
	first := itemForPost(t, models.BlogPost{ID: "p1", CreatedAt: "2023-01-01T00:00:00.000Z"})
	second := itemForPost(t, models.BlogPost{ID: "p2", CreatedAt: "2023-01-02T00:00:00.000Z"})

	stub := &stubDynamo{scanOutputs: []*dynamodb.ScanOutput{
		{
			Items:            []map[string]types.AttributeValue{first},
			LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "p1"}},
		},
		{Items: []map[string]types.AttributeValue{second}},
	}}
	repo := NewBlogPostRepo(stub, "blog-posts")

	posts, err := repo.FindAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stub.scanCalls)
	require.Len(t, posts, 2)
	assert.Equal(t, "p1", posts[0].ID)
	assert.Equal(t, "p2", posts[1].ID)
}
