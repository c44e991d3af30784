package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andylilfs0217/andylilfs-blog-backend/models"
)

type stubImporter struct {
	pageID string
	post   *models.BlogPost
	err    error
	calls  int
}

func (s *stubImporter) Import(ctx context.Context, pageID string) (*models.BlogPost, error) {
	s.calls++
	s.pageID = pageID
	return s.post, s.err
}

func TestImportFromNotion(t *testing.T) {
	post := models.ReconstructBlogPost(models.ExistingPostInput{ID: "page-1", Title: "Imported"})
	importer := &stubImporter{post: &post}
	handler := newImportHandler(importer, "").ImportFromNotion()

	resp, err := handler(context.Background(), events.APIGatewayProxyRequest{
		PathParameters: map[string]string{"id": "page-1"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "page-1", importer.pageID)

	var got models.BlogPost
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &got))
	assert.Equal(t, post, got)
}

func TestImportFromNotionMissingID(t *testing.T) {
	importer := &stubImporter{}
	handler := newImportHandler(importer, "").ImportFromNotion()

	resp, err := handler(context.Background(), events.APIGatewayProxyRequest{})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, importer.calls)
}

func TestImportFromNotionFailureStaysGeneric(t *testing.T) {
	importer := &stubImporter{err: errors.New("notion: API token is invalid")}
	handler := newImportHandler(importer, "").ImportFromNotion()

	resp, err := handler(context.Background(), events.APIGatewayProxyRequest{
		PathParameters: map[string]string{"id": "page-1"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, resp.Body)
	assert.NotContains(t, resp.Body, "token")
}
