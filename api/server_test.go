package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	handler := newHealthHandler("").Check()

	resp, err := handler(context.Background(), events.APIGatewayProxyRequest{})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"This app is healthy!"}`, resp.Body)
}

func TestAdaptTranslatesRequestAndResponse(t *testing.T) {
	var captured events.APIGatewayProxyRequest
	handler := HandlerFunc(func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		captured = event
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusCreated,
			Body:       `{"ok":true}`,
			Headers:    map[string]string{"Content-Type": "application/json"},
		}, nil
	})

	router := chi.NewRouter()
	router.Post("/blog-post/{id}", adapt(handler))

	req := httptest.NewRequest(http.MethodPost, "/blog-post/p1", strings.NewReader(`{"title":"A"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "p1", captured.PathParameters["id"])
	assert.Equal(t, `{"title":"A"}`, captured.Body)
	assert.Equal(t, http.MethodPost, captured.HTTPMethod)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestRouterServesHealth(t *testing.T) {
	handlers := NewHandlers(newStubBlogPostStore(), &stubImporter{}, "")
	router := newRouter(handlers, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"This app is healthy!"}`, rec.Body.String())
}
