package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/andylilfs0217/andylilfs-blog-backend/database"
	"github.com/andylilfs0217/andylilfs-blog-backend/errs"
	"github.com/andylilfs0217/andylilfs-blog-backend/models"
)

// HandlerFunc is the shape of every request handler: one proxy event in, one
// HTTP-shaped result out. Handlers hold no per-request state.
type HandlerFunc func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

type BlogPostStore interface {
	Put(ctx context.Context, post models.BlogPost) error
	Find(ctx context.Context, id string) (*models.BlogPost, error)
	Update(ctx context.Context, id string, input database.UpdatePostInput) (*models.BlogPost, error)
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]models.BlogPost, error)
}

type blogPostHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo BlogPostStore
}

func newBlogPostHandler(blogPostRepo BlogPostStore, corsOrigin string) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:    NewResponder(logger, corsOrigin),
		logger:       logger,
		blogPostRepo: blogPostRepo,
	}
}

// CreateBlogPost stores a new post built from the request body and returns it.
func (h blogPostHandler) CreateBlogPost() HandlerFunc {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		var input models.NewPostInput
		if err := json.Unmarshal([]byte(event.Body), &input); err != nil {
			return h.responder.Error(errs.NewBadRequestError("malformed request body")), nil
		}

		post := models.NewBlogPost(input)
		if err := h.blogPostRepo.Put(ctx, post); err != nil {
			return h.responder.Error(err), nil
		}

		return h.responder.JSON(http.StatusCreated, post), nil
	}
}

// GetBlogPost returns the post named by the path id.
func (h blogPostHandler) GetBlogPost() HandlerFunc {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		id := event.PathParameters["id"]
		if id == "" {
			return h.responder.Error(errs.NewBadRequestError("ID is missing")), nil
		}

		post, err := h.blogPostRepo.Find(ctx, id)
		if err != nil {
			if errs.IsNotFound(err) {
				return h.responder.Error(errs.NewNotFoundError(id)), nil
			}
			return h.responder.Error(err), nil
		}

		return h.responder.JSON(http.StatusOK, post), nil
	}
}

// UpdateBlogPost merges the body fields over the stored post and returns the
// merged record.
func (h blogPostHandler) UpdateBlogPost() HandlerFunc {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		id := event.PathParameters["id"]
		if id == "" {
			return h.responder.Error(errs.NewBadRequestError("ID is missing")), nil
		}

		var input database.UpdatePostInput
		if err := json.Unmarshal([]byte(event.Body), &input); err != nil {
			return h.responder.Error(errs.NewBadRequestError("malformed request body")), nil
		}

		post, err := h.blogPostRepo.Update(ctx, id, input)
		if err != nil {
			return h.responder.Error(err), nil
		}

		return h.responder.JSON(http.StatusOK, post), nil
	}
}

// DeleteBlogPost removes the post named by the path id. Deleting an id that
// was never created still succeeds.
func (h blogPostHandler) DeleteBlogPost() HandlerFunc {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		id := event.PathParameters["id"]
		if id == "" {
			return h.responder.Error(errs.NewBadRequestError("ID is missing")), nil
		}

		if err := h.blogPostRepo.Delete(ctx, id); err != nil {
			return h.responder.Error(err), nil
		}

		return h.responder.NoContent(), nil
	}
}

// GetAllBlogPosts returns every post, newest first. Timestamps are fixed-width
// ISO-8601 strings, so the string comparison is chronological.
func (h blogPostHandler) GetAllBlogPosts() HandlerFunc {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		posts, err := h.blogPostRepo.FindAll(ctx)
		if err != nil {
			return h.responder.Error(err), nil
		}

		sort.Slice(posts, func(i, j int) bool {
			return strings.Compare(posts[i].CreatedAt, posts[j].CreatedAt) > 0
		})

		if posts == nil {
			posts = []models.BlogPost{}
		}

		h.logger.Debug().Int("count", len(posts)).Msg("listed blog posts")
		return h.responder.JSON(http.StatusOK, posts), nil
	}
}
