package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mirrors the API Gateway route table for the local server.
func setupRoutes(r chi.Router, handlers Handlers) {
	r.Get("/blog-posts", adapt(handlers.BlogPost.GetAllBlogPosts()))
	r.Get("/blog-post/{id}", adapt(handlers.BlogPost.GetBlogPost()))
	r.Post("/blog-post", adapt(handlers.BlogPost.CreateBlogPost()))
	r.Put("/blog-post/{id}", adapt(handlers.BlogPost.UpdateBlogPost()))
	r.Delete("/blog-post/{id}", adapt(handlers.BlogPost.DeleteBlogPost()))

	r.Post("/blog-post/notion/{id}", adapt(handlers.Import.ImportFromNotion()))

	r.Get("/health", adapt(handlers.Health.Check()))
}
