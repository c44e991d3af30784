package api

// Handlers bundles every request handler with its collaborators. Collaborators
// are constructed once at process start and injected here; nothing is
// initialized lazily per request.
type Handlers struct {
	BlogPost blogPostHandler
	Import   importHandler
	Health   healthHandler
}

func NewHandlers(store BlogPostStore, importer PageImporter, corsOrigin string) Handlers {
	return Handlers{
		BlogPost: newBlogPostHandler(store, corsOrigin),
		Import:   newImportHandler(importer, corsOrigin),
		Health:   newHealthHandler(corsOrigin),
	}
}
