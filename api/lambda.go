package api

// Per-operation constructors for the Lambda entrypoints. Each deployment unit
// is one binary wrapping one handler, so the mains wire only the collaborators
// their operation touches.

func NewCreateBlogPostHandler(store BlogPostStore, corsOrigin string) HandlerFunc {
	return newBlogPostHandler(store, corsOrigin).CreateBlogPost()
}

func NewGetBlogPostHandler(store BlogPostStore, corsOrigin string) HandlerFunc {
	return newBlogPostHandler(store, corsOrigin).GetBlogPost()
}

func NewUpdateBlogPostHandler(store BlogPostStore, corsOrigin string) HandlerFunc {
	return newBlogPostHandler(store, corsOrigin).UpdateBlogPost()
}

func NewDeleteBlogPostHandler(store BlogPostStore, corsOrigin string) HandlerFunc {
	return newBlogPostHandler(store, corsOrigin).DeleteBlogPost()
}

func NewListBlogPostsHandler(store BlogPostStore, corsOrigin string) HandlerFunc {
	return newBlogPostHandler(store, corsOrigin).GetAllBlogPosts()
}

func NewImportFromNotionHandler(importer PageImporter, corsOrigin string) HandlerFunc {
	return newImportHandler(importer, corsOrigin).ImportFromNotion()
}

func NewHealthCheckHandler(corsOrigin string) HandlerFunc {
	return newHealthHandler(corsOrigin).Check()
}
