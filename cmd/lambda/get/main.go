package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/andylilfs0217/andylilfs-blog-backend/api"
	"github.com/andylilfs0217/andylilfs-blog-backend/config"
	"github.com/andylilfs0217/andylilfs-blog-backend/database"
)

func main() {
	c := config.New()

	client, err := database.NewClient(context.Background(), c)
	if err != nil {
		log.Fatal().Err(err).Msg("initializing dynamodb client")
	}
	repo := database.NewBlogPostRepo(client, config.GetString(c, config.KeyBlogPostTable, ""))

	lambda.Start(api.NewGetBlogPostHandler(repo, config.GetString(c, config.KeyCORSAllowOrigin, "*")))
}
