package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/andylilfs0217/andylilfs-blog-backend/api"
	"github.com/andylilfs0217/andylilfs-blog-backend/config"
	"github.com/andylilfs0217/andylilfs-blog-backend/database"
	"github.com/andylilfs0217/andylilfs-blog-backend/secrets"
	"github.com/andylilfs0217/andylilfs-blog-backend/services"
)

func main() {
	ctx := context.Background()
	c := config.New()

	dynamoClient, err := database.NewClient(ctx, c)
	if err != nil {
		log.Fatal().Err(err).Msg("initializing dynamodb client")
	}
	repo := database.NewBlogPostRepo(dynamoClient, config.GetString(c, config.KeyBlogPostTable, ""))

	secretsClient, err := secrets.NewClient(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("initializing secrets manager client")
	}

	importer := services.NewNotionImporter(
		secrets.NewGateway(secretsClient),
		repo,
		config.GetString(c, config.KeyNotionSecret, "prod/AndyBlog/Notion"),
	)

	lambda.Start(api.NewImportFromNotionHandler(importer, config.GetString(c, config.KeyCORSAllowOrigin, "*")))
}
