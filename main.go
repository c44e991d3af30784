package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/andylilfs0217/andylilfs-blog-backend/api"
	"github.com/andylilfs0217/andylilfs-blog-backend/config"
	"github.com/andylilfs0217/andylilfs-blog-backend/database"
	"github.com/andylilfs0217/andylilfs-blog-backend/secrets"
	"github.com/andylilfs0217/andylilfs-blog-backend/services"
)

// Local development entrypoint: the same handlers the Lambda binaries wrap,
// served over plain HTTP, typically with IS_OFFLINE pointing the store at the
// DynamoDB emulator.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err != nil {
		log.Warn().Msgf("Error loading .env file: %v", err)
	}

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

	handlers := api.NewHandlers(repo, importer, config.GetString(c, config.KeyCORSAllowOrigin, "*"))
	server := api.NewServer(handlers, c)

	errChannel := make(chan error)
	go server.Start(errChannel)
	go listenToInterrupt(errChannel)

	if err := <-errChannel; err != nil {
		log.Error().Msgf("Server stopped: %v", err)
	}
	server.ShutdownGracefully(10 * time.Second)
}

func listenToInterrupt(errChannel chan<- error) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	errChannel <- nil
}
