package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/andylilfs0217/andylilfs-blog-backend/api"
	"github.com/andylilfs0217/andylilfs-blog-backend/config"
)

func main() {
	c := config.New()
	lambda.Start(api.NewHealthCheckHandler(config.GetString(c, config.KeyCORSAllowOrigin, "*")))
}
