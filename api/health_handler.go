package api

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder Responder
}

func newHealthHandler(corsOrigin string) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()
	return healthHandler{responder: NewResponder(logger, corsOrigin)}
}

// Check reports a static healthy status.
func (h healthHandler) Check() HandlerFunc {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return h.responder.JSON(http.StatusOK, map[string]string{"message": "This app is healthy!"}), nil
	}
}
