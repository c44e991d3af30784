package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"

	"github.com/andylilfs0217/andylilfs-blog-backend/errs"
)

// Responder builds API Gateway proxy responses. Every response carries a JSON
// content type. When a CORS origin is configured, responses also carry the
// permissive cross-origin headers; with no origin configured the minimal
// policy (content type only) applies.
type Responder struct {
	logger     zerolog.Logger
	corsOrigin string
}

func NewResponder(logger zerolog.Logger, corsOrigin string) Responder {
	return Responder{logger: logger, corsOrigin: corsOrigin}
}

// JSON marshals data and wraps it in a response with the given status.
func (r Responder) JSON(statusCode int, data any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		return r.raw(http.StatusInternalServerError, `{"error":"Internal Server Error"}`)
	}
	return r.raw(statusCode, string(body))
}

// NoContent returns a 204 with an empty body.
func (r Responder) NoContent() events.APIGatewayProxyResponse {
	return r.raw(http.StatusNoContent, "")
}

// Error maps an error to its response. Expected errors carry their own status
// code; anything else is logged and reported as a generic internal error so
// downstream failure detail never reaches the caller.
func (r Responder) Error(err error) events.APIGatewayProxyResponse {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		return r.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Msg(apiErr.GetFullError())
		return r.JSON(apiErr.StatusCode, map[string]string{"error": "Internal Server Error"})
	}

	return r.JSON(apiErr.StatusCode, map[string]string{"error": apiErr.Error()})
}

func (r Responder) raw(statusCode int, body string) events.APIGatewayProxyResponse {
	headers := map[string]string{
		"Content-Type": "application/json",
	}
	if r.corsOrigin != "" {
		headers["Access-Control-Allow-Origin"] = r.corsOrigin
		headers["Access-Control-Allow-Credentials"] = "true"
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Body:       body,
		Headers:    headers,
	}
}
