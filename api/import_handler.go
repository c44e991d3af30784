package api

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/andylilfs0217/andylilfs-blog-backend/errs"
	"github.com/andylilfs0217/andylilfs-blog-backend/models"
)

type PageImporter interface {
	Import(ctx context.Context, pageID string) (*models.BlogPost, error)
}

type importHandler struct {
	responder Responder
	logger    zerolog.Logger
	importer  PageImporter
}

func newImportHandler(importer PageImporter, corsOrigin string) importHandler {
	logger := log.With().Str("handlerName", "importHandler").Logger()

	return importHandler{
		responder: NewResponder(logger, corsOrigin),
		logger:    logger,
		importer:  importer,
	}
}

// ImportFromNotion upserts a blog post from the Notion page named by the path
// id and returns the stored record.
func (h importHandler) ImportFromNotion() HandlerFunc {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		pageID := event.PathParameters["id"]
		if pageID == "" {
			return h.responder.Error(errs.NewBadRequestError("ID is missing")), nil
		}

		post, err := h.importer.Import(ctx, pageID)
		if err != nil {
			return h.responder.Error(errs.NewInternalErrorWithCause("importing notion page failed", err)), nil
		}

		h.logger.Info().Str("pageID", pageID).Msg("imported notion page")
		return h.responder.JSON(http.StatusOK, post), nil
	}
}
