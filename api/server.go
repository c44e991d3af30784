package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/andylilfs0217/andylilfs-blog-backend/config"
)

// Server hosts the Lambda handlers behind a plain HTTP listener for local
// development against the DynamoDB emulator.
type Server struct {
	*http.Server
}

func NewServer(handlers Handlers, c map[string]string) Server {
	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 60)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 60)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 60)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      newRouter(handlers, c),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server}
}

func newRouter(handlers Handlers, c map[string]string) *chi.Mux {
	router := chi.NewRouter()

	if origin := config.GetString(c, config.KeyCORSAllowOrigin, ""); origin != "" {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{origin},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	setupRoutes(router, handlers)
	return router
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}

// adapt translates a chi request into a proxy event, runs the handler and
// writes its HTTP-shaped result back out.
func adapt(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "error reading request body", http.StatusInternalServerError)
			return
		}

		event := events.APIGatewayProxyRequest{
			HTTPMethod:     r.Method,
			Path:           r.URL.Path,
			Body:           string(body),
			PathParameters: map[string]string{},
		}
		if id := chi.URLParam(r, "id"); id != "" {
			event.PathParameters["id"] = id
		}

		resp, err := h(r.Context(), event)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			io.WriteString(w, resp.Body)
		}
	}
}
