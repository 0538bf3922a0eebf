package main

import (
	"fmt"
	"net/http"

	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/popacta/draftboard/go/internal/httpapi"
)

func setupServer(cfg *Config, services *Services) *http.Server {
	handler := httpapi.NewHandler(
		services.Players,
		services.Draft,
		services.Ranking,
		services.Importer,
		services.Welcome,
	)
	mux := httpapi.SetupRoutes(handler)

	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"*"},
	})

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: h2c.NewHandler(c.Handler(mux), &http2.Server{}),
	}
}
