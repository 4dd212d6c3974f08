package router

import (
	"log/slog"
	"net/http"
	"time"

	"timesheet/config"
	"timesheet/handlers"
	"timesheet/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Dependencies struct {
	Config  *config.Config
	Logger  *slog.Logger
	Tokens  *middleware.TokenManager
	Users   middleware.UserLoader
	Auth    *handlers.AuthHandler
	Export  *handlers.ExportHandler
	GraphQL http.Handler
	Ping    handlers.Pinger
}

func New(deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           int((12 * time.Hour).Seconds()),
	}))
	if deps.Config.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(deps.Config.RequestTimeout))
	}

	r.Get("/health", handlers.Health(deps.Ping, deps.Logger))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", deps.Auth.Login)
		r.Post("/register", deps.Auth.Register)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(deps.Tokens, deps.Users, deps.Logger))

		r.Handle("/graphql", deps.GraphQL)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/time-entries/export-csv", deps.Export.ExportCSV)
		})
	})

	return r
}
