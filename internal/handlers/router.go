// internal/handlers/router.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"go_admin_pro/internal/config"
	"go_admin_pro/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

// RouterDeps はルーター構築に必要な依存です。Metrics と MetricsHandler は省略可能。
type RouterDeps struct {
	Logger         *slog.Logger
	DB             *gorm.DB
	Auth           *AuthHandler
	Clients        *ClientHandler
	Verifier       middleware.TokenVerifier
	CORS           config.CORSConfig
	Metrics        *middleware.HTTPMetrics
	MetricsHandler http.Handler
	MetricsPath    string
}

// NewRouter は API のルーティングを組み立てます。main とテストで共通。
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(d.Logger))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   d.CORS.AllowedOrigins,
		AllowedMethods:   d.CORS.AllowedMethods,
		AllowedHeaders:   d.CORS.AllowedHeaders,
		ExposedHeaders:   d.CORS.ExposedHeaders,
		AllowCredentials: d.CORS.AllowCredentials,
		MaxAge:           d.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// --- Public routes ---
	r.Post("/register", d.Auth.Register)
	r.Post("/login", d.Auth.Login)

	// --- Protected routes (Bearer トークン必須) ---
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuthMiddleware(d.Verifier))

		r.Get("/me", d.Auth.Me)

		r.Route("/clients", func(r chi.Router) {
			r.Post("/", d.Clients.CreateClient)
			r.Get("/", d.Clients.ListClients)
			r.Get("/{id}", d.Clients.GetClient)
			r.Put("/{id}", d.Clients.UpdateClient)
			r.Delete("/{id}", d.Clients.DeleteClient)
		})
	})

	// Health Check
	r.Get("/health", healthHandler(d.DB))

	if d.MetricsHandler != nil {
		path := d.MetricsPath
		if path == "" {
			path = config.DefaultMetricsPath
		}
		r.Method(http.MethodGet, path, d.MetricsHandler)
	}

	return r
}

func healthHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.GetLogger(r.Context())
		sqlDB, err := db.DB()
		if err != nil {
			logger.Error("Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(r.Context()); err != nil {
			logger.Error("Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}
