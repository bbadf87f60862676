package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"mamaeEmFormaAPI/middleware"
)

// RouterConfig carries everything the HTTP surface is built from. Nil
// optional fields switch the matching feature off.
type RouterConfig struct {
	Progress     *ProgressHandler
	Catalog      *CatalogHandler
	Notification *NotificationHandler
	Verifier     middleware.TokenVerifier

	Health         func(ctx context.Context) error
	Metrics        *middleware.HTTPMetrics
	RateLimiter    *middleware.RateLimiter
	MetricsHandler http.Handler
	MetricsUser    string
	MetricsPass    string
	PprofHandler   http.Handler
	PprofSecret    string
}

func NewRouter(cfg RouterConfig) *mux.Router {
	r := mux.NewRouter()

	standardRouter := r.PathPrefix("/").Subrouter()
	if cfg.RateLimiter != nil {
		standardRouter.Use(cfg.RateLimiter.Middleware)
	}
	if cfg.Metrics != nil {
		standardRouter.Use(cfg.Metrics.Middleware)
	}

	if cfg.MetricsHandler != nil {
		standardRouter.Handle("/metrics", middleware.BasicAuthMiddleware(cfg.MetricsUser, cfg.MetricsPass)(cfg.MetricsHandler))
	}
	if cfg.PprofHandler != nil {
		standardRouter.PathPrefix("/debug/pprof/").Handler(middleware.PprofSecurityMiddleware(cfg.PprofSecret)(cfg.PprofHandler))
	}

	standardRouter.HandleFunc("/health", healthHandler(cfg.Health)).Methods("GET")

	api := standardRouter.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/meals", cfg.Catalog.GetMeals).Methods("GET")
	api.HandleFunc("/videos", cfg.Catalog.GetVideos).Methods("GET")
	api.HandleFunc("/faqs", cfg.Catalog.GetFAQs).Methods("GET")
	api.HandleFunc("/quote/{day}", cfg.Catalog.GetQuote).Methods("GET")

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.Verifier))

	protected.HandleFunc("/progress", cfg.Progress.GetProgress).Methods("GET")
	protected.HandleFunc("/progress", cfg.Progress.UpdateProgress).Methods("PATCH")
	protected.HandleFunc("/progress/exercise/{id}/toggle", cfg.Progress.ToggleExercise).Methods("POST")
	protected.HandleFunc("/progress/recipe/{id}/toggle", cfg.Progress.ToggleFavoriteRecipe).Methods("POST")
	protected.HandleFunc("/progress/shopping/{id}/toggle", cfg.Progress.ToggleShoppingItem).Methods("POST")
	protected.HandleFunc("/progress/video/{id}/toggle", cfg.Progress.ToggleVideoWatched).Methods("POST")
	protected.HandleFunc("/progress/diastasis", cfg.Progress.SetDiastasisResult).Methods("POST")
	protected.HandleFunc("/progress/birth-type", cfg.Progress.SetBirthType).Methods("POST")
	protected.HandleFunc("/progress/advance-day", cfg.Progress.AdvanceDay).Methods("POST")
	protected.HandleFunc("/progress/reset-cycle", cfg.Progress.ResetCycle).Methods("POST")

	protected.HandleFunc("/exercises", cfg.Catalog.GetExercises).Methods("GET")
	protected.HandleFunc("/shopping", cfg.Catalog.GetShoppingList).Methods("GET")

	if cfg.Notification != nil {
		protected.HandleFunc("/notifications/register-device", cfg.Notification.RegisterDevice).Methods("POST")
	}

	return r
}

func healthHandler(ping func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if ping != nil {
			if err := ping(ctx); err != nil {
				respondWithJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "unhealthy",
					"error":  "database connection failed",
				})
				return
			}
		}

		respondWithJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": "mamae-em-forma-api",
		})
	}
}
