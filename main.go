package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	clerk "github.com/clerk/clerk-sdk-go/v2"
	gorilllaHandlers "github.com/gorilla/handlers"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mamaeEmFormaAPI/handlers"
	"mamaeEmFormaAPI/internal/clock"
	"mamaeEmFormaAPI/internal/config"
	"mamaeEmFormaAPI/internal/lock"
	"mamaeEmFormaAPI/internal/notification"
	"mamaeEmFormaAPI/internal/store"
	"mamaeEmFormaAPI/middleware"
	"mamaeEmFormaAPI/services"

	_ "net/http/pprof"
)

// progressStore is what the process needs from either storage backend.
type progressStore interface {
	services.ProgressStore
	services.DeviceStore
	Ping(ctx context.Context) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	st, closeStore := openStore(ctx, cfg)
	defer closeStore()

	// Firebase clients keep the context they are built with for token refresh.
	appCtx := context.Background()

	var firebaseApp *firebase.App
	if cfg.AuthProvider == config.AuthFirebase || cfg.PushEnabled {
		firebaseApp, err = notification.NewFirebaseApp(appCtx, cfg.FirebaseCredentialsJSON, cfg.FirebaseCredentialsFile)
		if err != nil {
			if cfg.AuthProvider == config.AuthFirebase {
				log.Fatal("Failed to initialize Firebase: ", err)
			}
			log.Printf("Warning: Could not initialize Firebase: %v", err)
		}
	}

	verifier := newVerifier(appCtx, cfg, firebaseApp)

	notificationService := services.NewNotificationService(st)
	defer notificationService.Stop()

	if cfg.PushEnabled && firebaseApp != nil {
		fcmService, err := notification.NewFCMService(appCtx, firebaseApp)
		if err != nil {
			log.Printf("Warning: Could not initialize FCM: %v", err)
		} else {
			notificationService.SetPushProvider(fcmService)
			log.Println("FCM Push Provider initialized successfully")
		}
	}

	progressMetrics := services.NewProgressMetrics(prometheus.DefaultRegisterer)
	httpMetrics := middleware.NewHTTPMetrics(prometheus.DefaultRegisterer)

	progressOpts := []services.ProgressOption{
		services.WithNotifier(notificationService),
		services.WithMetrics(progressMetrics),
		services.WithMaxRetries(cfg.ProgressMaxRetries),
	}
	if cfg.RedisURL != "" {
		redisClient, err := lock.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal("Failed to connect to Redis: ", err)
		}
		defer redisClient.Close()
		progressOpts = append(progressOpts, services.WithLocker(lock.NewRedisLocker(redisClient, cfg.LockTTL)))
		log.Println("Using Redis for per-user progress locks")
	}

	progressService := services.NewProgressService(st, clock.NewSystem(cfg.Location()), progressOpts...)
	catalogService := services.NewCatalogService()

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	defer stopCleanup()
	go rateLimiter.CleanupVisitors(cleanupCtx)

	r := handlers.NewRouter(handlers.RouterConfig{
		Progress:       handlers.NewProgressHandler(progressService),
		Catalog:        handlers.NewCatalogHandler(catalogService, progressService),
		Notification:   handlers.NewNotificationHandler(notificationService),
		Verifier:       verifier,
		Health:         st.Ping,
		Metrics:        httpMetrics,
		RateLimiter:    rateLimiter,
		MetricsHandler: promhttp.Handler(),
		MetricsUser:    cfg.MetricsUser,
		MetricsPass:    cfg.MetricsPass,
		PprofHandler:   http.DefaultServeMux,
		PprofSecret:    cfg.PprofSecret,
	})

	// CORS configuration
	corsHandler := gorilllaHandlers.CORS(
		gorilllaHandlers.AllowedOrigins([]string{"*"}),
		gorilllaHandlers.AllowedMethods([]string{"GET", "POST", "PATCH", "OPTIONS"}),
		gorilllaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Pprof-Secret"}),
		gorilllaHandlers.ExposedHeaders([]string{"Content-Length"}),
	)

	port := ":" + cfg.Port
	server := http.Server{
		Addr:         port,
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	log.Println("Got signal:", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}

func openStore(ctx context.Context, cfg *config.Config) (progressStore, func()) {
	if cfg.Storage == config.StorageMemory {
		log.Println("Using in-memory storage, progress is lost on restart")
		return store.NewMemoryStore(), func() {}
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to parse database URL:", err)
	}

	poolConfig.MaxConns = cfg.DB.MaxConns
	poolConfig.MinConns = cfg.DB.MinConns
	poolConfig.MaxConnLifetime = cfg.DB.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.DB.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = time.Minute

	dbPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal("Failed to create connection pool:", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Fatal("Failed to ping database:", err)
	}
	log.Println("Successfully connected to Postgres")

	pg := store.NewPostgresStore(dbPool)
	if cfg.AutoMigrate {
		if err := pg.Migrate(ctx); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
	}

	return pg, func() {
		log.Println("Closing database connection pool...")
		dbPool.Close()
	}
}

func newVerifier(ctx context.Context, cfg *config.Config, app *firebase.App) middleware.TokenVerifier {
	if cfg.AuthProvider == config.AuthClerk {
		clerk.SetKey(cfg.ClerkSecretKey)
		log.Println("Clerk initialized successfully")
		return middleware.ClerkVerifier{}
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatal("Failed to initialize Firebase Auth: ", err)
	}
	log.Println("Firebase Auth initialized successfully")
	return middleware.NewFirebaseVerifier(authClient)
}
