package main

import (
	"encoding/json"
	stdlog "log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/settlehub/src/config"
	"github.com/username/settlehub/src/database"
	"github.com/username/settlehub/src/handlers"
	"github.com/username/settlehub/src/logger"
	"github.com/username/settlehub/src/parsers/columns"
	"github.com/username/settlehub/src/processors"
	"github.com/username/settlehub/src/security"
	"github.com/username/settlehub/src/services"
	"golang.org/x/time/rate"
)

func rateLimitMiddleware(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				logger.L.Warn("Rate limit exceeded",
					"method", r.Method,
					"path", r.URL.Path,
					"remoteAddr", r.RemoteAddr)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func enableCORS(origins []string) func(http.Handler) http.Handler {
	allowedOrigins := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowedOrigins[o] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if allowedOrigins[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, DELETE")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Requested-With, X-Request-ID, If-None-Match")
				w.Header().Set("Access-Control-Expose-Headers", "ETag, X-Request-ID")
			}

			if r.Method == http.MethodOptions {
				logger.L.Debug("Handling OPTIONS preflight request", "path", r.URL.Path, "origin", origin)
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func loadColumnResolver(path string) *columns.Resolver {
	if path == "" {
		return columns.NewResolver(columns.DefaultAliases())
	}
	aliases, err := columns.LoadAliasFile(path)
	if err != nil {
		logger.L.Error("Failed to load column alias file, falling back to built-in aliases", "path", path, "error", err)
		return columns.NewResolver(columns.DefaultAliases())
	}
	logger.L.Info("Column aliases loaded", "path", path)
	return columns.NewResolver(aliases)
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Settlehub server starting...")

	if len(config.Cfg.JWTSecret) < 32 {
		logger.L.Error("JWT_SECRET configuration invalid. Must be at least 32 bytes.")
		os.Exit(1)
	}

	logger.L.Info("Initializing database...", "path", config.Cfg.DatabasePath)
	database.InitDB(config.Cfg.DatabasePath)
	logger.L.Info("Database initialized successfully.")

	logger.L.Info("Initializing report cache...", "ttl", config.Cfg.LatestUploadCacheTTL)
	reportCache := cache.New(config.Cfg.LatestUploadCacheTTL, services.CacheCleanupInterval)

	logger.L.Info("Initializing services and handlers...")
	authService := security.NewAuthService(config.Cfg.JWTSecret)
	authMiddleware := handlers.NewAuthMiddleware(authService)

	settlementService := services.NewSettlementService(
		database.NewSettlementRepository(database.DB),
		loadColumnResolver(config.Cfg.ColumnAliasesPath),
		processors.NewSummaryProcessor(),
		reportCache,
	)
	settlementHandler := handlers.NewSettlementHandler(settlementService, config.Cfg.MaxUploadSizeBytes)

	logger.L.Info("Configuring routes...")
	rootMux := http.NewServeMux()
	apiRouter := http.NewServeMux()

	protect := func(handler http.HandlerFunc) http.Handler {
		return authMiddleware.Require(handler)
	}

	apiRouter.HandleFunc("GET /api/settlements/columns", settlementHandler.HandleGetColumns)
	apiRouter.Handle("POST /api/settlements/upload", protect(settlementHandler.HandleUpload))
	apiRouter.Handle("GET /api/settlements/summary", protect(settlementHandler.HandleGetSummary))
	apiRouter.Handle("GET /api/settlements/latest", protect(settlementHandler.HandleGetLatest))
	apiRouter.Handle("GET /api/settlements/batches", protect(settlementHandler.HandleListBatches))
	apiRouter.Handle("POST /api/settlements/batches/delete", protect(settlementHandler.HandleDeleteBatches))
	apiRouter.Handle("DELETE /api/settlements/batches/{batchId}", protect(settlementHandler.HandleDeleteBatch))
	apiRouter.Handle("GET /api/settlements", protect(settlementHandler.HandleGetRecords))
	apiRouter.Handle("DELETE /api/settlements/{id}", protect(settlementHandler.HandleDeleteRecord))

	rootMux.Handle("/api/", apiRouter)

	rootMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "Settlehub backend is running"})
		} else if !strings.HasPrefix(r.URL.Path, "/api/") {
			logger.L.Warn("Root level path not found", "method", r.Method, "path", r.URL.Path)
			http.NotFound(w, r)
		}
	})

	logger.L.Info("Applying global middleware...",
		"rateInterval", config.Cfg.RateLimitInterval,
		"rateBurst", config.Cfg.RateLimitBurst,
		"allowedOrigins", config.Cfg.AllowedOrigins)
	limiter := rate.NewLimiter(rate.Every(config.Cfg.RateLimitInterval), config.Cfg.RateLimitBurst)
	finalHandler := enableCORS(config.Cfg.AllowedOrigins)(
		handlers.RequestLogger(rateLimitMiddleware(limiter)(rootMux)),
	)

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      finalHandler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	} else if err == http.ErrServerClosed {
		logger.L.Info("Server stopped gracefully.")
	}
}
