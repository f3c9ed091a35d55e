package server

import (
	"net/http"
	"time"

	"daogen/internal/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Config holds the HTTP API settings.
type Config struct {
	Addr          string
	MaxInputBytes int64
	// MaxSeedRows caps the rows per table a seed request may ask for.
	MaxSeedRows    int
	DefaultDialect string
	// AllowOrigins lists CORS origins; empty allows all.
	AllowOrigins []string
	Logger       *zap.Logger
}

func NewServer(cfg Config) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Minute,
		WriteTimeout:      time.Minute,
		IdleTimeout:       2 * time.Minute,
	}
}

func NewRouter(cfg Config) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(requestLogger(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.AllowOrigins)))

	// Dependency injection
	schemaHandler := handlers.NewSchemaHandler(cfg.MaxInputBytes, logger)
	seedHandler := handlers.NewSeedHandler(handlers.SeedConfig{
		MaxInputBytes:  cfg.MaxInputBytes,
		MaxRows:        cfg.MaxSeedRows,
		DefaultDialect: cfg.DefaultDialect,
	}, logger)

	r.GET("/healthz", handlers.Health)

	api := r.Group("/api/v1")
	{
		api.POST("/schema", schemaHandler.Extract)
		api.POST("/seed", seedHandler.Seed)
	}

	return r
}

// corsConfig allows every origin unless a list is configured.
func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	if len(origins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	return config
}
