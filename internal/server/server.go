package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apihttp "github.com/rankwala/backend/internal/api/http"
	"github.com/rankwala/backend/internal/answerkey"
	"github.com/rankwala/backend/internal/archive"
	"github.com/rankwala/backend/internal/config"
	"github.com/rankwala/backend/internal/logging"
	"github.com/rankwala/backend/internal/middleware"
	"github.com/rankwala/backend/internal/monitoring"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	httpSrv *http.Server
	logger  *logging.Logger
	cfg     *config.Config
}

// New wires the scoring pipeline, archive store and HTTP layer together.
func New(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	store, err := archive.NewDirStore(cfg.Archive.Dir)
	if err != nil {
		return nil, fmt.Errorf("init archive store: %w", err)
	}

	metrics := monitoring.NewMetrics()
	pipeline := answerkey.NewPipeline(cfg.Fetch, store, logger, metrics)
	images := apihttp.NewImageProxy(cfg.Fetch.Timeout, cfg.Fetch.UserAgent)
	handlers := apihttp.NewHandlers(pipeline, store, images, logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	{
		api.POST("/score", handlers.Score)
		api.GET("/saved-keys", handlers.ListSavedKeys)
		api.GET("/saved-keys/:file", handlers.GetSavedKey)
		api.DELETE("/saved-keys/:file", handlers.DeleteSavedKey)
		api.GET("/proxy-image", handlers.ProxyImage)
	}

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	return &Server{
		router: router,
		httpSrv: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
		cfg:    cfg,
	}, nil
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	s.logger.Info("server listening", zap.String("addr", s.httpSrv.Addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests before stopping.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}
