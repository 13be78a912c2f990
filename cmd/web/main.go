package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/ldbiro/ldbiro-web/config"
	"github.com/ldbiro/ldbiro-web/internal/handlers"
	"github.com/ldbiro/ldbiro-web/internal/middleware"
	"github.com/ldbiro/ldbiro-web/internal/services"
	"github.com/ldbiro/ldbiro-web/pkg/httpclient"
	"github.com/ldbiro/ldbiro-web/pkg/logger"
	"github.com/ldbiro/ldbiro-web/pkg/metrics"
	"github.com/ldbiro/ldbiro-web/pkg/profiling"
	"github.com/ldbiro/ldbiro-web/pkg/resend"
	"github.com/ldbiro/ldbiro-web/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting LD Biro web",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	if !cfg.ContactConfigured() {
		logger.Warn("Contact email pipeline not fully configured; submissions will be rejected until RESEND_API_KEY and CONTACT_EMAIL are set")
	}

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.ExporterEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Optional continuous profiling
	profilerStop, err := profiling.InitProfiler(
		cfg.Profiling,
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
	)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer profilerStop()

	// Initialize metrics
	metrics.Init(cfg.Observability.ServiceName)
	metrics.RecordInfrastructureMetrics()

	// Outbound email collaborator
	httpClient := httpclient.NewStandardClient()
	emailClient := resend.NewClient(cfg.Contact.APIKey, httpClient)

	// Services and handlers
	contactService := services.NewContactService(cfg, emailClient)
	contactHandler := handlers.NewContactHandler(contactService)
	pagesHandler := handlers.NewPagesHandler(cfg.Server.BaseURL)
	healthHandler := handlers.NewHealthHandler()

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.LocaleResolver())

	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "traceparent", "tracestate"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Rate limiters: a token bucket for the general surface, a fixed window
	// for the contact form (3/min per client by default).
	generalRateLimiter := middleware.NewVisitorLimiter(100, 200)
	defer generalRateLimiter.Stop()
	contactRateStore := middleware.NewFixedWindowStore(cfg.RateLimit.ContactLimit, cfg.RateLimit.ContactWindow)

	trustProxy := cfg.Server.TrustProxyHeaders

	// API routes
	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(trustProxy), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(trustProxy), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	// The rate check runs before the body is even read: rejection must cost
	// nothing beyond the in-memory counter.
	api.POST("/contact",
		middleware.RateLimit("contact", contactRateStore, trustProxy, middleware.MsgContactRateLimited),
		middleware.BodySizeLimitMiddleware(100*1024),
		contactHandler.SubmitContact)

	// Pages: default locale at the unprefixed root, alternate under /en.
	// Everything unmatched falls through to localized 404 resolution.
	router.LoadHTMLGlob("web/templates/*.tmpl")
	router.Static("/assets", "./web/assets")
	router.GET("/", generalRateLimiter.Middleware(trustProxy), pagesHandler.Landing)
	router.GET("/en", generalRateLimiter.Middleware(trustProxy), pagesHandler.Landing)
	router.NoRoute(pagesHandler.NotFound)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
