package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devikapo/budget-server/internal/config"
	"github.com/devikapo/budget-server/internal/handler"
	"github.com/devikapo/budget-server/internal/middleware"
	"github.com/devikapo/budget-server/internal/plaid"
	"github.com/devikapo/budget-server/internal/repository/memory"
	"github.com/devikapo/budget-server/internal/service"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Aggregation provider client
	providerClient, err := plaid.NewClient(plaid.Config{
		ClientID:    cfg.Plaid.ClientID,
		Secret:      cfg.Plaid.Secret,
		Environment: cfg.Plaid.Environment,
		ClientName:  cfg.Plaid.ClientName,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create provider client")
	}
	log.Info().Str("environment", cfg.Plaid.Environment).Msg("Provider client ready")

	// Initialize repositories (session-scoped, in memory by design)
	itemRepo := memory.NewItemRepository()
	viewRepo := memory.NewViewRepository()

	// Initialize services
	linkService := service.NewLinkService(providerClient, itemRepo)
	transactionService := service.NewTransactionService(providerClient, itemRepo)
	accountService := service.NewAccountService(providerClient, itemRepo)
	viewService := service.NewViewService(viewRepo)
	summaryService := service.NewSummaryService()

	// Initialize handlers
	linkHandler := handler.NewLinkHandler(linkService, cfg.MobileRedirectURI)
	itemHandler := handler.NewItemHandler(linkService, accountService)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	balanceHandler := handler.NewBalanceHandler(accountService)
	viewHandler := handler.NewViewHandler(viewService, transactionService, summaryService)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		MaxAge:       86400,
	}))

	// Security headers middleware
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Per-IP rate limiting
	rateLimiter := middleware.NewRateLimiter()
	defer rateLimiter.Stop()
	e.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Register API routes
	handler.RegisterRoutes(e, linkHandler, itemHandler, transactionHandler, balanceHandler, viewHandler)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
