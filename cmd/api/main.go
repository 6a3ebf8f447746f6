// @title EduGen API
// @version 1.0
// @description HTTP gateway that generates educational content through OpenRouter.
// @host localhost:8080
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"edugen/internal/adapter/openrouter"
	"edugen/internal/config"
	"edugen/internal/export"
	"edugen/internal/handler"
	"edugen/internal/logger"
	"edugen/internal/middleware"
	"edugen/internal/service"

	_ "edugen/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Refuse to start when any task category lacks a credential
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	profiles := cfg.Profiles()

	// Initialize upstream completion client
	completionClient := openrouter.NewClient(cfg.OpenRouter.BaseURL, profiles)
	appLogger.Info("OpenRouter client initialized", zap.String("base_url", cfg.OpenRouter.BaseURL))

	// Initialize services and handlers
	generationService := service.NewGenerationService(completionClient, profiles)
	pdfExporter := export.NewPDFExporter()
	generationHandler := handler.NewGenerationHandler(generationService, pdfExporter)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// Swagger handler
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Introspection routes
	app.Get("/", generationHandler.Index)
	app.Get("/health", generationHandler.Health)

	// Generation routes, rate limited per client address
	rateLimit := middleware.RateLimiter(cfg.RateLimit)
	app.Post("/generate-assignment", rateLimit, generationHandler.GenerateAssignment)
	app.Post("/generate-long-answer", rateLimit, generationHandler.GenerateLongAnswer)
	app.Post("/generate-short-answer", rateLimit, generationHandler.GenerateShortAnswer)
	app.Post("/generate-quiz", rateLimit, generationHandler.GenerateQuiz)
	app.Post("/fix-grammar", rateLimit, generationHandler.FixGrammar)
	app.Post("/chat", rateLimit, generationHandler.Chat)

	// Unmatched routes list the valid endpoints
	app.Use(handler.NotFound)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
