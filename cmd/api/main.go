package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"soundvibe/compatibility-api/internal/config"
	"soundvibe/compatibility-api/internal/handlers"
	"soundvibe/compatibility-api/internal/repositories"
	"soundvibe/compatibility-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize scorer
	compatService := services.NewCompatibilityService(services.DefaultRoleTable())
	log.Println("✅ Compatibility scorer initialized")

	// Initialize profile store and matcher
	matchHandler, err := newMatchHandler(cfg, compatService, config.InitDatabase)
	switch {
	case err != nil:
		log.Printf("⚠️  Profile store unavailable, matching route not mounted: %v", err)
	case matchHandler == nil:
		log.Println("⚠️  Database disabled, matching route not mounted")
	default:
		log.Println("✅ Matcher initialized")
	}

	compatHandler := handlers.NewCompatibilityHandler(compatService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "SoundVibe Compatibility API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(handlers.CORS())

	handlers.SetupRoutes(app, compatHandler, matchHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// newMatchHandler wires the profile store and matcher. It returns a nil
// handler when the database is disabled or cannot be opened; scoring does
// not depend on it.
func newMatchHandler(
	cfg *config.Config,
	scorer services.CompatibilityService,
	openDB func(*config.Config) (*gorm.DB, error),
) (*handlers.MatchHandler, error) {
	if !cfg.Database.Enabled {
		return nil, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	profileRepo := repositories.NewProfileRepository(db)
	matcherService := services.NewMatcherService(
		profileRepo,
		scorer,
		cfg.Match.Concurrency,
		cfg.Match.CandidatePool,
	)

	return handlers.NewMatchHandler(
		matcherService,
		cfg.Match.DefaultLimit,
		cfg.Match.MaxLimit,
	), nil
}
