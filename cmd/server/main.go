package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gametop-backend/internal/config"
	"gametop-backend/internal/gemini"
	"gametop-backend/internal/handler"
	"gametop-backend/internal/middleware"
	"gametop-backend/internal/repository"
	"gametop-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()

	// Catalog (static, validated at startup)
	catalogRepo, err := repository.NewCatalogRepository()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Catalog loaded: %d games", catalogRepo.Count())

	// Completion service — degrade to the fallback reply when unconfigured.
	completer := service.DisabledCompleter()
	if cfg.ChatEnabled() {
		client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("[CHAT] gemini client unavailable, running degraded: %v", err)
		} else {
			completer = client
		}
	} else {
		log.Println("[CHAT] GEMINI_API_KEY not set, assistant will return the fallback reply")
	}

	// Services
	notifier := service.NewOrderNotifier(cfg.OrderWebhookURL)
	catalogSvc := service.NewCatalogService(catalogRepo)
	orderSvc := service.NewOrderService(catalogRepo, cfg.WhatsAppNumber, notifier)
	chatSvc := service.NewChatService(completer, cfg.ChatSessionTTL)

	// Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second, // chat turns wait on the completion service
		IdleTimeout:  30 * time.Second,
		BodyLimit:    256 * 1024,
	})

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS(cfg.AllowedOrigins))

	// Health
	healthH := handler.NewHealthHandler(catalogRepo, cfg.ChatEnabled())
	app.Get("/health", healthH.Health)
	app.Get("/ready", healthH.Ready)

	// API v1
	v1 := app.Group("/api/v1")

	// Catalog
	catalogH := handler.NewCatalogHandler(catalogSvc)
	catalog := v1.Group("/catalog")
	catalog.Get("/games", catalogH.List)
	catalog.Get("/games/:id", catalogH.Get)

	// Localization
	i18nH := handler.NewI18nHandler()
	v1.Get("/i18n/:lang", i18nH.Strings)

	// Orders
	orderH := handler.NewOrderHandler(orderSvc)
	orders := v1.Group("/orders")
	orders.Post("/validate", orderH.Validate)
	orders.Post("/dispatch", middleware.RateLimit(10, time.Minute), orderH.Dispatch)

	// Chat
	chatH := handler.NewChatHandler(chatSvc)
	chat := v1.Group("/chat")
	chat.Post("/sessions", middleware.RateLimit(20, time.Minute), chatH.CreateSession)
	chat.Get("/sessions/:id/messages", chatH.GetMessages)
	chat.Post("/sessions/:id/messages", middleware.RateLimit(30, time.Minute), chatH.Send)
	chat.Delete("/sessions/:id", chatH.Close)

	// Session pruning
	go chatSvc.Run()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	log.Printf("GameTop backend running on :%s (%s)", cfg.Port, cfg.Env)

	<-quit
	log.Println("Shutting down...")
	_ = app.ShutdownWithTimeout(5 * time.Second)
	chatSvc.Shutdown()
	log.Println("Server stopped")
}
