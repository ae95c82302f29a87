package main

import (
	"encoding/gob"
	"log"

	"github.com/abreai/abreai-api/config"
	"github.com/abreai/abreai-api/routes"
	"github.com/abreai/abreai-api/services"
	"github.com/abreai/abreai-api/storage"
	"github.com/abreai/abreai-api/utils"
)

func main() {
	cfg := config.LoadConfig()

	// Initialize logger
	if err := utils.InitLogger(cfg.LogsDir); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Register types for session serialization
	gob.Register(services.CheckoutSession{})

	// Pick the state backend: Postgres when configured, files otherwise
	var store storage.Store
	if cfg.UsePostgres() {
		db, err := config.OpenDB(cfg)
		if err != nil {
			utils.LogError("Failed to connect to database: %v", err)
			log.Fatal("Failed to connect to database:", err)
		}
		gormStore, err := storage.NewGormStore(db)
		if err != nil {
			utils.LogError("Failed to initialize state table: %v", err)
			log.Fatal("Failed to initialize state table:", err)
		}
		store = gormStore
		utils.LogInfo("State backend: postgres (%s)", cfg.DBName)
	} else {
		fileStore, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			utils.LogError("Failed to initialize data directory: %v", err)
			log.Fatal("Failed to initialize data directory:", err)
		}
		store = fileStore
		utils.LogInfo("State backend: files (%s)", cfg.DataDir)
	}

	// Build the state containers
	cart := services.NewCartService(store)
	favorites := services.NewFavoritesService(store)
	orders := services.NewOrderService(store)
	auth := services.NewAuthService(store)
	chat := services.NewChatService(cart, favorites, orders)

	var mailer services.OrderMailer
	if m := utils.NewMailerFromEnv(); m != nil {
		mailer = m
		utils.LogInfo("Order confirmation emails enabled")
	}
	checkout := services.NewCheckoutService(cart, orders, mailer, cfg.WhatsAppPhone)

	router := routes.SetupRouter(cfg, routes.Services{
		Cart:      cart,
		Favorites: favorites,
		Orders:    orders,
		Checkout:  checkout,
		Chat:      chat,
		Auth:      auth,
	})

	utils.LogInfo("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
