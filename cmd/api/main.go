package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-warehouse-ws/internal/config"
	"go-warehouse-ws/internal/firstrun"
	"go-warehouse-ws/internal/handler"
	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/internal/service"
	"go-warehouse-ws/internal/ws"
	"go-warehouse-ws/pkg/database"
	"go-warehouse-ws/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	// 1. Config & logging
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	zlog := logger.Must(logger.New(cfg.Log.Level))
	defer zlog.Sync()

	// 2. First-run sentinel
	firstRun, err := firstrun.Check(cfg.Store.SentinelPath)
	if err != nil {
		zlog.Fatal("failed to check first-run sentinel", zap.Error(err))
	}
	if firstRun {
		zlog.Info("first run detected, sentinel created",
			zap.String("path", cfg.Store.SentinelPath))
	}

	// 3. Database
	db, err := database.Connect(cfg.Store.DBPath)
	if err != nil {
		zlog.Fatal("failed to open database", zap.Error(err))
	}
	if err := db.AutoMigrate(&model.Product{}, &model.Transaction{}); err != nil {
		zlog.Fatal("failed to migrate schema", zap.Error(err))
	}

	// 4. WebSocket hub for UI refresh events
	wsHub := ws.NewHub(logger.Named(zlog, "ws"))
	go wsHub.Run()

	// 5. Dependency injection (wiring layers)
	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)

	catalogService := service.NewCatalogService(productRepo, txRepo, db, wsHub)
	movementService := service.NewMovementService(productRepo, txRepo, db, wsHub)
	statsService := service.NewStatsService(txRepo)
	exportService := service.NewExportService(productRepo, txRepo)

	productHandler := handler.NewProductHandler(catalogService)
	movementHandler := handler.NewMovementHandler(movementService)
	statsHandler := handler.NewStatsHandler(statsService)
	exportHandler := handler.NewExportHandler(exportService)
	metaHandler := handler.NewMetaHandler(firstRun)

	// 6. Fiber
	app := fiber.New(fiber.Config{
		AppName: "Warehouse Management System v1.0",
	})

	app.Use(fiberlogger.New()) // Request logging
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS for the local UI

	// 7. Routes
	api := app.Group("/api/v1")

	api.Get("/about", metaHandler.About)

	api.Get("/products", productHandler.GetProducts)
	api.Get("/products/lookup", productHandler.Lookup)
	api.Post("/products", productHandler.CreateProduct)
	api.Put("/products/:id", productHandler.EditProduct)
	api.Delete("/products/:id", productHandler.DeleteProduct)

	api.Post("/movements", movementHandler.RecordMovement)
	api.Get("/transactions", movementHandler.GetTransactions)

	api.Get("/stats/products/:id/operators", statsHandler.GetProductOperatorStats)
	api.Get("/stats/operators/:operator/products", statsHandler.GetOperatorProductStats)

	api.Get("/export/products", exportHandler.ExportProducts)
	api.Get("/export/transactions", exportHandler.ExportTransactions)

	// WebSocket route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			zlog.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}

	zlog.Info("server exited")
}
