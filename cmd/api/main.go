package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-inventory-tracker/internal/config"
	"go-inventory-tracker/internal/handler"
	"go-inventory-tracker/internal/jobs"
	"go-inventory-tracker/internal/middleware"
	"go-inventory-tracker/internal/repository"
	"go-inventory-tracker/internal/service"
	"go-inventory-tracker/internal/view"
	"go-inventory-tracker/internal/ws"
	"go-inventory-tracker/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Logger
	syncLogs, err := logger.Init(logger.Options{
		Production: cfg.Environment == config.EnvProduction,
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer syncLogs()

	// 3. Product store
	store, closeStore, err := repository.OpenStore(cfg)
	if err != nil {
		zap.S().Fatalw("failed to open product store", "driver", cfg.StoreDriver, "error", err)
	}
	defer closeStore()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// 4. WebSocket hub
	wsHub := ws.NewHub()
	go wsHub.Run(ctx)

	// 5. Wiring
	invService := service.NewInventoryService(store, wsHub)
	dashService := service.NewDashboardService(invService, view.NewSorter(cfg.Language()))

	invHandler := handler.NewInventoryHandler(invService)
	dashHandler := handler.NewDashboardHandler(dashService)
	exportHandler := handler.NewExportHandler(invService)

	// 6. Scheduled export
	sched, err := jobs.Start(cfg.ExportSchedule, &jobs.ExportJob{Lister: invService, Dir: cfg.ExportDir, Format: cfg.ExportFormat})
	if err != nil {
		zap.S().Fatal(err)
	}
	if sched != nil {
		zap.S().Infof("scheduled export enabled (%s) into %s", cfg.ExportSchedule, cfg.ExportDir)
	}

	// 7. Fiber
	app := fiber.New(fiber.Config{
		AppName: "Gestor de Estoque v1.0",
	})

	app.Use(requestid.New())
	if cfg.Environment == config.EnvProduction {
		app.Use(middleware.AccessLog())
	} else {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/healthz", handler.Health(invService))

	api := app.Group("/api/v1")
	handler.RegisterRoutes(api, invHandler, dashHandler, exportHandler)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(wsHub.Handler))

	// 8. Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			zap.S().Panic(err)
		}
	}()
	zap.S().Infow("server started", "port", cfg.Port, "store", cfg.StoreDriver, "env", cfg.Environment)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.S().Info("Shutting down server...")
	if sched != nil {
		<-sched.Stop().Done()
	}
	stop()
	if err := app.Shutdown(); err != nil {
		zap.S().Errorf("Server forced to shutdown: %v", err)
	}

	zap.S().Info("Server exited")
}
