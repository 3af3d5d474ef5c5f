package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/xiaogao007/Stickplanet/internal/api"
	"github.com/xiaogao007/Stickplanet/internal/config"
	"github.com/xiaogao007/Stickplanet/internal/db"
	"github.com/xiaogao007/Stickplanet/internal/identity"
	"github.com/xiaogao007/Stickplanet/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config init failed: %v", err)
	}

	location := mustLoadLocation(cfg.Timezone)
	time.Local = location

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	var provider identity.Provider
	if cfg.IdentityEndpoint != "" {
		provider = identity.NewRemoteProvider(cfg.IdentityEndpoint)
	} else {
		provider = identity.NewLocalProvider(cfg.SecretKey)
	}

	files := storage.NewLocalStore(cfg.UploadDir, "/uploads")
	handler := api.NewHandler(database, cfg.SecretKey, location, provider, files, cfg.CookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "Stickplanet",
		DisableStartupMessage: true,
		BodyLimit:             8 << 20,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	app.Static("/uploads", cfg.UploadDir)
	handler.RegisterRoutes(app)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Stickplanet listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Port, cfg.DBPath, location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
