package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/e-floriest/farm-backend/internal/config"
	"github.com/e-floriest/farm-backend/internal/database"
	"github.com/e-floriest/farm-backend/internal/handler"
	"github.com/e-floriest/farm-backend/internal/middleware"
	"github.com/e-floriest/farm-backend/internal/queue"
	"github.com/e-floriest/farm-backend/internal/repository"
	"github.com/e-floriest/farm-backend/internal/router"
)

func main() {
	_ = godotenv.Load() // optional .env for local development

	cfg := config.Load()
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()

	client, err := database.Open(cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongodb connect failed: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(cfg.MongoDB)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}
	invalidate := func(ctx context.Context, group string) {
		middleware.InvalidateCache(ctx, cacheCfg, rdb, group)
	}

	h := router.Handlers{
		Auth:     handler.NewAuthHandler(cfg, repository.NewAccountRepo(db), invalidate),
		Activity: handler.NewActivityHandler(repository.NewActivityRepo(db), invalidate),
		Sales:    handler.NewSalesHandler(repository.NewSalesRepo(db), invalidate),
		Owner:    handler.NewOwnerHandler(repository.NewOwnerRepo(db), invalidate),
	}

	// Background consumer that mirrors harvest and order events into
	// logs/harvest.log. Runs its own reconnect loop.
	go func() {
		if err := queue.StartHarvestConsumer(); err != nil {
			log.Printf("harvest consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e, h, cacheCfg, rlCfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
