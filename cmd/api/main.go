package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/logger"
	repo "storefront/internal/repository"
	"storefront/internal/search"
	"storefront/internal/server"
	"storefront/internal/usecase"
	"storefront/internal/validator"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.GoEnv)

	// deferのCloseを確実に走らせてから終了コードを返す
	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(cfg config.Config, log *logger.Logger) error {
	log.Info("starting server", "env", cfg.GoEnv, "addr", cfg.Addr(), "search", cfg.Search.Backend)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//DB接続
	gormDB, err := db.Connect(cfg.Database, cfg.IsDevelopment())
	if err != nil {
		log.DatabaseError("connect", err)
		return err
	}
	defer func() { _ = db.Close(gormDB) }()

	if err := db.Migrate(gormDB); err != nil {
		log.DatabaseError("migrate", err)
		return err
	}

	//Repository生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)

	var carts repo.CartSessionStore
	if cfg.RedisURL != "" {
		client, err := infraRepo.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		carts = infraRepo.NewCartRedisStore(client, cfg.Session.TTL)
	} else {
		log.Warn("REDIS_URL not set, carts are kept in process memory")
		carts = infraRepo.NewCartMemoryStore(cfg.Session.TTL)
	}

	//Search Providerは起動時に一度だけ選ぶ
	provider, err := search.New(ctx, cfg.Search, productRepo, log)
	if err != nil {
		return fmt.Errorf("search provider: %w", err)
	}

	//Usecase生成
	validate := validator.New()
	productUC := usecase.NewProductUsecase(productRepo, provider, validate, log)
	cartUC := usecase.NewCartUsecase(carts, productRepo, validate, log)
	orderUC := usecase.NewOrderUsecase(carts, productRepo, log)

	//Handler生成
	e := server.New(cfg, log, server.Handlers{
		Product: handler.NewProductHandler(productUC),
		Cart:    handler.NewCartHandler(cartUC, log),
		Order:   handler.NewOrderHandler(orderUC),
		Health: handler.NewHealthHandler(
			handler.HealthCheck{Name: "db", Pinger: productRepo},
			handler.HealthCheck{Name: "carts", Pinger: carts},
		),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(gctx, e, cfg.Addr())
	})
	return g.Wait()
}
