package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"storefront/internal/config"
	"storefront/internal/importer"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}
	log := logger.New(cfg.GoEnv)

	file := flag.String("file", cfg.CatalogFile, "products JSONL file")
	demo := flag.Bool("demo", false, "load the built-in demo products instead of a file")
	flag.Parse()

	if err := run(context.Background(), cfg, log, *file, *demo); err != nil {
		log.Error("import failed", "file", *file, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *logger.Logger, file string, demo bool) error {
	gormDB, err := db.Connect(cfg.Database, false)
	if err != nil {
		log.DatabaseError("connect", err)
		return err
	}
	defer func() { _ = db.Close(gormDB) }()

	if err := db.Migrate(gormDB); err != nil {
		log.DatabaseError("migrate", err)
		return err
	}
	productRepo := infraRepo.NewProductGormRepository(gormDB)

	if demo {
		n, err := productRepo.InsertIgnoreDuplicates(ctx, importer.DemoProducts())
		if err != nil {
			return fmt.Errorf("insert demo: %w", err)
		}
		log.Info("demo products loaded", "inserted", n)
		return nil
	}

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	stats, err := importer.Import(ctx, f, productRepo, log)
	if err != nil {
		return err
	}
	log.Info("import finished",
		"file", file,
		"lines", stats.Lines,
		"inserted", stats.Inserted,
		"duplicates", stats.Duplicates,
		"malformed", stats.Malformed,
	)
	return nil
}
