// Package main provides a CLI tool that seeds the shop catalog.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/tinyxi/pethatch/internal/config"
	"github.com/tinyxi/pethatch/internal/game/item"
	"github.com/tinyxi/pethatch/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	defer pool.Close()

	items := item.DefaultCatalog().Items()
	if err := postgres.NewShopRepository(pool.DB()).Seed(ctx, items); err != nil {
		log.Fatalf("seeding shop: %v", err)
	}

	fmt.Fprintf(os.Stdout, "seeded %d shop items [%s]\n", len(items), time.Since(start))
}
