// README: Offline model builder; fits and persists the codebook, price model, and capacity clusterer.
package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"karvon/internal/config"
	"karvon/internal/infra"
	"karvon/internal/ml"
	"karvon/internal/modelstore"
	"karvon/internal/modules/matching"
	"karvon/internal/modules/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	if err := os.MkdirAll(cfg.Models.Dir, 0o755); err != nil {
		log.Fatal(err)
	}

	routes, err := pricing.NewStore(dbPool).ListRoutes(ctx)
	if err != nil {
		log.Fatalf("load routes: %v", err)
	}
	codebook, scaler, priceModel, err := pricing.Fit(routes)
	if err != nil {
		log.Fatalf("fit price model: %v", err)
	}
	log.Printf("price model fit over %d routes, %d regions", len(routes), codebook.Len())

	profiles, err := matching.NewStore(dbPool, redisClient).ListProfiles(ctx)
	if err != nil {
		log.Fatalf("load driver profiles: %v", err)
	}
	clusterer, err := matching.FitClusterer(profiles, cfg.Matching.MaxCohorts, cfg.Matching.ClusterSeed)
	if err != nil {
		log.Fatalf("fit capacity clusterer: %v", err)
	}
	log.Printf("capacity clusterer fit over %d drivers into %d cohorts", len(profiles), clusterer.K())

	artifacts := map[string]any{
		modelstore.FileCodebook: codebook,
		modelstore.FileScaler:   scaler,
		modelstore.FilePrice:    priceModel,
		modelstore.FileKMeans:   clusterer,
	}
	for file, v := range artifacts {
		path := filepath.Join(cfg.Models.Dir, file)
		if err := ml.SaveGob(path, v); err != nil {
			log.Fatalf("save %s: %v", file, err)
		}
		log.Printf("wrote %s", path)
	}
}
