// README: Entry point; loads config, wires stores and services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"karvon/internal/config"
	httptransport "karvon/internal/http"
	"karvon/internal/http/handlers"
	"karvon/internal/infra"
	"karvon/internal/maps"
	"karvon/internal/modelstore"
	"karvon/internal/modules/matching"
	"karvon/internal/modules/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	models := modelstore.New(cfg.Models.Dir)

	geocoder, err := maps.NewGeocodeService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("maps init: %v", err)
	}
	if cfg.Maps.APIKey == "" {
		log.Print("GOOGLE_MAPS_API_KEY not set; geocoding disabled")
	}

	pricingSvc := pricing.NewService(models)

	matchingStore := matching.NewStore(dbPool, redisClient)
	matchingSvc := matching.NewService(matchingStore, models, cfg.Matching)

	handler := httptransport.NewRouter(
		handlers.NewPredictHandler(pricingSvc, matchingSvc, geocoder),
		handlers.NewLocationHandler(matchingSvc),
	)

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
