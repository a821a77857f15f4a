package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"resale-market/internal/cache"
	"resale-market/internal/config"
	market "resale-market/internal/marketService"
	model "resale-market/internal/models"
	"resale-market/internal/repository"
	"resale-market/internal/server"
	"resale-market/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	store, err := buildStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
		os.Exit(1)
	}

	listingCache, err := buildCache(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect cache: %v\n", err)
		os.Exit(1)
	}

	marketSvc := market.NewMarketService(store, listingCache, cfg.Cache.TTL)

	router := server.SetupRouter(marketSvc)

	addr := cfg.Server.Address()
	utils.Info("starting marketplace server", map[string]any{
		"addr":    addr,
		"storage": cfg.Storage.Type,
		"cache":   cfg.Cache.Type,
	})
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildStore selects the storage backend. The memory backend is
// prepopulated with demo listings so the API is browsable out of the
// box.
func buildStore(cfg *config.Config) (repository.Store, error) {
	switch cfg.Storage.Type {
	case "sqlite":
		return repository.NewSQLiteStore(cfg.Storage.Path)
	default:
		store := repository.NewMemoryStore()
		prepopulateListings(store)
		return store, nil
	}
}

func buildCache(cfg *config.Config) (cache.Cache, error) {
	if cfg.Cache.Type == "redis" {
		return cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Cache.RedisAddress(),
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
	}
	return cache.NewMemoryCache(), nil
}

// prepopulateListings adds sample listings to the in-memory store
func prepopulateListings(store *repository.MemoryStore) {
	listings := []model.Listing{
		{ListingID: "listing1", Title: "Vintage denim jacket", Price: 1500, StockQuantity: 1, AuctionEnabled: true, SellerID: "seller1", CreatedAt: time.Now().UTC()},
		{ListingID: "listing2", Title: "Leather boots", Price: 2200, StockQuantity: 3, SellerID: "seller1", CreatedAt: time.Now().UTC()},
		{ListingID: "listing3", Title: "Silk scarf", Price: 450, StockQuantity: 5, SellerID: "seller2", CreatedAt: time.Now().UTC()},
	}

	for _, listing := range listings {
		_ = store.CreateListing(context.Background(), listing)
	}
}
