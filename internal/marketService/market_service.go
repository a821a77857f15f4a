package market

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"resale-market/internal/cache"
	"resale-market/internal/models"
	"resale-market/internal/repository"
	"resale-market/utils"
)

// MarketService implements the transactional marketplace engine: the
// bid ladder, auction resolution, cart checkout and the order
// lifecycle. All mutations of a listing's transactional fields go
// through here, serialized per listing.
type MarketService struct {
	store    repository.Store
	cache    cache.Cache
	cacheTTL time.Duration
	locks    listingLocks
}

// NewMarketService creates a new MarketService instance. A nil cache
// falls back to an in-memory one.
func NewMarketService(store repository.Store, c cache.Cache, cacheTTL time.Duration) *MarketService {
	if c == nil {
		c = cache.NewMemoryCache()
	}
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &MarketService{
		store:    store,
		cache:    c,
		cacheTTL: cacheTTL,
		locks:    listingLocks{locks: make(map[string]*sync.Mutex)},
	}
}

// listingLocks hands out one mutex per listing, lazily. Holding a
// listing's mutex makes a validate-then-write sequence indivisible with
// respect to every other operation on the same listing.
type listingLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// acquire locks the listing's mutex and returns the unlock func.
func (l *listingLocks) acquire(listingID string) func() {
	l.mu.Lock()
	m, ok := l.locks[listingID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[listingID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func listingCacheKey(listingID string) string {
	return "listing:" + listingID
}

// cachedListing reads a listing snapshot through the cache.
func (s *MarketService) cachedListing(ctx context.Context, listingID string) (models.Listing, bool) {
	data, err := s.cache.Get(ctx, listingCacheKey(listingID))
	if err != nil {
		return models.Listing{}, false
	}

	var listing models.Listing
	if err := json.Unmarshal(data, &listing); err != nil {
		return models.Listing{}, false
	}
	return listing, true
}

func (s *MarketService) storeCachedListing(ctx context.Context, listing models.Listing) {
	data, err := json.Marshal(listing)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, listingCacheKey(listing.ListingID), data, s.cacheTTL); err != nil {
		utils.Warn("listing cache set failed", map[string]any{
			"listing_id": listing.ListingID,
			"error":      err.Error(),
		})
	}
}

// invalidateListing drops the cached snapshot after a transactional
// mutation. Failures are not fatal; the entry expires on its TTL.
func (s *MarketService) invalidateListing(ctx context.Context, listingID string) {
	if err := s.cache.Delete(ctx, listingCacheKey(listingID)); err != nil {
		utils.Warn("listing cache invalidation failed", map[string]any{
			"listing_id": listingID,
			"error":      err.Error(),
		})
	}
}
