package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"resale-market/internal/marketerrors"
	"resale-market/internal/models"
)

// MemoryStore is a concurrency-safe in-memory implementation of Store.
// One mutex guards all maps, so every check-and-mutate operation is
// indivisible with respect to concurrent callers.
type MemoryStore struct {
	mu       sync.RWMutex
	listings map[string]models.Listing
	bids     map[string][]models.Bid // key: listingID, insertion order preserved
	carts    map[string]models.Cart  // key: ownerID
	orders   map[string]models.Order
	orderSeq []string // orderIDs in creation order
}

// NewMemoryStore creates a new in-memory store instance.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		listings: make(map[string]models.Listing),
		bids:     make(map[string][]models.Bid),
		carts:    make(map[string]models.Cart),
		orders:   make(map[string]models.Order),
	}
}

// CreateListing adds a listing to the store.
func (s *MemoryStore) CreateListing(ctx context.Context, listing models.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listings[listing.ListingID] = listing
	return nil
}

// GetListing returns the listing by ID.
func (s *MemoryStore) GetListing(ctx context.Context, listingID string) (models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listing, ok := s.listings[listingID]
	if !ok {
		return models.Listing{}, fmt.Errorf("get listing %s: %w", listingID, marketerrors.ErrListingNotFound)
	}
	return listing, nil
}

// ReserveStock atomically checks and decrements stock. The check and
// the decrement happen under one lock hold, so two racing callers can
// never both consume the last unit.
func (s *MemoryStore) ReserveStock(ctx context.Context, listingID string, quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf("reserve stock for listing %s: %w - non-positive quantity", listingID, marketerrors.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	listing, ok := s.listings[listingID]
	if !ok {
		return fmt.Errorf("reserve stock for listing %s: %w", listingID, marketerrors.ErrListingNotFound)
	}

	if listing.Sold || listing.StockQuantity < quantity {
		return &marketerrors.InsufficientStockError{
			ListingID: listingID,
			Requested: quantity,
			Available: listing.StockQuantity,
		}
	}

	listing.StockQuantity -= quantity
	if listing.StockQuantity == 0 {
		listing.Sold = true
	}
	s.listings[listingID] = listing
	return nil
}

// ReleaseStock returns previously reserved stock, reopening the
// listing if stock becomes available again.
func (s *MemoryStore) ReleaseStock(ctx context.Context, listingID string, quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf("release stock for listing %s: %w - non-positive quantity", listingID, marketerrors.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	listing, ok := s.listings[listingID]
	if !ok {
		return fmt.Errorf("release stock for listing %s: %w", listingID, marketerrors.ErrListingNotFound)
	}

	listing.StockQuantity += quantity
	if listing.StockQuantity > 0 {
		listing.Sold = false
	}
	s.listings[listingID] = listing
	return nil
}

// SetHighestBid refreshes the cached highest bid amount.
func (s *MemoryStore) SetHighestBid(ctx context.Context, listingID string, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, ok := s.listings[listingID]
	if !ok {
		return fmt.Errorf("set highest bid for listing %s: %w", listingID, marketerrors.ErrListingNotFound)
	}

	listing.HighestBid = amount
	s.listings[listingID] = listing
	return nil
}

// UpsertBid records a bidder's bid, overwriting any prior bid by the
// same bidder on the same listing.
func (s *MemoryStore) UpsertBid(ctx context.Context, bid models.Bid) (models.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.listings[bid.ListingID]; !ok {
		return models.Bid{}, fmt.Errorf("upsert bid for listing %s: %w", bid.ListingID, marketerrors.ErrListingNotFound)
	}

	bids := s.bids[bid.ListingID]
	for i, existing := range bids {
		if existing.BidderID == bid.BidderID {
			existing.Amount = bid.Amount
			existing.Status = models.BidActive
			bids[i] = existing
			return existing, nil
		}
	}

	bid.Status = models.BidActive
	s.bids[bid.ListingID] = append(bids, bid)
	return bid, nil
}

// BidsForListing returns all bids sorted by amount descending, ties
// earliest-first.
func (s *MemoryStore) BidsForListing(ctx context.Context, listingID string) ([]models.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids := append([]models.Bid(nil), s.bids[listingID]...)
	sort.SliceStable(bids, func(i, j int) bool {
		if bids[i].Amount != bids[j].Amount {
			return bids[i].Amount > bids[j].Amount
		}
		return bids[i].CreatedAt.Before(bids[j].CreatedAt)
	})
	return bids, nil
}

// HighestActiveBid returns the active bid with the highest amount,
// ties broken by earliest creation time.
func (s *MemoryStore) HighestActiveBid(ctx context.Context, listingID string) (models.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var winning models.Bid
	found := false
	for _, b := range s.bids[listingID] {
		if b.Status != models.BidActive {
			continue
		}
		if !found || b.Amount > winning.Amount || (b.Amount == winning.Amount && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
			found = true
		}
	}

	if !found {
		return models.Bid{}, fmt.Errorf("highest active bid for listing %s: %w", listingID, marketerrors.ErrNoBids)
	}
	return winning, nil
}

// ResolveAuction closes the listing, resolves every bid and records the
// winner's order under a single lock hold. Every precondition is checked
// before the first write, so a failure never leaves partial state.
func (s *MemoryStore) ResolveAuction(ctx context.Context, listingID, winnerBidID string, order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, ok := s.listings[listingID]
	if !ok {
		return fmt.Errorf("resolve auction for listing %s: %w", listingID, marketerrors.ErrListingNotFound)
	}
	if listing.Sold {
		return fmt.Errorf("resolve auction for listing %s: %w", listingID, marketerrors.ErrAuctionResolved)
	}

	bids := s.bids[listingID]
	winnerIdx := -1
	for i := range bids {
		if bids[i].BidID == winnerBidID {
			winnerIdx = i
			break
		}
	}
	if winnerIdx < 0 {
		return fmt.Errorf("resolve auction for listing %s: winner %s: %w", listingID, winnerBidID, marketerrors.ErrNoBids)
	}

	if _, exists := s.orders[order.OrderID]; exists {
		return fmt.Errorf("resolve auction for listing %s: %w - duplicate order ID", listingID, marketerrors.ErrInvalidInput)
	}

	listing.Sold = true
	listing.StockQuantity = 0
	listing.SelectedBidderID = bids[winnerIdx].BidderID
	s.listings[listingID] = listing

	for i := range bids {
		if i == winnerIdx {
			bids[i].Status = models.BidAccepted
		} else {
			bids[i].Status = models.BidRejected
		}
	}

	s.orders[order.OrderID] = copyOrder(order)
	s.orderSeq = append(s.orderSeq, order.OrderID)
	return nil
}

// GetCart returns the buyer's cart, creating an empty one on first
// access.
func (s *MemoryStore) GetCart(ctx context.Context, ownerID string) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cartLocked(ownerID), nil
}

// cartLocked fetches or lazily creates a cart. Caller must hold mu.
func (s *MemoryStore) cartLocked(ownerID string) models.Cart {
	cart, ok := s.carts[ownerID]
	if !ok {
		cart = models.Cart{OwnerID: ownerID}
		s.carts[ownerID] = cart
	}
	return cart
}

// AddCartItem adds one unit of the listing to the cart.
func (s *MemoryStore) AddCartItem(ctx context.Context, ownerID, listingID string) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartLocked(ownerID)
	bumped := false
	for i, item := range cart.Items {
		if item.ListingID == listingID {
			cart.Items[i].Quantity++
			bumped = true
			break
		}
	}
	if !bumped {
		cart.Items = append(cart.Items, models.CartItem{ListingID: listingID, Quantity: 1})
	}

	s.carts[ownerID] = cart
	return copyCart(cart), nil
}

// RemoveCartItem drops the listing's line from the cart.
func (s *MemoryStore) RemoveCartItem(ctx context.Context, ownerID, listingID string) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartLocked(ownerID)
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ListingID != listingID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	s.carts[ownerID] = cart
	return copyCart(cart), nil
}

// ClearCart empties the cart without deleting it.
func (s *MemoryStore) ClearCart(ctx context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartLocked(ownerID)
	cart.Items = nil
	s.carts[ownerID] = cart
	return nil
}

func copyCart(cart models.Cart) models.Cart {
	cart.Items = append([]models.CartItem(nil), cart.Items...)
	return cart
}

// CreateOrder adds an order to the store.
func (s *MemoryStore) CreateOrder(ctx context.Context, order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[order.OrderID]; ok {
		return fmt.Errorf("create order %s: %w - duplicate order ID", order.OrderID, marketerrors.ErrInvalidInput)
	}

	s.orders[order.OrderID] = copyOrder(order)
	s.orderSeq = append(s.orderSeq, order.OrderID)
	return nil
}

// GetOrder returns the order by ID.
func (s *MemoryStore) GetOrder(ctx context.Context, orderID string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[orderID]
	if !ok {
		return models.Order{}, fmt.Errorf("get order %s: %w", orderID, marketerrors.ErrOrderNotFound)
	}
	return copyOrder(order), nil
}

// UpdateOrder persists status and shipping changes.
func (s *MemoryStore) UpdateOrder(ctx context.Context, order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.orders[order.OrderID]
	if !ok {
		return fmt.Errorf("update order %s: %w", order.OrderID, marketerrors.ErrOrderNotFound)
	}

	existing.Status = order.Status
	existing.Shipping = order.Shipping
	s.orders[order.OrderID] = existing
	return nil
}

// OrdersByBuyer returns the buyer's orders, newest first.
func (s *MemoryStore) OrdersByBuyer(ctx context.Context, buyerID string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orders []models.Order
	for i := len(s.orderSeq) - 1; i >= 0; i-- {
		if order := s.orders[s.orderSeq[i]]; order.BuyerID == buyerID {
			orders = append(orders, copyOrder(order))
		}
	}
	return orders, nil
}

// AllOrders returns every order, newest first.
func (s *MemoryStore) AllOrders(ctx context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, 0, len(s.orderSeq))
	for i := len(s.orderSeq) - 1; i >= 0; i-- {
		orders = append(orders, copyOrder(s.orders[s.orderSeq[i]]))
	}
	return orders, nil
}

func copyOrder(order models.Order) models.Order {
	order.Items = append([]models.OrderItem(nil), order.Items...)
	return order
}
