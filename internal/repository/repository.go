package repository

import (
	"context"

	"resale-market/internal/models"
)

// ListingStore is the durable record of items for sale. Stock and sold
// state are mutated only through the atomic operations below; callers
// never write those fields directly.
type ListingStore interface {
	CreateListing(ctx context.Context, listing models.Listing) error
	GetListing(ctx context.Context, listingID string) (models.Listing, error)

	// ReserveStock atomically checks and decrements available stock,
	// marking the listing sold when it reaches zero. It fails with an
	// InsufficientStockError and no mutation when quantity exceeds the
	// stock at the instant of the check.
	ReserveStock(ctx context.Context, listingID string, quantity int64) error

	// ReleaseStock is the compensating action for ReserveStock, used
	// when a multi-line checkout aborts after partial reservation.
	ReleaseStock(ctx context.Context, listingID string, quantity int64) error

	// SetHighestBid refreshes the cached highest bid amount.
	SetHighestBid(ctx context.Context, listingID string, amount int64) error
}

// BidLedger stores per-listing, per-bidder bid rows.
type BidLedger interface {
	// UpsertBid inserts the bid, or, if a bid by the same bidder on the
	// same listing exists, overwrites its amount and resets its status
	// to active while keeping the original BidID and CreatedAt.
	UpsertBid(ctx context.Context, bid models.Bid) (models.Bid, error)

	// BidsForListing returns all bids sorted by amount descending, ties
	// earliest-first.
	BidsForListing(ctx context.Context, listingID string) ([]models.Bid, error)

	// HighestActiveBid returns the active bid with the highest amount,
	// ties broken by earliest creation time. Fails with ErrNoBids when
	// no active bid exists.
	HighestActiveBid(ctx context.Context, listingID string) (models.Bid, error)
}

// CartStore holds per-buyer pending selections.
type CartStore interface {
	// GetCart returns the buyer's cart, creating an empty one on first
	// access.
	GetCart(ctx context.Context, ownerID string) (models.Cart, error)

	// AddCartItem adds one unit of the listing to the cart, or bumps
	// the quantity if the listing is already in it.
	AddCartItem(ctx context.Context, ownerID, listingID string) (models.Cart, error)

	// RemoveCartItem drops the listing's line from the cart entirely.
	RemoveCartItem(ctx context.Context, ownerID, listingID string) (models.Cart, error)

	// ClearCart empties the cart without deleting it.
	ClearCart(ctx context.Context, ownerID string) error
}

// OrderStore is the durable record of completed transactions.
type OrderStore interface {
	CreateOrder(ctx context.Context, order models.Order) error
	GetOrder(ctx context.Context, orderID string) (models.Order, error)

	// UpdateOrder persists status and shipping changes; all other
	// fields are immutable after creation.
	UpdateOrder(ctx context.Context, order models.Order) error

	// OrdersByBuyer returns the buyer's orders, newest first.
	OrdersByBuyer(ctx context.Context, buyerID string) ([]models.Order, error)

	// AllOrders returns every order, newest first. Used by the
	// seller-side read paths which filter line items by seller.
	AllOrders(ctx context.Context) ([]models.Order, error)
}

// Store is the full storage surface consumed by the market service.
type Store interface {
	ListingStore
	BidLedger
	CartStore
	OrderStore

	// ResolveAuction is the commit point of auction resolution. It
	// closes the listing for the winner, marks the winning bid accepted
	// and every other bid rejected, and records the winner's order, all
	// as one indivisible unit: on any failure nothing is committed.
	// Fails with ErrAuctionResolved if the listing is already sold and
	// with ErrNoBids if the winning bid row does not exist.
	ResolveAuction(ctx context.Context, listingID, winnerBidID string, order models.Order) error
}
