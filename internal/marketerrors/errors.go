package marketerrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrListingNotFound    = errors.New("listing not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrNoBids             = errors.New("no bids found for listing")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// business logic errors
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrSelfBid           = errors.New("cannot bid on own listing")
	ErrNotAuctionable    = errors.New("listing not open for bidding")
	ErrBidTooLow         = errors.New("bid amount too low")
	ErrAlreadySold       = errors.New("listing already sold")
	ErrAuctionResolved   = errors.New("auction already resolved")
	ErrAuctionOnly       = errors.New("listing available via bidding only")
	ErrCartEmpty         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// BidTooLowError carries the minimum acceptable amount so callers can
// surface it to the bidder. errors.Is(err, ErrBidTooLow) matches it.
type BidTooLowError struct {
	Minimum int64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid must be at least %d", e.Minimum)
}

func (e *BidTooLowError) Is(target error) bool {
	return target == ErrBidTooLow
}

// InsufficientStockError carries the listing and the requested versus
// available quantities. errors.Is(err, ErrInsufficientStock) matches it.
type InsufficientStockError struct {
	ListingID string
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for listing %s: requested %d, available %d",
		e.ListingID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
