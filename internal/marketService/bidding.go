package market

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resale-market/internal/marketerrors"
	"resale-market/internal/models"
	"resale-market/utils"
)

// PlaceBid validates and records a bid on an auction listing. The
// whole validate-then-write sequence runs under the listing's lock, so
// two concurrent bidders can never both pass the minimum-amount check
// against the same stale ladder.
func (s *MarketService) PlaceBid(ctx context.Context, listingID, bidderID string, amount int64) (models.Bid, error) {
	if listingID == "" || bidderID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing listingID or bidderID", marketerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", marketerrors.ErrInvalidInput)
	}

	unlock := s.locks.acquire(listingID)
	defer unlock()

	listing, err := s.store.GetListing(ctx, listingID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load listing %s: %w", listingID, err)
	}

	if !listing.AuctionEnabled || listing.Sold {
		return models.Bid{}, fmt.Errorf("service: listing %s: %w", listingID, marketerrors.ErrNotAuctionable)
	}
	if bidderID == listing.SellerID {
		return models.Bid{}, fmt.Errorf("service: listing %s: %w", listingID, marketerrors.ErrSelfBid)
	}

	// The baseline comes from the ledger, not the cached HighestBid on
	// the listing: a first bid equal to the price is acceptable, any
	// later bid must beat the highest active amount.
	minimum := listing.Price
	highest, err := s.store.HighestActiveBid(ctx, listingID)
	switch {
	case err == nil:
		minimum = highest.Amount + 1
	case !errors.Is(err, marketerrors.ErrNoBids):
		return models.Bid{}, fmt.Errorf("service: failed to check highest bid for listing %s: %w", listingID, err)
	}

	if amount < minimum {
		return models.Bid{}, fmt.Errorf("service: listing %s: %w", listingID, &marketerrors.BidTooLowError{Minimum: minimum})
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		ListingID: listingID,
		BidderID:  bidderID,
		Amount:    amount,
		Status:    models.BidActive,
		CreatedAt: time.Now().UTC(),
	}

	stored, err := s.store.UpsertBid(ctx, bid)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for listing %s by bidder %s: %w", listingID, bidderID, err)
	}

	if err := s.store.SetHighestBid(ctx, listingID, stored.Amount); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to refresh highest bid for listing %s: %w", listingID, err)
	}

	s.invalidateListing(ctx, listingID)
	return stored, nil
}

// ListBids returns every bid on the listing, sorted by amount
// descending with ties earliest-first.
func (s *MarketService) ListBids(ctx context.Context, listingID string) ([]models.Bid, error) {
	if listingID == "" {
		return nil, fmt.Errorf("service: %w - empty listing ID", marketerrors.ErrInvalidInput)
	}

	if _, err := s.store.GetListing(ctx, listingID); err != nil {
		return nil, fmt.Errorf("service: failed to load listing %s: %w", listingID, err)
	}

	bids, err := s.store.BidsForListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for listing %s: %w", listingID, err)
	}
	return bids, nil
}
