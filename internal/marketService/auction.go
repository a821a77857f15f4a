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

// AcceptHighestBid closes the auction: the highest active bid (ties
// broken by earliest bid time) is accepted, every other bid is
// rejected, the listing is marked sold and exactly one order is
// created awaiting the winner's shipping confirmation.
//
// The operation runs under the listing lock, so it is mutually
// exclusive with itself and with PlaceBid. The commit itself is a
// single ResolveAuction store call conditional on the listing not
// being sold: a duplicate request that slipped past the precondition
// read fails with ErrAuctionResolved, and a storage failure commits
// nothing, leaving the auction open for a clean retry.
func (s *MarketService) AcceptHighestBid(ctx context.Context, listingID, callerID string) (models.Order, error) {
	if listingID == "" || callerID == "" {
		return models.Order{}, fmt.Errorf("service: %w - missing listingID or callerID", marketerrors.ErrInvalidInput)
	}

	unlock := s.locks.acquire(listingID)
	defer unlock()

	listing, err := s.store.GetListing(ctx, listingID)
	if err != nil {
		return models.Order{}, fmt.Errorf("service: failed to load listing %s: %w", listingID, err)
	}

	if callerID != listing.SellerID {
		return models.Order{}, fmt.Errorf("service: listing %s: %w - caller is not the seller", listingID, marketerrors.ErrUnauthorized)
	}
	if listing.Sold {
		return models.Order{}, fmt.Errorf("service: listing %s: %w", listingID, marketerrors.ErrAlreadySold)
	}

	winner, err := s.store.HighestActiveBid(ctx, listingID)
	if err != nil {
		if errors.Is(err, marketerrors.ErrNoBids) {
			return models.Order{}, fmt.Errorf("service: listing %s: %w", listingID, marketerrors.ErrNoBids)
		}
		return models.Order{}, fmt.Errorf("service: failed to select winning bid for listing %s: %w", listingID, err)
	}

	order := models.Order{
		OrderID: utils.GenerateID(),
		BuyerID: winner.BidderID,
		Items: []models.OrderItem{{
			ListingID: listing.ListingID,
			Title:     listing.Title,
			Quantity:  1,
			UnitPrice: winner.Amount,
		}},
		TotalAmount: winner.Amount,
		Status:      models.OrderAwaitingConfirmation,
		CreatedAt:   time.Now().UTC(),
	}

	// Commit point: all-or-nothing, conditional on sold = false.
	if err := s.store.ResolveAuction(ctx, listingID, winner.BidID, order); err != nil {
		return models.Order{}, fmt.Errorf("service: failed to resolve auction for listing %s: %w", listingID, err)
	}

	s.invalidateListing(ctx, listingID)
	utils.Info("auction resolved", map[string]any{
		"listing_id": listingID,
		"order_id":   order.OrderID,
		"winner_id":  winner.BidderID,
		"amount":     winner.Amount,
	})
	return order, nil
}
