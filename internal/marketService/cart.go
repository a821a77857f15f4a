package market

import (
	"context"
	"fmt"

	"resale-market/internal/marketerrors"
	"resale-market/internal/models"
)

// GetCart returns the buyer's cart, creating an empty one on first
// access.
func (s *MarketService) GetCart(ctx context.Context, buyerID string) (models.Cart, error) {
	if buyerID == "" {
		return models.Cart{}, fmt.Errorf("service: %w - empty buyer ID", marketerrors.ErrInvalidInput)
	}

	cart, err := s.store.GetCart(ctx, buyerID)
	if err != nil {
		return models.Cart{}, fmt.Errorf("service: failed to get cart for buyer %s: %w", buyerID, err)
	}
	return cart, nil
}

// AddToCart adds one unit of the listing to the buyer's cart, bumping
// the quantity if the listing is already there. Availability is not
// checked here; checkout validates every line against live stock.
func (s *MarketService) AddToCart(ctx context.Context, buyerID, listingID string) (models.Cart, error) {
	if buyerID == "" || listingID == "" {
		return models.Cart{}, fmt.Errorf("service: %w - missing buyerID or listingID", marketerrors.ErrInvalidInput)
	}

	if _, err := s.store.GetListing(ctx, listingID); err != nil {
		return models.Cart{}, fmt.Errorf("service: failed to load listing %s: %w", listingID, err)
	}

	cart, err := s.store.AddCartItem(ctx, buyerID, listingID)
	if err != nil {
		return models.Cart{}, fmt.Errorf("service: failed to add listing %s to cart of buyer %s: %w", listingID, buyerID, err)
	}
	return cart, nil
}

// RemoveFromCart drops the listing's line from the buyer's cart.
func (s *MarketService) RemoveFromCart(ctx context.Context, buyerID, listingID string) (models.Cart, error) {
	if buyerID == "" || listingID == "" {
		return models.Cart{}, fmt.Errorf("service: %w - missing buyerID or listingID", marketerrors.ErrInvalidInput)
	}

	cart, err := s.store.RemoveCartItem(ctx, buyerID, listingID)
	if err != nil {
		return models.Cart{}, fmt.Errorf("service: failed to remove listing %s from cart of buyer %s: %w", listingID, buyerID, err)
	}
	return cart, nil
}
