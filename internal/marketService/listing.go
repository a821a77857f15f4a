package market

import (
	"context"
	"fmt"
	"time"

	"resale-market/internal/marketerrors"
	"resale-market/internal/models"
	"resale-market/utils"
)

// PublishListingInput carries the seller-supplied fields of a new
// listing.
type PublishListingInput struct {
	Title          string
	Description    string
	Price          int64
	StockQuantity  int64
	AuctionEnabled bool
}

// PublishListing creates a listing owned by sellerID. Auction listings
// always carry a single unit of stock; fixed-price listings need at
// least one.
func (s *MarketService) PublishListing(ctx context.Context, sellerID string, input PublishListingInput) (models.Listing, error) {
	if sellerID == "" {
		return models.Listing{}, fmt.Errorf("service: %w - missing seller ID", marketerrors.ErrInvalidInput)
	}
	if input.Title == "" {
		return models.Listing{}, fmt.Errorf("service: %w - missing title", marketerrors.ErrInvalidInput)
	}
	if input.Price <= 0 {
		return models.Listing{}, fmt.Errorf("service: %w - non-positive price", marketerrors.ErrInvalidInput)
	}

	stock := input.StockQuantity
	if input.AuctionEnabled {
		stock = 1
	} else if stock <= 0 {
		return models.Listing{}, fmt.Errorf("service: %w - non-positive stock quantity", marketerrors.ErrInvalidInput)
	}

	listing := models.Listing{
		ListingID:      utils.GenerateID(),
		Title:          input.Title,
		Description:    input.Description,
		Price:          input.Price,
		StockQuantity:  stock,
		AuctionEnabled: input.AuctionEnabled,
		SellerID:       sellerID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.store.CreateListing(ctx, listing); err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to create listing by seller %s: %w", sellerID, err)
	}
	return listing, nil
}

// GetListing returns a listing snapshot, served from the cache when
// possible.
func (s *MarketService) GetListing(ctx context.Context, listingID string) (models.Listing, error) {
	if listingID == "" {
		return models.Listing{}, fmt.Errorf("service: %w - empty listing ID", marketerrors.ErrInvalidInput)
	}

	if listing, ok := s.cachedListing(ctx, listingID); ok {
		return listing, nil
	}

	listing, err := s.store.GetListing(ctx, listingID)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}

	s.storeCachedListing(ctx, listing)
	return listing, nil
}
