package market

import (
	"context"
	"fmt"
	"time"

	"resale-market/internal/marketerrors"
	"resale-market/internal/models"
	"resale-market/utils"
)

// Checkout converts the buyer's cart into a single order with
// all-or-nothing stock reservation.
//
// Every line is validated before any stock is touched. Reservation
// itself is an atomic check-and-decrement per listing, so a concurrent
// checkout can still win the race for the last unit between our
// validation and reservation; in that case every reservation already
// applied for this checkout is released and the whole operation fails.
// A partial order is never created and stock is never left reserved
// without an order.
func (s *MarketService) Checkout(ctx context.Context, buyerID string) (models.Order, error) {
	if buyerID == "" {
		return models.Order{}, fmt.Errorf("service: %w - empty buyer ID", marketerrors.ErrInvalidInput)
	}

	cart, err := s.store.GetCart(ctx, buyerID)
	if err != nil {
		return models.Order{}, fmt.Errorf("service: failed to get cart for buyer %s: %w", buyerID, err)
	}
	if len(cart.Items) == 0 {
		return models.Order{}, fmt.Errorf("service: buyer %s: %w", buyerID, marketerrors.ErrCartEmpty)
	}

	// Phase 1: validate every line before mutating anything. Prices and
	// titles are captured here so the order reflects what the buyer saw.
	lines := make([]models.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		listing, err := s.store.GetListing(ctx, item.ListingID)
		if err != nil {
			return models.Order{}, fmt.Errorf("service: failed to load listing %s: %w", item.ListingID, err)
		}

		if listing.AuctionEnabled {
			return models.Order{}, fmt.Errorf("service: listing %s: %w", item.ListingID, marketerrors.ErrAuctionOnly)
		}
		if listing.Sold || item.Quantity > listing.StockQuantity {
			return models.Order{}, fmt.Errorf("service: %w", &marketerrors.InsufficientStockError{
				ListingID: item.ListingID,
				Requested: item.Quantity,
				Available: listing.StockQuantity,
			})
		}

		lines = append(lines, models.OrderItem{
			ListingID: listing.ListingID,
			Title:     listing.Title,
			Quantity:  item.Quantity,
			UnitPrice: listing.Price,
		})
	}

	// Phase 2: reserve each line atomically, compensating on failure.
	reserved := make([]models.OrderItem, 0, len(lines))
	rollback := func() {
		for _, line := range reserved {
			if err := s.store.ReleaseStock(ctx, line.ListingID, line.Quantity); err != nil {
				utils.Error("checkout rollback failed to release stock", map[string]any{
					"listing_id": line.ListingID,
					"quantity":   line.Quantity,
					"error":      err.Error(),
				})
			}
			s.invalidateListing(ctx, line.ListingID)
		}
	}

	for _, line := range lines {
		if err := s.store.ReserveStock(ctx, line.ListingID, line.Quantity); err != nil {
			rollback()
			return models.Order{}, fmt.Errorf("service: checkout for buyer %s: %w", buyerID, err)
		}
		reserved = append(reserved, line)
	}

	var total int64
	for _, line := range lines {
		total += line.Quantity * line.UnitPrice
	}

	order := models.Order{
		OrderID:     utils.GenerateID(),
		BuyerID:     buyerID,
		Items:       lines,
		TotalAmount: total,
		Status:      models.OrderPlaced,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.store.CreateOrder(ctx, order); err != nil {
		rollback()
		return models.Order{}, fmt.Errorf("service: failed to create order for buyer %s: %w", buyerID, err)
	}

	// The order exists; an empty-cart failure here must not undo it.
	if err := s.store.ClearCart(ctx, buyerID); err != nil {
		utils.Warn("failed to clear cart after checkout", map[string]any{
			"buyer_id": buyerID,
			"order_id": order.OrderID,
			"error":    err.Error(),
		})
	}

	for _, line := range lines {
		s.invalidateListing(ctx, line.ListingID)
	}

	utils.Info("checkout completed", map[string]any{
		"buyer_id":     buyerID,
		"order_id":     order.OrderID,
		"total_amount": total,
		"line_count":   len(lines),
	})
	return order, nil
}
