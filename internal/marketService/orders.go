package market

import (
	"context"
	"fmt"
	"sort"

	"resale-market/internal/marketerrors"
	"resale-market/internal/models"
)

// ConfirmAuctionOrder records the winner's shipping details and moves
// the order from AwaitingConfirmation to Placed. Only the buyer can
// confirm, and only while the order is awaiting confirmation.
func (s *MarketService) ConfirmAuctionOrder(ctx context.Context, orderID, buyerID string, shipping models.ShippingDetails) (models.Order, error) {
	if orderID == "" || buyerID == "" {
		return models.Order{}, fmt.Errorf("service: %w - missing orderID or buyerID", marketerrors.ErrInvalidInput)
	}
	if shipping.FullName == "" || shipping.Phone == "" || shipping.Address == "" {
		return models.Order{}, fmt.Errorf("service: %w - all shipping details required", marketerrors.ErrInvalidInput)
	}

	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return models.Order{}, fmt.Errorf("service: failed to load order %s: %w", orderID, err)
	}

	if order.BuyerID != buyerID {
		return models.Order{}, fmt.Errorf("service: order %s: %w - caller is not the buyer", orderID, marketerrors.ErrUnauthorized)
	}
	if order.Status != models.OrderAwaitingConfirmation {
		return models.Order{}, fmt.Errorf("service: order %s in status %q: %w", orderID, order.Status, marketerrors.ErrInvalidTransition)
	}

	order.Shipping = shipping
	order.Status = models.OrderPlaced

	if err := s.store.UpdateOrder(ctx, order); err != nil {
		return models.Order{}, fmt.Errorf("service: failed to confirm order %s: %w", orderID, err)
	}
	return order, nil
}

// UpdateOrderStatus lets a seller advance an order through the
// fulfillment machine. The seller must own at least one line item, and
// the move must be a legal transition (one forward step, or Cancelled
// from a non-terminal state). The AwaitingConfirmation -> Placed step
// is reserved for ConfirmAuctionOrder: only the buyer can take it,
// because it carries the shipping details.
func (s *MarketService) UpdateOrderStatus(ctx context.Context, orderID, sellerID string, newStatus models.OrderStatus) (models.Order, error) {
	if orderID == "" || sellerID == "" {
		return models.Order{}, fmt.Errorf("service: %w - missing orderID or sellerID", marketerrors.ErrInvalidInput)
	}
	if !models.ValidOrderStatus(newStatus) {
		return models.Order{}, fmt.Errorf("service: %w - unknown status %q", marketerrors.ErrInvalidInput, newStatus)
	}

	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return models.Order{}, fmt.Errorf("service: failed to load order %s: %w", orderID, err)
	}

	owns, err := s.sellerOwnsLine(ctx, order, sellerID)
	if err != nil {
		return models.Order{}, err
	}
	if !owns {
		return models.Order{}, fmt.Errorf("service: order %s: %w - seller owns no line item", orderID, marketerrors.ErrUnauthorized)
	}

	if !order.Status.CanTransition(newStatus) {
		return models.Order{}, fmt.Errorf("service: order %s: %q -> %q: %w", orderID, order.Status, newStatus, marketerrors.ErrInvalidTransition)
	}
	if order.Status == models.OrderAwaitingConfirmation && newStatus == models.OrderPlaced {
		return models.Order{}, fmt.Errorf("service: order %s awaiting buyer confirmation: %w", orderID, marketerrors.ErrInvalidTransition)
	}

	order.Status = newStatus
	if err := s.store.UpdateOrder(ctx, order); err != nil {
		return models.Order{}, fmt.Errorf("service: failed to update order %s: %w", orderID, err)
	}
	return order, nil
}

// CancelOrder cancels a buyer's own non-terminal order.
func (s *MarketService) CancelOrder(ctx context.Context, orderID, buyerID string) (models.Order, error) {
	if orderID == "" || buyerID == "" {
		return models.Order{}, fmt.Errorf("service: %w - missing orderID or buyerID", marketerrors.ErrInvalidInput)
	}

	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return models.Order{}, fmt.Errorf("service: failed to load order %s: %w", orderID, err)
	}

	if order.BuyerID != buyerID {
		return models.Order{}, fmt.Errorf("service: order %s: %w - caller is not the buyer", orderID, marketerrors.ErrUnauthorized)
	}
	if !order.Status.CanTransition(models.OrderCancelled) {
		return models.Order{}, fmt.Errorf("service: order %s in status %q: %w", orderID, order.Status, marketerrors.ErrInvalidTransition)
	}

	order.Status = models.OrderCancelled
	if err := s.store.UpdateOrder(ctx, order); err != nil {
		return models.Order{}, fmt.Errorf("service: failed to cancel order %s: %w", orderID, err)
	}
	return order, nil
}

// OrdersForBuyer returns the buyer's orders, newest first.
func (s *MarketService) OrdersForBuyer(ctx context.Context, buyerID string) ([]models.Order, error) {
	if buyerID == "" {
		return nil, fmt.Errorf("service: %w - empty buyer ID", marketerrors.ErrInvalidInput)
	}

	orders, err := s.store.OrdersByBuyer(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get orders for buyer %s: %w", buyerID, err)
	}
	return orders, nil
}

// OrdersForSeller returns orders containing the seller's listings,
// with line items narrowed to that seller. Orders with no matching
// line are dropped.
func (s *MarketService) OrdersForSeller(ctx context.Context, sellerID string) ([]models.Order, error) {
	if sellerID == "" {
		return nil, fmt.Errorf("service: %w - empty seller ID", marketerrors.ErrInvalidInput)
	}

	orders, err := s.store.AllOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}

	var result []models.Order
	for _, order := range orders {
		items, err := s.sellerLines(ctx, order, sellerID)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			continue
		}
		order.Items = items
		result = append(result, order)
	}
	return result, nil
}

// SellerAnalytics aggregates revenue and volume over the seller's sold
// line items, with a top-5 breakdown by quantity.
func (s *MarketService) SellerAnalytics(ctx context.Context, sellerID string) (models.SellerSales, error) {
	orders, err := s.OrdersForSeller(ctx, sellerID)
	if err != nil {
		return models.SellerSales{}, err
	}

	sales := models.SellerSales{TotalOrders: int64(len(orders))}
	byListing := make(map[string]*models.ListingSale)

	for _, order := range orders {
		for _, item := range order.Items {
			sales.TotalRevenue += item.UnitPrice * item.Quantity
			sales.TotalItemsSold += item.Quantity

			entry, ok := byListing[item.ListingID]
			if !ok {
				entry = &models.ListingSale{ListingID: item.ListingID, Title: item.Title}
				byListing[item.ListingID] = entry
			}
			entry.Quantity += item.Quantity
		}
	}

	top := make([]models.ListingSale, 0, len(byListing))
	for _, entry := range byListing {
		top = append(top, *entry)
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Quantity != top[j].Quantity {
			return top[i].Quantity > top[j].Quantity
		}
		return top[i].ListingID < top[j].ListingID
	})
	if len(top) > 5 {
		top = top[:5]
	}
	sales.TopListings = top

	return sales, nil
}

// sellerLines filters an order's items down to those whose listing
// belongs to sellerID.
func (s *MarketService) sellerLines(ctx context.Context, order models.Order, sellerID string) ([]models.OrderItem, error) {
	var items []models.OrderItem
	for _, item := range order.Items {
		listing, err := s.store.GetListing(ctx, item.ListingID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to load listing %s for order %s: %w", item.ListingID, order.OrderID, err)
		}
		if listing.SellerID == sellerID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *MarketService) sellerOwnsLine(ctx context.Context, order models.Order, sellerID string) (bool, error) {
	items, err := s.sellerLines(ctx, order, sellerID)
	if err != nil {
		return false, err
	}
	return len(items) > 0, nil
}
