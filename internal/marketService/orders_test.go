package market

import (
	"context"
	"testing"

	"resale-market/internal/marketerrors"
	"resale-market/internal/models"

	"github.com/stretchr/testify/require"
)

var testShipping = models.ShippingDetails{
	FullName: "Asha Rao",
	Phone:    "+91-9876543210",
	Address:  "14 MG Road, Bengaluru",
}

// wonAuction runs a full auction and returns the resulting order.
func wonAuction(t *testing.T, svc *MarketService, listingID, sellerID, winnerID string, amount int64) models.Order {
	t.Helper()
	ctx := context.Background()

	_, err := svc.PlaceBid(ctx, listingID, winnerID, amount)
	require.NoError(t, err)

	order, err := svc.AcceptHighestBid(ctx, listingID, sellerID)
	require.NoError(t, err)
	return order
}

func TestConfirmAuctionOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t, auctionListing("a1", "seller1", 100))
	order := wonAuction(t, svc, "a1", "seller1", "winner", 100)

	t.Run("wrong_buyer", func(t *testing.T) {
		_, err := svc.ConfirmAuctionOrder(ctx, order.OrderID, "stranger", testShipping)
		require.ErrorIs(t, err, marketerrors.ErrUnauthorized)
	})

	t.Run("missing_shipping_fields", func(t *testing.T) {
		partial := testShipping
		partial.Phone = ""
		_, err := svc.ConfirmAuctionOrder(ctx, order.OrderID, "winner", partial)
		require.ErrorIs(t, err, marketerrors.ErrInvalidInput)
	})

	t.Run("unknown_order", func(t *testing.T) {
		_, err := svc.ConfirmAuctionOrder(ctx, "missing", "winner", testShipping)
		require.ErrorIs(t, err, marketerrors.ErrOrderNotFound)
	})

	t.Run("confirm", func(t *testing.T) {
		confirmed, err := svc.ConfirmAuctionOrder(ctx, order.OrderID, "winner", testShipping)
		require.NoError(t, err)
		require.Equal(t, models.OrderPlaced, confirmed.Status)
		require.Equal(t, testShipping, confirmed.Shipping)

		// Only valid while awaiting confirmation.
		_, err = svc.ConfirmAuctionOrder(ctx, order.OrderID, "winner", testShipping)
		require.ErrorIs(t, err, marketerrors.ErrInvalidTransition)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t, fixedListing("f1", "seller1", 100, 5))

	_, err := svc.AddToCart(ctx, "buyer1", "f1")
	require.NoError(t, err)
	order, err := svc.Checkout(ctx, "buyer1")
	require.NoError(t, err)

	// Sellers with no line in the order cannot touch it.
	_, err = svc.UpdateOrderStatus(ctx, order.OrderID, "other-seller", models.OrderAccepted)
	require.ErrorIs(t, err, marketerrors.ErrUnauthorized)

	// Unknown status names are rejected before any lookup.
	_, err = svc.UpdateOrderStatus(ctx, order.OrderID, "seller1", models.OrderStatus("Teleported"))
	require.ErrorIs(t, err, marketerrors.ErrInvalidInput)

	// Skipping a step is not a legal move.
	_, err = svc.UpdateOrderStatus(ctx, order.OrderID, "seller1", models.OrderShipped)
	require.ErrorIs(t, err, marketerrors.ErrInvalidTransition)

	// Walk the machine forward one step at a time.
	for _, status := range []models.OrderStatus{models.OrderAccepted, models.OrderShipped, models.OrderDelivered} {
		updated, err := svc.UpdateOrderStatus(ctx, order.OrderID, "seller1", status)
		require.NoError(t, err)
		require.Equal(t, status, updated.Status)
	}

	// Delivered is terminal.
	_, err = svc.UpdateOrderStatus(ctx, order.OrderID, "seller1", models.OrderCancelled)
	require.ErrorIs(t, err, marketerrors.ErrInvalidTransition)
}

// The AwaitingConfirmation -> Placed step carries the buyer's shipping
// details, so the seller cannot take it through UpdateOrderStatus.
func TestUpdateOrderStatus_SellerCannotConfirm(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t, auctionListing("a1", "seller1", 100))
	order := wonAuction(t, svc, "a1", "seller1", "winner", 100)

	_, err := svc.UpdateOrderStatus(ctx, order.OrderID, "seller1", models.OrderPlaced)
	require.ErrorIs(t, err, marketerrors.ErrInvalidTransition)

	// The order is untouched and the buyer can still confirm.
	confirmed, err := svc.ConfirmAuctionOrder(ctx, order.OrderID, "winner", testShipping)
	require.NoError(t, err)
	require.Equal(t, models.OrderPlaced, confirmed.Status)
}

func TestCancelOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t, fixedListing("f1", "seller1", 100, 5))

	_, err := svc.AddToCart(ctx, "buyer1", "f1")
	require.NoError(t, err)
	order, err := svc.Checkout(ctx, "buyer1")
	require.NoError(t, err)

	_, err = svc.CancelOrder(ctx, order.OrderID, "stranger")
	require.ErrorIs(t, err, marketerrors.ErrUnauthorized)

	cancelled, err := svc.CancelOrder(ctx, order.OrderID, "buyer1")
	require.NoError(t, err)
	require.Equal(t, models.OrderCancelled, cancelled.Status)

	// Cancelled is terminal.
	_, err = svc.CancelOrder(ctx, order.OrderID, "buyer1")
	require.ErrorIs(t, err, marketerrors.ErrInvalidTransition)
}

func TestOrdersForSeller(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t,
		fixedListing("f1", "seller1", 100, 5),
		fixedListing("f2", "seller2", 250, 5),
	)

	// One mixed order with lines from both sellers.
	_, err := svc.AddToCart(ctx, "buyer1", "f1")
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "buyer1", "f2")
	require.NoError(t, err)
	_, err = svc.Checkout(ctx, "buyer1")
	require.NoError(t, err)

	// And one order that is seller2-only.
	_, err = svc.AddToCart(ctx, "buyer2", "f2")
	require.NoError(t, err)
	_, err = svc.Checkout(ctx, "buyer2")
	require.NoError(t, err)

	seller1Orders, err := svc.OrdersForSeller(ctx, "seller1")
	require.NoError(t, err)
	require.Len(t, seller1Orders, 1)
	require.Len(t, seller1Orders[0].Items, 1)
	require.Equal(t, "f1", seller1Orders[0].Items[0].ListingID)

	seller2Orders, err := svc.OrdersForSeller(ctx, "seller2")
	require.NoError(t, err)
	require.Len(t, seller2Orders, 2)

	none, err := svc.OrdersForSeller(ctx, "seller3")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestSellerAnalytics(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t,
		fixedListing("f1", "seller1", 100, 10),
		fixedListing("f2", "seller1", 250, 10),
		fixedListing("other", "seller2", 999, 10),
	)

	// buyer1 takes 3x f1 and 1x f2 plus a foreign line.
	for i := 0; i < 3; i++ {
		_, err := svc.AddToCart(ctx, "buyer1", "f1")
		require.NoError(t, err)
	}
	_, err := svc.AddToCart(ctx, "buyer1", "f2")
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "buyer1", "other")
	require.NoError(t, err)
	_, err = svc.Checkout(ctx, "buyer1")
	require.NoError(t, err)

	// buyer2 takes 1x f2.
	_, err = svc.AddToCart(ctx, "buyer2", "f2")
	require.NoError(t, err)
	_, err = svc.Checkout(ctx, "buyer2")
	require.NoError(t, err)

	sales, err := svc.SellerAnalytics(ctx, "seller1")
	require.NoError(t, err)
	require.Equal(t, int64(2), sales.TotalOrders)
	require.Equal(t, int64(5), sales.TotalItemsSold)
	require.Equal(t, int64(3*100+2*250), sales.TotalRevenue)

	require.Len(t, sales.TopListings, 2)
	require.Equal(t, "f1", sales.TopListings[0].ListingID)
	require.Equal(t, int64(3), sales.TopListings[0].Quantity)
	require.Equal(t, "f2", sales.TopListings[1].ListingID)
	require.Equal(t, int64(2), sales.TopListings[1].Quantity)

	empty, err := svc.SellerAnalytics(ctx, "seller3")
	require.NoError(t, err)
	require.Zero(t, empty.TotalRevenue)
	require.Zero(t, empty.TotalOrders)
	require.Empty(t, empty.TopListings)
}

func TestPublishListing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name     string
		sellerID string
		input    PublishListingInput
		wantErr  error
	}{
		{name: "missing_seller", sellerID: "", input: PublishListingInput{Title: "Jacket", Price: 100, StockQuantity: 1}, wantErr: marketerrors.ErrInvalidInput},
		{name: "missing_title", sellerID: "s1", input: PublishListingInput{Price: 100, StockQuantity: 1}, wantErr: marketerrors.ErrInvalidInput},
		{name: "zero_price", sellerID: "s1", input: PublishListingInput{Title: "Jacket", StockQuantity: 1}, wantErr: marketerrors.ErrInvalidInput},
		{name: "zero_stock_fixed", sellerID: "s1", input: PublishListingInput{Title: "Jacket", Price: 100}, wantErr: marketerrors.ErrInvalidInput},
		{name: "fixed", sellerID: "s1", input: PublishListingInput{Title: "Jacket", Price: 100, StockQuantity: 4}},
		{name: "auction_forces_single_unit", sellerID: "s1", input: PublishListingInput{Title: "Jacket", Price: 100, StockQuantity: 7, AuctionEnabled: true}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, _ := newTestService(t)
			listing, err := svc.PublishListing(ctx, tc.sellerID, tc.input)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, listing.ListingID)
			require.Equal(t, tc.sellerID, listing.SellerID)
			require.False(t, listing.Sold)
			if tc.input.AuctionEnabled {
				require.Equal(t, int64(1), listing.StockQuantity)
			} else {
				require.Equal(t, tc.input.StockQuantity, listing.StockQuantity)
			}

			got, err := svc.GetListing(ctx, listing.ListingID)
			require.NoError(t, err)
			require.Equal(t, listing.Title, got.Title)
		})
	}
}
