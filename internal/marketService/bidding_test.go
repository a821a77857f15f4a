package market

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"resale-market/internal/marketerrors"
	"resale-market/internal/models"
	"resale-market/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, listings ...models.Listing) (*MarketService, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	for _, listing := range listings {
		require.NoError(t, store.CreateListing(context.Background(), listing))
	}
	return NewMarketService(store, nil, time.Minute), store
}

func auctionListing(listingID, sellerID string, price int64) models.Listing {
	return models.Listing{
		ListingID:      listingID,
		Title:          fmt.Sprintf("%s title", listingID),
		Price:          price,
		StockQuantity:  1,
		AuctionEnabled: true,
		SellerID:       sellerID,
		CreatedAt:      time.Now().UTC(),
	}
}

func fixedListing(listingID, sellerID string, price, stock int64) models.Listing {
	return models.Listing{
		ListingID:     listingID,
		Title:         fmt.Sprintf("%s title", listingID),
		Price:         price,
		StockQuantity: stock,
		SellerID:      sellerID,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestPlaceBid_Validation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name      string
		listingID string
		bidderID  string
		amount    int64
		wantErr   error
	}{
		{name: "missing_listing_id", listingID: "", bidderID: "u1", amount: 100, wantErr: marketerrors.ErrInvalidInput},
		{name: "missing_bidder_id", listingID: "a1", bidderID: "", amount: 100, wantErr: marketerrors.ErrInvalidInput},
		{name: "zero_amount", listingID: "a1", bidderID: "u1", amount: 0, wantErr: marketerrors.ErrInvalidInput},
		{name: "negative_amount", listingID: "a1", bidderID: "u1", amount: -5, wantErr: marketerrors.ErrInvalidInput},
		{name: "unknown_listing", listingID: "missing", bidderID: "u1", amount: 100, wantErr: marketerrors.ErrListingNotFound},
		{name: "fixed_price_listing", listingID: "f1", bidderID: "u1", amount: 100, wantErr: marketerrors.ErrNotAuctionable},
		{name: "seller_self_bid", listingID: "a1", bidderID: "seller1", amount: 100, wantErr: marketerrors.ErrSelfBid},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, _ := newTestService(t,
				auctionListing("a1", "seller1", 100),
				fixedListing("f1", "seller1", 100, 3),
			)

			_, err := svc.PlaceBid(ctx, tc.listingID, tc.bidderID, tc.amount)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// The first bid only has to match the asking price; every later bid has
// to beat the highest active bid.
func TestPlaceBid_Ladder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t, auctionListing("a1", "seller1", 100))

	// First bid at the asking price is accepted.
	bid, err := svc.PlaceBid(ctx, "a1", "userA", 100)
	require.NoError(t, err)
	require.Equal(t, int64(100), bid.Amount)
	require.Equal(t, models.BidActive, bid.Status)

	// Matching the current highest is not enough.
	_, err = svc.PlaceBid(ctx, "a1", "userB", 100)
	require.ErrorIs(t, err, marketerrors.ErrBidTooLow)

	var tooLow *marketerrors.BidTooLowError
	require.ErrorAs(t, err, &tooLow)
	require.Equal(t, int64(101), tooLow.Minimum)

	// Beating it works.
	bid, err = svc.PlaceBid(ctx, "a1", "userB", 150)
	require.NoError(t, err)
	require.Equal(t, int64(150), bid.Amount)

	// The listing snapshot tracks the highest active amount.
	listing, err := svc.GetListing(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, int64(150), listing.HighestBid)
}

// A bidder raising their own bid updates the existing row instead of
// adding a second one.
func TestPlaceBid_RebidReplaces(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t, auctionListing("a1", "seller1", 100))

	first, err := svc.PlaceBid(ctx, "a1", "userA", 100)
	require.NoError(t, err)

	_, err = svc.PlaceBid(ctx, "a1", "userB", 120)
	require.NoError(t, err)

	raised, err := svc.PlaceBid(ctx, "a1", "userA", 200)
	require.NoError(t, err)
	require.Equal(t, first.BidID, raised.BidID)
	require.Equal(t, int64(200), raised.Amount)
	require.Equal(t, first.CreatedAt, raised.CreatedAt)

	bids, err := svc.ListBids(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, bids, 2)
	require.Equal(t, "userA", bids[0].BidderID)
	require.Equal(t, int64(200), bids[0].Amount)
}

func TestPlaceBid_SoldListing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t, auctionListing("a1", "seller1", 100))

	_, err := svc.PlaceBid(ctx, "a1", "userA", 100)
	require.NoError(t, err)
	_, err = svc.AcceptHighestBid(ctx, "a1", "seller1")
	require.NoError(t, err)

	_, err = svc.PlaceBid(ctx, "a1", "userB", 500)
	require.ErrorIs(t, err, marketerrors.ErrNotAuctionable)
}

// Concurrent bidders never both pass the minimum check against the same
// stale ladder: afterwards exactly one row per bidder exists and the
// recorded highest equals the actual maximum.
func TestPlaceBid_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t, auctionListing("a1", "seller1", 1))

	const bidders = 20

	var wg sync.WaitGroup
	for i := 0; i < bidders; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			// Amounts overlap on purpose; many of these lose the race
			// and are rejected as too low.
			_, _ = svc.PlaceBid(ctx, "a1", fmt.Sprintf("user%d", n), int64(1+n))
		}(i)
	}
	wg.Wait()

	bids, err := svc.ListBids(ctx, "a1")
	require.NoError(t, err)
	require.NotEmpty(t, bids)

	seen := make(map[string]bool)
	for _, bid := range bids {
		require.False(t, seen[bid.BidderID], "bidder %s has more than one row", bid.BidderID)
		seen[bid.BidderID] = true
		require.Equal(t, models.BidActive, bid.Status)
	}

	listing, err := svc.GetListing(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, bids[0].Amount, listing.HighestBid)
}

func TestPlaceBid_StoreFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := repository.NewMockStore(ctrl)
	svc := NewMarketService(store, nil, time.Minute)

	ctx := context.Background()
	storeErr := fmt.Errorf("open db: %w", marketerrors.ErrStorageUnavailable)

	store.EXPECT().GetListing(ctx, "a1").Return(models.Listing{}, storeErr)

	_, err := svc.PlaceBid(ctx, "a1", "userA", 100)
	require.ErrorIs(t, err, marketerrors.ErrStorageUnavailable)
}

func TestListBids(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t, auctionListing("a1", "seller1", 100))

	_, err := svc.ListBids(ctx, "missing")
	require.ErrorIs(t, err, marketerrors.ErrListingNotFound)

	bids, err := svc.ListBids(ctx, "a1")
	require.NoError(t, err)
	require.Empty(t, bids)

	_, err = svc.PlaceBid(ctx, "a1", "userA", 100)
	require.NoError(t, err)
	_, err = svc.PlaceBid(ctx, "a1", "userB", 140)
	require.NoError(t, err)

	bids, err = svc.ListBids(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, bids, 2)
	require.Equal(t, int64(140), bids[0].Amount)
	require.Equal(t, int64(100), bids[1].Amount)
}

func TestGetListing_Cache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := repository.NewMockStore(ctrl)
	svc := NewMarketService(store, nil, time.Minute)

	ctx := context.Background()
	listing := auctionListing("a1", "seller1", 100)

	// Exactly one store read; the second call is served from cache.
	store.EXPECT().GetListing(ctx, "a1").Return(listing, nil).Times(1)

	for i := 0; i < 2; i++ {
		got, err := svc.GetListing(ctx, "a1")
		require.NoError(t, err)
		require.Equal(t, listing.ListingID, got.ListingID)
		require.Equal(t, listing.Price, got.Price)
	}

	_, err := svc.GetListing(ctx, "")
	require.ErrorIs(t, err, marketerrors.ErrInvalidInput)
}
