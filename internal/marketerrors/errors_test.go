package marketerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBidTooLowError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("service: %w", &BidTooLowError{Minimum: 101})

	require.ErrorIs(t, err, ErrBidTooLow)
	require.NotErrorIs(t, err, ErrInsufficientStock)

	var tooLow *BidTooLowError
	require.ErrorAs(t, err, &tooLow)
	require.Equal(t, int64(101), tooLow.Minimum)
	require.Contains(t, err.Error(), "101")
}

func TestInsufficientStockError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("service: %w", &InsufficientStockError{ListingID: "l1", Requested: 3, Available: 1})

	require.ErrorIs(t, err, ErrInsufficientStock)
	require.NotErrorIs(t, err, ErrBidTooLow)

	var noStock *InsufficientStockError
	require.ErrorAs(t, err, &noStock)
	require.Equal(t, "l1", noStock.ListingID)
	require.Equal(t, int64(3), noStock.Requested)
	require.Equal(t, int64(1), noStock.Available)
}

func TestSentinelsAreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrListingNotFound, ErrOrderNotFound, ErrNoBids, ErrStorageUnavailable,
		ErrInvalidInput, ErrUnauthorized, ErrSelfBid, ErrNotAuctionable,
		ErrBidTooLow, ErrAlreadySold, ErrAuctionResolved, ErrAuctionOnly,
		ErrCartEmpty, ErrInsufficientStock, ErrInvalidTransition,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			require.False(t, errors.Is(a, b), "%v should not match %v", a, b)
		}
	}
}
