package handler

import (
	"context"
	"time"

	market "resale-market/internal/marketService"
	model "resale-market/internal/models"
	"resale-market/services/market/helpers"

	"github.com/gin-gonic/gin"
)

// CallerIDKey is the gin context key under which the identity
// middleware stores the authenticated caller's ID.
const CallerIDKey = "caller_id"

// MarketServiceInterface is the full service surface the HTTP layer
// depends on.
type MarketServiceInterface interface {
	PublishListing(ctx context.Context, sellerID string, input market.PublishListingInput) (model.Listing, error)
	GetListing(ctx context.Context, listingID string) (model.Listing, error)

	PlaceBid(ctx context.Context, listingID, bidderID string, amount int64) (model.Bid, error)
	ListBids(ctx context.Context, listingID string) ([]model.Bid, error)
	AcceptHighestBid(ctx context.Context, listingID, callerID string) (model.Order, error)

	GetCart(ctx context.Context, buyerID string) (model.Cart, error)
	AddToCart(ctx context.Context, buyerID, listingID string) (model.Cart, error)
	RemoveFromCart(ctx context.Context, buyerID, listingID string) (model.Cart, error)
	Checkout(ctx context.Context, buyerID string) (model.Order, error)

	ConfirmAuctionOrder(ctx context.Context, orderID, buyerID string, shipping model.ShippingDetails) (model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID, sellerID string, newStatus model.OrderStatus) (model.Order, error)
	CancelOrder(ctx context.Context, orderID, buyerID string) (model.Order, error)
	OrdersForBuyer(ctx context.Context, buyerID string) ([]model.Order, error)
	OrdersForSeller(ctx context.Context, sellerID string) ([]model.Order, error)
	SellerAnalytics(ctx context.Context, sellerID string) (model.SellerSales, error)
}

type MarketHandler struct {
	service MarketServiceInterface
}

func NewMarketHandler(service MarketServiceInterface) *MarketHandler {
	return &MarketHandler{service: service}
}

// callerID returns the authenticated caller set by the identity
// middleware. Routes behind the middleware always have it.
func callerID(c *gin.Context) string {
	return c.GetString(CallerIDKey)
}

func toBidResponse(bid model.Bid) helpers.BidResponse {
	return helpers.BidResponse{
		BidID:     bid.BidID,
		ListingID: bid.ListingID,
		BidderID:  bid.BidderID,
		Amount:    bid.Amount,
		Status:    string(bid.Status),
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}
