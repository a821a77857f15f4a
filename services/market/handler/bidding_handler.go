package handler

import (
	"net/http"

	"resale-market/services/market/helpers"
	"resale-market/utils"

	"github.com/gin-gonic/gin"
)

// PlaceBidHandler handles POST /bids
func (h *MarketHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bidderID := callerID(c)
	bid, err := h.service.PlaceBid(c.Request.Context(), req.ListingID, bidderID, req.Amount)
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", err, map[string]any{
			"listing_id": req.ListingID,
			"bidder_id":  bidderID,
			"amount":     req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, toBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.BidID,
		"listing_id": bid.ListingID,
		"bidder_id":  bidderID,
		"amount":     bid.Amount,
	})
}

// ListBidsHandler handles GET /listings/:listing_id/bids
func (h *MarketHandler) ListBidsHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	bids, err := h.service.ListBids(c.Request.Context(), listingID)
	if err != nil {
		helpers.HandleServiceError(c, "ListBidsHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, toBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("ListBidsHandler", "bids retrieved successfully", map[string]any{
		"listing_id": listingID,
		"count":      len(resp),
	})
}

// AcceptBidHandler handles POST /listings/:listing_id/accept-bid
func (h *MarketHandler) AcceptBidHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	sellerID := callerID(c)

	order, err := h.service.AcceptHighestBid(c.Request.Context(), listingID, sellerID)
	if err != nil {
		helpers.HandleServiceError(c, "AcceptBidHandler", err, map[string]any{
			"listing_id": listingID,
			"seller_id":  sellerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, order, "bid accepted successfully")
	helpers.LogSuccess("AcceptBidHandler", "bid accepted successfully", map[string]any{
		"listing_id": listingID,
		"order_id":   order.OrderID,
		"buyer_id":   order.BuyerID,
		"amount":     order.TotalAmount,
	})
}
