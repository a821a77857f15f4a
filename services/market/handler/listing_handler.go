package handler

import (
	"net/http"

	market "resale-market/internal/marketService"
	"resale-market/services/market/helpers"
	"resale-market/utils"

	"github.com/gin-gonic/gin"
)

// PublishListingHandler handles POST /listings
func (h *MarketHandler) PublishListingHandler(c *gin.Context) {
	var req helpers.PublishListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PublishListingHandler", err)
		return
	}

	sellerID := callerID(c)
	listing, err := h.service.PublishListing(c.Request.Context(), sellerID, market.PublishListingInput{
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		StockQuantity:  req.StockQuantity,
		AuctionEnabled: req.AuctionEnabled,
	})
	if err != nil {
		helpers.HandleServiceError(c, "PublishListingHandler", err, map[string]any{"seller_id": sellerID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, listing, "listing published successfully")
	helpers.LogSuccess("PublishListingHandler", "listing published successfully", map[string]any{
		"listing_id": listing.ListingID,
		"seller_id":  sellerID,
	})
}

// GetListingHandler handles GET /listings/:listing_id
func (h *MarketHandler) GetListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	listing, err := h.service.GetListing(c.Request.Context(), listingID)
	if err != nil {
		helpers.HandleServiceError(c, "GetListingHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, listing, "listing retrieved successfully")
}
