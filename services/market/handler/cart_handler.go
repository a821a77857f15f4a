package handler

import (
	"net/http"

	"resale-market/services/market/helpers"
	"resale-market/utils"

	"github.com/gin-gonic/gin"
)

// GetCartHandler handles GET /cart
func (h *MarketHandler) GetCartHandler(c *gin.Context) {
	buyerID := callerID(c)

	cart, err := h.service.GetCart(c.Request.Context(), buyerID)
	if err != nil {
		helpers.HandleServiceError(c, "GetCartHandler", err, map[string]any{"buyer_id": buyerID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, cart, "cart retrieved successfully")
}

// AddToCartHandler handles POST /cart/add
func (h *MarketHandler) AddToCartHandler(c *gin.Context) {
	var req helpers.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddToCartHandler", err)
		return
	}

	buyerID := callerID(c)
	cart, err := h.service.AddToCart(c.Request.Context(), buyerID, req.ListingID)
	if err != nil {
		helpers.HandleServiceError(c, "AddToCartHandler", err, map[string]any{
			"buyer_id":   buyerID,
			"listing_id": req.ListingID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, cart, "item added to cart")
	helpers.LogSuccess("AddToCartHandler", "item added to cart", map[string]any{
		"buyer_id":   buyerID,
		"listing_id": req.ListingID,
	})
}

// RemoveFromCartHandler handles POST /cart/remove
func (h *MarketHandler) RemoveFromCartHandler(c *gin.Context) {
	var req helpers.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RemoveFromCartHandler", err)
		return
	}

	buyerID := callerID(c)
	cart, err := h.service.RemoveFromCart(c.Request.Context(), buyerID, req.ListingID)
	if err != nil {
		helpers.HandleServiceError(c, "RemoveFromCartHandler", err, map[string]any{
			"buyer_id":   buyerID,
			"listing_id": req.ListingID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, cart, "item removed from cart")
}

// CheckoutHandler handles POST /checkout
func (h *MarketHandler) CheckoutHandler(c *gin.Context) {
	buyerID := callerID(c)

	order, err := h.service.Checkout(c.Request.Context(), buyerID)
	if err != nil {
		helpers.HandleServiceError(c, "CheckoutHandler", err, map[string]any{"buyer_id": buyerID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, order, "order placed successfully")
	helpers.LogSuccess("CheckoutHandler", "order placed successfully", map[string]any{
		"buyer_id":     buyerID,
		"order_id":     order.OrderID,
		"total_amount": order.TotalAmount,
	})
}
