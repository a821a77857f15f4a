package handler

import (
	"net/http"

	model "resale-market/internal/models"
	"resale-market/services/market/helpers"
	"resale-market/utils"

	"github.com/gin-gonic/gin"
)

// ConfirmOrderHandler handles PUT /orders/:order_id/confirm
func (h *MarketHandler) ConfirmOrderHandler(c *gin.Context) {
	var req helpers.ConfirmOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ConfirmOrderHandler", err)
		return
	}

	orderID := c.Param("order_id")
	buyerID := callerID(c)

	order, err := h.service.ConfirmAuctionOrder(c.Request.Context(), orderID, buyerID, model.ShippingDetails{
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		helpers.HandleServiceError(c, "ConfirmOrderHandler", err, map[string]any{
			"order_id": orderID,
			"buyer_id": buyerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, order, "order confirmed successfully")
	helpers.LogSuccess("ConfirmOrderHandler", "order confirmed successfully", map[string]any{
		"order_id": orderID,
		"buyer_id": buyerID,
	})
}

// UpdateOrderStatusHandler handles PUT /orders/:order_id/status
func (h *MarketHandler) UpdateOrderStatusHandler(c *gin.Context) {
	var req helpers.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateOrderStatusHandler", err)
		return
	}

	orderID := c.Param("order_id")
	sellerID := callerID(c)

	order, err := h.service.UpdateOrderStatus(c.Request.Context(), orderID, sellerID, model.OrderStatus(req.Status))
	if err != nil {
		helpers.HandleServiceError(c, "UpdateOrderStatusHandler", err, map[string]any{
			"order_id":  orderID,
			"seller_id": sellerID,
			"status":    req.Status,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, order, "order status updated successfully")
	helpers.LogSuccess("UpdateOrderStatusHandler", "order status updated successfully", map[string]any{
		"order_id": orderID,
		"status":   req.Status,
	})
}

// CancelOrderHandler handles PUT /orders/:order_id/cancel
func (h *MarketHandler) CancelOrderHandler(c *gin.Context) {
	orderID := c.Param("order_id")
	buyerID := callerID(c)

	order, err := h.service.CancelOrder(c.Request.Context(), orderID, buyerID)
	if err != nil {
		helpers.HandleServiceError(c, "CancelOrderHandler", err, map[string]any{
			"order_id": orderID,
			"buyer_id": buyerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, order, "order cancelled successfully")
	helpers.LogSuccess("CancelOrderHandler", "order cancelled successfully", map[string]any{
		"order_id": orderID,
		"buyer_id": buyerID,
	})
}

// MyOrdersHandler handles GET /orders
func (h *MarketHandler) MyOrdersHandler(c *gin.Context) {
	buyerID := callerID(c)

	orders, err := h.service.OrdersForBuyer(c.Request.Context(), buyerID)
	if err != nil {
		helpers.HandleServiceError(c, "MyOrdersHandler", err, map[string]any{"buyer_id": buyerID})
		return
	}

	if orders == nil {
		orders = []model.Order{}
	}
	utils.JSONResponse(c, http.StatusOK, orders, "orders retrieved successfully")
}

// SellerOrdersHandler handles GET /orders/seller
func (h *MarketHandler) SellerOrdersHandler(c *gin.Context) {
	sellerID := callerID(c)

	orders, err := h.service.OrdersForSeller(c.Request.Context(), sellerID)
	if err != nil {
		helpers.HandleServiceError(c, "SellerOrdersHandler", err, map[string]any{"seller_id": sellerID})
		return
	}

	if orders == nil {
		orders = []model.Order{}
	}
	utils.JSONResponse(c, http.StatusOK, orders, "seller orders retrieved successfully")
}

// SellerAnalyticsHandler handles GET /orders/seller/analytics
func (h *MarketHandler) SellerAnalyticsHandler(c *gin.Context) {
	sellerID := callerID(c)

	sales, err := h.service.SellerAnalytics(c.Request.Context(), sellerID)
	if err != nil {
		helpers.HandleServiceError(c, "SellerAnalyticsHandler", err, map[string]any{"seller_id": sellerID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, sales, "seller analytics retrieved successfully")
}
