package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"resale-market/internal/marketerrors"
	"resale-market/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and
// user-facing message. BidTooLow and InsufficientStock carry amounts
// that belong in the message.
func MapErrorToHTTP(err error) (int, string) {
	var tooLow *marketerrors.BidTooLowError
	if errors.As(err, &tooLow) {
		return http.StatusConflict, fmt.Sprintf("bid must be at least ₹%d", tooLow.Minimum)
	}

	var noStock *marketerrors.InsufficientStockError
	if errors.As(err, &noStock) {
		return http.StatusConflict, fmt.Sprintf("not enough stock: requested %d, available %d", noStock.Requested, noStock.Available)
	}

	switch {
	case errors.Is(err, marketerrors.ErrListingNotFound):
		return http.StatusNotFound, "listing not found"
	case errors.Is(err, marketerrors.ErrOrderNotFound):
		return http.StatusNotFound, "order not found"
	case errors.Is(err, marketerrors.ErrUnauthorized):
		return http.StatusForbidden, "unauthorized"
	case errors.Is(err, marketerrors.ErrSelfBid):
		return http.StatusBadRequest, "you cannot bid on your own listing"
	case errors.Is(err, marketerrors.ErrNotAuctionable):
		return http.StatusBadRequest, "listing is not open for bidding"
	case errors.Is(err, marketerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, marketerrors.ErrAlreadySold):
		return http.StatusBadRequest, "listing already sold"
	case errors.Is(err, marketerrors.ErrAuctionResolved):
		return http.StatusConflict, "auction already resolved"
	case errors.Is(err, marketerrors.ErrNoBids):
		return http.StatusBadRequest, "no bids yet"
	case errors.Is(err, marketerrors.ErrAuctionOnly):
		return http.StatusBadRequest, "this listing is available via bidding only"
	case errors.Is(err, marketerrors.ErrInsufficientStock):
		return http.StatusConflict, "not enough stock"
	case errors.Is(err, marketerrors.ErrCartEmpty):
		return http.StatusBadRequest, "cart is empty"
	case errors.Is(err, marketerrors.ErrInvalidTransition):
		return http.StatusBadRequest, "order cannot move to that status"
	case errors.Is(err, marketerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, marketerrors.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HandleServiceError maps the error, sends the JSON error response and
// logs it. Storage and unknown failures are never surfaced verbatim.
func HandleServiceError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)

	responseErr := err
	if status >= http.StatusInternalServerError {
		responseErr = errors.New(message)
	}
	utils.JSONError(c, status, responseErr, message)

	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["handler"] = handlerName
	ctx["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", ctx)
	} else {
		utils.Warn(handlerName+": request rejected", ctx)
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
