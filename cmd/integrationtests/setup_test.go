package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	market "resale-market/internal/marketService"
	model "resale-market/internal/models"
	"resale-market/internal/repository"
	"resale-market/internal/server"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with an in-memory store for
// integration testing and seeds it with the given listings.
func SetupTestRouter(t *testing.T, listings ...model.Listing) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	for _, listing := range listings {
		if err := store.CreateListing(context.Background(), listing); err != nil {
			t.Fatalf("failed to seed listing %s: %v", listing.ListingID, err)
		}
	}

	service := market.NewMarketService(store, nil, time.Minute)
	return server.SetupRouter(service)
}

// ExecuteRequest executes an HTTP request as the given user and returns
// the response recorder. An empty userID sends no identity header.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, userID string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request and parses the
// response envelope, returning the data payload for successful calls.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, userID string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, userID, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code >= 200 && w.Code < 300 {
			if data, ok := resp["data"].(map[string]any); ok {
				resp = data
			}
		}
	}

	return resp, w
}

func auctionListing(listingID, sellerID string, price int64) model.Listing {
	return model.Listing{
		ListingID:      listingID,
		Title:          listingID + " title",
		Price:          price,
		StockQuantity:  1,
		AuctionEnabled: true,
		SellerID:       sellerID,
		CreatedAt:      time.Now().UTC(),
	}
}

func fixedListing(listingID, sellerID string, price, stock int64) model.Listing {
	return model.Listing{
		ListingID:     listingID,
		Title:         listingID + " title",
		Price:         price,
		StockQuantity: stock,
		SellerID:      sellerID,
		CreatedAt:     time.Now().UTC(),
	}
}
