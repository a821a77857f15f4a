package helpers

// Request/Response DTOs
type PublishListingRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	Price          int64  `json:"price" binding:"required,gt=0"`
	StockQuantity  int64  `json:"stock_quantity" binding:"gte=0"`
	AuctionEnabled bool   `json:"auction_enabled"`
}

type PlaceBidRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
}

type CartItemRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
}

type ConfirmOrderRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	ListingID string `json:"listing_id"`
	BidderID  string `json:"bidder_id"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}
