package models

import "time"

// BidStatus tracks the lifecycle of a bid on an auction listing.
type BidStatus string

const (
	BidActive   BidStatus = "active"
	BidAccepted BidStatus = "accepted"
	BidRejected BidStatus = "rejected"
)

// OrderStatus is the order fulfillment state machine.
type OrderStatus string

const (
	OrderAwaitingConfirmation OrderStatus = "Awaiting Confirmation"
	OrderPlaced               OrderStatus = "Placed"
	OrderAccepted             OrderStatus = "Accepted"
	OrderShipped              OrderStatus = "Shipped"
	OrderDelivered            OrderStatus = "Delivered"
	OrderCancelled            OrderStatus = "Cancelled"
)

// IsTerminal reports whether no further transitions are allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// nextStatus maps each state to its single forward successor.
var nextStatus = map[OrderStatus]OrderStatus{
	OrderAwaitingConfirmation: OrderPlaced,
	OrderPlaced:               OrderAccepted,
	OrderAccepted:             OrderShipped,
	OrderShipped:              OrderDelivered,
}

// CanTransition reports whether s -> to is a legal move: one forward
// step, or Cancelled from any non-terminal state.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if to == OrderCancelled {
		return true
	}
	return nextStatus[s] == to
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderAwaitingConfirmation, OrderPlaced, OrderAccepted, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Listing represents an item published for sale. Price is an integer in
// the smallest currency unit. HighestBid is a derived cache of the bid
// ledger, 0 meaning no bids yet; it is never trusted for validation,
// only for display.
type Listing struct {
	ListingID        string    `json:"listing_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Price            int64     `json:"price"`
	StockQuantity    int64     `json:"stock_quantity"`
	AuctionEnabled   bool      `json:"auction_enabled"`
	HighestBid       int64     `json:"highest_bid"`
	Sold             bool      `json:"sold"`
	SellerID         string    `json:"seller_id"`
	SelectedBidderID string    `json:"selected_bidder_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// Bid represents a bidder's standing offer on a listing. There is at
// most one bid per (listing, bidder) pair; re-bidding overwrites the
// amount and resets the status to active while keeping CreatedAt, so
// the earliest-bidder tie-break stays stable across re-bids.
type Bid struct {
	BidID     string    `json:"bid_id"`
	ListingID string    `json:"listing_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    int64     `json:"amount"`
	Status    BidStatus `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CartItem is one pending selection in a buyer's cart.
type CartItem struct {
	ListingID string `json:"listing_id"`
	Quantity  int64  `json:"quantity"`
}

// Cart holds a buyer's pending selections. Created lazily on first
// access, emptied (not deleted) on successful checkout.
type Cart struct {
	OwnerID string     `json:"owner_id"`
	Items   []CartItem `json:"items"`
}

// OrderItem is one purchased line. UnitPrice is captured at purchase
// time; Title is display pass-through copied from the listing.
type OrderItem struct {
	ListingID string `json:"listing_id"`
	Title     string `json:"title"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// ShippingDetails are supplied by the buyer when confirming an
// auction order.
type ShippingDetails struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// Order is a completed transaction. Immutable after creation except
// for Status and the shipping fields.
type Order struct {
	OrderID     string          `json:"order_id"`
	BuyerID     string          `json:"buyer_id"`
	Items       []OrderItem     `json:"items"`
	TotalAmount int64           `json:"total_amount"`
	Status      OrderStatus     `json:"status"`
	Shipping    ShippingDetails `json:"shipping"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SellerSales is an aggregated analytics view over a seller's sold
// line items.
type SellerSales struct {
	TotalRevenue   int64         `json:"total_revenue"`
	TotalItemsSold int64         `json:"total_items_sold"`
	TotalOrders    int64         `json:"total_orders"`
	TopListings    []ListingSale `json:"top_listings"`
}

// ListingSale is one entry in the top-sellers breakdown.
type ListingSale struct {
	ListingID string `json:"listing_id"`
	Title     string `json:"title"`
	Quantity  int64  `json:"quantity"`
}
