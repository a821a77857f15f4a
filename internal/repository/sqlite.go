package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"resale-market/internal/marketerrors"
	"resale-market/internal/models"

	_ "modernc.org/sqlite" // pure Go SQLite driver, no CGO required
)

// SQLiteStore is a durable implementation of Store backed by SQLite.
// Check-and-mutate operations are expressed as single conditional
// UPDATEs keyed on the expected state, so they stay atomic with respect
// to concurrent callers without holding locks across reads.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and migrates) the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", dbPath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// SQLite supports a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func createTables(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS listings (
		listing_id         TEXT PRIMARY KEY,
		title              TEXT NOT NULL,
		description        TEXT NOT NULL DEFAULT '',
		price              INTEGER NOT NULL,
		stock_quantity     INTEGER NOT NULL,
		auction_enabled    INTEGER NOT NULL DEFAULT 0,
		highest_bid        INTEGER NOT NULL DEFAULT 0,
		sold               INTEGER NOT NULL DEFAULT 0,
		seller_id          TEXT NOT NULL,
		selected_bidder_id TEXT NOT NULL DEFAULT '',
		created_at         INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS bids (
		bid_id     TEXT PRIMARY KEY,
		listing_id TEXT NOT NULL,
		bidder_id  TEXT NOT NULL,
		amount     INTEGER NOT NULL,
		status     TEXT NOT NULL DEFAULT 'active',
		created_at INTEGER NOT NULL,
		UNIQUE(listing_id, bidder_id)
	);
	CREATE INDEX IF NOT EXISTS idx_bids_listing ON bids(listing_id);
	CREATE TABLE IF NOT EXISTS cart_items (
		owner_id   TEXT NOT NULL,
		listing_id TEXT NOT NULL,
		quantity   INTEGER NOT NULL,
		PRIMARY KEY(owner_id, listing_id)
	);
	CREATE TABLE IF NOT EXISTS orders (
		order_id     TEXT PRIMARY KEY,
		buyer_id     TEXT NOT NULL,
		total_amount INTEGER NOT NULL,
		status       TEXT NOT NULL,
		full_name    TEXT NOT NULL DEFAULT '',
		phone        TEXT NOT NULL DEFAULT '',
		address      TEXT NOT NULL DEFAULT '',
		created_at   INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS order_items (
		order_id   TEXT NOT NULL,
		line       INTEGER NOT NULL,
		listing_id TEXT NOT NULL,
		title      TEXT NOT NULL DEFAULT '',
		quantity   INTEGER NOT NULL,
		unit_price INTEGER NOT NULL,
		PRIMARY KEY(order_id, line)
	);
	`
	_, err := db.Exec(query)
	return err
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// storageErr wraps a driver failure as the transient storage error so
// callers can identify it with errors.Is and retry the operation.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, marketerrors.ErrStorageUnavailable)
}

// CreateListing adds a listing.
func (s *SQLiteStore) CreateListing(ctx context.Context, l models.Listing) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO listings (listing_id, title, description, price, stock_quantity,
			auction_enabled, highest_bid, sold, seller_id, selected_bidder_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ListingID, l.Title, l.Description, l.Price, l.StockQuantity,
		boolToInt(l.AuctionEnabled), l.HighestBid, boolToInt(l.Sold),
		l.SellerID, l.SelectedBidderID, l.CreatedAt.UnixNano())
	if err != nil {
		return storageErr("create listing", err)
	}
	return nil
}

// GetListing returns the listing by ID.
func (s *SQLiteStore) GetListing(ctx context.Context, listingID string) (models.Listing, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT listing_id, title, description, price, stock_quantity, auction_enabled,
			highest_bid, sold, seller_id, selected_bidder_id, created_at
		FROM listings WHERE listing_id = ?`, listingID)

	listing, err := scanListing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Listing{}, fmt.Errorf("get listing %s: %w", listingID, marketerrors.ErrListingNotFound)
	}
	if err != nil {
		return models.Listing{}, storageErr("get listing", err)
	}
	return listing, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (models.Listing, error) {
	var l models.Listing
	var auction, sold int64
	var createdAt int64
	err := row.Scan(&l.ListingID, &l.Title, &l.Description, &l.Price, &l.StockQuantity,
		&auction, &l.HighestBid, &sold, &l.SellerID, &l.SelectedBidderID, &createdAt)
	if err != nil {
		return models.Listing{}, err
	}
	l.AuctionEnabled = auction != 0
	l.Sold = sold != 0
	l.CreatedAt = time.Unix(0, createdAt).UTC()
	return l, nil
}

// ReserveStock performs the check-and-decrement as one conditional
// UPDATE keyed on the current stock, so no read-then-write gap exists.
func (s *SQLiteStore) ReserveStock(ctx context.Context, listingID string, quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf("reserve stock for listing %s: %w - non-positive quantity", listingID, marketerrors.ErrInvalidInput)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE listings
		SET stock_quantity = stock_quantity - ?,
			sold = CASE WHEN stock_quantity - ? <= 0 THEN 1 ELSE sold END
		WHERE listing_id = ? AND sold = 0 AND stock_quantity >= ?`,
		quantity, quantity, listingID, quantity)
	if err != nil {
		return storageErr("reserve stock", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storageErr("reserve stock", err)
	}
	if affected == 1 {
		return nil
	}

	// The conditional update did not apply; report why.
	listing, err := s.GetListing(ctx, listingID)
	if err != nil {
		return err
	}
	return &marketerrors.InsufficientStockError{
		ListingID: listingID,
		Requested: quantity,
		Available: listing.StockQuantity,
	}
}

// ReleaseStock returns previously reserved stock.
func (s *SQLiteStore) ReleaseStock(ctx context.Context, listingID string, quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf("release stock for listing %s: %w - non-positive quantity", listingID, marketerrors.ErrInvalidInput)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE listings
		SET stock_quantity = stock_quantity + ?,
			sold = CASE WHEN stock_quantity + ? > 0 THEN 0 ELSE sold END
		WHERE listing_id = ?`,
		quantity, quantity, listingID)
	if err != nil {
		return storageErr("release stock", err)
	}
	if affected, err := res.RowsAffected(); err != nil {
		return storageErr("release stock", err)
	} else if affected == 0 {
		return fmt.Errorf("release stock for listing %s: %w", listingID, marketerrors.ErrListingNotFound)
	}
	return nil
}

// SetHighestBid refreshes the cached highest bid amount.
func (s *SQLiteStore) SetHighestBid(ctx context.Context, listingID string, amount int64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE listings SET highest_bid = ? WHERE listing_id = ?`, amount, listingID)
	if err != nil {
		return storageErr("set highest bid", err)
	}
	if affected, err := res.RowsAffected(); err != nil {
		return storageErr("set highest bid", err)
	} else if affected == 0 {
		return fmt.Errorf("set highest bid for listing %s: %w", listingID, marketerrors.ErrListingNotFound)
	}
	return nil
}

// UpsertBid records a bidder's bid, overwriting any prior bid by the
// same bidder on the same listing while keeping the original bid_id
// and created_at.
func (s *SQLiteStore) UpsertBid(ctx context.Context, bid models.Bid) (models.Bid, error) {
	if _, err := s.GetListing(ctx, bid.ListingID); err != nil {
		return models.Bid{}, err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO bids (bid_id, listing_id, bidder_id, amount, status, created_at)
		VALUES (?, ?, ?, ?, 'active', ?)
		ON CONFLICT(listing_id, bidder_id) DO UPDATE SET
			amount = excluded.amount,
			status = 'active'`,
		bid.BidID, bid.ListingID, bid.BidderID, bid.Amount, bid.CreatedAt.UnixNano())
	if err != nil {
		return models.Bid{}, storageErr("upsert bid", err)
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT bid_id, listing_id, bidder_id, amount, status, created_at
		FROM bids WHERE listing_id = ? AND bidder_id = ?`,
		bid.ListingID, bid.BidderID)
	stored, err := scanBid(row)
	if err != nil {
		return models.Bid{}, storageErr("upsert bid", err)
	}
	return stored, nil
}

func scanBid(row rowScanner) (models.Bid, error) {
	var b models.Bid
	var createdAt int64
	if err := row.Scan(&b.BidID, &b.ListingID, &b.BidderID, &b.Amount, &b.Status, &createdAt); err != nil {
		return models.Bid{}, err
	}
	b.CreatedAt = time.Unix(0, createdAt).UTC()
	return b, nil
}

// BidsForListing returns all bids sorted by amount descending, ties
// earliest-first.
func (s *SQLiteStore) BidsForListing(ctx context.Context, listingID string) ([]models.Bid, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT bid_id, listing_id, bidder_id, amount, status, created_at
		FROM bids WHERE listing_id = ?
		ORDER BY amount DESC, created_at ASC`, listingID)
	if err != nil {
		return nil, storageErr("bids for listing", err)
	}
	defer rows.Close()

	var bids []models.Bid
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, storageErr("bids for listing", err)
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("bids for listing", err)
	}
	return bids, nil
}

// HighestActiveBid returns the active bid with the highest amount,
// ties broken by earliest creation time.
func (s *SQLiteStore) HighestActiveBid(ctx context.Context, listingID string) (models.Bid, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT bid_id, listing_id, bidder_id, amount, status, created_at
		FROM bids WHERE listing_id = ? AND status = 'active'
		ORDER BY amount DESC, created_at ASC LIMIT 1`, listingID)

	bid, err := scanBid(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Bid{}, fmt.Errorf("highest active bid for listing %s: %w", listingID, marketerrors.ErrNoBids)
	}
	if err != nil {
		return models.Bid{}, storageErr("highest active bid", err)
	}
	return bid, nil
}

// ResolveAuction closes the listing, resolves every bid and records the
// winner's order in one transaction. The rollback on any failure keeps
// the listing open, the bids active and the order absent.
func (s *SQLiteStore) ResolveAuction(ctx context.Context, listingID, winnerBidID string, order models.Order) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("resolve auction", err)
	}
	defer tx.Rollback()

	var sold int64
	err = tx.QueryRowContext(ctx,
		`SELECT sold FROM listings WHERE listing_id = ?`, listingID).Scan(&sold)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("resolve auction for listing %s: %w", listingID, marketerrors.ErrListingNotFound)
	}
	if err != nil {
		return storageErr("resolve auction", err)
	}
	if sold != 0 {
		return fmt.Errorf("resolve auction for listing %s: %w", listingID, marketerrors.ErrAuctionResolved)
	}

	var winnerBidder string
	err = tx.QueryRowContext(ctx,
		`SELECT bidder_id FROM bids WHERE bid_id = ? AND listing_id = ?`,
		winnerBidID, listingID).Scan(&winnerBidder)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("resolve auction for listing %s: winner %s: %w", listingID, winnerBidID, marketerrors.ErrNoBids)
	}
	if err != nil {
		return storageErr("resolve auction", err)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE listings
		SET sold = 1, stock_quantity = 0, selected_bidder_id = ?
		WHERE listing_id = ? AND sold = 0`,
		winnerBidder, listingID)
	if err != nil {
		return storageErr("resolve auction", err)
	}
	if affected, err := res.RowsAffected(); err != nil {
		return storageErr("resolve auction", err)
	} else if affected == 0 {
		return fmt.Errorf("resolve auction for listing %s: %w", listingID, marketerrors.ErrAuctionResolved)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE bids SET status = 'accepted' WHERE bid_id = ? AND listing_id = ?`,
		winnerBidID, listingID); err != nil {
		return storageErr("resolve auction", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE bids SET status = 'rejected' WHERE listing_id = ? AND bid_id != ?`,
		listingID, winnerBidID); err != nil {
		return storageErr("resolve auction", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO orders (order_id, buyer_id, total_amount, status, full_name, phone, address, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		order.OrderID, order.BuyerID, order.TotalAmount, string(order.Status),
		order.Shipping.FullName, order.Shipping.Phone, order.Shipping.Address,
		order.CreatedAt.UnixNano()); err != nil {
		return storageErr("resolve auction", err)
	}
	for i, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, line, listing_id, title, quantity, unit_price)
			VALUES (?, ?, ?, ?, ?, ?)`,
			order.OrderID, i, item.ListingID, item.Title, item.Quantity, item.UnitPrice); err != nil {
			return storageErr("resolve auction", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("resolve auction", err)
	}
	return nil
}

// GetCart returns the buyer's cart. A buyer with no rows simply has an
// empty cart; nothing needs creating.
func (s *SQLiteStore) GetCart(ctx context.Context, ownerID string) (models.Cart, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT listing_id, quantity FROM cart_items
		WHERE owner_id = ? ORDER BY rowid ASC`, ownerID)
	if err != nil {
		return models.Cart{}, storageErr("get cart", err)
	}
	defer rows.Close()

	cart := models.Cart{OwnerID: ownerID}
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.ListingID, &item.Quantity); err != nil {
			return models.Cart{}, storageErr("get cart", err)
		}
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return models.Cart{}, storageErr("get cart", err)
	}
	return cart, nil
}

// AddCartItem adds one unit of the listing to the cart.
func (s *SQLiteStore) AddCartItem(ctx context.Context, ownerID, listingID string) (models.Cart, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cart_items (owner_id, listing_id, quantity) VALUES (?, ?, 1)
		ON CONFLICT(owner_id, listing_id) DO UPDATE SET quantity = quantity + 1`,
		ownerID, listingID)
	if err != nil {
		return models.Cart{}, storageErr("add cart item", err)
	}
	return s.GetCart(ctx, ownerID)
}

// RemoveCartItem drops the listing's line from the cart.
func (s *SQLiteStore) RemoveCartItem(ctx context.Context, ownerID, listingID string) (models.Cart, error) {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE owner_id = ? AND listing_id = ?`, ownerID, listingID)
	if err != nil {
		return models.Cart{}, storageErr("remove cart item", err)
	}
	return s.GetCart(ctx, ownerID)
}

// ClearCart empties the cart.
func (s *SQLiteStore) ClearCart(ctx context.Context, ownerID string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE owner_id = ?`, ownerID); err != nil {
		return storageErr("clear cart", err)
	}
	return nil
}

// CreateOrder writes the order and its line items in one transaction.
func (s *SQLiteStore) CreateOrder(ctx context.Context, order models.Order) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("create order", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO orders (order_id, buyer_id, total_amount, status, full_name, phone, address, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		order.OrderID, order.BuyerID, order.TotalAmount, string(order.Status),
		order.Shipping.FullName, order.Shipping.Phone, order.Shipping.Address,
		order.CreatedAt.UnixNano()); err != nil {
		return storageErr("create order", err)
	}

	for i, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, line, listing_id, title, quantity, unit_price)
			VALUES (?, ?, ?, ?, ?, ?)`,
			order.OrderID, i, item.ListingID, item.Title, item.Quantity, item.UnitPrice); err != nil {
			return storageErr("create order", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("create order", err)
	}
	return nil
}

// GetOrder returns the order by ID.
func (s *SQLiteStore) GetOrder(ctx context.Context, orderID string) (models.Order, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT order_id, buyer_id, total_amount, status, full_name, phone, address, created_at
		FROM orders WHERE order_id = ?`, orderID)

	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, fmt.Errorf("get order %s: %w", orderID, marketerrors.ErrOrderNotFound)
	}
	if err != nil {
		return models.Order{}, storageErr("get order", err)
	}

	items, err := s.orderItems(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}
	order.Items = items
	return order, nil
}

func scanOrder(row rowScanner) (models.Order, error) {
	var o models.Order
	var createdAt int64
	err := row.Scan(&o.OrderID, &o.BuyerID, &o.TotalAmount, &o.Status,
		&o.Shipping.FullName, &o.Shipping.Phone, &o.Shipping.Address, &createdAt)
	if err != nil {
		return models.Order{}, err
	}
	o.CreatedAt = time.Unix(0, createdAt).UTC()
	return o, nil
}

func (s *SQLiteStore) orderItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT listing_id, title, quantity, unit_price
		FROM order_items WHERE order_id = ? ORDER BY line ASC`, orderID)
	if err != nil {
		return nil, storageErr("order items", err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ListingID, &item.Title, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, storageErr("order items", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("order items", err)
	}
	return items, nil
}

// UpdateOrder persists status and shipping changes.
func (s *SQLiteStore) UpdateOrder(ctx context.Context, order models.Order) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE orders SET status = ?, full_name = ?, phone = ?, address = ?
		WHERE order_id = ?`,
		string(order.Status), order.Shipping.FullName, order.Shipping.Phone,
		order.Shipping.Address, order.OrderID)
	if err != nil {
		return storageErr("update order", err)
	}
	if affected, err := res.RowsAffected(); err != nil {
		return storageErr("update order", err)
	} else if affected == 0 {
		return fmt.Errorf("update order %s: %w", order.OrderID, marketerrors.ErrOrderNotFound)
	}
	return nil
}

// OrdersByBuyer returns the buyer's orders, newest first.
func (s *SQLiteStore) OrdersByBuyer(ctx context.Context, buyerID string) ([]models.Order, error) {
	return s.queryOrders(ctx,
		`SELECT order_id, buyer_id, total_amount, status, full_name, phone, address, created_at
		 FROM orders WHERE buyer_id = ? ORDER BY rowid DESC`, buyerID)
}

// AllOrders returns every order, newest first.
func (s *SQLiteStore) AllOrders(ctx context.Context) ([]models.Order, error) {
	return s.queryOrders(ctx,
		`SELECT order_id, buyer_id, total_amount, status, full_name, phone, address, created_at
		 FROM orders ORDER BY rowid DESC`)
}

func (s *SQLiteStore) queryOrders(ctx context.Context, query string, args ...any) ([]models.Order, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("query orders", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, storageErr("query orders", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("query orders", err)
	}

	for i := range orders {
		items, err := s.orderItems(ctx, orders[i].OrderID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
