// Package storage implements the local durable order log on sqlite. It is
// the fallback sink: orders land here whenever the primary sheet append
// fails, so no confirmed order is silently lost.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/freshmart/grocery-bot/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// OrderLog is an append-only sqlite log of confirmed orders.
type OrderLog struct {
	db   *sql.DB
	path string
}

const orderLogSchema = `
CREATE TABLE IF NOT EXISTS orders (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	order_id      TEXT NOT NULL,
	customer_name TEXT NOT NULL,
	phone         TEXT NOT NULL,
	items         TEXT NOT NULL,
	total_amount  TEXT NOT NULL,
	status        TEXT NOT NULL,
	created_at    TIMESTAMP NOT NULL,
	logged_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_order_id ON orders(order_id);
`

// NewOrderLog opens (creating if needed) the order log at the given path.
func NewOrderLog(dbPath string) (*OrderLog, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath cannot be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(orderLogSchema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &OrderLog{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (l *OrderLog) Close() error {
	return l.db.Close()
}

// PersistOrder implements service.OrderSink by appending one row. Rows are
// never updated or deleted.
func (l *OrderLog) PersistOrder(ctx context.Context, order *model.Order) error {
	if order == nil {
		return fmt.Errorf("order cannot be nil")
	}
	if order.OrderID == "" {
		return fmt.Errorf("order ID cannot be empty")
	}

	_, err := l.db.ExecContext(ctx, `
		INSERT INTO orders (order_id, customer_name, phone, items, total_amount, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		order.OrderID,
		order.CustomerName,
		order.CustomerPhone,
		order.ItemsSummary,
		order.TotalAmount.String(),
		string(order.Status),
		order.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to log order %s: %w", order.OrderID, err)
	}
	return nil
}

// ListOrders returns the most recently logged orders, newest first. A limit
// of 0 or less returns all rows.
func (l *OrderLog) ListOrders(ctx context.Context, limit int) ([]model.Order, error) {
	query := `
		SELECT order_id, customer_name, phone, items, total_amount, status, created_at
		FROM orders ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		var total, status string
		var createdAt time.Time
		if err := rows.Scan(&o.OrderID, &o.CustomerName, &o.CustomerPhone,
			&o.ItemsSummary, &total, &status, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		amount, err := decimal.NewFromString(total)
		if err != nil {
			return nil, fmt.Errorf("order %s has corrupt total %q: %w", o.OrderID, total, err)
		}
		o.TotalAmount = amount
		o.Status = model.OrderStatus(status)
		o.CreatedAt = createdAt
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	return orders, nil
}

// Count returns the number of logged orders.
func (l *OrderLog) Count(ctx context.Context) (int, error) {
	var n int
	if err := l.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return n, nil
}
