package model

import (
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus tracks an order through its lifecycle.
type OrderStatus string

const (
	// OrderStatusPending is the status of every freshly confirmed order.
	OrderStatusPending OrderStatus = "Pending"
	// OrderStatusCompleted marks orders the shop has fulfilled.
	OrderStatusCompleted OrderStatus = "Completed"
)

// Order is an immutable snapshot of a confirmed cart, handed to the
// persistence sink.
type Order struct {
	CreatedAt     time.Time       `json:"created_at"`
	OrderID       string          `json:"order_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	ItemsSummary  string          `json:"items_summary"`
	Status        OrderStatus     `json:"status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// OrderIDGenerator issues process-unique order IDs derived from the wall
// clock. When two orders land in the same millisecond the token is bumped so
// IDs stay strictly increasing for the lifetime of the process.
type OrderIDGenerator struct {
	now  func() time.Time
	mu   sync.Mutex
	last int64
}

// NewOrderIDGenerator creates a generator backed by the system clock.
func NewOrderIDGenerator() *OrderIDGenerator {
	return &OrderIDGenerator{now: time.Now}
}

// Next returns a fresh order ID of the form "ORD<millis>".
func (g *OrderIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	token := g.now().UnixMilli()
	if token <= g.last {
		token = g.last + 1
	}
	g.last = token

	return "ORD" + strconv.FormatInt(token, 10)
}
