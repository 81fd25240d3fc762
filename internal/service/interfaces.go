// Package service defines the boundary interfaces the conversation core
// consumes. Implementations (Google Sheets, sqlite, HTTP transports) live in
// their own packages.
package service

import (
	"context"
	"time"

	"github.com/freshmart/grocery-bot/internal/model"
)

// InboundMessage is a single utterance arriving from the messaging channel.
// Messages whose Type is not "text" are ignored entirely.
type InboundMessage struct {
	SenderID   string
	SenderName string
	Text       string
	Type       string
}

// CatalogSource loads the product catalog from an external system. It is
// called once at startup (or on demand); a failure degrades the bot to
// catalog-unavailable responses rather than crashing it.
type CatalogSource interface {
	LoadCatalog(ctx context.Context) (*model.Catalog, error)
}

// OrderSink persists a confirmed order. A returned error means this sink
// could not durably record the order; callers decide whether a fallback
// applies.
type OrderSink interface {
	PersistOrder(ctx context.Context, order *model.Order) error
}

// Notifier delivers a best-effort message to a secondary recipient such as
// the shopkeeper. Failures are logged by callers and never propagated to the
// customer.
type Notifier interface {
	Notify(ctx context.Context, recipientID, text string) error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
