// Package orders implements the two-tier order persistence contract: a
// primary sink tried with retry, and a durable local fallback invoked only
// when the primary fails.
package orders

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/freshmart/grocery-bot/internal/common"
	"github.com/freshmart/grocery-bot/internal/model"
	"github.com/freshmart/grocery-bot/internal/service"
)

// TieredSink writes orders to the primary sink, falling back to the local
// log on failure. A nil primary (Sheets unconfigured) goes straight to the
// fallback. Only when both tiers fail does PersistOrder return an error.
type TieredSink struct {
	primary  service.OrderSink
	fallback service.OrderSink
	logger   *slog.Logger
	retry    service.RetryOptions
}

// NewTieredSink builds a tiered sink. fallback must not be nil.
func NewTieredSink(primary, fallback service.OrderSink, retry service.RetryOptions, logger *slog.Logger) *TieredSink {
	return &TieredSink{
		primary:  primary,
		fallback: fallback,
		retry:    retry,
		logger:   logger,
	}
}

// PersistOrder implements service.OrderSink.
func (s *TieredSink) PersistOrder(ctx context.Context, order *model.Order) error {
	if s.primary != nil {
		err := common.WithRetry(ctx, func() error {
			return s.primary.PersistOrder(ctx, order)
		}, s.retry)
		if err == nil {
			return nil
		}
		s.logger.Error("primary order sink failed, using local fallback",
			"order_id", order.OrderID,
			"error", err)
	} else {
		s.logger.Warn("no primary order sink configured, using local fallback",
			"order_id", order.OrderID)
	}

	if err := s.fallback.PersistOrder(ctx, order); err != nil {
		return fmt.Errorf("order %s lost: fallback sink failed: %w", order.OrderID, err)
	}

	s.logger.Info("order saved to local fallback log", "order_id", order.OrderID)
	return nil
}
