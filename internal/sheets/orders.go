package sheets

import (
	"context"
	"fmt"
	"time"

	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/freshmart/grocery-bot/internal/model"
)

// Order sheet columns, matching the shop's existing spreadsheet:
// Order ID | Customer Name | Phone | Items | Total Amount | Status | Date | Time

// PersistOrder implements service.OrderSink by appending one row to the
// Orders tab. Retrying is the caller's responsibility; the tiered sink wraps
// this with retry and the local fallback log.
func (c *Client) PersistOrder(ctx context.Context, order *model.Order) error {
	loc, err := time.LoadLocation(c.config.TimeZone)
	if err != nil {
		loc = time.UTC
	}
	createdAt := order.CreatedAt.In(loc)

	row := []any{
		order.OrderID,
		order.CustomerName,
		order.CustomerPhone,
		order.ItemsSummary,
		"₹" + order.TotalAmount.Round(0).String(),
		string(order.Status),
		createdAt.Format("2006-01-02"),
		createdAt.Format("3:04 PM"),
	}

	_, err = c.service.Spreadsheets.Values.
		Append(c.config.SpreadsheetID, c.config.OrdersSheet+"!A1", &sheetsapi.ValueRange{
			Values: [][]any{row},
		}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append order %s: %w", order.OrderID, err)
	}

	c.logger.Info("order saved to sheet",
		"order_id", order.OrderID,
		"total", order.TotalAmount.String())
	return nil
}
