package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/freshmart/grocery-bot/internal/model"
)

// Column layouts of the two catalog tabs. Row 1 is the header.
//
//	Categories: ID | Name | Emoji
//	Items:      ID | Name | Category ID | Price | Unit
const (
	categoriesRange = "!A2:C"
	itemsRange      = "!A2:E"
)

// LoadCatalog implements service.CatalogSource by reading the Categories and
// Items tabs. Malformed item rows are skipped with a warning rather than
// failing the whole load.
func (c *Client) LoadCatalog(ctx context.Context) (*model.Catalog, error) {
	catResp, err := c.service.Spreadsheets.Values.
		Get(c.config.SpreadsheetID, c.config.CategoriesSheet+categoriesRange).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read categories sheet: %w", err)
	}

	catalog := &model.Catalog{}
	index := make(map[string]int)

	for _, row := range catResp.Values {
		if len(row) < 2 {
			continue
		}
		key := cellString(row, 0)
		name := cellString(row, 1)
		if key == "" || name == "" {
			continue
		}
		emoji := cellString(row, 2)
		if emoji == "" {
			emoji = "📦"
		}
		index[key] = len(catalog.Categories)
		catalog.Categories = append(catalog.Categories, model.Category{
			Key:   key,
			Name:  name,
			Emoji: emoji,
		})
	}

	itemResp, err := c.service.Spreadsheets.Values.
		Get(c.config.SpreadsheetID, c.config.ItemsSheet+itemsRange).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read items sheet: %w", err)
	}

	for _, row := range itemResp.Values {
		if len(row) < 5 {
			continue
		}
		categoryKey := cellString(row, 2)
		pos, ok := index[categoryKey]
		if !ok {
			c.logger.Warn("item references unknown category, skipping",
				"item_id", cellString(row, 0),
				"category_id", categoryKey)
			continue
		}

		price, err := decimal.NewFromString(cellString(row, 3))
		if err != nil || price.IsNegative() {
			c.logger.Warn("item has invalid price, skipping",
				"item_id", cellString(row, 0),
				"price", cellString(row, 3))
			continue
		}

		catalog.Categories[pos].Items = append(catalog.Categories[pos].Items, model.Item{
			ID:    cellString(row, 0),
			Name:  cellString(row, 1),
			Price: price,
			Unit:  cellString(row, 4),
		})
	}

	if len(catalog.Categories) == 0 {
		return nil, fmt.Errorf("categories sheet %q is empty", c.config.CategoriesSheet)
	}

	return catalog, nil
}

func cellString(row []any, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[i]))
}
