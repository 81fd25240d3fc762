// Package cart implements the per-user order accumulator.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/freshmart/grocery-bot/internal/model"
	"github.com/freshmart/grocery-bot/internal/parse"
)

// Line is one accumulated cart entry. LineTotal is the unit price times the
// multiplier, rounded half-up to the whole currency unit.
type Line struct {
	ItemID     string          `json:"item_id"`
	Name       string          `json:"name"`
	Display    string          `json:"display"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Multiplier decimal.Decimal `json:"multiplier"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

// Cart accumulates lines for a single user. Lines keep insertion order; at
// most one line exists per item ID. Not safe for concurrent use; the engine
// serializes access per user.
type Cart struct {
	lines []Line
	total decimal.Decimal
}

// Snapshot is an immutable view of a cart, taken at order confirmation.
type Snapshot struct {
	Lines []Line
	Total decimal.Decimal
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// AddOrReplace adds an item at the parsed quantity. Re-adding an item the
// cart already holds overwrites its quantity rather than accumulating: the
// last specified quantity wins. The running total is adjusted by the delta
// so it never drifts from the sum of line totals.
func (c *Cart) AddOrReplace(item model.Item, qty parse.ParsedQuantity) Line {
	line := Line{
		ItemID:     item.ID,
		Name:       item.Name,
		Display:    qty.Display,
		UnitPrice:  item.Price,
		Multiplier: qty.Multiplier,
		LineTotal:  item.Price.Mul(qty.Multiplier).Round(0),
	}

	for i := range c.lines {
		if c.lines[i].ItemID == item.ID {
			c.total = c.total.Sub(c.lines[i].LineTotal).Add(line.LineTotal)
			c.lines[i] = line
			return line
		}
	}

	c.lines = append(c.lines, line)
	c.total = c.total.Add(line.LineTotal)
	return line
}

// Remove drops the line for the given item ID, reporting whether it existed.
func (c *Cart) Remove(itemID string) bool {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.total = c.total.Sub(c.lines[i].LineTotal)
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
	c.total = decimal.Zero
}

// Empty reports whether the cart holds no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Len returns the number of lines in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Total returns the current running total.
func (c *Cart) Total() decimal.Decimal {
	return c.total
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Snapshot returns an immutable view of the cart for order creation.
func (c *Cart) Snapshot() Snapshot {
	return Snapshot{Lines: c.Lines(), Total: c.total}
}
