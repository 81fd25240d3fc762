// Package model defines the core domain types shared across the application.
package model

import "github.com/shopspring/decimal"

// Item represents a single purchasable product within a category.
type Item struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Unit  string          `json:"unit"`
	Price decimal.Decimal `json:"price"`
}

// Category is a named grouping of items, addressed by a short ordinal key
// such as "1".."5".
type Category struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Items []Item `json:"items"`
}

// Catalog is the immutable product catalog. Categories keep the order they
// were loaded in so menus render deterministically.
type Catalog struct {
	Categories []Category `json:"categories"`
}

// Category returns the category with the given key, or nil if absent.
func (c *Catalog) Category(key string) *Category {
	for i := range c.Categories {
		if c.Categories[i].Key == key {
			return &c.Categories[i]
		}
	}
	return nil
}

// CategoryCount returns the number of categories in the catalog.
func (c *Catalog) CategoryCount() int {
	return len(c.Categories)
}

// ItemCount returns the total number of items across all categories.
func (c *Catalog) ItemCount() int {
	n := 0
	for i := range c.Categories {
		n += len(c.Categories[i].Items)
	}
	return n
}
