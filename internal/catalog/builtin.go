package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/freshmart/grocery-bot/internal/model"
)

// BuiltinSource serves the hardcoded Fresh Mart catalog. Used by the local
// chat command when Google Sheets is not configured, and by tests.
type BuiltinSource struct{}

// LoadCatalog implements service.CatalogSource.
func (BuiltinSource) LoadCatalog(_ context.Context) (*model.Catalog, error) {
	return &model.Catalog{Categories: []model.Category{
		{
			Key: "1", Name: "🍪 Biscuits & Cookies", Emoji: "🍪",
			Items: []model.Item{
				{ID: "b1", Name: "Parle-G Biscuits", Price: price(20), Unit: "pack"},
				{ID: "b2", Name: "Good Day Cookies", Price: price(35), Unit: "pack"},
				{ID: "b3", Name: "Oreo Cookies", Price: price(45), Unit: "pack"},
				{ID: "b4", Name: "Marie Gold Biscuits", Price: price(25), Unit: "pack"},
				{ID: "b5", Name: "Bourbon Biscuits", Price: price(30), Unit: "pack"},
			},
		},
		{
			Key: "2", Name: "🥛 Dairy Products", Emoji: "🥛",
			Items: []model.Item{
				{ID: "d1", Name: "Fresh Milk", Price: price(55), Unit: "1L"},
				{ID: "d2", Name: "Amul Butter", Price: price(52), Unit: "100g"},
				{ID: "d3", Name: "Paneer", Price: price(80), Unit: "250g"},
				{ID: "d4", Name: "Curd", Price: price(40), Unit: "500g"},
				{ID: "d5", Name: "Cheese Slices", Price: price(120), Unit: "200g"},
			},
		},
		{
			Key: "3", Name: "🍎 Fruits & Vegetables", Emoji: "🍎",
			Items: []model.Item{
				{ID: "f1", Name: "Apples", Price: price(150), Unit: "1kg"},
				{ID: "f2", Name: "Bananas", Price: price(60), Unit: "1kg"},
				{ID: "f3", Name: "Onions", Price: price(30), Unit: "1kg"},
				{ID: "f4", Name: "Tomatoes", Price: price(40), Unit: "1kg"},
				{ID: "f5", Name: "Potatoes", Price: price(25), Unit: "1kg"},
			},
		},
		{
			Key: "4", Name: "🍚 Rice & Grains", Emoji: "🍚",
			Items: []model.Item{
				{ID: "r1", Name: "Basmati Rice", Price: price(120), Unit: "1kg"},
				{ID: "r2", Name: "Wheat Flour", Price: price(45), Unit: "1kg"},
				{ID: "r3", Name: "Toor Dal", Price: price(90), Unit: "1kg"},
				{ID: "r4", Name: "Moong Dal", Price: price(85), Unit: "1kg"},
				{ID: "r5", Name: "Chana Dal", Price: price(70), Unit: "1kg"},
			},
		},
		{
			Key: "5", Name: "🧴 Personal Care", Emoji: "🧴",
			Items: []model.Item{
				{ID: "p1", Name: "Colgate Toothpaste", Price: price(95), Unit: "150g"},
				{ID: "p2", Name: "Head & Shoulders Shampoo", Price: price(180), Unit: "400ml"},
				{ID: "p3", Name: "Dettol Soap", Price: price(35), Unit: "piece"},
				{ID: "p4", Name: "Johnson Baby Oil", Price: price(120), Unit: "200ml"},
				{ID: "p5", Name: "Nivea Cream", Price: price(85), Unit: "75ml"},
			},
		},
	}}, nil
}

func price(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}
