package parse

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshmart/grocery-bot/internal/model"
)

func testCategory() *model.Category {
	return &model.Category{
		Key:   "2",
		Name:  "🥛 Dairy Products",
		Emoji: "🥛",
		Items: []model.Item{
			{ID: "d1", Name: "Fresh Milk", Price: decimal.NewFromInt(55), Unit: "1L"},
			{ID: "d2", Name: "Amul Butter", Price: decimal.NewFromInt(52), Unit: "100g"},
			{ID: "d3", Name: "Paneer", Price: decimal.NewFromInt(80), Unit: "250g"},
			{ID: "d4", Name: "Curd", Price: decimal.NewFromInt(40), Unit: "500g"},
			{ID: "d5", Name: "Cheese Slices", Price: decimal.NewFromInt(120), Unit: "200g"},
		},
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name        string
		utterance   string
		wantItems   []string
		wantErrors  int
		errContains string
	}{
		{
			name:      "single item with count",
			utterance: "1 2",
			wantItems: []string{"d1"},
		},
		{
			name:      "multiple items mixed quantities",
			utterance: "1 2, 3 500g, 5 1",
			wantItems: []string{"d1", "d3", "d5"},
		},
		{
			name:        "out of range ordinal keeps valid segments",
			utterance:   "1 2, 99 1",
			wantItems:   []string{"d1"},
			wantErrors:  1,
			errContains: "Item 99 not found (use 1-5)",
		},
		{
			name:        "non numeric ordinal",
			utterance:   "abc 2",
			wantErrors:  1,
			errContains: "Item abc not found (use 1-5)",
		},
		{
			name:        "wrong token count",
			utterance:   "1",
			wantErrors:  1,
			errContains: "Use format: item_number quantity",
		},
		{
			name:        "too many tokens",
			utterance:   "1 2 3",
			wantErrors:  1,
			errContains: "Use format: item_number quantity",
		},
		{
			name:        "bad quantity keeps other segments",
			utterance:   "1 abc, 2 2",
			wantItems:   []string{"d2"},
			wantErrors:  1,
			errContains: "Invalid quantity format",
		},
		{
			name:        "negative quantity rejected",
			utterance:   "1 -2",
			wantErrors:  1,
			errContains: "Invalid quantity format",
		},
		{
			name:        "zero quantity rejected",
			utterance:   "1 0",
			wantErrors:  1,
			errContains: "Quantity must be greater than 0",
		},
		{
			name:        "all segments bad",
			utterance:   "99 1, 1 abc",
			wantErrors:  2,
			errContains: "Item 99 not found",
		},
		{
			name:      "whitespace tolerated around segments",
			utterance: "  1 2 ,  3   500g  ",
			wantItems: []string{"d1", "d3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Line(tt.utterance, testCategory())

			ids := make([]string, 0, len(result.Entries))
			for _, e := range result.Entries {
				ids = append(ids, e.Item.ID)
			}
			assert.Equal(t, tt.wantItems, nilIfEmpty(ids))
			assert.Len(t, result.Errors, tt.wantErrors)
			if tt.errContains != "" {
				require.NotEmpty(t, result.Errors)
				assert.Contains(t, result.Errors[0], tt.errContains)
			}
		})
	}
}

func TestLineResolvesQuantities(t *testing.T) {
	result := Line("3 500g", testCategory())
	require.Len(t, result.Entries, 1)
	require.Empty(t, result.Errors)

	entry := result.Entries[0]
	assert.Equal(t, "Paneer", entry.Item.Name)
	// 500g on a 250g base unit prices two base units.
	assert.True(t, entry.Quantity.Multiplier.Equal(decimal.NewFromInt(2)),
		"multiplier = %s", entry.Quantity.Multiplier)
	assert.Equal(t, "500g", entry.Quantity.Display)
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
