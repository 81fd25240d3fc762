package parse

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshmart/grocery-bot/internal/common"
	"github.com/freshmart/grocery-bot/internal/model"
)

func item(unit string) model.Item {
	return model.Item{ID: "x1", Name: "Test Item", Price: decimal.NewFromInt(100), Unit: unit}
}

func TestQuantity(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		unit           string
		wantMultiplier string
		wantDisplay    string
	}{
		{
			name:           "bare count uses item unit",
			token:          "3",
			unit:           "pack",
			wantMultiplier: "3",
			wantDisplay:    "3 pack",
		},
		{
			name:           "bare decimal count",
			token:          "2.5",
			unit:           "1kg",
			wantMultiplier: "2.5",
			wantDisplay:    "2.5 1kg",
		},
		{
			name:           "grams against gram base divide by base amount",
			token:          "500g",
			unit:           "250g",
			wantMultiplier: "2",
			wantDisplay:    "500g",
		},
		{
			name:           "kilograms against kilogram base",
			token:          "2kg",
			unit:           "1kg",
			wantMultiplier: "2",
			wantDisplay:    "2kg",
		},
		{
			name:           "milliliters against liter base divide by thousand",
			token:          "500ml",
			unit:           "1L",
			wantMultiplier: "0.5",
			wantDisplay:    "500ml",
		},
		{
			name:           "grams against kilogram base divide by thousand",
			token:          "250g",
			unit:           "1kg",
			wantMultiplier: "0.25",
			wantDisplay:    "250g",
		},
		{
			// The intentional asymmetry: kg input is a direct multiplier even
			// when the base unit is gram-denominated.
			name:           "kilograms against gram base do not divide",
			token:          "2kg",
			unit:           "250g",
			wantMultiplier: "2",
			wantDisplay:    "2kg",
		},
		{
			name:           "grams against unitless base divide by thousand",
			token:          "500g",
			unit:           "pack",
			wantMultiplier: "0.5",
			wantDisplay:    "500g",
		},
		{
			name:           "liters against ml base divide by embedded amount",
			token:          "1l",
			unit:           "400ml",
			wantMultiplier: "0.0025",
			wantDisplay:    "1L",
		},
		{
			name:           "liters against unitless base stay direct",
			token:          "2l",
			unit:           "piece",
			wantMultiplier: "2",
			wantDisplay:    "2L",
		},
		{
			name:           "milliliters against ml base divide by embedded amount",
			token:          "100ml",
			unit:           "200ml",
			wantMultiplier: "0.5",
			wantDisplay:    "100ml",
		},
		{
			name:           "milliliters against unitless base divide by thousand",
			token:          "250ml",
			unit:           "piece",
			wantMultiplier: "0.25",
			wantDisplay:    "250ml",
		},
		{
			name:           "unit synonym kgs",
			token:          "1.5kgs",
			unit:           "1kg",
			wantMultiplier: "1.5",
			wantDisplay:    "1.5kg",
		},
		{
			name:           "unit synonym gm",
			token:          "100gm",
			unit:           "100g",
			wantMultiplier: "1",
			wantDisplay:    "100g",
		},
		{
			name:           "unit synonym litre",
			token:          "1litre",
			unit:           "1L",
			wantMultiplier: "1",
			wantDisplay:    "1L",
		},
		{
			name:           "uppercase input is normalized",
			token:          "2KG",
			unit:           "1kg",
			wantMultiplier: "2",
			wantDisplay:    "2kg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Quantity(tt.token, item(tt.unit))
			require.NoError(t, err)

			want := decimal.RequireFromString(tt.wantMultiplier)
			assert.True(t, got.Multiplier.Equal(want),
				"multiplier = %s, want %s", got.Multiplier, want)
			assert.Equal(t, tt.wantDisplay, got.Display)
		})
	}
}

func TestQuantityErrors(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		unit       string
		wantReason common.QuantityErrorReason
	}{
		{name: "negative number", token: "-2", unit: "pack", wantReason: common.QuantityInvalidFormat},
		{name: "letters only", token: "abc", unit: "pack", wantReason: common.QuantityInvalidFormat},
		{name: "embedded spaces", token: "2 kg", unit: "1kg", wantReason: common.QuantityInvalidFormat},
		{name: "trailing punctuation", token: "2kg!", unit: "1kg", wantReason: common.QuantityInvalidFormat},
		{name: "zero", token: "0", unit: "pack", wantReason: common.QuantityNotPositive},
		{name: "zero with unit", token: "0kg", unit: "1kg", wantReason: common.QuantityNotPositive},
		{name: "unknown unit", token: "2oz", unit: "pack", wantReason: common.QuantityUnknownUnit},
		{name: "unknown unit pounds", token: "1lb", unit: "1kg", wantReason: common.QuantityUnknownUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Quantity(tt.token, item(tt.unit))
			require.Error(t, err)

			var qerr *common.QuantityError
			require.True(t, errors.As(err, &qerr), "error should be a QuantityError, got %T", err)
			assert.Equal(t, tt.wantReason, qerr.Reason)
		})
	}
}

func TestQuantityMultiplierAlwaysPositive(t *testing.T) {
	// Everything Quantity accepts must produce a positive multiplier.
	tokens := []string{"1", "0.5", "2kg", "500g", "1l", "250ml", "0.1"}
	for _, token := range tokens {
		got, err := Quantity(token, item("250g"))
		require.NoError(t, err, "token %q", token)
		assert.True(t, got.Multiplier.IsPositive(), "token %q multiplier %s", token, got.Multiplier)
	}
}
